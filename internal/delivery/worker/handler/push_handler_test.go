package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Yakorrr/merchandising-management-system/config"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/constants"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, data string) string {
	t.Helper()

	msg := PubSubMessage{Subscription: "projects/local/subscriptions/audit-sub"}
	msg.Message.Data = data
	msg.Message.MessageID = "1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodedEvent(t *testing.T, event service.AuditEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_CountsAuditEvents(t *testing.T) {
	registry := prometheus.NewRegistry()
	h := NewPushHandler(PushHandlerParams{
		Config:  &config.Config{},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Counter: metrics.NewEventCounter(registry),
	})

	event := service.AuditEvent{
		EventID:    "evt-1",
		Action:     "order_created",
		UserID:     "user-1",
		Details:    map[string]any{"items": 2},
		OccurredAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
	}

	rec := servePush(h, pushBody(t, encodedEvent(t, event)), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = servePush(h, pushBody(t, encodedEvent(t, event)), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	count, err := testutil.GatherAndCount(registry, "audit_events_received_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHandlePush_RejectsMalformedMessages(t *testing.T) {
	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "bad base64", body: pushBody(t, "%%%")},
		{name: "payload not an event", body: pushBody(t, base64.StdEncoding.EncodeToString([]byte("[1,2]")))},
		{name: "event without action", body: pushBody(t, encodedEvent(t, service.AuditEvent{EventID: "evt-2"}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := servePush(h, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_RequiresTokenForGooglePushOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	event := service.AuditEvent{EventID: "evt-3", Action: "store_created"}

	rec := servePush(h, pushBody(t, encodedEvent(t, event)), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, pushBody(t, encodedEvent(t, event)), http.Header{"Authorization": {"Basic abc"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractRequestID_PrefersAttributes(t *testing.T) {
	h := &PushHandler{}

	msg := &PubSubMessage{}
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(t.Context(), msg, &service.AuditEvent{RequestID: "from-event"}))

	assert.Equal(t, "from-event", h.extractRequestID(t.Context(), &PubSubMessage{}, &service.AuditEvent{RequestID: "from-event"}))
	assert.NotEmpty(t, h.extractRequestID(t.Context(), &PubSubMessage{}, &service.AuditEvent{}))
}
