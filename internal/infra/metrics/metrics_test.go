package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileObserver_CountsChildren(t *testing.T) {
	registry := NewRegistry()
	observer := NewReconcileObserver(registry).(*reconcileCollector)

	observer.ObserveReconcile(service.ReconcileOutcome{Parent: "order", Created: 2, Updated: 1, Deleted: 3, Elapsed: 5 * time.Millisecond})
	observer.ObserveReconcile(service.ReconcileOutcome{Parent: "order", Created: 1})

	assert.InDelta(t, 3, testutil.ToFloat64(observer.children.WithLabelValues("order", "created")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(observer.children.WithLabelValues("order", "updated")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(observer.children.WithLabelValues("order", "deleted")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(observer.duration))
}

func TestReconcileObserver_CountsFailuresByCode(t *testing.T) {
	registry := NewRegistry()
	observer := NewReconcileObserver(registry).(*reconcileCollector)

	observer.ObserveReconcile(service.ReconcileOutcome{Parent: "daily_plan", Err: domainerrors.ErrDuplicateKey.WithDetails("visit_order 1")})
	observer.ObserveReconcile(service.ReconcileOutcome{Parent: "daily_plan", Err: errors.Wrap(domainerrors.ErrChildNotFound, "apply")})
	observer.ObserveReconcile(service.ReconcileOutcome{Parent: "daily_plan", Err: errors.New("boom")})

	assert.InDelta(t, 1, testutil.ToFloat64(observer.failures.WithLabelValues("daily_plan", "duplicate_key")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(observer.failures.WithLabelValues("daily_plan", "child_not_found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(observer.failures.WithLabelValues("daily_plan", "internal")), 0)
	assert.Equal(t, 0, testutil.CollectAndCount(observer.children))
}

func TestHandler_ExposesSeries(t *testing.T) {
	registry := NewRegistry()
	observer := NewReconcileObserver(registry)
	observer.ObserveReconcile(service.ReconcileOutcome{Parent: "order", Created: 1})

	rec := httptest.NewRecorder()
	NewHandler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `reconcile_children_total{op="created",parent="order"} 1`), body)
}
