// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/Yakorrr/merchandising-management-system/internal/delivery/context"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"
	"github.com/Yakorrr/merchandising-management-system/internal/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
)

// auditTrail builds audit records and forwards them once their transaction
// has committed.
type auditTrail struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newAuditTrail(publisher service.EventPublisher, logger *slog.Logger) *auditTrail {
	return &auditTrail{publisher: publisher, logger: logger}
}

func newAuditLog(actor usecase.Actor, action entity.AuditAction, details map[string]any) *entity.AuditLog {
	log := &entity.AuditLog{
		ID:      uuid.Must(uuid.NewV7()),
		Action:  action,
		Details: details,
	}
	if actor.UserID != uuid.Nil {
		userID := actor.UserID
		log.UserID = &userID
	}

	return log
}

// publish never fails the caller: the audit record is already committed.
func (a *auditTrail) publish(ctx context.Context, logs ...*entity.AuditLog) {
	if a == nil || a.publisher == nil {
		return
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	for _, log := range logs {
		if log == nil {
			continue
		}

		event := &service.AuditEvent{
			RequestID:  requestID,
			EventID:    log.ID.String(),
			Action:     string(log.Action),
			Details:    log.Details,
			OccurredAt: log.CreatedAt,
		}
		if log.UserID != nil {
			event.UserID = log.UserID.String()
		}

		if err := a.publisher.PublishAuditEvent(ctx, event); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, a.logger).Warn("Failed to publish audit event",
				slog.String("event_id", event.EventID),
				slog.String("action", event.Action),
				slog.Any("error", err),
			)
		}
	}
}

// txError keeps domain errors as they are and reports anything else raised
// by a transaction as TRANSACTION_FAILED.
func txError(err error, op string) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return errors.Wrap(err, op)
	}

	return domainerrors.ErrTransactionFailed.WrapMessage(op + ": " + err.Error())
}

// calendarDate drops the clock, keeping the date as written by the caller.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
