package usecase

import (
	"context"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditLogFilter narrows audit listings.
type AuditLogFilter struct {
	UserID *uuid.UUID
	Action string
	Limit  int
}

// AuditLogUsecase reads the audit trail.
type AuditLogUsecase interface {
	ListLogs(ctx context.Context, filter AuditLogFilter) ([]*entity.AuditLog, error)
}
