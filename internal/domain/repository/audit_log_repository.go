package repository

import (
	"context"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditLogFilter narrows audit listings. Action matches case-insensitively.
type AuditLogFilter struct {
	UserID *uuid.UUID
	Action string
	Limit  int
}

// AuditLogRepository appends and reads audit records.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	// List returns records newest first.
	List(ctx context.Context, filter AuditLogFilter) ([]*entity.AuditLog, error)
}
