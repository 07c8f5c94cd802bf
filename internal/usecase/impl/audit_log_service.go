package impl

import (
	"context"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	"github.com/Yakorrr/merchandising-management-system/internal/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"
)

// auditLogService implements the AuditLogUsecase interface.
type auditLogService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditLogService is the constructor for auditLogService.
func NewAuditLogService(auditRepo repository.AuditLogRepository) usecase.AuditLogUsecase {
	return &auditLogService{auditRepo: auditRepo}
}

func (srv *auditLogService) ListLogs(ctx context.Context, filter usecase.AuditLogFilter) ([]*entity.AuditLog, error) {
	logs, err := srv.auditRepo.List(ctx, repository.AuditLogFilter{
		UserID: filter.UserID,
		Action: filter.Action,
		Limit:  filter.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}

	return logs, nil
}
