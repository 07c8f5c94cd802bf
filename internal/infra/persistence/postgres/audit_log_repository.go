package postgres

import (
	"context"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultAuditLogLimit = 100

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (repo *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	if log.ID == uuid.Nil {
		log.ID = newID()
	}

	logM := &model.AuditLogModel{
		ID:      log.ID,
		UserID:  log.UserID,
		Action:  string(log.Action),
		Details: datatypes.JSONMap(log.Details),
	}
	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write audit log")
	}

	log.CreatedAt = logM.CreatedAt

	return nil
}

func (repo *auditLogRepository) List(ctx context.Context, filter repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	query := repo.db.WithContext(ctx).Model(&model.AuditLogModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("LOWER(action) = LOWER(?)", filter.Action)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditLogLimit
	}

	var logMs []model.AuditLogModel
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&logMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audit logs")
	}

	logs := make([]*entity.AuditLog, 0, len(logMs))
	for i := range logMs {
		logs = append(logs, &entity.AuditLog{
			ID:        logMs[i].ID,
			UserID:    logMs[i].UserID,
			Action:    entity.AuditAction(logMs[i].Action),
			Details:   map[string]any(logMs[i].Details),
			CreatedAt: logMs[i].CreatedAt,
		})
	}

	return logs, nil
}
