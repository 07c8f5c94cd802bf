package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel mirrors the 'audit_logs' table.
type AuditLogModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID        `gorm:"type:uuid;index"`
	Action    string            `gorm:"type:varchar(100);not null;index"`
	Details   datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
