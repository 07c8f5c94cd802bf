package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction names what happened in an audit record.
type AuditAction string

const (
	AuditOrderCreated     AuditAction = "order_created"
	AuditOrderUpdated     AuditAction = "order_updated"
	AuditOrderDeleted     AuditAction = "order_deleted"
	AuditDailyPlanCreated AuditAction = "daily_plan_created"
	AuditDailyPlanUpdated AuditAction = "daily_plan_updated"
	AuditDailyPlanDeleted AuditAction = "daily_plan_deleted"
	AuditVisitUpdated     AuditAction = "daily_plan_visit_updated"
	AuditStoreCreated     AuditAction = "store_created"
	AuditStoreUpdated     AuditAction = "store_updated"
	AuditStoreDeleted     AuditAction = "store_deleted"
	AuditProductCreated   AuditAction = "product_created"
	AuditProductUpdated   AuditAction = "product_updated"
	AuditProductDeleted   AuditAction = "product_deleted"
	AuditRouteCalculated  AuditAction = "route_calculated"
)

// AuditLog records one user action. UserID is nil for system actions.
type AuditLog struct {
	ID        uuid.UUID      `json:"id"`
	UserID    *uuid.UUID     `json:"user"`
	Action    AuditAction    `json:"action"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"timestamp"`
}
