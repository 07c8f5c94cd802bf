package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DailyPlanModel mirrors the 'daily_plans' table. One plan per merchandiser and date.
type DailyPlanModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	MerchandiserID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_daily_plans_merchandiser_date"`
	PlanDate       datatypes.Date `gorm:"not null;uniqueIndex:idx_daily_plans_merchandiser_date"`
	Notes          string         `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Merchandiser *UserModel       `gorm:"foreignKey:MerchandiserID;constraint:OnDelete:RESTRICT"`
	Visits       []PlanVisitModel `gorm:"foreignKey:DailyPlanID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DailyPlanModel) TableName() string {
	return "daily_plans"
}

// PlanVisitModel mirrors the 'daily_plan_stores' table. VisitOrder is unique per plan;
// rows being reordered inside a transaction temporarily hold negative values.
// A store appears once per plan, checked by the plan editor under the plan row lock.
type PlanVisitModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DailyPlanID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_daily_plan_stores_plan_order"`
	StoreID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	VisitOrder  int        `gorm:"not null;uniqueIndex:idx_daily_plan_stores_plan_order"`
	VisitedAt   *time.Time
	Completed   bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Store *StoreModel `gorm:"foreignKey:StoreID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (PlanVisitModel) TableName() string {
	return "daily_plan_stores"
}
