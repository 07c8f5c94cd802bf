package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailyPlan is the ordered list of stores a merchandiser visits on one day.
// A merchandiser has at most one plan per date.
type DailyPlan struct {
	ID             uuid.UUID    `json:"id"`
	MerchandiserID uuid.UUID    `json:"merchandiser"`
	PlanDate       time.Time    `json:"plan_date"`
	Notes          string       `json:"notes"`
	Visits         []*PlanVisit `json:"stores"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// PlanVisit is one stop of a daily plan. VisitOrder is unique within the plan.
type PlanVisit struct {
	ID          uuid.UUID  `json:"id"`
	DailyPlanID uuid.UUID  `json:"-"`
	StoreID     uuid.UUID  `json:"store"`
	StoreName   string     `json:"store_name"`
	VisitOrder  int        `json:"visit_order"`
	VisitedAt   *time.Time `json:"visited_at"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GetID returns the visit identity.
func (v *PlanVisit) GetID() uuid.UUID {
	return v.ID
}

// PlanVisitSpec is the validated payload of one plan stop.
type PlanVisitSpec struct {
	StoreID    uuid.UUID
	VisitOrder int
	VisitedAt  *time.Time
	Completed  bool
}
