package usecase

import (
	"context"
	"time"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanVisitInput is one entry of a submitted visit list. A nil ID creates a new visit.
type PlanVisitInput struct {
	ID         *uuid.UUID
	StoreID    uuid.UUID
	VisitOrder int
	VisitedAt  *time.Time
	Completed  bool
}

// CreateDailyPlanInput defines a new plan with its full visit list.
type CreateDailyPlanInput struct {
	MerchandiserID uuid.UUID
	PlanDate       time.Time
	Notes          string
	Visits         []PlanVisitInput
}

// UpdateDailyPlanInput changes a plan. Nil fields are left as they are. A nil
// Visits leaves the visits untouched, while an empty non-nil slice removes them all.
type UpdateDailyPlanInput struct {
	MerchandiserID *uuid.UUID
	PlanDate       *time.Time
	Notes          *string
	Visits         []PlanVisitInput
}

// VisitProgressInput records progress on a single visit.
type VisitProgressInput struct {
	VisitedAt *time.Time
	Completed *bool
}

// DailyPlanFilter narrows plan listings.
type DailyPlanFilter struct {
	MerchandiserID *uuid.UUID
	PlanDate       *time.Time
}

// DailyPlanUsecase is the daily-plan editor: visit lists go through
// reconciliation keyed by visit order and store.
type DailyPlanUsecase interface {
	CreatePlan(ctx context.Context, actor Actor, input CreateDailyPlanInput) (*entity.DailyPlan, error)
	UpdatePlan(ctx context.Context, actor Actor, id uuid.UUID, input UpdateDailyPlanInput) (*entity.DailyPlan, error)
	GetPlan(ctx context.Context, actor Actor, id uuid.UUID) (*entity.DailyPlan, error)
	ListPlans(ctx context.Context, actor Actor, filter DailyPlanFilter) ([]*entity.DailyPlan, error)
	DeletePlan(ctx context.Context, actor Actor, id uuid.UUID) error
	UpdateVisitProgress(ctx context.Context, actor Actor, planID, visitID uuid.UUID, input VisitProgressInput) (*entity.PlanVisit, error)
}
