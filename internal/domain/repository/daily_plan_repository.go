package repository

import (
	"context"
	"time"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

// DailyPlanFilter narrows plan listings. Zero values match everything.
type DailyPlanFilter struct {
	MerchandiserID *uuid.UUID
	PlanDate       *time.Time
}

// DailyPlanRepository persists daily plans and their visits. Visit methods are
// always scoped by the owning plan.
type DailyPlanRepository interface {
	// CreatePlan persists the plan header only; Visits are ignored.
	CreatePlan(ctx context.Context, plan *entity.DailyPlan) error

	// FindPlanByID loads the plan with its visits ordered by visit order.
	FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.DailyPlan, error)

	// LockPlanByID loads the plan header and holds a row lock until the
	// surrounding transaction ends.
	LockPlanByID(ctx context.Context, id uuid.UUID) (*entity.DailyPlan, error)

	ListPlans(ctx context.Context, filter DailyPlanFilter) ([]*entity.DailyPlan, error)

	// UpdatePlan writes the header fields (merchandiser, date, notes).
	UpdatePlan(ctx context.Context, plan *entity.DailyPlan) error

	// DeletePlan removes the plan and its visits.
	DeletePlan(ctx context.Context, id uuid.UUID) error

	ListVisits(ctx context.Context, planID uuid.UUID) ([]*entity.PlanVisit, error)
	FindVisit(ctx context.Context, planID, visitID uuid.UUID) (*entity.PlanVisit, error)
	CreateVisit(ctx context.Context, planID uuid.UUID, spec entity.PlanVisitSpec) (*entity.PlanVisit, error)
	UpdateVisit(ctx context.Context, planID, visitID uuid.UUID, spec entity.PlanVisitSpec) (*entity.PlanVisit, error)
	DeleteVisits(ctx context.Context, planID uuid.UUID, visitIDs []uuid.UUID) error

	// ReleaseVisitOrders parks the visit order of the given visits on values no
	// client can submit, freeing their slots under the unique index.
	ReleaseVisitOrders(ctx context.Context, planID uuid.UUID, visitIDs []uuid.UUID) error
}
