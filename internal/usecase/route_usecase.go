package usecase

import (
	"context"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

// RouteInput lists the stores to visit in the requested order.
type RouteInput struct {
	StoreIDs      []uuid.UUID
	OptimizeOrder bool
}

// RouteUsecase plans multi-stop routes between stores.
type RouteUsecase interface {
	CalculateRoute(ctx context.Context, actor Actor, input RouteInput) (*entity.Route, error)
}
