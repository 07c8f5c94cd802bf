package impl

import (
	"context"
	"strconv"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/reconcile"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"

	"github.com/google/uuid"
)

// orderItemCollection exposes one order's items to the reconciler.
type orderItemCollection struct {
	orderID uuid.UUID
	repo    repository.OrderRepository
}

func (c *orderItemCollection) Children(ctx context.Context) ([]*entity.OrderItem, error) {
	return c.repo.ListOrderItems(ctx, c.orderID)
}

func (c *orderItemCollection) Create(ctx context.Context, spec entity.OrderItemSpec) (*entity.OrderItem, error) {
	return c.repo.CreateOrderItem(ctx, c.orderID, spec)
}

func (c *orderItemCollection) Update(ctx context.Context, item *entity.OrderItem, spec entity.OrderItemSpec) (*entity.OrderItem, error) {
	return c.repo.UpdateOrderItem(ctx, c.orderID, item.ID, spec)
}

func (c *orderItemCollection) Delete(ctx context.Context, items []*entity.OrderItem) error {
	return c.repo.DeleteOrderItems(ctx, c.orderID, childIDs(items))
}

// orderItemKeys enforces nothing: an order may list the same product twice.
var orderItemKeys = reconcile.Keys[*entity.OrderItem, entity.OrderItemSpec]{}

// planVisitCollection exposes one plan's visits to the reconciler. Visit
// orders are unique in the database, so updated visits release theirs first.
type planVisitCollection struct {
	planID uuid.UUID
	repo   repository.DailyPlanRepository
}

func (c *planVisitCollection) Children(ctx context.Context) ([]*entity.PlanVisit, error) {
	return c.repo.ListVisits(ctx, c.planID)
}

func (c *planVisitCollection) Create(ctx context.Context, spec entity.PlanVisitSpec) (*entity.PlanVisit, error) {
	return c.repo.CreateVisit(ctx, c.planID, spec)
}

func (c *planVisitCollection) Update(ctx context.Context, visit *entity.PlanVisit, spec entity.PlanVisitSpec) (*entity.PlanVisit, error) {
	return c.repo.UpdateVisit(ctx, c.planID, visit.ID, spec)
}

func (c *planVisitCollection) Delete(ctx context.Context, visits []*entity.PlanVisit) error {
	return c.repo.DeleteVisits(ctx, c.planID, childIDs(visits))
}

func (c *planVisitCollection) ReleaseKeys(ctx context.Context, visits []*entity.PlanVisit) error {
	return c.repo.ReleaseVisitOrders(ctx, c.planID, childIDs(visits))
}

const (
	keyVisitOrder = "visit_order"
	keyStore      = "store"
)

// planVisitKeys makes both the visit order and the store unique within a plan.
var planVisitKeys = reconcile.Keys[*entity.PlanVisit, entity.PlanVisitSpec]{
	OfPayload: func(spec entity.PlanVisitSpec) []reconcile.Key {
		return visitKeys(spec.VisitOrder, spec.StoreID)
	},
	OfChild: func(visit *entity.PlanVisit) []reconcile.Key {
		return visitKeys(visit.VisitOrder, visit.StoreID)
	},
}

func visitKeys(order int, storeID uuid.UUID) []reconcile.Key {
	return []reconcile.Key{
		{Field: keyVisitOrder, Value: strconv.Itoa(order)},
		{Field: keyStore, Value: storeID.String()},
	}
}

func childIDs[C reconcile.Child](children []C) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(children))
	for _, child := range children {
		ids = append(ids, child.GetID())
	}

	return ids
}
