package impl

import (
	"context"
	"fmt"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/reconcile"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	"github.com/Yakorrr/merchandising-management-system/internal/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
)

// childValidator turns submitted child entries into reconcile entries. It
// checks numeric fields first, then resolves every referenced product or
// store in one lookup. It never writes.
type childValidator struct {
	products repository.ProductRepository
	stores   repository.StoreRepository
}

func newChildValidator(products repository.ProductRepository, stores repository.StoreRepository) *childValidator {
	return &childValidator{products: products, stores: stores}
}

// OrderItems validates items and fills in the product price where none was given.
func (v *childValidator) OrderItems(ctx context.Context, items []usecase.OrderItemInput) ([]reconcile.Entry[entity.OrderItemSpec], error) {
	ids := make([]uuid.UUID, 0, len(items))
	for i, item := range items {
		if item.ProductID == uuid.Nil {
			return nil, domainerrors.ErrInvalidPayload.WithDetails(fmt.Sprintf("items[%d].product is required", i))
		}
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrInvalidPayload.WithDetails(fmt.Sprintf("items[%d].quantity must be a positive integer, got %d", i, item.Quantity))
		}
		if item.PricePerUnit != nil && item.PricePerUnit.IsNegative() {
			return nil, domainerrors.ErrInvalidPayload.WithDetails(fmt.Sprintf("items[%d].price_per_unit must not be negative, got %s", i, item.PricePerUnit))
		}
		ids = append(ids, item.ProductID)
	}

	products, err := v.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve products")
	}
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	entries := make([]reconcile.Entry[entity.OrderItemSpec], 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, domainerrors.ErrReferenceNotFound.WithDetails(fmt.Sprintf("product %s does not exist", item.ProductID))
		}

		price := product.Price
		if item.PricePerUnit != nil {
			price = *item.PricePerUnit
		}

		entries = append(entries, reconcile.Entry[entity.OrderItemSpec]{
			ID: item.ID,
			Payload: entity.OrderItemSpec{
				ProductID:    product.ID,
				Quantity:     item.Quantity,
				PricePerUnit: price,
			},
		})
	}

	return entries, nil
}

// PlanVisits validates visits and resolves their stores.
func (v *childValidator) PlanVisits(ctx context.Context, visits []usecase.PlanVisitInput) ([]reconcile.Entry[entity.PlanVisitSpec], error) {
	ids := make([]uuid.UUID, 0, len(visits))
	for i, visit := range visits {
		if visit.StoreID == uuid.Nil {
			return nil, domainerrors.ErrInvalidPayload.WithDetails(fmt.Sprintf("stores[%d].store is required", i))
		}
		if visit.VisitOrder <= 0 {
			return nil, domainerrors.ErrInvalidPayload.WithDetails(fmt.Sprintf("stores[%d].visit_order must be a positive integer, got %d", i, visit.VisitOrder))
		}
		ids = append(ids, visit.StoreID)
	}

	stores, err := v.stores.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve stores")
	}
	known := make(map[uuid.UUID]struct{}, len(stores))
	for _, store := range stores {
		known[store.ID] = struct{}{}
	}

	entries := make([]reconcile.Entry[entity.PlanVisitSpec], 0, len(visits))
	for _, visit := range visits {
		if _, ok := known[visit.StoreID]; !ok {
			return nil, domainerrors.ErrReferenceNotFound.WithDetails(fmt.Sprintf("store %s does not exist", visit.StoreID))
		}

		entries = append(entries, reconcile.Entry[entity.PlanVisitSpec]{
			ID: visit.ID,
			Payload: entity.PlanVisitSpec{
				StoreID:    visit.StoreID,
				VisitOrder: visit.VisitOrder,
				VisitedAt:  visit.VisitedAt,
				Completed:  visit.Completed,
			},
		})
	}

	return entries, nil
}

// Store confirms that a parent-level store reference exists.
func (v *childValidator) Store(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domainerrors.ErrInvalidPayload.WithDetails("store is required")
	}

	if _, err := v.stores.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrStoreNotFound) {
			return domainerrors.ErrReferenceNotFound.WithDetails(fmt.Sprintf("store %s does not exist", id))
		}

		return errors.Wrap(err, "failed to find store")
	}

	return nil
}
