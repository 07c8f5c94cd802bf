package repository

import (
	"context"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderFilter narrows order listings. Zero values match everything.
type OrderFilter struct {
	MerchandiserID *uuid.UUID
	StoreID        *uuid.UUID
	Status         entity.OrderStatus
}

// OrderRepository persists orders and their items. Item methods are always
// scoped by the owning order so an item of another order is never touched.
type OrderRepository interface {
	// CreateOrder persists the order header only; Items are ignored.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID loads the order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// LockOrderByID loads the order header and holds a row lock until the
	// surrounding transaction ends.
	LockOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	ListOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateOrder writes the header fields (store, date, status).
	UpdateOrder(ctx context.Context, order *entity.Order) error

	UpdateOrderTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal) error

	// DeleteOrder removes the order and its items.
	DeleteOrder(ctx context.Context, id uuid.UUID) error

	ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
	CreateOrderItem(ctx context.Context, orderID uuid.UUID, spec entity.OrderItemSpec) (*entity.OrderItem, error)
	UpdateOrderItem(ctx context.Context, orderID, itemID uuid.UUID, spec entity.OrderItemSpec) (*entity.OrderItem, error)
	DeleteOrderItems(ctx context.Context, orderID uuid.UUID, itemIDs []uuid.UUID) error
}
