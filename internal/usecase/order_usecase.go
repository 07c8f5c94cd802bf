package usecase

import (
	"context"
	"time"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemInput is one entry of a submitted item list. A nil ID creates a new
// item; a nil PricePerUnit takes the product's current price.
type OrderItemInput struct {
	ID           *uuid.UUID
	ProductID    uuid.UUID
	Quantity     int
	PricePerUnit *decimal.Decimal
}

// CreateOrderInput defines a new order with its full item list.
type CreateOrderInput struct {
	StoreID uuid.UUID
	// MerchandiserID is honoured for managers only; merchandisers always own what they create.
	MerchandiserID *uuid.UUID
	OrderDate      *time.Time
	Status         entity.OrderStatus
	Items          []OrderItemInput
}

// UpdateOrderInput changes an order. Nil fields are left as they are. A nil
// Items leaves the items untouched, while an empty non-nil slice removes them all.
type UpdateOrderInput struct {
	StoreID        *uuid.UUID
	MerchandiserID *uuid.UUID
	OrderDate      *time.Time
	Status         *entity.OrderStatus
	Items          []OrderItemInput
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	MerchandiserID *uuid.UUID
	StoreID        *uuid.UUID
	Status         entity.OrderStatus
}

// OrderUsecase is the order editor: every item change goes through reconciliation.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, actor Actor, input CreateOrderInput) (*entity.Order, error)
	UpdateOrder(ctx context.Context, actor Actor, id uuid.UUID, input UpdateOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, actor Actor, filter OrderFilter) ([]*entity.Order, error)
	DeleteOrder(ctx context.Context, actor Actor, id uuid.UUID) error
}
