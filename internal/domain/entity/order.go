package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusProcessed OrderStatus = "processed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusProcessed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is placed by a merchandiser for a store. TotalAmount is derived from Items
// and is only ever written together with them.
type Order struct {
	ID             uuid.UUID       `json:"id"`
	StoreID        uuid.UUID       `json:"store"`
	StoreName      string          `json:"store_name"`
	MerchandiserID uuid.UUID       `json:"merchandiser"`
	OrderDate      time.Time       `json:"order_date"`
	Status         OrderStatus     `json:"status"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Items          []*OrderItem    `json:"items"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OrderItem is one product line of an order.
type OrderItem struct {
	ID           uuid.UUID       `json:"id"`
	OrderID      uuid.UUID       `json:"-"`
	ProductID    uuid.UUID       `json:"product"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// GetID returns the item identity.
func (i *OrderItem) GetID() uuid.UUID {
	return i.ID
}

// Subtotal is quantity × unit price.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.PricePerUnit.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderItemSpec is the validated payload of one order line.
type OrderItemSpec struct {
	ProductID    uuid.UUID
	Quantity     int
	PricePerUnit decimal.Decimal
}

// OrderTotal sums the subtotals of items.
func OrderTotal(items []*OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return total
}
