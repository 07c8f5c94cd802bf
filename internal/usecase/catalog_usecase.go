package usecase

import (
	"context"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoreInput carries the writable store fields. Coordinates come both or neither.
type StoreInput struct {
	Name          string
	Address       string
	Latitude      *float64
	Longitude     *float64
	ContactPerson string
	ContactPhone  string
}

// StoreUsecase manages stores. Writes are recorded in the audit log.
type StoreUsecase interface {
	CreateStore(ctx context.Context, actor Actor, input StoreInput) (*entity.Store, error)
	GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	ListStores(ctx context.Context, search string) ([]*entity.Store, error)
	UpdateStore(ctx context.Context, actor Actor, id uuid.UUID, input StoreInput) (*entity.Store, error)
	DeleteStore(ctx context.Context, actor Actor, id uuid.UUID) error
}

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// ProductUsecase manages products. Writes are recorded in the audit log.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, actor Actor, input ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, search string) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, actor Actor, id uuid.UUID, input ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, actor Actor, id uuid.UUID) error
}
