package repository

import (
	"context"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

// StoreFilter narrows store listings.
type StoreFilter struct {
	// Search matches name or address, case-insensitive.
	Search string
	// WithLocation keeps only stores that have both coordinates.
	WithLocation bool
}

// StoreRepository persists stores.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	// FindByIDs returns the stores that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error)
	List(ctx context.Context, filter StoreFilter) ([]*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
}
