package postgres

import (
	"context"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	if store.ID == uuid.Nil {
		store.ID = newID()
	}

	storeM := fromStoreDomain(store)
	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required store information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

func (repo *storeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error) {
	if len(ids) == 0 {
		return []*entity.Store{}, nil
	}

	var storeMs []model.StoreModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&storeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores by ids")
	}

	return toStoreDomainList(storeMs), nil
}

func (repo *storeRepository) List(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	query := repo.db.WithContext(ctx).Model(&model.StoreModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(address) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.WithLocation {
		query = query.Where("latitude IS NOT NULL AND longitude IS NOT NULL")
	}

	var storeMs []model.StoreModel
	if err := query.Order("name ASC").Find(&storeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return toStoreDomainList(storeMs), nil
}

func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	result := repo.db.WithContext(ctx).Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]any{
			"name":           store.Name,
			"address":        store.Address,
			"latitude":       store.Latitude,
			"longitude":      store.Longitude,
			"contact_person": store.ContactPerson,
			"contact_phone":  store.ContactPhone,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrStoreNotFound
	}

	return nil
}

// Delete removes the store. Stores still referenced by orders or plans are refused.
func (repo *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StoreModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrReferencedResource.WithDetails("store is referenced by orders or daily plans")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete store")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrStoreNotFound
	}

	return nil
}

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:            data.ID,
		Name:          data.Name,
		Address:       data.Address,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		ContactPerson: data.ContactPerson,
		ContactPhone:  data.ContactPhone,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toStoreDomainList(data []model.StoreModel) []*entity.Store {
	stores := make([]*entity.Store, 0, len(data))
	for i := range data {
		stores = append(stores, toStoreDomain(&data[i]))
	}

	return stores
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:            data.ID,
		Name:          data.Name,
		Address:       data.Address,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		ContactPerson: data.ContactPerson,
		ContactPhone:  data.ContactPhone,
	}
}
