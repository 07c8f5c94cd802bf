package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "github.com/Yakorrr/merchandising-management-system/internal/delivery/context"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"
	"github.com/Yakorrr/merchandising-management-system/internal/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	txManager repository.TransactionManager
	storeRepo repository.StoreRepository
	audit     *auditTrail
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	StoreRepo repository.StoreRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		txManager: params.TxManager,
		storeRepo: params.StoreRepo,
		audit:     newAuditTrail(params.Publisher, params.Logger),
		logger:    params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *storeService) CreateStore(ctx context.Context, actor usecase.Actor, input usecase.StoreInput) (*entity.Store, error) {
	if !actor.IsManager() {
		return nil, domainerrors.ErrForbidden
	}
	if err := validateStoreInput(input); err != nil {
		return nil, err
	}

	store := &entity.Store{ID: uuid.Must(uuid.NewV7())}
	applyStoreInput(store, input)

	var logEntry *entity.AuditLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewStoreRepository().Create(ctx, store); err != nil {
			return err
		}

		logEntry = newAuditLog(actor, entity.AuditStoreCreated, storeDetails(store))

		return repoFactory.NewAuditLogRepository().Create(ctx, logEntry)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create store", slog.Any("error", err))

		return nil, txError(err, "failed to create store")
	}

	srv.log(ctx).Info("Store created", slog.Any("store_id", store.ID))
	srv.audit.publish(ctx, logEntry)

	return store, nil
}

func (srv *storeService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	return srv.storeRepo.FindByID(ctx, id)
}

func (srv *storeService) ListStores(ctx context.Context, search string) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.List(ctx, repository.StoreFilter{Search: strings.TrimSpace(search)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

func (srv *storeService) UpdateStore(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.StoreInput) (*entity.Store, error) {
	if !actor.IsManager() {
		return nil, domainerrors.ErrForbidden
	}
	if err := validateStoreInput(input); err != nil {
		return nil, err
	}

	var store *entity.Store
	var logEntry *entity.AuditLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stores := repoFactory.NewStoreRepository()

		current, err := stores.FindByID(ctx, id)
		if err != nil {
			return err
		}

		applyStoreInput(current, input)
		if err := stores.Update(ctx, current); err != nil {
			return err
		}
		store = current

		logEntry = newAuditLog(actor, entity.AuditStoreUpdated, storeDetails(store))

		return repoFactory.NewAuditLogRepository().Create(ctx, logEntry)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update store", slog.Any("error", err), slog.Any("store_id", id))

		return nil, txError(err, "failed to update store")
	}

	srv.audit.publish(ctx, logEntry)

	return store, nil
}

// DeleteStore refuses to remove a store that orders or plans still point at.
func (srv *storeService) DeleteStore(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if !actor.IsManager() {
		return domainerrors.ErrForbidden
	}

	var logEntry *entity.AuditLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stores := repoFactory.NewStoreRepository()

		store, err := stores.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := stores.Delete(ctx, id); err != nil {
			return err
		}

		logEntry = newAuditLog(actor, entity.AuditStoreDeleted, map[string]any{
			"store_id": id.String(),
			"name":     store.Name,
		})

		return repoFactory.NewAuditLogRepository().Create(ctx, logEntry)
	})
	if err != nil {
		return txError(err, "failed to delete store")
	}

	srv.audit.publish(ctx, logEntry)

	return nil
}

func validateStoreInput(input usecase.StoreInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if strings.TrimSpace(input.Address) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("address is required")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be provided together")
	}
	if input.Latitude != nil && (*input.Latitude < -90 || *input.Latitude > 90) {
		return domainerrors.ErrValidationFailed.WithDetails("latitude must be between -90 and 90")
	}
	if input.Longitude != nil && (*input.Longitude < -180 || *input.Longitude > 180) {
		return domainerrors.ErrValidationFailed.WithDetails("longitude must be between -180 and 180")
	}

	return nil
}

func applyStoreInput(store *entity.Store, input usecase.StoreInput) {
	store.Name = strings.TrimSpace(input.Name)
	store.Address = strings.TrimSpace(input.Address)
	store.Latitude = input.Latitude
	store.Longitude = input.Longitude
	store.ContactPerson = input.ContactPerson
	store.ContactPhone = input.ContactPhone
}

func storeDetails(store *entity.Store) map[string]any {
	return map[string]any{
		"store_id": store.ID.String(),
		"name":     store.Name,
		"address":  store.Address,
	}
}
