package impl

import (
	"context"
	"testing"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	mockRepo "github.com/Yakorrr/merchandising-management-system/internal/mocks/repository"
	mockSvc "github.com/Yakorrr/merchandising-management-system/internal/mocks/service"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var managerActor = usecase.Actor{UserID: uuid.New(), Role: entity.RoleManager}

// txMocks runs every transaction body against mock repositories.
type txMocks struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	auditRepo *mockRepo.MockAuditLogRepository
	publisher *mockSvc.MockEventPublisher
}

func newTxMocks(t *testing.T) txMocks {
	m := txMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		auditRepo: mockRepo.NewMockAuditLogRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Maybe()
	m.factory.EXPECT().NewAuditLogRepository().Return(m.auditRepo).Maybe()

	return m
}

func TestStoreService_CreateStore(t *testing.T) {
	m := newTxMocks(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	srv := NewStoreService(StoreServiceParams{TxManager: m.txManager, StoreRepo: storeRepo, Publisher: m.publisher, Logger: newDiscardLogger()})

	txStores := mockRepo.NewMockStoreRepository(t)
	m.factory.EXPECT().NewStoreRepository().Return(txStores)
	txStores.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(s *entity.Store) bool { return s.Name == "Alpha" && s.ID != uuid.Nil })).
		Return(nil)
	m.auditRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(log *entity.AuditLog) bool {
		return log.Action == entity.AuditStoreCreated && log.Details["name"] == "Alpha"
	})).Return(nil)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	lat, lng := 50.45, 30.52
	store, err := srv.CreateStore(context.Background(), managerActor, usecase.StoreInput{
		Name: " Alpha ", Address: "1 Main St", Latitude: &lat, Longitude: &lng,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alpha", store.Name)
	assert.True(t, store.HasLocation())
}

func TestStoreService_RejectsInvalidInput(t *testing.T) {
	m := newTxMocks(t)
	srv := NewStoreService(StoreServiceParams{TxManager: m.txManager, StoreRepo: mockRepo.NewMockStoreRepository(t), Publisher: m.publisher, Logger: newDiscardLogger()})
	lat, badLng := 50.0, 200.0

	tests := []struct {
		name  string
		actor usecase.Actor
		input usecase.StoreInput
		want  error
	}{
		{"merchandiser", usecase.Actor{Role: entity.RoleMerchandiser}, usecase.StoreInput{Name: "A", Address: "x"}, domainerrors.ErrForbidden},
		{"missing name", managerActor, usecase.StoreInput{Address: "x"}, domainerrors.ErrValidationFailed},
		{"latitude only", managerActor, usecase.StoreInput{Name: "A", Address: "x", Latitude: &lat}, domainerrors.ErrValidationFailed},
		{"longitude out of range", managerActor, usecase.StoreInput{Name: "A", Address: "x", Latitude: &lat, Longitude: &badLng}, domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.CreateStore(context.Background(), tt.actor, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStoreService_DeleteStore_InUse(t *testing.T) {
	m := newTxMocks(t)
	srv := NewStoreService(StoreServiceParams{TxManager: m.txManager, StoreRepo: mockRepo.NewMockStoreRepository(t), Publisher: m.publisher, Logger: newDiscardLogger()})
	id := uuid.New()

	txStores := mockRepo.NewMockStoreRepository(t)
	m.factory.EXPECT().NewStoreRepository().Return(txStores)
	txStores.EXPECT().FindByID(mock.Anything, id).Return(&entity.Store{ID: id, Name: "Alpha"}, nil)
	txStores.EXPECT().Delete(mock.Anything, id).Return(domainerrors.ErrReferencedResource.WithDetails("store is referenced"))

	err := srv.DeleteStore(context.Background(), managerActor, id)
	assert.ErrorIs(t, err, domainerrors.ErrReferencedResource)
}

func TestProductService_UpdateProduct(t *testing.T) {
	m := newTxMocks(t)
	srv := NewProductService(ProductServiceParams{TxManager: m.txManager, ProductRepo: mockRepo.NewMockProductRepository(t), Publisher: m.publisher, Logger: newDiscardLogger()})
	id := uuid.New()

	txProducts := mockRepo.NewMockProductRepository(t)
	m.factory.EXPECT().NewProductRepository().Return(txProducts)
	txProducts.EXPECT().FindByID(mock.Anything, id).Return(&entity.Product{ID: id, Name: "Widget", Price: decimal.NewFromInt(10)}, nil)
	txProducts.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(p *entity.Product) bool { return p.Price.Equal(decimal.RequireFromString("12.50")) })).
		Return(nil)
	m.auditRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(log *entity.AuditLog) bool {
		return log.Action == entity.AuditProductUpdated && log.Details["price"] == "12.50"
	})).Return(nil)
	m.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil)

	product, err := srv.UpdateProduct(context.Background(), managerActor, id, usecase.ProductInput{Name: "Widget", Price: decimal.RequireFromString("12.50")})
	require.NoError(t, err)
	assert.Equal(t, "12.50", product.Price.StringFixed(2))
}

func TestProductService_RejectsNegativePrice(t *testing.T) {
	m := newTxMocks(t)
	srv := NewProductService(ProductServiceParams{TxManager: m.txManager, ProductRepo: mockRepo.NewMockProductRepository(t), Publisher: m.publisher, Logger: newDiscardLogger()})

	_, err := srv.CreateProduct(context.Background(), managerActor, usecase.ProductInput{Name: "Widget", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuditLogService_ListLogs(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	srv := NewAuditLogService(auditRepo)
	userID := uuid.New()
	logs := []*entity.AuditLog{{ID: uuid.New(), Action: entity.AuditOrderCreated}}

	auditRepo.EXPECT().
		List(mock.Anything, repository.AuditLogFilter{UserID: &userID, Action: "ORDER_CREATED", Limit: 10}).
		Return(logs, nil)

	got, err := srv.ListLogs(context.Background(), usecase.AuditLogFilter{UserID: &userID, Action: "ORDER_CREATED", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, logs, got)
}
