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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	audit       *auditTrail
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		audit:       newAuditTrail(params.Publisher, params.Logger),
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) CreateProduct(ctx context.Context, actor usecase.Actor, input usecase.ProductInput) (*entity.Product, error) {
	if !actor.IsManager() {
		return nil, domainerrors.ErrForbidden
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
	}

	var logEntry *entity.AuditLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().Create(ctx, product); err != nil {
			return err
		}

		logEntry = newAuditLog(actor, entity.AuditProductCreated, productDetails(product))

		return repoFactory.NewAuditLogRepository().Create(ctx, logEntry)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err))

		return nil, txError(err, "failed to create product")
	}

	srv.audit.publish(ctx, logEntry)

	return product, nil
}

func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return srv.productRepo.FindByID(ctx, id)
}

func (srv *productService) ListProducts(ctx context.Context, search string) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct changes the catalogue price only; existing order items keep theirs.
func (srv *productService) UpdateProduct(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	if !actor.IsManager() {
		return nil, domainerrors.ErrForbidden
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var product *entity.Product
	var logEntry *entity.AuditLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		products := repoFactory.NewProductRepository()

		current, err := products.FindByID(ctx, id)
		if err != nil {
			return err
		}

		current.Name = strings.TrimSpace(input.Name)
		current.Description = input.Description
		current.Price = input.Price
		if err := products.Update(ctx, current); err != nil {
			return err
		}
		product = current

		logEntry = newAuditLog(actor, entity.AuditProductUpdated, productDetails(product))

		return repoFactory.NewAuditLogRepository().Create(ctx, logEntry)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("error", err), slog.Any("product_id", id))

		return nil, txError(err, "failed to update product")
	}

	srv.audit.publish(ctx, logEntry)

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if !actor.IsManager() {
		return domainerrors.ErrForbidden
	}

	var logEntry *entity.AuditLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		products := repoFactory.NewProductRepository()

		product, err := products.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := products.Delete(ctx, id); err != nil {
			return err
		}

		logEntry = newAuditLog(actor, entity.AuditProductDeleted, map[string]any{
			"product_id": id.String(),
			"name":       product.Name,
		})

		return repoFactory.NewAuditLogRepository().Create(ctx, logEntry)
	})
	if err != nil {
		return txError(err, "failed to delete product")
	}

	srv.audit.publish(ctx, logEntry)

	return nil
}

func validateProductInput(input usecase.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Price.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	return nil
}

func productDetails(product *entity.Product) map[string]any {
	return map[string]any{
		"product_id": product.ID.String(),
		"name":       product.Name,
		"price":      product.Price.StringFixed(2),
	}
}
