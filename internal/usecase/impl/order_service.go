package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "github.com/Yakorrr/merchandising-management-system/internal/delivery/context"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/reconcile"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"
	"github.com/Yakorrr/merchandising-management-system/internal/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const parentOrder = "order"

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	validator *childValidator
	audit     *auditTrail
	observer  service.ReconcileObserver
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	UserRepo    repository.UserRepository
	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	Observer    service.ReconcileObserver `optional:"true"`
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		validator: newChildValidator(params.ProductRepo, params.StoreRepo),
		audit:     newAuditTrail(params.Publisher, params.Logger),
		observer:  params.Observer,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder persists the order and its full item list in one transaction.
func (srv *orderService) CreateOrder(ctx context.Context, actor usecase.Actor, input usecase.CreateOrderInput) (*entity.Order, error) {
	merchandiserID := actor.UserID
	if actor.IsManager() && input.MerchandiserID != nil {
		merchandiserID = *input.MerchandiserID
	}

	status := input.Status
	if status == "" {
		status = entity.OrderStatusCreated
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown order status %q", status))
	}

	orderDate := calendarDate(srv.now())
	if input.OrderDate != nil {
		orderDate = calendarDate(*input.OrderDate)
	}

	if err := srv.validator.Store(ctx, input.StoreID); err != nil {
		return nil, err
	}
	if merchandiserID != actor.UserID {
		if err := srv.ensureMerchandiser(ctx, merchandiserID); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	entries, err := srv.validator.OrderItems(ctx, input.Items)
	if err == nil {
		err = reconcile.CheckTarget(entries, orderItemKeys)
	}
	if err != nil {
		srv.observe(start, nil, err)

		return nil, err
	}

	srv.log(ctx).Info("Creating order",
		slog.Any("store_id", input.StoreID),
		slog.Any("merchandiser_id", merchandiserID),
		slog.Int("items", len(entries)),
	)

	order := &entity.Order{
		ID:             uuid.Must(uuid.NewV7()),
		StoreID:        input.StoreID,
		MerchandiserID: merchandiserID,
		OrderDate:      orderDate,
		Status:         status,
	}

	var logEntry *entity.AuditLog
	result, err := srv.saveItems(ctx, order, entries, true, func(orders repository.OrderRepository) error {
		return orders.CreateOrder(ctx, order)
	}, func(result *reconcile.Result[*entity.OrderItem]) *entity.AuditLog {
		logEntry = newAuditLog(actor, entity.AuditOrderCreated, map[string]any{
			"order_id":     order.ID.String(),
			"store_id":     order.StoreID.String(),
			"items_count":  len(result.Children),
			"total_amount": order.TotalAmount.StringFixed(2),
		})

		return logEntry
	})
	srv.observe(start, result, err)
	if err != nil {
		srv.log(ctx).Error("Failed to create order", slog.Any("error", err))

		return nil, txError(err, "failed to create order")
	}

	srv.audit.publish(ctx, logEntry)

	return srv.orderRepo.FindOrderByID(ctx, order.ID)
}

// UpdateOrder writes header changes, reconciles the items when given and
// recomputes the total, all in one transaction.
func (srv *orderService) UpdateOrder(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateOrderInput) (*entity.Order, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown order status %q", *input.Status))
	}
	if input.StoreID != nil {
		if err := srv.validator.Store(ctx, *input.StoreID); err != nil {
			return nil, err
		}
	}
	if input.MerchandiserID != nil {
		if !actor.IsManager() && *input.MerchandiserID != actor.UserID {
			return nil, domainerrors.ErrForbidden.WithDetails("only managers may reassign orders")
		}
		if err := srv.ensureMerchandiser(ctx, *input.MerchandiserID); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	var entries []reconcile.Entry[entity.OrderItemSpec]
	if input.Items != nil {
		var err error
		entries, err = srv.validator.OrderItems(ctx, input.Items)
		if err == nil {
			err = reconcile.CheckTarget(entries, orderItemKeys)
		}
		if err != nil {
			srv.observe(start, nil, err)

			return nil, err
		}
	}

	srv.log(ctx).Info("Updating order", slog.Any("order_id", id), slog.Bool("replace_items", input.Items != nil))

	order := &entity.Order{ID: id}
	var logEntry *entity.AuditLog
	result, err := srv.saveItems(ctx, order, entries, input.Items != nil, func(orders repository.OrderRepository) error {
		current, err := orders.LockOrderByID(ctx, id)
		if err != nil {
			return err
		}
		if !actor.CanAccess(current.MerchandiserID) {
			return domainerrors.ErrOrderNotFound
		}

		*order = *current
		if input.StoreID != nil {
			order.StoreID = *input.StoreID
		}
		if input.MerchandiserID != nil {
			order.MerchandiserID = *input.MerchandiserID
		}
		if input.OrderDate != nil {
			order.OrderDate = calendarDate(*input.OrderDate)
		}
		if input.Status != nil {
			order.Status = *input.Status
		}

		return orders.UpdateOrder(ctx, order)
	}, func(result *reconcile.Result[*entity.OrderItem]) *entity.AuditLog {
		details := map[string]any{
			"order_id":     order.ID.String(),
			"status":       string(order.Status),
			"total_amount": order.TotalAmount.StringFixed(2),
		}
		if result != nil {
			details["items_created"] = result.Created
			details["items_updated"] = result.Updated
			details["items_deleted"] = result.Deleted
		}
		logEntry = newAuditLog(actor, entity.AuditOrderUpdated, details)

		return logEntry
	})
	if input.Items != nil {
		srv.observe(start, result, err)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to update order", slog.Any("error", err), slog.Any("order_id", id))

		return nil, txError(err, "failed to update order")
	}

	srv.audit.publish(ctx, logEntry)

	return srv.orderRepo.FindOrderByID(ctx, id)
}

// saveItems runs writeHeader, reconciles the items and stores the new total,
// then appends the audit record built by auditFor. With reconcileItems false
// the items and total are left alone and auditFor receives a nil result.
func (srv *orderService) saveItems(
	ctx context.Context,
	order *entity.Order,
	entries []reconcile.Entry[entity.OrderItemSpec],
	reconcileItems bool,
	writeHeader func(repository.OrderRepository) error,
	auditFor func(*reconcile.Result[*entity.OrderItem]) *entity.AuditLog,
) (*reconcile.Result[*entity.OrderItem], error) {
	var result *reconcile.Result[*entity.OrderItem]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orders := repoFactory.NewOrderRepository()

		if err := writeHeader(orders); err != nil {
			return err
		}

		if reconcileItems {
			res, err := reconcile.Apply(ctx, &orderItemCollection{orderID: order.ID, repo: orders}, entries, orderItemKeys)
			if err != nil {
				return err
			}
			result = res

			order.TotalAmount = entity.OrderTotal(res.Children)
			if err := orders.UpdateOrderTotal(ctx, order.ID, order.TotalAmount); err != nil {
				return errors.Wrap(err, "failed to store order total")
			}
		}

		return repoFactory.NewAuditLogRepository().Create(ctx, auditFor(result))
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetOrder returns the order when the actor may see it.
func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(order.MerchandiserID) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ListOrders lists orders; merchandisers only ever see their own.
func (srv *orderService) ListOrders(ctx context.Context, actor usecase.Actor, filter usecase.OrderFilter) ([]*entity.Order, error) {
	repoFilter := repository.OrderFilter{
		MerchandiserID: filter.MerchandiserID,
		StoreID:        filter.StoreID,
		Status:         filter.Status,
	}
	if !actor.IsManager() {
		repoFilter.MerchandiserID = &actor.UserID
	}

	orders, err := srv.orderRepo.ListOrders(ctx, repoFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// DeleteOrder removes an order with its items. Managers only.
func (srv *orderService) DeleteOrder(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if !actor.IsManager() {
		return domainerrors.ErrForbidden
	}

	srv.log(ctx).Info("Deleting order", slog.Any("order_id", id))

	var logEntry *entity.AuditLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orders := repoFactory.NewOrderRepository()

		order, err := orders.LockOrderByID(ctx, id)
		if err != nil {
			return err
		}
		if err := orders.DeleteOrder(ctx, id); err != nil {
			return err
		}

		logEntry = newAuditLog(actor, entity.AuditOrderDeleted, map[string]any{
			"order_id":        id.String(),
			"store_id":        order.StoreID.String(),
			"merchandiser_id": order.MerchandiserID.String(),
		})

		return repoFactory.NewAuditLogRepository().Create(ctx, logEntry)
	})
	if err != nil {
		return txError(err, "failed to delete order")
	}

	srv.audit.publish(ctx, logEntry)

	return nil
}

func (srv *orderService) ensureMerchandiser(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return domainerrors.ErrReferenceNotFound.WithDetails(fmt.Sprintf("merchandiser %s does not exist", id))
		}

		return errors.Wrap(err, "failed to find merchandiser")
	}

	return nil
}

func (srv *orderService) observe(start time.Time, result *reconcile.Result[*entity.OrderItem], err error) {
	if srv.observer == nil {
		return
	}

	outcome := service.ReconcileOutcome{Parent: parentOrder, Elapsed: time.Since(start), Err: err}
	if result != nil {
		outcome.Created, outcome.Updated, outcome.Deleted = result.Created, result.Updated, result.Deleted
	}
	srv.observer.ObserveReconcile(outcome)
}
