package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements repository.OrderRepository. Every item query is
// filtered by order_id as well as id.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = newID()
	}

	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WithDetails("invalid store or merchandiser reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Store").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }).
		Preload("Items.Product").
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) LockOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Preload("Store").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }).
		Preload("Items.Product")
	if filter.MerchandiserID != nil {
		query = query.Where("merchandiser_id = ?", *filter.MerchandiserID)
	}
	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var orderMs []model.OrderModel
	if err := query.Order("order_date DESC, created_at DESC").Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

func (repo *orderRepository) UpdateOrder(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"store_id":        order.StoreID,
			"merchandiser_id": order.MerchandiserID,
			"order_date":      datatypes.Date(order.OrderDate),
			"status":          string(order.Status),
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrReferenceNotFound.WithDetails("invalid store or merchandiser reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) UpdateOrderTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal) error {
	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("total_amount", total)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order total")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

// DeleteOrder removes the items explicitly before the header so the result
// does not depend on the database cascading.
func (repo *orderRepository) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id).Delete(&model.OrderItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order items")
	}

	result := db.Where("id = ?", id).Delete(&model.OrderModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	var itemMs []model.OrderItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	items := make([]*entity.OrderItem, 0, len(itemMs))
	for i := range itemMs {
		items = append(items, toOrderItemDomain(&itemMs[i]))
	}

	return items, nil
}

func (repo *orderRepository) CreateOrderItem(ctx context.Context, orderID uuid.UUID, spec entity.OrderItemSpec) (*entity.OrderItem, error) {
	itemM := &model.OrderItemModel{
		ID:           newID(),
		OrderID:      orderID,
		ProductID:    spec.ProductID,
		Quantity:     spec.Quantity,
		PricePerUnit: spec.PricePerUnit,
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrReferenceNotFound.WithDetails(fmt.Sprintf("product %s does not exist", spec.ProductID))
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create order item")
	}

	return repo.findItem(ctx, orderID, itemM.ID)
}

func (repo *orderRepository) UpdateOrderItem(ctx context.Context, orderID, itemID uuid.UUID, spec entity.OrderItemSpec) (*entity.OrderItem, error) {
	result := repo.db.WithContext(ctx).Model(&model.OrderItemModel{}).
		Where("id = ? AND order_id = ?", itemID, orderID).
		Updates(map[string]any{
			"product_id":     spec.ProductID,
			"quantity":       spec.Quantity,
			"price_per_unit": spec.PricePerUnit,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, domainerrors.ErrReferenceNotFound.WithDetails(fmt.Sprintf("product %s does not exist", spec.ProductID))
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order item")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrChildNotFound.WithDetails(fmt.Sprintf("item %s does not belong to order %s", itemID, orderID))
	}

	return repo.findItem(ctx, orderID, itemID)
}

func (repo *orderRepository) DeleteOrderItems(ctx context.Context, orderID uuid.UUID, itemIDs []uuid.UUID) error {
	if len(itemIDs) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Where("order_id = ? AND id IN ?", orderID, itemIDs).
		Delete(&model.OrderItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order items")
	}

	return nil
}

func (repo *orderRepository) findItem(ctx context.Context, orderID, itemID uuid.UUID) (*entity.OrderItem, error) {
	var itemM model.OrderItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND order_id = ?", itemID, orderID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrChildNotFound.WithDetails(fmt.Sprintf("item %s does not belong to order %s", itemID, orderID))
		}

		return nil, errors.Wrap(err, "failed to load order item")
	}

	return toOrderItemDomain(&itemM), nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:             data.ID,
		StoreID:        data.StoreID,
		MerchandiserID: data.MerchandiserID,
		OrderDate:      dateToTime(data.OrderDate),
		Status:         entity.OrderStatus(data.Status),
		TotalAmount:    data.TotalAmount,
		Items:          make([]*entity.OrderItem, 0, len(data.Items)),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.Store != nil {
		order.StoreName = data.Store.Name
	}
	for i := range data.Items {
		order.Items = append(order.Items, toOrderItemDomain(&data.Items[i]))
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:             data.ID,
		StoreID:        data.StoreID,
		MerchandiserID: data.MerchandiserID,
		OrderDate:      datatypes.Date(data.OrderDate),
		Status:         string(data.Status),
		TotalAmount:    data.TotalAmount,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	item := &entity.OrderItem{
		ID:           data.ID,
		OrderID:      data.OrderID,
		ProductID:    data.ProductID,
		Quantity:     data.Quantity,
		PricePerUnit: data.PricePerUnit,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.Product != nil {
		item.ProductName = data.Product.Name
	}

	return item
}

// dateToTime strips the wall clock down to the calendar date in UTC.
func dateToTime(d datatypes.Date) time.Time {
	t := time.Time(d)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
