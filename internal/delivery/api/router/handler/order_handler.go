package handler

import (
	"log/slog"
	"net/http"

	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api/middleware"
	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api/response"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves orders and their items.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one entry of the submitted item list. An entry with id updates that item.
type OrderItemRequest struct {
	ID           *uuid.UUID       `json:"id"`
	Product      EntityRef        `json:"product"`
	Quantity     int              `json:"quantity"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
}

// CreateOrderRequest represents the order create body.
type CreateOrderRequest struct {
	Store        EntityRef          `json:"store"`
	Merchandiser *EntityRef         `json:"merchandiser"`
	OrderDate    *Date              `json:"order_date"`
	Status       entity.OrderStatus `json:"status"`
	Items        []OrderItemRequest `json:"items"`
}

// UpdateOrderRequest represents the order update body. A missing items field leaves items untouched.
type UpdateOrderRequest struct {
	Store        *EntityRef          `json:"store"`
	Merchandiser *EntityRef          `json:"merchandiser"`
	OrderDate    *Date               `json:"order_date"`
	Status       *entity.OrderStatus `json:"status"`
	Items        []OrderItemRequest  `json:"items"`
}

func orderItemInputs(items []OrderItemRequest) []usecase.OrderItemInput {
	if items == nil {
		return nil
	}

	inputs := make([]usecase.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, usecase.OrderItemInput{
			ID:           item.ID,
			ProductID:    item.Product.ID,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit,
		})
	}

	return inputs
}

// ListOrders lists orders visible to the caller.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	storeID, ok := queryID(c, "store_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store_id")
	}

	merchandiserID, ok := queryID(c, "merchandiser_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchandiser_id")
	}

	status := entity.OrderStatus(c.QueryParam("status"))
	if status != "" && !status.IsValid() {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid status")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), actor, usecase.OrderFilter{
		MerchandiserID: merchandiserID,
		StoreID:        storeID,
		Status:         status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one order with its items.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CreateOrder creates an order together with its items.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), actor, usecase.CreateOrderInput{
		StoreID:        req.Store.ID,
		MerchandiserID: req.Merchandiser.idPtr(),
		OrderDate:      req.OrderDate.timePtr(),
		Status:         req.Status,
		Items:          orderItemInputs(req.Items),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// UpdateOrder updates the order header and reconciles its items.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), actor, id, usecase.UpdateOrderInput{
		StoreID:        req.Store.idPtr(),
		MerchandiserID: req.Merchandiser.idPtr(),
		OrderDate:      req.OrderDate.timePtr(),
		Status:         req.Status,
		Items:          orderItemInputs(req.Items),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// DeleteOrder removes an order and its items.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
