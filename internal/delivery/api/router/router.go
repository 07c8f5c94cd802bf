// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api/middleware"
	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api/router/handler"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	CatalogHandler   *handler.CatalogHandler
	OrderHandler     *handler.OrderHandler
	DailyPlanHandler *handler.DailyPlanHandler
	RouteHandler     *handler.RouteHandler
	AuditLogHandler  *handler.AuditLogHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	catalogHandler   *handler.CatalogHandler
	orderHandler     *handler.OrderHandler
	dailyPlanHandler *handler.DailyPlanHandler
	routeHandler     *handler.RouteHandler
	auditLogHandler  *handler.AuditLogHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		catalogHandler:   params.CatalogHandler,
		orderHandler:     params.OrderHandler,
		dailyPlanHandler: params.DailyPlanHandler,
		routeHandler:     params.RouteHandler,
		auditLogHandler:  params.AuditLogHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	managerOnly := r.authMiddleware.RequireRole(entity.RoleManager)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	storesGroup := apiV1.Group("/stores")
	{
		storesGroup.GET("", r.catalogHandler.ListStores)
		storesGroup.GET("/:id", r.catalogHandler.GetStore)
		storesGroup.POST("", r.catalogHandler.CreateStore, managerOnly)
		storesGroup.PUT("/:id", r.catalogHandler.UpdateStore, managerOnly)
		storesGroup.DELETE("/:id", r.catalogHandler.DeleteStore, managerOnly)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
		productsGroup.POST("", r.catalogHandler.CreateProduct, managerOnly)
		productsGroup.PUT("/:id", r.catalogHandler.UpdateProduct, managerOnly)
		productsGroup.DELETE("/:id", r.catalogHandler.DeleteProduct, managerOnly)
	}

	// Ownership checks for merchandisers live in the usecase layer
	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PUT("/:id", r.orderHandler.UpdateOrder)
		ordersGroup.DELETE("/:id", r.orderHandler.DeleteOrder, managerOnly)
	}

	plansGroup := apiV1.Group("/daily-plans")
	{
		plansGroup.GET("", r.dailyPlanHandler.ListPlans)
		plansGroup.GET("/:id", r.dailyPlanHandler.GetPlan)
		plansGroup.POST("", r.dailyPlanHandler.CreatePlan, managerOnly)
		plansGroup.PUT("/:id", r.dailyPlanHandler.UpdatePlan, managerOnly)
		plansGroup.DELETE("/:id", r.dailyPlanHandler.DeletePlan, managerOnly)
		plansGroup.PATCH("/:id/visits/:visitId", r.dailyPlanHandler.UpdateVisit)
	}

	apiV1.POST("/routes", r.routeHandler.CalculateRoute)
	apiV1.GET("/logs", r.auditLogHandler.ListLogs, managerOnly)
}
