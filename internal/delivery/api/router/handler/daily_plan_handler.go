package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api/middleware"
	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api/response"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DailyPlanHandlerParams holds dependencies for DailyPlanHandler, injected by Fx.
type DailyPlanHandlerParams struct {
	fx.In

	PlanUC usecase.DailyPlanUsecase
	Logger *slog.Logger
}

// DailyPlanHandler serves daily plans and their store visits.
type DailyPlanHandler struct {
	planUC usecase.DailyPlanUsecase
	logger *slog.Logger
}

// NewDailyPlanHandler is the constructor for DailyPlanHandler.
func NewDailyPlanHandler(params DailyPlanHandlerParams) *DailyPlanHandler {
	return &DailyPlanHandler{
		planUC: params.PlanUC,
		logger: params.Logger,
	}
}

// PlanVisitRequest is one entry of the submitted visit list. An entry with id updates that visit.
type PlanVisitRequest struct {
	ID         *uuid.UUID `json:"id"`
	Store      EntityRef  `json:"store"`
	VisitOrder int        `json:"visit_order"`
	VisitedAt  *time.Time `json:"visited_at"`
	Completed  bool       `json:"completed"`
}

// CreateDailyPlanRequest represents the plan create body.
type CreateDailyPlanRequest struct {
	Merchandiser EntityRef          `json:"merchandiser"`
	PlanDate     *Date              `json:"plan_date"`
	Notes        string             `json:"notes"`
	Visits       []PlanVisitRequest `json:"stores"`
}

// UpdateDailyPlanRequest represents the plan update body. A missing stores field leaves visits untouched.
type UpdateDailyPlanRequest struct {
	Merchandiser *EntityRef         `json:"merchandiser"`
	PlanDate     *Date              `json:"plan_date"`
	Notes        *string            `json:"notes"`
	Visits       []PlanVisitRequest `json:"stores"`
}

// VisitProgressRequest represents the visit progress body.
type VisitProgressRequest struct {
	VisitedAt *time.Time `json:"visited_at"`
	Completed *bool      `json:"completed"`
}

func planVisitInputs(visits []PlanVisitRequest) []usecase.PlanVisitInput {
	if visits == nil {
		return nil
	}

	inputs := make([]usecase.PlanVisitInput, 0, len(visits))
	for _, visit := range visits {
		inputs = append(inputs, usecase.PlanVisitInput{
			ID:         visit.ID,
			StoreID:    visit.Store.ID,
			VisitOrder: visit.VisitOrder,
			VisitedAt:  visit.VisitedAt,
			Completed:  visit.Completed,
		})
	}

	return inputs
}

// ListPlans lists plans visible to the caller.
func (h *DailyPlanHandler) ListPlans(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchandiserID, ok := queryID(c, "merchandiser_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchandiser_id")
	}

	planDate, ok := queryDate(c, "plan_date")
	if !ok {
		return response.BadRequest(c, "VALIDATION_ERROR", "plan_date must be YYYY-MM-DD")
	}

	plans, err := h.planUC.ListPlans(c.Request().Context(), actor, usecase.DailyPlanFilter{
		MerchandiserID: merchandiserID,
		PlanDate:       planDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plans)
}

// GetPlan returns one plan with its visits.
func (h *DailyPlanHandler) GetPlan(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid daily plan ID")
	}

	plan, err := h.planUC.GetPlan(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan)
}

// CreatePlan creates a plan together with its visits.
func (h *DailyPlanHandler) CreatePlan(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateDailyPlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid daily plan input")
	}

	input := usecase.CreateDailyPlanInput{
		MerchandiserID: req.Merchandiser.ID,
		Notes:          req.Notes,
		Visits:         planVisitInputs(req.Visits),
	}
	if req.PlanDate != nil {
		input.PlanDate = req.PlanDate.Time
	}

	plan, err := h.planUC.CreatePlan(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, plan)
}

// UpdatePlan updates the plan header and reconciles its visits.
func (h *DailyPlanHandler) UpdatePlan(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid daily plan ID")
	}

	var req UpdateDailyPlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid daily plan input")
	}

	plan, err := h.planUC.UpdatePlan(c.Request().Context(), actor, id, usecase.UpdateDailyPlanInput{
		MerchandiserID: req.Merchandiser.idPtr(),
		PlanDate:       req.PlanDate.timePtr(),
		Notes:          req.Notes,
		Visits:         planVisitInputs(req.Visits),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan)
}

// DeletePlan removes a plan and its visits.
func (h *DailyPlanHandler) DeletePlan(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid daily plan ID")
	}

	if err := h.planUC.DeletePlan(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// UpdateVisit records progress on a single visit.
func (h *DailyPlanHandler) UpdateVisit(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid daily plan ID")
	}

	visitID, ok := pathID(c, "visitId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid visit ID")
	}

	var req VisitProgressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit input")
	}

	visit, err := h.planUC.UpdateVisitProgress(c.Request().Context(), actor, planID, visitID, usecase.VisitProgressInput{
		VisitedAt: req.VisitedAt,
		Completed: req.Completed,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visit)
}
