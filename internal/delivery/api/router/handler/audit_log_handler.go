package handler

import (
	"net/http"
	"strconv"

	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api/response"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuditLogHandlerParams holds dependencies for AuditLogHandler, injected by Fx.
type AuditLogHandlerParams struct {
	fx.In

	AuditLogUC usecase.AuditLogUsecase
}

// AuditLogHandler serves the audit trail.
type AuditLogHandler struct {
	auditLogUC usecase.AuditLogUsecase
}

// NewAuditLogHandler is the constructor for AuditLogHandler.
func NewAuditLogHandler(params AuditLogHandlerParams) *AuditLogHandler {
	return &AuditLogHandler{auditLogUC: params.AuditLogUC}
}

// ListLogs lists audit records newest first.
func (h *AuditLogHandler) ListLogs(c echo.Context) error {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user_id")
	}

	filter := usecase.AuditLogFilter{UserID: userID, Action: c.QueryParam("action")}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "limit must be a non-negative integer")
		}
		filter.Limit = limit
	}

	logs, err := h.auditLogUC.ListLogs(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}
