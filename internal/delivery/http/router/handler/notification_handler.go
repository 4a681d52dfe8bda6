package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"notifier/internal/delivery/http/response"
	"notifier/internal/domain/entity"
	"notifier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification record handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// CreateNotificationRequest represents the request body for creating a notification record
type CreateNotificationRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Category  string `json:"category" validate:"required"`
}

// MarkAllReadRequest represents the request body for marking all notifications read
type MarkAllReadRequest struct {
	AccountID string `json:"account_id" validate:"required"`
}

// CreateNotification handles creating one in-app notification record
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	id, err := h.notificationUC.CreateNotification(c.Request().Context(), req.AccountID, req.Message, entity.Category(req.Category))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// An empty ID means the account's settings denied the write. That is
	// a successful no-op, not an error.
	if id == "" {
		return response.Success(c, http.StatusOK, map[string]any{"skipped": true})
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id})
}

// ListNotifications handles listing an account's notifications, newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	accountID := c.Param("accountId")

	// Zero means "use the configured default"; the usecase owns that value.
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "limit must be an integer")
		}
		limit = parsed
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), accountID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// MarkRead handles marking a single notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id := c.Param("id")

	if err := h.notificationUC.MarkRead(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

// MarkAllRead handles marking every unread notification for an account as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	var req MarkAllReadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), req.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}

// DeleteNotification handles deleting a single notification record
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	id := c.Param("id")

	if err := h.notificationUC.DeleteNotification(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification deleted"})
}

// CountUnread handles fetching an account's unread notification count
func (h *NotificationHandler) CountUnread(c echo.Context) error {
	accountID := c.Param("accountId")

	count, err := h.notificationUC.CountUnread(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count})
}
