package handler

import (
	"log/slog"
	"net/http"

	"notifier/internal/delivery/http/response"
	"notifier/internal/domain/entity"
	"notifier/internal/domain/service"
	"notifier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// EventHandler holds dependencies for account event handlers
type EventHandler struct {
	eventUC usecase.EventUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// SubmitEventRequest represents the request body for raising an account event
type SubmitEventRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	Category  string `json:"category" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Title     string `json:"title"`
	Link      string `json:"link"`

	// Origin device info, present when the caller holds a push token.
	OriginToken      string `json:"origin_token"`
	OriginDeviceType string `json:"origin_device_type" validate:"omitempty,oneof=web mobile desktop"`
	OriginUserAgent  string `json:"origin_user_agent"`
}

// SubmitEvent accepts an account event and hands it to the queue, or
// handles it inline when no queue is configured
func (h *EventHandler) SubmitEvent(c echo.Context) error {
	var req SubmitEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event := &service.AccountEvent{
		AccountID:        req.AccountID,
		Category:         entity.Category(req.Category),
		Message:          req.Message,
		Title:            req.Title,
		Link:             req.Link,
		OriginToken:      req.OriginToken,
		OriginDeviceType: entity.DeviceType(req.OriginDeviceType),
		OriginUserAgent:  req.OriginUserAgent,
	}

	if err := h.eventUC.SubmitAccountEvent(c.Request().Context(), event); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"message": "Event accepted"})
}
