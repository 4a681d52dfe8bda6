package handler

import (
	"log/slog"
	"net/http"

	"notifier/internal/delivery/http/response"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/service"
	"notifier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DispatchHandlerParams holds dependencies for DispatchHandler, injected by Fx.
type DispatchHandlerParams struct {
	fx.In

	PushUC  usecase.PushUsecase
	EmailUC usecase.EmailUsecase
	Logger  *slog.Logger
}

// DispatchHandler holds dependencies for channel dispatch handlers
type DispatchHandler struct {
	pushUC  usecase.PushUsecase
	emailUC usecase.EmailUsecase
	logger  *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		pushUC:  params.PushUC,
		emailUC: params.EmailUC,
		logger:  params.Logger,
	}
}

// DispatchPushRequest represents the request body for a push dispatch.
// Either account_id (gated per-account dispatch) or tokens (broadcast to
// an explicit token set) must be present.
type DispatchPushRequest struct {
	AccountID string            `json:"account_id" validate:"required_without=Tokens"`
	Tokens    []string          `json:"tokens" validate:"required_without=AccountID"`
	Title     string            `json:"title" validate:"required"`
	Body      string            `json:"body" validate:"required"`
	Link      string            `json:"link"`
	Data      map[string]string `json:"data"`
}

// DispatchEmailRequest represents the request body for an email dispatch
type DispatchEmailRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	HTML      string `json:"html" validate:"required"`
}

// DispatchPush handles a per-account push dispatch
func (h *DispatchHandler) DispatchPush(c echo.Context) error {
	var req DispatchPushRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message := &service.PushMessage{
		Title: req.Title,
		Body:  req.Body,
		Link:  req.Link,
		Data:  req.Data,
	}

	// Without an account the caller owns target selection: broadcast to
	// the explicit token set, no per-account gating.
	if req.AccountID == "" {
		report, err := h.pushUC.BroadcastPush(c.Request().Context(), req.Tokens, message)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, report)
	}

	report, err := h.pushUC.DispatchPush(c.Request().Context(), req.AccountID, message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// An account without active endpoints is a 404 on this surface so
	// clients can prompt for re-registration.
	if report.Outcome == usecase.OutcomeNoTokens {
		return response.HandleAppError(c, domainerrors.ErrTokensNotFound)
	}

	return response.Success(c, http.StatusOK, report)
}

// DispatchEmail handles a per-account email dispatch
func (h *DispatchHandler) DispatchEmail(c echo.Context) error {
	var req DispatchEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	report, err := h.emailUC.DispatchEmail(c.Request().Context(), req.AccountID, req.Subject, req.HTML)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
