package handler

import (
	"log/slog"
	"net/http"

	"notifier/internal/delivery/http/response"
	"notifier/internal/domain/entity"
	"notifier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-token handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterTokenRequest represents the request body for registering a push token
type RegisterTokenRequest struct {
	AccountID  string `json:"account_id" validate:"required"`
	Token      string `json:"token" validate:"required"`
	DeviceType string `json:"device_type" validate:"omitempty,oneof=web mobile desktop"`
	UserAgent  string `json:"user_agent"`
}

// VerifyTokenRequest represents the request body for verifying a token registration
type VerifyTokenRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	Token     string `json:"token" validate:"required"`
}

// RemoveTokenRequest represents the request body for deactivating a token
type RemoveTokenRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	Token     string `json:"token" validate:"required"`
}

// RegisterToken handles push token registration
func (h *DeviceHandler) RegisterToken(c echo.Context) error {
	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reg := &usecase.TokenRegistration{
		Token:      req.Token,
		DeviceType: entity.DeviceType(req.DeviceType),
		UserAgent:  req.UserAgent,
	}

	if err := h.deviceUC.RegisterDeviceToken(c.Request().Context(), req.AccountID, reg); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Token registered successfully"})
}

// VerifyToken reports whether the token is registered and active
func (h *DeviceHandler) VerifyToken(c echo.Context) error {
	var req VerifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	registered, err := h.deviceUC.VerifyTokenRegistered(c.Request().Context(), req.AccountID, req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"exists": registered})
}

// RemoveToken handles token deactivation
func (h *DeviceHandler) RemoveToken(c echo.Context) error {
	var req RemoveTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.deviceUC.RemoveDeviceToken(c.Request().Context(), req.AccountID, req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Token removed successfully"})
}
