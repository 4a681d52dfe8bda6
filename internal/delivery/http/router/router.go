// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"notifier/config"
	"notifier/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	DispatchHandler     *handler.DispatchHandler
	EventHandler        *handler.EventHandler
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	dispatchHandler     *handler.DispatchHandler
	eventHandler        *handler.EventHandler
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		dispatchHandler:     params.DispatchHandler,
		eventHandler:        params.EventHandler,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Notification record routes
	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.POST("", r.notificationHandler.CreateNotification)
		notificationsGroup.GET("/:accountId", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/:accountId/unread-count", r.notificationHandler.CountUnread)
		notificationsGroup.PUT("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.PUT("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}

	// Device token routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("/token", r.deviceHandler.RegisterToken)
		devicesGroup.POST("/token/verify", r.deviceHandler.VerifyToken)
		devicesGroup.DELETE("/token", r.deviceHandler.RemoveToken)
	}

	// Channel dispatch routes
	dispatchGroup := apiV1.Group("/dispatch")
	{
		dispatchGroup.POST("/push", r.dispatchHandler.DispatchPush)
		dispatchGroup.POST("/email", r.dispatchHandler.DispatchEmail)
	}

	// Account event intake
	apiV1.POST("/events", r.eventHandler.SubmitEvent)
}
