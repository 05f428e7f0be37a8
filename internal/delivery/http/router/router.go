// Package router contains routing setup for the HTTP delivery.
package router

import (
	"rolodex/internal/delivery/http/middleware"
	"rolodex/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", r.authHandler.Login)
	api.POST("/users/register", r.userHandler.Register)

	// Routes that require a valid session token
	authGroup := api.Group("/auth", r.authMiddleware.Authenticate)
	{
		authGroup.DELETE("/logout", r.authHandler.Logout)
	}

	userGroup := api.Group("/users", r.authMiddleware.Authenticate)
	{
		userGroup.GET("/current", r.userHandler.GetCurrent)
		userGroup.PATCH("/current", r.userHandler.UpdateCurrent)
	}

	contactGroup := api.Group("/contacts", r.authMiddleware.Authenticate)
	{
		contactGroup.POST("", r.contactHandler.Create)
		contactGroup.GET("", r.contactHandler.Search)
		contactGroup.GET("/:contactId", r.contactHandler.Get)
		contactGroup.PUT("/:contactId", r.contactHandler.Update)
		contactGroup.DELETE("/:contactId", r.contactHandler.Delete)
	}
}
