// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"rolodex/internal/delivery/http/middleware"
	"rolodex/internal/delivery/http/response"
	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// currentUser retrieves the user resolved by the auth middleware. It only
// fails when a route was registered without the middleware, which is a
// wiring bug rather than a client error.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(middleware.ContextKeyUser).(*entity.User)
	if !ok || user == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
