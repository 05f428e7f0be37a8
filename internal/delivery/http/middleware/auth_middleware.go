package middleware

import (
	"rolodex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderXApiToken carries the opaque session token on authenticated requests.
const HeaderXApiToken = "X-API-TOKEN"

// ContextKeyUser is the echo.Context key under which the resolved user is stored.
const ContextKeyUser = "user"

// AuthMiddleware resolves the session token on protected routes.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the X-API-TOKEN header and stores the owning user
// on the context. Missing, unknown and expired tokens all surface as the
// same Unauthorized error.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(HeaderXApiToken)

		user, err := m.authUC.Resolve(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}
