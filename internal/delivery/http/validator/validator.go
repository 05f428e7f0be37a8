// Package validator adapts the request validation service to Echo's
// Validator interface so handlers can call c.Validate directly.
package validator

import (
	"rolodex/internal/domain/service"
	"rolodex/internal/infra/validation"

	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	svc service.RequestValidator
}

// New builds an echo.Validator backed by the shared request validator.
func New() echo.Validator {
	return &echoValidator{svc: validation.New()}
}

func (v *echoValidator) Validate(i any) error {
	return v.svc.Validate(i)
}
