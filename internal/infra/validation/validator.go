// Package validation implements the RequestValidator domain service with
// go-playground/validator struct tags.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/service"
	"rolodex/internal/errors"
)

// playgroundValidator validates request DTOs against their `validate` tags.
type playgroundValidator struct {
	validate *validator.Validate
}

// New is the constructor for playgroundValidator.
func New() service.RequestValidator {
	return &playgroundValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the request against its declared constraints. All violated
// constraints are collected into a single ValidationFailed error so the
// caller sees every problem at once.
func (v *playgroundValidator) Validate(request any) error {
	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, describeViolation(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, "; "))
}

func describeViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " must not be blank"
	case "email":
		return fe.Field() + " must be a well-formed email address"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	default:
		return fe.Field() + " failed on the '" + fe.Tag() + "' constraint"
	}
}
