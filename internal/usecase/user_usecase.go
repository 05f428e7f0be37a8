package usecase

import (
	"context"

	"rolodex/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

// UpdateUserInput carries a partial profile update. Empty fields are left
// unchanged; the username itself is immutable.
type UpdateUserInput struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"omitempty,max=100"`
}

// UserOutput is the outward representation of a user. The password hash and
// token never leave the service.
type UserOutput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// UserUsecase defines registration and profile operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) error
	GetCurrent(ctx context.Context, user *entity.User) (*UserOutput, error)
	UpdateCurrent(ctx context.Context, user *entity.User, input *UpdateUserInput) (*UserOutput, error)
}
