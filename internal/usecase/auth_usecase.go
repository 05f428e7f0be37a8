// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"rolodex/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// TokenOutput returns the minted session token after a successful login.
// ExpiredAt is milliseconds since the Unix epoch.
type TokenOutput struct {
	Token     string `json:"token"`
	ExpiredAt int64  `json:"expiredAt"`
}

// AuthUsecase defines the authentication operations: credential verification
// with token issuance, token resolution for protected operations, and
// logout.
type AuthUsecase interface {
	// Login verifies the credentials and mints a fresh opaque token with a
	// fixed validity window, overwriting any previous session.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// Resolve maps a presented token to its owning user. A missing, unknown
	// or expired token yields ErrUnauthorized. Expiry is detected lazily;
	// the expired row is left untouched.
	Resolve(ctx context.Context, token string) (*entity.User, error)

	// Logout clears the user's session token. Logging out an already
	// logged-out user is a no-op success.
	Logout(ctx context.Context, user *entity.User) error
}
