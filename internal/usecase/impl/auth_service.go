// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"rolodex/config"
	deliverycontext "rolodex/internal/delivery/context"
	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/domain/service"
	"rolodex/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	hasher      service.PasswordHasher
	tokenSource service.TokenSource
	validator   service.RequestValidator
	tokenTTL    time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	Hasher      service.PasswordHasher
	TokenSource service.TokenSource
	Validator   service.RequestValidator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	tokenTTL := config.DefaultTokenTTL
	if params.Config != nil && params.Config.Auth.TokenTTL > 0 {
		tokenTTL = params.Config.Auth.TokenTTL
	}

	return &authService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		hasher:      params.Hasher,
		tokenSource: params.TokenSource,
		validator:   params.Validator,
		tokenTTL:    tokenTTL,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and mints a fresh opaque session token.
// A previous token on the same user is silently overwritten, so at most one
// session per user is ever valid.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.Wrap(err, "invalid login request")
	}

	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.loadLoginUser(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token := srv.tokenSource.Generate()
	expiredAt := srv.now().Add(srv.tokenTTL).UnixMilli()

	if err := srv.persistToken(ctx, input.Username, &token, &expiredAt); err != nil {
		srv.log(ctx).Error("Failed to persist session token", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist session token")
	}
	srv.log(ctx).Debug("User logged in", slog.String("username", input.Username))

	return &usecase.TokenOutput{Token: token, ExpiredAt: expiredAt}, nil
}

// Resolve maps a presented token to its owning user. Expired sessions are
// treated identically to unknown tokens. The expired row is deliberately not
// cleared here; it stays until the next login or an explicit logout
// overwrites it.
func (srv *authService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token is missing")
	}

	user, err := srv.userRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "unknown token")
		}

		return nil, errors.Wrap(err, "failed to find user by token")
	}

	if !user.HasValidToken(srv.now()) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token expired")
	}

	return user, nil
}

// Logout clears the session token. Clearing an already empty token is a
// defined no-op success, not an error.
func (srv *authService) Logout(ctx context.Context, user *entity.User) error {
	srv.log(ctx).Debug("Logging out", slog.String("username", user.Username))

	if err := srv.persistToken(ctx, user.Username, nil, nil); err != nil {
		srv.log(ctx).Error("Failed to clear session token", slog.String("username", user.Username), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear session token")
	}
	user.ClearToken()

	return nil
}

// loadLoginUser resolves the username against the primary store in a short
// transaction. An unknown username maps onto the same credential error as a
// wrong password so the response cannot be used to enumerate usernames.
func (srv *authService) loadLoginUser(ctx context.Context, username string) (*entity.User, error) {
	var user *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var findErr error
		user, findErr = userRepo.FindByUsername(ctx, username)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find user by username")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// persistToken writes both token fields atomically. Passing nils clears the
// session; both fields are always set or cleared together.
func (srv *authService) persistToken(ctx context.Context, username string, token *string, expiredAt *int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByUsername(ctx, username)
		if err != nil {
			return errors.Wrap(err, "failed to reload user")
		}

		user.Token = token
		user.TokenExpiredAt = expiredAt

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user token")
		}

		return nil
	})
}
