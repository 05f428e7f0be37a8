package impl

import (
	"context"
	"log/slog"

	deliverycontext "rolodex/internal/delivery/context"
	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/domain/service"
	"rolodex/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	validator service.RequestValidator
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Validator service.RequestValidator
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The username must be unique and the
// password is hashed before anything touches the store.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) error {
	if err := srv.validator.Validate(input); err != nil {
		return errors.Wrap(err, "invalid registration request")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByUsername(ctx, input.Username)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "username taken")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check username availability")
		}

		newUser := &entity.User{
			Username: input.Username,
			Name:     input.Name,
			Password: hashedPassword,
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Registration completed", slog.String("username", input.Username))

	return nil
}

// GetCurrent returns the profile of the already-resolved principal.
func (srv *userService) GetCurrent(_ context.Context, user *entity.User) (*usecase.UserOutput, error) {
	return toUserOutput(user), nil
}

// UpdateCurrent applies a partial profile update. Empty fields are left
// unchanged; a new password is re-hashed before persisting.
func (srv *userService) UpdateCurrent(ctx context.Context, user *entity.User, input *usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.Wrap(err, "invalid profile update request")
	}

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		current, findErr := userRepo.FindByUsername(ctx, user.Username)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to reload user")
		}

		if input.Name != "" {
			current.Name = input.Name
		}
		if input.Password != "" {
			hashed, hashErr := srv.hasher.Hash(input.Password)
			if hashErr != nil {
				return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
			}
			current.Password = hashed
		}

		if updateErr := userRepo.Update(ctx, current); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update user")
		}
		updated = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.String("username", user.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.String("username", user.Username))

	return toUserOutput(updated), nil
}

func toUserOutput(user *entity.User) *usecase.UserOutput {
	return &usecase.UserOutput{
		Username: user.Username,
		Name:     user.Name,
	}
}
