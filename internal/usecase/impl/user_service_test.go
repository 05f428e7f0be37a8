package impl

import (
	"context"
	"testing"

	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_HashesPassword(t *testing.T) {
	f := newFixture()
	f.register(t, "john", "rahasia", "John Doe")

	user, err := f.users.userRepo.FindByUsername(context.Background(), "john")
	require.NoError(t, err)

	assert.Equal(t, "John Doe", user.Name)
	assert.NotEqual(t, "rahasia", user.Password, "plaintext must never be stored")
	assert.True(t, f.users.hasher.Check("rahasia", user.Password))
	assert.Nil(t, user.Token)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	f := newFixture()
	f.register(t, "john", "rahasia", "John Doe")

	err := f.users.Register(context.Background(), &usecase.RegisterUserInput{
		Username: "john",
		Password: "lain",
		Name:     "Imposter",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	// The original account is untouched.
	user, err := f.users.userRepo.FindByUsername(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
	assert.True(t, f.users.hasher.Check("rahasia", user.Password))
}

func TestUserService_Register_ValidationFailure(t *testing.T) {
	f := newFixture()

	err := f.users.Register(context.Background(), &usecase.RegisterUserInput{
		Username: "john",
		Password: "rahasia",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_GetCurrent(t *testing.T) {
	f := newFixture()
	f.register(t, "john", "rahasia", "John Doe")

	user, err := f.users.userRepo.FindByUsername(context.Background(), "john")
	require.NoError(t, err)

	output, err := f.users.GetCurrent(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "john", output.Username)
	assert.Equal(t, "John Doe", output.Name)
}

func TestUserService_UpdateCurrent_NameOnly(t *testing.T) {
	f := newFixture()
	f.register(t, "john", "rahasia", "John Doe")

	ctx := context.Background()
	user, err := f.users.userRepo.FindByUsername(ctx, "john")
	require.NoError(t, err)

	output, err := f.users.UpdateCurrent(ctx, user, &usecase.UpdateUserInput{Name: "Johnny"})
	require.NoError(t, err)
	assert.Equal(t, "Johnny", output.Name)

	stored, err := f.users.userRepo.FindByUsername(ctx, "john")
	require.NoError(t, err)
	assert.Equal(t, "Johnny", stored.Name)
	assert.True(t, f.users.hasher.Check("rahasia", stored.Password), "password stays unchanged")
}

func TestUserService_UpdateCurrent_PasswordRehashed(t *testing.T) {
	f := newFixture()
	f.register(t, "john", "rahasia", "John Doe")

	ctx := context.Background()
	user, err := f.users.userRepo.FindByUsername(ctx, "john")
	require.NoError(t, err)

	_, err = f.users.UpdateCurrent(ctx, user, &usecase.UpdateUserInput{Password: "baru"})
	require.NoError(t, err)

	stored, err := f.users.userRepo.FindByUsername(ctx, "john")
	require.NoError(t, err)
	assert.NotEqual(t, "baru", stored.Password)
	assert.True(t, f.users.hasher.Check("baru", stored.Password))
	assert.False(t, f.users.hasher.Check("rahasia", stored.Password))

	// The new credential works end to end.
	f.login(t, "john", "baru")
}
