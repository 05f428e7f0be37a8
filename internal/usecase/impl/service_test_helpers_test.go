package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rolodex/config"
	infraauth "rolodex/internal/infra/auth"
	"rolodex/internal/infra/persistence/memory"
	"rolodex/internal/infra/validation"
	"rolodex/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// fixture wires the services against the in-memory store so tests exercise
// the real transaction, validation and hashing paths.
type fixture struct {
	store    *memory.Store
	clock    *fakeClock
	auth     *authService
	users    *userService
	contacts *contactService
}

func newFixture() *fixture {
	store := memory.New()
	clock := &fakeClock{current: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Auth.BcryptCost = bcrypt.MinCost

	hasher := infraauth.NewBcryptHasher(cfg)
	validator := validation.New()
	txManager := memory.NewTransactionManager(store)
	userRepo := memory.NewUserRepository(store)
	contactRepo := memory.NewContactRepository(store)

	return &fixture{
		store: store,
		clock: clock,
		auth: &authService{
			txManager:   txManager,
			userRepo:    userRepo,
			hasher:      hasher,
			tokenSource: infraauth.NewUUIDTokenSource(),
			validator:   validator,
			tokenTTL:    config.DefaultTokenTTL,
			now:         clock.Now,
			logger:      logger,
		},
		users: &userService{
			txManager: txManager,
			userRepo:  userRepo,
			hasher:    hasher,
			validator: validator,
			logger:    logger,
		},
		contacts: &contactService{
			contactRepo: contactRepo,
			validator:   validator,
			logger:      logger,
		},
	}
}

func (f *fixture) register(t *testing.T, username, password, name string) {
	t.Helper()

	err := f.users.Register(context.Background(), &usecase.RegisterUserInput{
		Username: username,
		Password: password,
		Name:     name,
	})
	require.NoError(t, err)
}

func (f *fixture) login(t *testing.T, username, password string) *usecase.TokenOutput {
	t.Helper()

	output, err := f.auth.Login(context.Background(), &usecase.LoginInput{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	require.NotNil(t, output)

	return output
}
