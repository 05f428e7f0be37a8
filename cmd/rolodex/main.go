package main

import (
	"context"
	"log/slog"
	"os"

	"rolodex/config"
	"rolodex/internal/delivery"
	"rolodex/internal/delivery/http"
	"rolodex/internal/delivery/http/middleware"
	"rolodex/internal/delivery/http/router/handler"
	"rolodex/internal/domain/repository"
	"rolodex/internal/infra/auth"
	logs "rolodex/internal/infra/log"
	"rolodex/internal/infra/persistence/memory"
	"rolodex/internal/infra/persistence/postgres"
	"rolodex/internal/infra/validation"
	"rolodex/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		memory.New,
	)
}

// The repository providers fall back to the in-memory store when no
// postgres block is configured; postgres.New returns a nil handle in
// that case.
func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newUserRepository,
			newContactRepository,
			newTransactionManager,
		),
	)
}

func newUserRepository(db *gorm.DB, store *memory.Store) repository.UserRepository {
	if db == nil {
		return memory.NewUserRepository(store)
	}

	return postgres.NewUserRepository(db)
}

func newContactRepository(db *gorm.DB, store *memory.Store) repository.ContactRepository {
	if db == nil {
		return memory.NewContactRepository(store)
	}

	return postgres.NewContactRepository(db)
}

func newTransactionManager(db *gorm.DB, store *memory.Store) repository.TransactionManager {
	if db == nil {
		return memory.NewTransactionManager(store)
	}

	return postgres.NewTransactionManager(db)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewUUIDTokenSource,
			validation.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewContactHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
