package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/commerce/internal/health"
	"github.com/vladislavdragonenkov/commerce/internal/storage/memory"
	"github.com/vladislavdragonenkov/commerce/internal/storage/postgres"
)

// runtimeDeps — набор хранилищ, собранный под выбранный драйвер.
type runtimeDeps struct {
	repo            domain.OrderRepository
	productsRepo    domain.ProductRepository
	usersRepo       domain.UserRepository
	outboxRepo      domain.OutboxRepository
	timelineRepo    domain.TimelineRepository
	idempotencyRepo domain.IdempotencyRepository

	storageChecker healthcheck.Checker
	closeFn        func() error
}

// initRuntimeDependencies инициализирует хранилища согласно конфигурации.
// Для postgres дополнительно проверяется доступность базы и, если включено,
// применяются миграции.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (runtimeDeps, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	switch cfg.StorageDriver {
	case StorageDriverMemory, "":
		products := memory.NewProductRepository()
		deps := runtimeDeps{
			repo:            memory.NewOrderRepository(products),
			productsRepo:    products,
			usersRepo:       memory.NewUserRepository(),
			outboxRepo:      memory.NewOutboxRepository(),
			timelineRepo:    memory.NewTimelineRepository(),
			idempotencyRepo: memory.NewIdempotencyRepository(),
			storageChecker: healthcheck.NewSimpleChecker("storage", func() error {
				return nil
			}),
		}
		logger.Info("хранилище инициализировано в памяти")
		return deps, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return runtimeDeps{}, fmt.Errorf("postgres storage driver requires a DSN")
		}

		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return runtimeDeps{}, fmt.Errorf("init postgres storage: %w", err)
		}

		// Пул соединений отражается в /metrics как go_sql_* по базе "commerce".
		if err := prometheus.Register(collectors.NewDBStatsCollector(store.DB(), "commerce")); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				_ = store.Close()
				return runtimeDeps{}, fmt.Errorf("register db stats collector: %w", err)
			}
		}

		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return runtimeDeps{}, fmt.Errorf("apply postgres migrations: %w", err)
			}
			logger.Info("postgres миграции применены")
		}

		deps := runtimeDeps{
			repo:            postgres.NewOrderRepository(store),
			productsRepo:    postgres.NewProductRepository(store),
			usersRepo:       postgres.NewUserRepository(store),
			outboxRepo:      postgres.NewOutboxRepository(store),
			timelineRepo:    postgres.NewTimelineRepository(store),
			idempotencyRepo: postgres.NewIdempotencyRepository(store),
			storageChecker: healthcheck.NewSimpleChecker("storage", func() error {
				return store.Ping(context.Background())
			}),
			closeFn: store.Close,
		}
		logger.Info("подключение к postgres установлено")
		return deps, nil

	default:
		return runtimeDeps{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
