package app

import "time"

// Драйверы хранилища, поддерживаемые приложением.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска приложения.
type Config struct {
	GRPCAddr    string
	MetricsAddr string

	// StorageDriver выбирает хранилище: memory или postgres.
	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool

	// AllowMockIntegrations подменяет identity/catalog-шлюзы чекаута
	// заглушками. Только для демо и нагрузочных прогонов.
	AllowMockIntegrations bool

	// TokenSecret подписывает токены identity-сервиса. TokenPreviousSecret
	// принимается при проверке на время ротации секрета.
	TokenSecret         string
	TokenPreviousSecret string
	TokenTTL            time.Duration

	// Лимит фиксированного окна на клиента (заголовок x-forwarded-for).
	RateLimitMaxRequests int
	RateLimitWindow      time.Duration

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
	OutboxRetryDelay   time.Duration
	// OutboxMaxPending — порог backlog, после которого readiness-проверка
	// считает outbox нездоровым. 0 отключает проверку.
	OutboxMaxPending int

	IdempotencyCleanupInterval  time.Duration
	IdempotencyCleanupBatchSize int
}

// DefaultConfig возвращает рабочие значения по умолчанию.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:                    ":50051",
		MetricsAddr:                 ":9090",
		StorageDriver:               StorageDriverMemory,
		PostgresAutoMigrate:         true,
		TokenTTL:                    24 * time.Hour,
		RateLimitMaxRequests:        100,
		RateLimitWindow:             time.Minute,
		OutboxPollInterval:          time.Second,
		OutboxBatchSize:             100,
		OutboxMaxAttempts:           3,
		OutboxRetryDelay:            50 * time.Millisecond,
		OutboxMaxPending:            1000,
		IdempotencyCleanupInterval:  10 * time.Minute,
		IdempotencyCleanupBatchSize: 500,
	}
}
