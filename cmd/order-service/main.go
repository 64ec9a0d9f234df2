package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce/internal/app"
)

// Переменные окружения, которыми переопределяется конфигурация.
const (
	envGRPCAddr                    = "COMMERCE_GRPC_ADDR"
	envMetricsAddr                 = "COMMERCE_METRICS_ADDR"
	envStorageDriver               = "COMMERCE_STORAGE_DRIVER"
	envPostgresDSN                 = "COMMERCE_POSTGRES_DSN"
	envPostgresAutoMigrate         = "COMMERCE_POSTGRES_AUTO_MIGRATE"
	envAllowMockIntegrations       = "COMMERCE_ALLOW_MOCK_INTEGRATIONS"
	envTokenSecret                 = "COMMERCE_TOKEN_SECRET"
	envTokenPreviousSecret         = "COMMERCE_TOKEN_SECRET_PREVIOUS"
	envTokenTTL                    = "COMMERCE_TOKEN_TTL"
	envRateLimitMaxRequests        = "COMMERCE_RATELIMIT_MAX_REQUESTS"
	envRateLimitWindow             = "COMMERCE_RATELIMIT_WINDOW"
	envOutboxPollInterval          = "COMMERCE_OUTBOX_POLL_INTERVAL"
	envOutboxBatchSize             = "COMMERCE_OUTBOX_BATCH_SIZE"
	envOutboxMaxAttempts           = "COMMERCE_OUTBOX_MAX_ATTEMPTS"
	envOutboxRetryDelay            = "COMMERCE_OUTBOX_RETRY_DELAY"
	envOutboxMaxPending            = "COMMERCE_OUTBOX_MAX_PENDING"
	envIdempotencyCleanupInterval  = "COMMERCE_IDEMPOTENCY_CLEANUP_INTERVAL"
	envIdempotencyCleanupBatchSize = "COMMERCE_IDEMPOTENCY_CLEANUP_BATCH_SIZE"
)

// envLookup абстрагирует os.LookupEnv для тестов.
type envLookup func(key string) (string, bool)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

// readConfigFromEnv формирует конфигурацию из переменных окружения.
// Невалидные значения не прерывают запуск: поле остаётся со значением
// по умолчанию, а предупреждение попадает в список warnings.
func readConfigFromEnv(lookup envLookup) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string

	warn := func(key, value string, err error) {
		warnings = append(warnings, fmt.Sprintf("%s=%q игнорируется: %v", key, value, err))
	}

	if v, ok := lookup(envGRPCAddr); ok && strings.TrimSpace(v) != "" {
		cfg.GRPCAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envMetricsAddr); ok && strings.TrimSpace(v) != "" {
		cfg.MetricsAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envStorageDriver); ok && strings.TrimSpace(v) != "" {
		cfg.StorageDriver = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(envPostgresDSN); ok && strings.TrimSpace(v) != "" {
		cfg.PostgresDSN = strings.TrimSpace(v)
	}
	if v, ok := lookup(envPostgresAutoMigrate); ok {
		if parsed, err := parseBool(v); err != nil {
			warn(envPostgresAutoMigrate, v, err)
		} else {
			cfg.PostgresAutoMigrate = parsed
		}
	}
	if v, ok := lookup(envAllowMockIntegrations); ok {
		if parsed, err := parseBool(v); err != nil {
			warn(envAllowMockIntegrations, v, err)
		} else {
			cfg.AllowMockIntegrations = parsed
		}
	}
	if v, ok := lookup(envTokenSecret); ok && strings.TrimSpace(v) != "" {
		cfg.TokenSecret = strings.TrimSpace(v)
	}
	if v, ok := lookup(envTokenPreviousSecret); ok && strings.TrimSpace(v) != "" {
		cfg.TokenPreviousSecret = strings.TrimSpace(v)
	}
	if v, ok := lookup(envTokenTTL); ok {
		if parsed, err := parseDuration(v, func(d time.Duration) bool { return d > 0 }, "must be > 0"); err != nil {
			warn(envTokenTTL, v, err)
		} else {
			cfg.TokenTTL = parsed
		}
	}
	if v, ok := lookup(envRateLimitMaxRequests); ok {
		if parsed, err := parseInt(v, func(n int) bool { return n > 0 }, "must be > 0"); err != nil {
			warn(envRateLimitMaxRequests, v, err)
		} else {
			cfg.RateLimitMaxRequests = parsed
		}
	}
	if v, ok := lookup(envRateLimitWindow); ok {
		if parsed, err := parseDuration(v, func(d time.Duration) bool { return d > 0 }, "must be > 0"); err != nil {
			warn(envRateLimitWindow, v, err)
		} else {
			cfg.RateLimitWindow = parsed
		}
	}
	if v, ok := lookup(envOutboxPollInterval); ok {
		if parsed, err := parseDuration(v, func(d time.Duration) bool { return d > 0 }, "must be > 0"); err != nil {
			warn(envOutboxPollInterval, v, err)
		} else {
			cfg.OutboxPollInterval = parsed
		}
	}
	if v, ok := lookup(envOutboxBatchSize); ok {
		if parsed, err := parseInt(v, func(n int) bool { return n > 0 }, "must be > 0"); err != nil {
			warn(envOutboxBatchSize, v, err)
		} else {
			cfg.OutboxBatchSize = parsed
		}
	}
	if v, ok := lookup(envOutboxMaxAttempts); ok {
		if parsed, err := parseInt(v, func(n int) bool { return n > 0 }, "must be > 0"); err != nil {
			warn(envOutboxMaxAttempts, v, err)
		} else {
			cfg.OutboxMaxAttempts = parsed
		}
	}
	if v, ok := lookup(envOutboxRetryDelay); ok {
		if parsed, err := parseDuration(v, func(d time.Duration) bool { return d >= 0 }, "must be >= 0"); err != nil {
			warn(envOutboxRetryDelay, v, err)
		} else {
			cfg.OutboxRetryDelay = parsed
		}
	}
	if v, ok := lookup(envOutboxMaxPending); ok {
		if parsed, err := parseInt(v, func(n int) bool { return n >= 0 }, "must be >= 0"); err != nil {
			warn(envOutboxMaxPending, v, err)
		} else {
			cfg.OutboxMaxPending = parsed
		}
	}
	if v, ok := lookup(envIdempotencyCleanupInterval); ok {
		if parsed, err := parseDuration(v, func(d time.Duration) bool { return d > 0 }, "must be > 0"); err != nil {
			warn(envIdempotencyCleanupInterval, v, err)
		} else {
			cfg.IdempotencyCleanupInterval = parsed
		}
	}
	if v, ok := lookup(envIdempotencyCleanupBatchSize); ok {
		if parsed, err := parseInt(v, func(n int) bool { return n > 0 }, "must be > 0"); err != nil {
			warn(envIdempotencyCleanupBatchSize, v, err)
		} else {
			cfg.IdempotencyCleanupBatchSize = parsed
		}
	}

	return cfg, warnings
}

// parseBool принимает true/yes/on/1 и false/no/off/0 без учёта регистра.
func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q", value)
	}
}

func parseInt(value string, valid func(int) bool, constraint string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", value)
	}
	if !valid(parsed) {
		return 0, fmt.Errorf("value %d %s", parsed, constraint)
	}
	return parsed, nil
}

func parseDuration(value string, valid func(time.Duration) bool, constraint string) (time.Duration, error) {
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	if !valid(parsed) {
		return 0, fmt.Errorf("value %s %s", parsed, constraint)
	}
	return parsed, nil
}

func main() {
	setupLogger()

	cfg, warnings := readConfigFromEnv(os.LookupEnv)
	for _, warning := range warnings {
		log.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"grpc_addr":    cfg.GRPCAddr,
		"metrics_addr": cfg.MetricsAddr,
		"storage":      cfg.StorageDriver,
	}).Info("запускаем commerce-сервисы")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("сервисы остановлены")
}
