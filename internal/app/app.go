package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/commerce/internal/health"
	"github.com/vladislavdragonenkov/commerce/internal/interceptor"
	"github.com/vladislavdragonenkov/commerce/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/commerce/internal/metrics"
	"github.com/vladislavdragonenkov/commerce/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/commerce/internal/service/grpc"
	idemcleanup "github.com/vladislavdragonenkov/commerce/internal/service/idempotency"
	"github.com/vladislavdragonenkov/commerce/internal/service/identity"
	"github.com/vladislavdragonenkov/commerce/internal/service/outbox"
	"github.com/vladislavdragonenkov/commerce/internal/service/token"
	"github.com/vladislavdragonenkov/commerce/internal/version"
	commercev1 "github.com/vladislavdragonenkov/commerce/proto/commerce/v1"
)

// devTokenSecret подписывает токены, когда секрет не задан через
// конфигурацию. Применяется только с memory-драйвером; для остальных
// драйверов отсутствие секрета считается ошибкой конфигурации.
const devTokenSecret = "commerce-dev-secret"

// Run поднимает все три gRPC-сервиса поверх общего хранилища, HTTP-сервер
// метрик и фоновые воркеры, после чего блокируется до отмены ctx.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if deps.closeFn != nil {
		defer func() {
			if err := deps.closeFn(); err != nil {
				logger.WithError(err).Warn("failed to close storage")
			}
		}()
	}

	issuer, err := buildTokenIssuer(cfg, logger)
	if err != nil {
		return fmt.Errorf("init token issuer: %w", err)
	}

	// Kafka опционален: без брокера события остаются в outbox.
	kafkaProducer, _ := initKafkaProducer(os.Getenv("KAFKA_BROKERS"), logger)
	defer closeKafka(kafkaProducer, logger)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	// Служебный ключ клиента для самодиала: внутренние вызовы checkout
	// не должны расходовать окно "unknown" внешних анонимных запросов.
	// Ключ случайный на процесс, снаружи его не подобрать.
	loopbackClientKey := "loopback-" + uuid.NewString()

	// Checkout ходит в identity и catalog по сети, даже когда они живут
	// в этом же процессе: шлюзы заменяемы на внешние сервисы без правок
	// оркестратора.
	orchDeps := &Dependencies{
		Repo:            deps.repo,
		Products:        deps.productsRepo,
		Users:           deps.usersRepo,
		OutboxRepo:      deps.outboxRepo,
		TimelineRepo:    deps.timelineRepo,
		IdempotencyRepo: deps.idempotencyRepo,
		Logger:          logger.WithField("layer", "checkout"),
	}
	if cfg.AllowMockIntegrations {
		logger.Warn("включены mock-интеграции identity/catalog: любой пользователь и товар считаются валидными")
		orchDeps.Verifier = identity.NewMockVerifier()
		orchDeps.Gateway = catalog.NewMockGateway()
	} else {
		conn, dialErr := grpc.NewClient(
			loopbackAddr(lis.Addr()),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithUnaryInterceptor(interceptor.UnaryClientKey(loopbackClientKey)),
		)
		if dialErr != nil {
			_ = lis.Close()
			return fmt.Errorf("dial upstream services: %w", dialErr)
		}
		defer func() { _ = conn.Close() }()
		orchDeps.Verifier = identity.NewClient(conn, logger.WithField("component", "identity-client"))
		orchDeps.Gateway = catalog.NewClient(conn, logger.WithField("component", "catalog-client"))
	}

	orch := createOrchestrator(orchDeps, kafkaProducer)

	serviceLogger := logger.WithField("layer", "grpc")
	orderService := grpcsvc.NewOrderService(orch, deps.idempotencyRepo, serviceLogger)
	identityService := grpcsvc.NewIdentityService(deps.usersRepo, issuer, serviceLogger)
	catalogService := grpcsvc.NewCatalogService(deps.productsRepo, serviceLogger)

	grpcMetrics := promgrpc.NewServerMetrics()
	if err := prometheus.Register(grpcMetrics); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok2 := are.ExistingCollector.(*promgrpc.ServerMetrics); ok2 {
				grpcMetrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}

	maxRequests := cfg.RateLimitMaxRequests
	if maxRequests <= 0 {
		maxRequests = DefaultConfig().RateLimitMaxRequests
	}
	window := cfg.RateLimitWindow
	if window <= 0 {
		window = DefaultConfig().RateLimitWindow
	}
	limiter := interceptor.NewRateLimiter(
		maxRequests,
		window,
		logger.WithField("component", "ratelimit"),
		metrics.NewAdmissionMetrics(),
		loopbackClientKey,
	)

	// Порядок: logging → rate limit → metrics, чтобы отклонённые запросы
	// попадали в лог.
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptor.UnaryLogging(serviceLogger),
		limiter.Unary(),
		grpcMetrics.UnaryServerInterceptor(),
	))

	commercev1.RegisterOrderServiceServer(grpcServer, orderService)
	commercev1.RegisterIdentityServiceServer(grpcServer, identityService)
	commercev1.RegisterCatalogServiceServer(grpcServer, catalogService)
	grpcMetrics.InitializeMetrics(grpcServer)

	// Reflection нужен grpcurl и нагрузочным инструментам.
	reflection.Register(grpcServer)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	healthHandler.RegisterChecker("storage", deps.storageChecker)
	if cfg.OutboxMaxPending > 0 {
		healthHandler.RegisterChecker("outbox", newOutboxBacklogChecker(deps.outboxRepo, cfg.OutboxMaxPending))
	}

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	workerCtx, workerCancel := context.WithCancel(ctx)
	defer workerCancel()

	var outboxDone chan struct{}
	if kafkaProducer != nil {
		worker := outbox.NewWorker(
			deps.outboxRepo,
			kafka.NewOutboxPublisher(kafkaProducer, kafka.TopicOrderEvents),
			outbox.WithLogger(logger.WithField("component", "outbox-worker")),
			outbox.WithDLQPublisher(kafka.NewOutboxPublisher(kafkaProducer, kafka.TopicDeadLetterQueue)),
			outbox.WithPollInterval(cfg.OutboxPollInterval),
			outbox.WithBatchSize(cfg.OutboxBatchSize),
			outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
			outbox.WithRetryBaseDelay(cfg.OutboxRetryDelay),
		)
		outboxDone = make(chan struct{})
		go func() {
			defer close(outboxDone)
			worker.Run(workerCtx)
		}()
	}

	cleanupWorker := idemcleanup.NewCleanupWorker(
		deps.idempotencyRepo,
		idemcleanup.WithLogger(logger.WithField("component", "idempotency-cleanup-worker")),
		idemcleanup.WithInterval(cfg.IdempotencyCleanupInterval),
		idemcleanup.WithBatchSize(cfg.IdempotencyCleanupBatchSize),
	)
	go cleanupWorker.Run(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("gRPC сервер слушает %s", cfg.GRPCAddr)
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем gRPC сервер")
		stoppedCh := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
			close(stoppedCh)
		}()
		select {
		case <-stoppedCh:
		case <-time.After(5 * time.Second):
			logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
			grpcServer.Stop()
		}
		shutdownOutboxWorker(workerCancel, outboxDone, logger)
		shutdownHTTP(metricsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownOutboxWorker(workerCancel, outboxDone, logger)
		shutdownHTTP(metricsSrv, logger)
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

// buildTokenIssuer настраивает подписанта токенов identity-сервиса.
func buildTokenIssuer(cfg Config, logger *log.Entry) (*token.Issuer, error) {
	secret := cfg.TokenSecret
	if secret == "" {
		if cfg.StorageDriver != StorageDriverMemory && cfg.StorageDriver != "" {
			return nil, fmt.Errorf("token secret is required for storage driver %q", cfg.StorageDriver)
		}
		logger.Warn("секрет токенов не задан, используется встроенный dev-секрет")
		secret = devTokenSecret
	}
	return token.NewIssuer(secret, cfg.TokenPreviousSecret, cfg.TokenTTL)
}

// newOutboxBacklogChecker сигнализирует о разрастании backlog.
// Выше половины лимита сервис деградирован, выше лимита readiness
// уводит трафик, пока воркер не разгребёт очередь.
func newOutboxBacklogChecker(repo domain.OutboxRepository, maxPending int) healthcheck.Checker {
	return healthcheck.NewGradedChecker("outbox", func() (healthcheck.Status, string) {
		stats, err := repo.Stats()
		if err != nil {
			return healthcheck.StatusUnhealthy, fmt.Sprintf("read outbox stats: %v", err)
		}
		if stats.PendingCount > maxPending {
			return healthcheck.StatusUnhealthy, fmt.Sprintf("outbox backlog %d exceeds limit %d", stats.PendingCount, maxPending)
		}
		if stats.PendingCount > maxPending/2 {
			return healthcheck.StatusDegraded, fmt.Sprintf("outbox backlog %d above soft limit %d", stats.PendingCount, maxPending/2)
		}
		return healthcheck.StatusHealthy, ""
	})
}

// loopbackAddr переводит wildcard-адрес слушателя в адрес для самодиала.
func loopbackAddr(addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return addr.String()
	}
	if tcp.IP == nil || tcp.IP.IsUnspecified() {
		return fmt.Sprintf("127.0.0.1:%d", tcp.Port)
	}
	return tcp.String()
}

// shutdownOutboxWorker останавливает воркер и дожидается завершения
// текущего батча.
func shutdownOutboxWorker(cancel func(), done <-chan struct{}, logger *log.Entry) {
	if cancel != nil {
		cancel()
	}
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info("outbox worker остановлен")
	case <-time.After(5 * time.Second):
		logger.Warn("outbox worker не успел остановиться за таймаут")
	}
}

// startMetricsServer запускает HTTP-обработчики метрик и health-проверок.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez, %s/readyz", addr, addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics shutdown with error")
	}
}
