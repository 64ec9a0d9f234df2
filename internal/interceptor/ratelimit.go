package interceptor

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	// clientKeyHeader — metadata-ключ, по которому идентифицируется клиент.
	clientKeyHeader = "x-forwarded-for"
	// unknownClientKey — общий ключ для запросов без x-forwarded-for.
	// Такие клиенты делят одно окно между собой.
	unknownClientKey = "unknown"

	limiterShardCount = 16
)

// AdmissionObserver получает решения контроллера допуска.
type AdmissionObserver interface {
	ObserveAdmission(allowed bool)
}

// clientWindow — счётчик запросов клиента внутри текущего окна.
type clientWindow struct {
	count       int
	windowStart time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
}

// RateLimiter — контроллер допуска с фиксированным окном на клиента.
// Состояние шардировано по FNV-хэшу ключа, чтобы независимые клиенты
// не конкурировали за одну блокировку.
type RateLimiter struct {
	maxRequests int
	window      time.Duration
	shards      [limiterShardCount]*limiterShard
	logger      *log.Entry
	observer    AdmissionObserver
	exempt      map[string]struct{}

	// now подменяется в тестах.
	now func() time.Time
}

// NewRateLimiter конструирует контроллер допуска.
// observer может быть nil — тогда решения не учитываются в метриках.
// exemptClients обходят контроллер целиком: их запросы не расходуют
// ничьё окно и не попадают в метрики допуска. Ключ служебного трафика
// генерируется на процесс, поэтому снаружи его не подделать.
func NewRateLimiter(maxRequests int, window time.Duration, logger *log.Entry, observer AdmissionObserver, exemptClients ...string) *RateLimiter {
	if logger == nil {
		logger = log.New().WithField("component", "ratelimit")
	}
	exempt := make(map[string]struct{}, len(exemptClients))
	for _, client := range exemptClients {
		exempt[client] = struct{}{}
	}
	rl := &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		logger:      logger,
		observer:    observer,
		exempt:      exempt,
		now:         time.Now,
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{clients: make(map[string]*clientWindow)}
	}
	return rl
}

// Unary возвращает unary-interceptor, отклоняющий запросы сверх лимита
// с кодом ResourceExhausted. Запрос, ответ и ошибка обработчика не
// модифицируются.
func (rl *RateLimiter) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		clientID := clientKey(ctx)
		if _, ok := rl.exempt[clientID]; ok {
			return handler(ctx, req)
		}
		allowed := rl.allow(clientID)
		if rl.observer != nil {
			rl.observer.ObserveAdmission(allowed)
		}
		if !allowed {
			rl.logger.WithFields(log.Fields{
				"client": clientID,
				"method": info.FullMethod,
			}).Warn("rate limit exceeded")
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
}

// allow применяет решение по фиксированному окну. Отклонённый запрос
// счётчик не увеличивает.
func (rl *RateLimiter) allow(clientID string) bool {
	shard := rl.shard(clientID)
	now := rl.now()

	shard.mu.Lock()
	defer shard.mu.Unlock()

	state, ok := shard.clients[clientID]
	if !ok {
		shard.clients[clientID] = &clientWindow{count: 1, windowStart: now}
		return true
	}
	if now.Sub(state.windowStart) > rl.window {
		state.count = 1
		state.windowStart = now
		return true
	}
	if state.count < rl.maxRequests {
		state.count++
		return true
	}
	return false
}

func (rl *RateLimiter) shard(clientID string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clientID))
	return rl.shards[h.Sum32()%limiterShardCount]
}

// UnaryClientKey возвращает client-interceptor, помечающий каждый
// исходящий вызов идентификатором клиента. Самодиал checkout ставит им
// свой служебный ключ, чтобы внутренние VerifyUser/CheckAvailability
// не делили окно "unknown" с внешними анонимными запросами.
func UnaryClientKey(key string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, clientKeyHeader, key)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// clientKey извлекает идентификатор клиента из metadata входящего запроса.
func clientKey(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return unknownClientKey
	}
	values := md.Get(clientKeyHeader)
	if len(values) == 0 || values[0] == "" {
		return unknownClientKey
	}
	return values[0]
}
