package domain

import "time"

// IdentityVerifier проверяет существование пользователя перед созданием заказа.
type IdentityVerifier interface {
	// VerifyUser возвращает true, если пользователь существует.
	VerifyUser(userID string) (bool, error)
}

// CatalogGateway описывает обращения к сервису каталога по сети.
// Цены при создании заказа читаются напрямую из общего хранилища
// (ProductRepository), доступность и названия — через этот порт.
type CatalogGateway interface {
	// CheckAvailability сообщает, хватает ли остатка на запрошенное количество.
	CheckAvailability(productID string, qty int32) (bool, error)
	// GetProductsByIDs возвращает товары по списку идентификаторов;
	// отсутствующие идентификаторы в результат не попадают.
	GetProductsByIDs(ids []string) (map[string]Product, error)
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(event OutboxMessage) error
}

// OutboxRepository позволяет сохранять события для последующей публикации.
type OutboxRepository interface {
	Enqueue(msg OutboxMessage) (OutboxMessage, error)
	PullPending(limit int) ([]OutboxMessage, error)
	Stats() (OutboxStats, error)
	MarkSent(id string) error
	MarkFailed(id string) error
}

// TimelineRepository хранит события жизненного цикла заказа.
type TimelineRepository interface {
	Append(event TimelineEvent) error
	List(orderID string) ([]TimelineEvent, error)
}

// IdempotencyRepository хранит состояние обработки запросов по idempotency-key.
type IdempotencyRepository interface {
	CreateProcessing(key, requestHash string, ttlAt time.Time) (IdempotencyRecord, error)
	Get(key string) (IdempotencyRecord, error)
	MarkDone(key string, responseBody []byte, responseCode int) error
	MarkFailed(key string, responseBody []byte, responseCode int) error
	DeleteExpired(before time.Time, limit int) (int, error)
}

// WorkflowStep задаёт константы шагов оформления заказа для метрик/логов.
type WorkflowStep string

const (
	WorkflowStepVerifyUser    WorkflowStep = "verify_user"
	WorkflowStepValidateItems WorkflowStep = "validate_items"
	WorkflowStepPersist       WorkflowStep = "persist"
	WorkflowStepPublish       WorkflowStep = "publish"
	WorkflowStepCancel        WorkflowStep = "cancel"
)

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
