package checkout

import (
	"encoding/json"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	"github.com/vladislavdragonenkov/commerce/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/commerce/internal/metrics"
)

const (
	defaultPageSize = int32(10)
	maxPageSize     = int32(100)
)

// Orchestrator описывает интерфейс оформления и жизненного цикла заказа.
// Бизнес-отказы приходят в StepResult, инфраструктурные сбои — в error.
type Orchestrator interface {
	CreateOrder(userID, shippingAddress string, items []ItemRequest) (domain.Order, StepResult, error)
	GetOrder(orderID string) (domain.Order, error)
	ListOrders(status domain.OrderStatus, page, pageSize int32) ([]domain.Order, int32, error)
	ListOrdersByUser(userID string, page, pageSize int32) ([]domain.Order, int32, error)
	UpdateOrder(orderID string, status domain.OrderStatus, shippingAddress string) (domain.Order, error)
	CancelOrder(orderID, userID string) (StepResult, error)
}

// orchestrator реализует синхронное оформление: VerifyUser → ValidateItems →
// Persist → Publish. Отмена и смена статуса идут через те же хранилища.
type orchestrator struct {
	workflow      *CreateWorkflow
	orders        domain.OrderRepository
	catalog       domain.CatalogGateway
	outbox        domain.OutboxRepository
	timeline      domain.TimelineRepository
	logger        *log.Entry
	metrics       *metrics.CheckoutMetrics
	kafkaProducer *kafka.Producer // опциональный Kafka producer для event-driven архитектуры
}

// NewOrchestrator создаёт рабочий экземпляр оркестратора.
func NewOrchestrator(
	orders domain.OrderRepository,
	products domain.ProductRepository,
	identity domain.IdentityVerifier,
	catalog domain.CatalogGateway,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	logger *log.Entry,
) Orchestrator {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &orchestrator{
		workflow: NewCreateWorkflow(identity, catalog, products, orders),
		orders:   orders,
		catalog:  catalog,
		outbox:   outbox,
		timeline: timeline,
		logger:   logger,
		metrics:  metrics.NewCheckoutMetrics(),
	}
}

// NewOrchestratorWithKafka создаёт оркестратор с Kafka producer для event-driven архитектуры.
func NewOrchestratorWithKafka(
	orders domain.OrderRepository,
	products domain.ProductRepository,
	identity domain.IdentityVerifier,
	catalog domain.CatalogGateway,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	kafkaProducer *kafka.Producer,
	logger *log.Entry,
) Orchestrator {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &orchestrator{
		workflow:      NewCreateWorkflow(identity, catalog, products, orders),
		orders:        orders,
		catalog:       catalog,
		outbox:        outbox,
		timeline:      timeline,
		logger:        logger,
		metrics:       metrics.NewCheckoutMetrics(),
		kafkaProducer: kafkaProducer,
	}
}

// NewOrchestratorWithoutMetrics создаёт оркестратор без метрик (для тестов).
func NewOrchestratorWithoutMetrics(
	orders domain.OrderRepository,
	products domain.ProductRepository,
	identity domain.IdentityVerifier,
	catalog domain.CatalogGateway,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	logger *log.Entry,
) Orchestrator {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &orchestrator{
		workflow: NewCreateWorkflow(identity, catalog, products, orders),
		orders:   orders,
		catalog:  catalog,
		outbox:   outbox,
		timeline: timeline,
		logger:   logger,
		metrics:  nil, // Отключаем метрики для тестов
	}
}

// CreateOrder оформляет заказ синхронно и возвращает его клиенту.
func (o *orchestrator) CreateOrder(userID, shippingAddress string, items []ItemRequest) (domain.Order, StepResult, error) {
	start := time.Now()
	if o.metrics != nil {
		o.metrics.RecordCheckoutStarted()
	}
	defer func() {
		if o.metrics != nil {
			o.metrics.RecordCheckoutFinished()
			o.metrics.RecordCheckoutDuration(time.Since(start))
		}
	}()

	stepStart := time.Now()
	result, err := o.workflow.VerifyUser(userID)
	o.observeStep(domain.WorkflowStepVerifyUser, stepStart)
	if err != nil {
		o.failCheckout(err, "verify user failed", log.Fields{"user_id": userID})
		return domain.Order{}, Proceed(), err
	}
	if result.Rejected() {
		o.rejectCheckout(result, log.Fields{"user_id": userID})
		return domain.Order{}, result, nil
	}

	stepStart = time.Now()
	orderItems, result, err := o.workflow.ValidateItems(items)
	o.observeStep(domain.WorkflowStepValidateItems, stepStart)
	if err != nil {
		o.failCheckout(err, "validate items failed", log.Fields{"user_id": userID})
		return domain.Order{}, Proceed(), err
	}
	if result.Rejected() {
		o.rejectCheckout(result, log.Fields{"user_id": userID})
		return domain.Order{}, result, nil
	}

	order := o.workflow.Assemble(userID, shippingAddress, orderItems)

	stepStart = time.Now()
	err = o.workflow.Persist(order)
	o.observeStep(domain.WorkflowStepPersist, stepStart)
	if err != nil {
		o.failCheckout(err, "persist order failed", log.Fields{
			"user_id":  userID,
			"order_id": order.ID,
		})
		return domain.Order{}, Proceed(), err
	}

	if o.metrics != nil {
		o.metrics.RecordOrderCreated()
	}

	stepStart = time.Now()
	o.emitEvent(&order, domain.TimelineOrderCreated, map[string]interface{}{
		"status":      string(order.Status),
		"total_minor": order.TotalMinor,
		"items_count": len(order.Items),
		"ts":          order.CreatedAt.Format(time.RFC3339Nano),
	})
	o.publishOrderEvent(kafka.EventTypeOrderCreated, &order, map[string]interface{}{
		"total_minor": order.TotalMinor,
		"items_count": len(order.Items),
	})
	o.observeStep(domain.WorkflowStepPublish, stepStart)

	o.logger.WithFields(log.Fields{
		"order_id":    order.ID,
		"user_id":     order.UserID,
		"total_minor": order.TotalMinor,
	}).Info("order created")

	o.hydrateProductNames([]domain.Order{order})
	return order, Proceed(), nil
}

// GetOrder возвращает заказ с подтянутыми названиями товаров.
func (o *orchestrator) GetOrder(orderID string) (domain.Order, error) {
	order, err := o.orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	orders := []domain.Order{order}
	o.hydrateProductNames(orders)
	return orders[0], nil
}

// ListOrders возвращает страницу заказов по статусу; пустой статус — все.
func (o *orchestrator) ListOrders(status domain.OrderStatus, page, pageSize int32) ([]domain.Order, int32, error) {
	page, pageSize = normalizePage(page, pageSize)
	orders, total, err := o.orders.List(status, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	o.hydrateProductNames(orders)
	return orders, total, nil
}

// ListOrdersByUser возвращает страницу заказов пользователя.
func (o *orchestrator) ListOrdersByUser(userID string, page, pageSize int32) ([]domain.Order, int32, error) {
	page, pageSize = normalizePage(page, pageSize)
	orders, total, err := o.orders.ListByUser(userID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	o.hydrateProductNames(orders)
	return orders, total, nil
}

// UpdateOrder безусловно перезаписывает статус и адрес доставки.
// Пустой адрес оставляет прежнее значение.
func (o *orchestrator) UpdateOrder(orderID string, status domain.OrderStatus, shippingAddress string) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, domain.ErrStatusInvalid
	}

	order, err := o.orders.UpdateStatus(orderID, status, shippingAddress)
	if err != nil {
		if !domain.IsNotFound(err) {
			o.failCheckout(err, "update order failed", log.Fields{"order_id": orderID})
		}
		return domain.Order{}, err
	}

	if o.metrics != nil {
		o.metrics.RecordStatusChange()
	}

	o.emitEvent(&order, domain.TimelineOrderStatusChanged, map[string]interface{}{
		"status":     string(order.Status),
		"updated_at": order.UpdatedAt.Format(time.RFC3339Nano),
		"ts":         order.UpdatedAt.Format(time.RFC3339Nano),
	})
	o.publishOrderEvent(kafka.EventTypeOrderStatusChanged, &order, nil)

	o.hydrateProductNames([]domain.Order{order})
	return order, nil
}

// CancelOrder отменяет заказ и возвращает остатки; повторная отмена,
// доставленный заказ и чужой заказ — бизнес-отказы.
func (o *orchestrator) CancelOrder(orderID, userID string) (StepResult, error) {
	if orderID == "" {
		return Reject("Order ID is required"), nil
	}

	stepStart := time.Now()
	err := o.orders.Cancel(orderID, userID)
	o.observeStep(domain.WorkflowStepCancel, stepStart)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return Reject("Order not found"), nil
		case errors.Is(err, domain.ErrOrderOwnerMismatch),
			errors.Is(err, domain.ErrOrderAlreadyCancelled),
			errors.Is(err, domain.ErrOrderDelivered):
			o.logger.WithFields(log.Fields{
				"order_id": orderID,
				"reason":   err.Error(),
			}).Warn("order cancel rejected")
			return Reject(err.Error()), nil
		default:
			o.failCheckout(err, "cancel order failed", log.Fields{"order_id": orderID})
			return Proceed(), err
		}
	}

	if o.metrics != nil {
		o.metrics.RecordOrderCancelled()
	}

	order, getErr := o.orders.Get(orderID)
	if getErr != nil {
		o.logger.WithError(getErr).WithField("order_id", orderID).Warn("reload after cancel failed")
		order = domain.Order{ID: orderID, UserID: userID, Status: domain.OrderStatusCancelled}
	}

	o.emitEvent(&order, domain.TimelineOrderCancelled, map[string]interface{}{
		"status": string(domain.OrderStatusCancelled),
		"ts":     time.Now().UTC().Format(time.RFC3339Nano),
	})
	o.publishOrderEvent(kafka.EventTypeOrderCancelled, &order, nil)

	o.logger.WithField("order_id", orderID).Info("order cancelled")
	return Proceed(), nil
}

func (o *orchestrator) observeStep(step domain.WorkflowStep, since time.Time) {
	if o.metrics != nil {
		o.metrics.RecordStepDuration(string(step), time.Since(since))
	}
}

func (o *orchestrator) rejectCheckout(result StepResult, fields log.Fields) {
	if o.metrics != nil {
		o.metrics.RecordOrderRejected()
	}
	o.logger.WithFields(fields).WithField("reason", result.Reason()).Warn("checkout rejected")
}

func (o *orchestrator) failCheckout(err error, msg string, fields log.Fields) {
	if o.metrics != nil {
		o.metrics.RecordOrderFailed()
	}
	o.logger.WithError(err).WithFields(fields).Error(msg)
}

// hydrateProductNames подтягивает названия товаров одной выборкой на страницу.
// Сбой гидрации не фатален: названия останутся пустыми.
func (o *orchestrator) hydrateProductNames(orders []domain.Order) {
	if o.catalog == nil {
		return
	}

	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, order := range orders {
		for _, item := range order.Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}
	if len(ids) == 0 {
		return
	}

	products, err := o.catalog.GetProductsByIDs(ids)
	if err != nil {
		o.logger.WithError(err).Warn("product name hydration failed")
		return
	}

	for oi := range orders {
		for ii := range orders[oi].Items {
			if product, ok := products[orders[oi].Items[ii].ProductID]; ok {
				orders[oi].Items[ii].ProductName = product.Name
			}
		}
	}
}

func (o *orchestrator) emitEvent(order *domain.Order, eventType string, payload map[string]interface{}) {
	if payload == nil {
		payload = make(map[string]interface{})
	}
	payload["order_id"] = order.ID
	data, err := json.Marshal(payload)
	if err != nil {
		o.logger.WithError(err).WithFields(log.Fields{
			"order_id": order.ID,
			"event":    eventType,
		}).Error("marshal event failed")
		return
	}

	if o.outbox != nil {
		msg := domain.OutboxMessage{
			AggregateType: "order",
			AggregateID:   order.ID,
			EventType:     eventType,
			Payload:       data,
		}
		if _, err := o.outbox.Enqueue(msg); err != nil {
			o.logger.WithError(err).WithFields(log.Fields{
				"order_id": order.ID,
				"event":    eventType,
			}).Error("enqueue event failed")
		} else if o.metrics != nil {
			o.metrics.RecordOutboxEvent()
		}
	}

	if o.timeline != nil {
		var occurred time.Time
		if ts, ok := payload["ts"].(string); ok {
			if parsed, parseErr := time.Parse(time.RFC3339Nano, ts); parseErr == nil {
				occurred = parsed
			}
		}
		if occurred.IsZero() {
			occurred = time.Now().UTC()
		}
		event := domain.TimelineEvent{
			OrderID:  order.ID,
			Type:     eventType,
			Occurred: occurred,
		}
		if err := o.timeline.Append(event); err != nil {
			o.logger.WithError(err).WithFields(log.Fields{
				"order_id": order.ID,
				"event":    eventType,
			}).Warn("append timeline event failed")
		} else if o.metrics != nil {
			o.metrics.RecordTimelineEvent()
		}
	}
}

// publishOrderEvent публикует событие заказа в Kafka (если producer настроен)
func (o *orchestrator) publishOrderEvent(eventType kafka.EventType, order *domain.Order, metadata map[string]interface{}) {
	if o.kafkaProducer == nil {
		return // Kafka не настроен, пропускаем
	}

	event := kafka.NewOrderEvent(eventType, order.ID, order.UserID, string(order.Status), metadata)
	if err := o.kafkaProducer.PublishEvent(kafka.TopicOrderEvents, order.ID, event); err != nil {
		// Логируем ошибку, но не прерываем оформление - Kafka опциональный
		o.logger.WithError(err).WithFields(log.Fields{
			"event_type": eventType,
			"order_id":   order.ID,
		}).Warn("failed to publish order event to kafka")
	}
}

func normalizePage(page, pageSize int32) (int32, int32) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

var _ Orchestrator = (*orchestrator)(nil)
