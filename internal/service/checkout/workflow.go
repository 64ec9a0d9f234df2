package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// ItemRequest — запрошенная позиция заказа до валидации и снятия цены.
type ItemRequest struct {
	ProductID string
	Qty       int32
}

// StepResult разделяет бизнес-отказ шага и его успешное прохождение.
// Инфраструктурные сбои идут отдельным error-каналом.
type StepResult struct {
	rejected bool
	reason   string
}

// Proceed сообщает, что шаг пройден.
func Proceed() StepResult { return StepResult{} }

// Reject фиксирует бизнес-отказ с причиной для клиента.
func Reject(reason string) StepResult { return StepResult{rejected: true, reason: reason} }

// Rejected возвращает true, если шаг завершился бизнес-отказом.
func (r StepResult) Rejected() bool { return r.rejected }

// Reason возвращает причину отказа для ответа клиенту.
func (r StepResult) Reason() string { return r.reason }

// CreateWorkflow выполняет шаги оформления заказа: проверка пользователя,
// валидация позиций со снятием цены и сборка заказа. Persist сохраняет
// заказ, позиции и списание остатков одной транзакцией хранилища.
type CreateWorkflow struct {
	identity domain.IdentityVerifier
	catalog  domain.CatalogGateway
	products domain.ProductRepository
	orders   domain.OrderRepository

	now   func() time.Time
	newID func() string
}

// NewCreateWorkflow создаёт workflow оформления заказа.
func NewCreateWorkflow(
	identity domain.IdentityVerifier,
	catalog domain.CatalogGateway,
	products domain.ProductRepository,
	orders domain.OrderRepository,
) *CreateWorkflow {
	return &CreateWorkflow{
		identity: identity,
		catalog:  catalog,
		products: products,
		orders:   orders,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// VerifyUser проверяет, что заказ оформляет существующий пользователь.
func (w *CreateWorkflow) VerifyUser(userID string) (StepResult, error) {
	if userID == "" {
		return Reject("User ID is required"), nil
	}
	ok, err := w.identity.VerifyUser(userID)
	if err != nil {
		return Proceed(), fmt.Errorf("verify user %s: %w", userID, err)
	}
	if !ok {
		return Reject("User not found"), nil
	}
	return Proceed(), nil
}

// ValidateItems последовательно проверяет позиции: количество, доступность
// через каталог, затем цена из общего хранилища. Первый отказ прерывает
// оформление до какой-либо записи.
func (w *CreateWorkflow) ValidateItems(requests []ItemRequest) ([]domain.OrderItem, StepResult, error) {
	if len(requests) == 0 {
		return nil, Reject("Order must contain at least one item"), nil
	}

	createdAt := w.now()
	items := make([]domain.OrderItem, 0, len(requests))
	for _, req := range requests {
		if req.Qty <= 0 {
			return nil, Reject(fmt.Sprintf("Invalid quantity for product %s", req.ProductID)), nil
		}

		available, err := w.catalog.CheckAvailability(req.ProductID, req.Qty)
		if err != nil {
			return nil, Proceed(), fmt.Errorf("check availability for %s: %w", req.ProductID, err)
		}
		if !available {
			return nil, Reject(fmt.Sprintf("Product %s not available in requested quantity", req.ProductID)), nil
		}

		// Цена снимается на момент оформления и дальше не меняется.
		price, err := w.products.GetPrice(req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return nil, Reject(fmt.Sprintf("Product %s not found", req.ProductID)), nil
			}
			return nil, Proceed(), fmt.Errorf("read price for %s: %w", req.ProductID, err)
		}

		items = append(items, domain.OrderItem{
			ID:         w.newID(),
			ProductID:  req.ProductID,
			Qty:        req.Qty,
			PriceMinor: price,
			CreatedAt:  createdAt,
		})
	}

	return items, Proceed(), nil
}

// Assemble собирает заказ в статусе pending; сумма — из снимков цен позиций.
func (w *CreateWorkflow) Assemble(userID, shippingAddress string, items []domain.OrderItem) domain.Order {
	var total int64
	for _, item := range items {
		total += item.SubtotalMinor()
	}

	now := w.now()
	return domain.Order{
		ID:              w.newID(),
		UserID:          userID,
		Status:          domain.OrderStatusPending,
		TotalMinor:      total,
		ShippingAddress: shippingAddress,
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Persist сохраняет заказ, его позиции и списание остатков одной транзакцией.
func (w *CreateWorkflow) Persist(order domain.Order) error {
	return w.orders.Create(order)
}
