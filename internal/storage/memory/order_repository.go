package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
// Остатки товаров правятся напрямую в репозитории каталога: заказы и
// каталог делят одно хранилище, как и в postgres-реализации.
type orderRepositoryInMemory struct {
	mu       sync.RWMutex
	items    map[string]domain.Order
	products *productRepositoryInMemory
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
// products должен быть создан через NewProductRepository из этого же пакета.
func NewOrderRepository(products domain.ProductRepository) domain.OrderRepository {
	repo := &orderRepositoryInMemory{
		items: make(map[string]domain.Order),
	}
	if p, ok := products.(*productRepositoryInMemory); ok {
		repo.products = p
	}
	return repo
}

// Create сохраняет заказ и списывает остатки. Списание не контролирует знак:
// проверка доступности выполняется до персиста, и между ними есть окно.
func (r *orderRepositoryInMemory) Create(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.ID]; exists {
		return fmt.Errorf("order %s already exists", order.ID)
	}
	r.items[order.ID] = order

	if r.products != nil {
		for _, item := range order.Items {
			r.products.adjustUnguarded(item.ProductID, -item.Qty)
		}
	}
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

// List возвращает страницу заказов и общее число подходящих записей.
func (r *orderRepositoryInMemory) List(status domain.OrderStatus, page, pageSize int32) ([]domain.Order, int32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.pageLocked(func(order domain.Order) bool {
		return status == "" || order.Status == status
	}, page, pageSize)
}

// ListByUser возвращает страницу заказов пользователя.
func (r *orderRepositoryInMemory) ListByUser(userID string, page, pageSize int32) ([]domain.Order, int32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.pageLocked(func(order domain.Order) bool {
		return order.UserID == userID
	}, page, pageSize)
}

// pageLocked фильтрует, сортирует по created_at DESC и вырезает страницу.
// Вызывается под r.mu.
func (r *orderRepositoryInMemory) pageLocked(match func(domain.Order) bool, page, pageSize int32) ([]domain.Order, int32, error) {
	filtered := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		if match(order) {
			filtered = append(filtered, order)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if !filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		}
		return filtered[i].ID > filtered[j].ID
	})

	total := int32(len(filtered))
	return paginate(filtered, page, pageSize), total, nil
}

// UpdateStatus безусловно перезаписывает статус и адрес доставки.
func (r *orderRepositoryInMemory) UpdateStatus(id string, status domain.OrderStatus, shippingAddress string) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	order.Status = status
	if shippingAddress != "" {
		order.ShippingAddress = shippingAddress
	}
	order.UpdatedAt = time.Now().UTC()

	r.items[id] = order
	return order, nil
}

// Cancel отменяет заказ и возвращает остатки по всем позициям.
func (r *orderRepositoryInMemory) Cancel(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.items[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if userID != "" && order.UserID != userID {
		return domain.ErrOrderOwnerMismatch
	}
	if order.Status == domain.OrderStatusCancelled {
		return domain.ErrOrderAlreadyCancelled
	}
	if order.Status == domain.OrderStatusDelivered {
		return domain.ErrOrderDelivered
	}

	if r.products != nil {
		for _, item := range order.Items {
			r.products.adjustUnguarded(item.ProductID, item.Qty)
		}
	}

	order.Status = domain.OrderStatusCancelled
	order.UpdatedAt = time.Now().UTC()
	r.items[id] = order
	return nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
