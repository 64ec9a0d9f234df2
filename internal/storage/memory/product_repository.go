package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// productRepositoryInMemory — простая in-memory реализация ProductRepository.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Product
}

// NewProductRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{
		items: make(map[string]domain.Product),
	}
}

// Create сохраняет новый товар, если ID ещё не занят.
func (r *productRepositoryInMemory) Create(product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[product.ID]; exists {
		return fmt.Errorf("product %s already exists", product.ID)
	}
	r.items[product.ID] = product
	return nil
}

// Get возвращает товар или ErrProductNotFound, если его нет.
func (r *productRepositoryInMemory) Get(id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// GetByIDs возвращает товары по списку идентификаторов.
func (r *productRepositoryInMemory) GetByIDs(ids []string) (map[string]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]domain.Product, len(ids))
	for _, id := range ids {
		if product, ok := r.items[id]; ok {
			result[id] = product
		}
	}
	return result, nil
}

// GetPrice возвращает актуальную цену товара.
func (r *productRepositoryInMemory) GetPrice(id string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	return product.PriceMinor, nil
}

// List возвращает страницу товаров, отсортированную по created_at DESC.
func (r *productRepositoryInMemory) List(category string, page, pageSize int32) ([]domain.Product, int32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]domain.Product, 0, len(r.items))
	for _, product := range r.items {
		if category != "" && product.Category != category {
			continue
		}
		filtered = append(filtered, product)
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

// Update перезаписывает атрибуты товара.
func (r *productRepositoryInMemory) Update(product domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[product.ID]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}

	current.Name = product.Name
	current.Description = product.Description
	current.PriceMinor = product.PriceMinor
	current.StockQty = product.StockQty
	current.Category = product.Category
	current.UpdatedAt = time.Now().UTC()

	r.items[product.ID] = current
	return current, nil
}

// Delete удаляет товар.
func (r *productRepositoryInMemory) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.items, id)
	return nil
}

// AdjustStock атомарно меняет остаток; уход в минус отклоняется.
func (r *productRepositoryInMemory) AdjustStock(id string, delta int32) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.items[id]
	if !ok {
		return 0, domain.ErrProductNotFound
	}

	newStock := product.StockQty + delta
	if newStock < 0 {
		return product.StockQty, domain.ErrInsufficientStock
	}

	product.StockQty = newStock
	product.UpdatedAt = time.Now().UTC()
	r.items[id] = product
	return newStock, nil
}

// adjustUnguarded меняет остаток без контроля знака — так же ведёт себя
// списание внутри транзакции создания заказа в общей БД.
func (r *productRepositoryInMemory) adjustUnguarded(id string, delta int32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.items[id]
	if !ok {
		return
	}
	product.StockQty += delta
	product.UpdatedAt = time.Now().UTC()
	r.items[id] = product
}

// paginate вырезает страницу из предварительно отсортированного среза.
func paginate[T any](items []T, page, pageSize int32) []T {
	if pageSize <= 0 {
		return []T{}
	}
	offset := int((page - 1) * pageSize)
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := offset + int(pageSize)
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
