package catalog

import (
	"sync"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// MockGateway — конфигурируемая заглушка CatalogGateway для тестов.
type MockGateway struct {
	// Available задаёт ответ CheckAvailability по товару; отсутствующий
	// ключ трактуется как «доступен».
	Available map[string]bool
	// Products отдаётся из GetProductsByIDs.
	Products map[string]domain.Product

	CheckErr error
	BatchErr error

	mu         sync.Mutex
	CheckCalls int
	BatchCalls int
}

// NewMockGateway возвращает mock с успешным сценарием по умолчанию.
func NewMockGateway() *MockGateway {
	return &MockGateway{
		Available: make(map[string]bool),
		Products:  make(map[string]domain.Product),
	}
}

// CheckAvailability возвращает заранее настроенный ответ и считает вызовы.
func (m *MockGateway) CheckAvailability(productID string, _ int32) (bool, error) {
	m.mu.Lock()
	m.CheckCalls++
	m.mu.Unlock()
	if m.CheckErr != nil {
		return false, m.CheckErr
	}
	if available, ok := m.Available[productID]; ok {
		return available, nil
	}
	return true, nil
}

// GetProductsByIDs возвращает настроенные товары, пропуская отсутствующие.
func (m *MockGateway) GetProductsByIDs(ids []string) (map[string]domain.Product, error) {
	m.mu.Lock()
	m.BatchCalls++
	m.mu.Unlock()
	if m.BatchErr != nil {
		return nil, m.BatchErr
	}
	result := make(map[string]domain.Product, len(ids))
	for _, id := range ids {
		if product, ok := m.Products[id]; ok {
			result[id] = product
		}
	}
	return result, nil
}

var _ domain.CatalogGateway = (*MockGateway)(nil)
