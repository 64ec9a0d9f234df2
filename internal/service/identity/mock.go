package identity

import (
	"sync"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// MockVerifier — конфигурируемая заглушка IdentityVerifier для тестов.
type MockVerifier struct {
	Valid     bool
	VerifyErr error

	mu          sync.Mutex
	VerifyCalls int
}

// NewMockVerifier возвращает mock, подтверждающий любого пользователя.
func NewMockVerifier() *MockVerifier {
	return &MockVerifier{Valid: true}
}

// VerifyUser возвращает заранее настроенный ответ и считает вызовы.
func (m *MockVerifier) VerifyUser(string) (bool, error) {
	m.mu.Lock()
	m.VerifyCalls++
	m.mu.Unlock()
	if m.VerifyErr != nil {
		return false, m.VerifyErr
	}
	return m.Valid, nil
}

var _ domain.IdentityVerifier = (*MockVerifier)(nil)
