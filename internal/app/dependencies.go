package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	"github.com/vladislavdragonenkov/commerce/internal/service/catalog"
	"github.com/vladislavdragonenkov/commerce/internal/service/identity"
	"github.com/vladislavdragonenkov/commerce/internal/storage/memory"
)

// Dependencies содержит зависимости checkout-оркестратора.
type Dependencies struct {
	Repo            domain.OrderRepository
	Products        domain.ProductRepository
	Users           domain.UserRepository
	OutboxRepo      domain.OutboxRepository
	TimelineRepo    domain.TimelineRepository
	IdempotencyRepo domain.IdempotencyRepository
	Verifier        domain.IdentityVerifier
	Gateway         domain.CatalogGateway
	Logger          *log.Entry
}

// NewDependencies собирает in-memory зависимости с mock-шлюзами.
// Используется в тестах и демо-режиме; production-сборку делает Run
// поверх initRuntimeDependencies.
func NewDependencies(logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	products := memory.NewProductRepository()
	return &Dependencies{
		Repo:            memory.NewOrderRepository(products),
		Products:        products,
		Users:           memory.NewUserRepository(),
		OutboxRepo:      memory.NewOutboxRepository(),
		TimelineRepo:    memory.NewTimelineRepository(),
		IdempotencyRepo: memory.NewIdempotencyRepository(),
		Verifier:        identity.NewMockVerifier(),
		Gateway:         catalog.NewMockGateway(),
		Logger:          logger,
	}
}
