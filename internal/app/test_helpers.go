package app

import (
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

// newTestProduct создаёт товар для тестовых сценариев.
func newTestProduct() domain.Product {
	now := time.Now().UTC()
	return domain.Product{
		ID:         "test-product-1",
		Name:       "Test Widget",
		PriceMinor: 999,
		StockQty:   10,
		Category:   "test",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// newTestOrder создаёт заказ с одной позицией для тестовых сценариев.
func newTestOrder() domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:              "test-order-1",
		UserID:          "test-user-1",
		Status:          domain.OrderStatusPending,
		TotalMinor:      999,
		ShippingAddress: "10 Main St",
		Items: []domain.OrderItem{
			{
				ID:         "item-1",
				ProductID:  "test-product-1",
				Qty:        1,
				PriceMinor: 999,
				CreatedAt:  now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
