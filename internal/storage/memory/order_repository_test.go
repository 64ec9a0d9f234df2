package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	"github.com/vladislavdragonenkov/commerce/internal/storage/memory"
)

func newFixtureProduct(id string, stock int32) domain.Product {
	now := time.Now().UTC()
	return domain.Product{
		ID:         id,
		Name:       "Widget",
		PriceMinor: 100,
		StockQty:   stock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func newOrder() domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:         "order-1",
		UserID:     "user-1",
		Status:     domain.OrderStatusPending,
		TotalMinor: 500,
		Items: []domain.OrderItem{
			{ID: "item-1", ProductID: "product-1", Qty: 5, PriceMinor: 100, CreatedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newRepos(t *testing.T) (domain.OrderRepository, domain.ProductRepository) {
	t.Helper()
	products := memory.NewProductRepository()
	if err := products.Create(newFixtureProduct("product-1", 10)); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return memory.NewOrderRepository(products), products
}

func TestOrderRepository_CreateGet(t *testing.T) {
	repo, products := newRepos(t)
	order := newOrder()

	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != order.ID {
		t.Fatalf("expected id %s, got %s", order.ID, stored.ID)
	}

	// Создание списывает остаток в каталоге.
	product, err := products.Get("product-1")
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product.StockQty != 5 {
		t.Fatalf("expected stock 5 after create, got %d", product.StockQty)
	}
}

func TestOrderRepository_ListByUser(t *testing.T) {
	repo, _ := newRepos(t)
	order := newOrder()
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	orders, total, err := repo.ListByUser(order.UserID, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 || total != 1 {
		t.Fatalf("expected 1 order/total, got %d/%d", len(orders), total)
	}
}

func TestOrderRepository_ListFiltersByStatus(t *testing.T) {
	repo, _ := newRepos(t)
	first := newOrder()
	if err := repo.Create(first); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second := newOrder()
	second.ID = "order-2"
	second.Status = domain.OrderStatusShipped
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	if err := repo.Create(second); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, total, err := repo.List("", 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 || total != 2 {
		t.Fatalf("expected 2 orders/total, got %d/%d", len(all), total)
	}
	// created_at DESC: более свежий заказ первым.
	if all[0].ID != "order-2" {
		t.Fatalf("expected order-2 first, got %s", all[0].ID)
	}

	shipped, total, err := repo.List(domain.OrderStatusShipped, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(shipped) != 1 || total != 1 || shipped[0].ID != "order-2" {
		t.Fatalf("unexpected filtered result: %v (total %d)", shipped, total)
	}
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	repo, _ := newRepos(t)
	order := newOrder()
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.UpdateStatus(order.ID, domain.OrderStatusShipped, "")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.OrderStatusShipped {
		t.Fatalf("expected shipped, got %s", updated.Status)
	}

	// Пустой адрес не затирает прежний.
	withAddr, err := repo.UpdateStatus(order.ID, domain.OrderStatusShipped, "ул. Новая, 2")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if withAddr.ShippingAddress != "ул. Новая, 2" {
		t.Fatalf("expected address overwrite, got %q", withAddr.ShippingAddress)
	}
}

func TestOrderRepository_CancelRestoresStockOnce(t *testing.T) {
	repo, products := newRepos(t)
	order := newOrder()
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.Cancel(order.ID, ""); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	product, err := products.Get("product-1")
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product.StockQty != 10 {
		t.Fatalf("expected stock restored to 10, got %d", product.StockQty)
	}

	// Повторная отмена отклоняется и не трогает остаток.
	if err := repo.Cancel(order.ID, ""); !errors.Is(err, domain.ErrOrderAlreadyCancelled) {
		t.Fatalf("expected ErrOrderAlreadyCancelled, got %v", err)
	}
	product, _ = products.Get("product-1")
	if product.StockQty != 10 {
		t.Fatalf("stock must stay 10 after repeated cancel, got %d", product.StockQty)
	}
}

func TestOrderRepository_CancelGuards(t *testing.T) {
	repo, _ := newRepos(t)
	order := newOrder()
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.Cancel("missing", ""); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if err := repo.Cancel(order.ID, "other-user"); !errors.Is(err, domain.ErrOrderOwnerMismatch) {
		t.Fatalf("expected ErrOrderOwnerMismatch, got %v", err)
	}

	if _, err := repo.UpdateStatus(order.ID, domain.OrderStatusDelivered, ""); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := repo.Cancel(order.ID, ""); !errors.Is(err, domain.ErrOrderDelivered) {
		t.Fatalf("expected ErrOrderDelivered, got %v", err)
	}
}
