package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

func TestProductRepository_PostgresCrud(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	seedIntegrationProduct(t, repo, "prod-1", 4999, 12, now.Add(-time.Minute))
	seedIntegrationProduct(t, repo, "prod-2", 1999, 30, now)

	got, err := repo.Get("prod-1")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got.PriceMinor != 4999 || got.StockQty != 12 {
		t.Fatalf("unexpected product payload: %+v", got)
	}

	price, err := repo.GetPrice("prod-2")
	if err != nil {
		t.Fatalf("get price: %v", err)
	}
	if price != 1999 {
		t.Fatalf("unexpected price: %d", price)
	}

	batch, err := repo.GetByIDs([]string{"prod-1", "missing", "prod-2"})
	if err != nil {
		t.Fatalf("get batch: %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("expected 2 products in batch, got %d", len(batch))
	}

	got.Name = "Widget prod-1 v2"
	got.PriceMinor = 5999
	updated, err := repo.Update(got)
	if err != nil {
		t.Fatalf("update product: %v", err)
	}
	if updated.Name != "Widget prod-1 v2" || updated.PriceMinor != 5999 {
		t.Fatalf("unexpected updated product: %+v", updated)
	}

	listed, total, err := repo.List("", 1, 1)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if total != 2 || len(listed) != 1 {
		t.Fatalf("unexpected list page: total=%d len=%d", total, len(listed))
	}

	if err := repo.Delete("prod-2"); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if _, err := repo.Get("prod-2"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
	if err := repo.Delete("prod-2"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on double delete, got %v", err)
	}
}

func TestProductRepository_PostgresAdjustStock(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	seedIntegrationProduct(t, repo, "prod-1", 100, 5, now)

	newStock, err := repo.AdjustStock("prod-1", -3)
	if err != nil {
		t.Fatalf("adjust stock down: %v", err)
	}
	if newStock != 2 {
		t.Fatalf("expected stock 2, got %d", newStock)
	}

	if _, err := repo.AdjustStock("prod-1", -3); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	got, err := repo.Get("prod-1")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got.StockQty != 2 {
		t.Fatalf("rejected adjustment must not change stock, got %d", got.StockQty)
	}

	newStock, err = repo.AdjustStock("prod-1", 10)
	if err != nil {
		t.Fatalf("adjust stock up: %v", err)
	}
	if newStock != 12 {
		t.Fatalf("expected stock 12, got %d", newStock)
	}

	if _, err := repo.AdjustStock("missing", 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
