package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

func TestIdempotencyRepository_PostgresCreateGetAndMarkDone(t *testing.T) {
	store := openPostgresStoreForIdempotencyTest(t)
	repo := NewIdempotencyRepository(store)

	key := "idem-test-key-done"
	hash := "req-hash-1"
	ttl := time.Now().UTC().Add(2 * time.Hour).Round(time.Second)

	created, err := repo.CreateProcessing(key, hash, ttl)
	require.NoError(t, err)
	require.Equal(t, domain.IdempotencyStatusProcessing, created.Status)
	require.False(t, created.Expired(time.Now().UTC()))

	err = repo.MarkDone(key, []byte(`{"order_id":"order-1"}`), 200)
	require.NoError(t, err)

	got, err := repo.Get(key)
	require.NoError(t, err)
	require.Equal(t, hash, got.RequestHash)
	require.Equal(t, domain.IdempotencyStatusDone, got.Status)
	require.Equal(t, 200, got.ResponseCode)
	require.JSONEq(t, `{"order_id":"order-1"}`, string(got.ResponseBody))
	require.True(t, got.TTLAt.Equal(ttl), "ttl mismatch: expected %s, got %s", ttl, got.TTLAt)
}

func TestIdempotencyRepository_PostgresMarkFailedKeepsResponse(t *testing.T) {
	store := openPostgresStoreForIdempotencyTest(t)
	repo := NewIdempotencyRepository(store)

	_, err := repo.CreateProcessing("idem-test-key-failed", "req-hash-f", time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)

	err = repo.MarkFailed("idem-test-key-failed", []byte(`{"error":"insufficient stock"}`), 409)
	require.NoError(t, err)

	got, err := repo.Get("idem-test-key-failed")
	require.NoError(t, err)
	require.Equal(t, domain.IdempotencyStatusFailed, got.Status)
	require.Equal(t, 409, got.ResponseCode)
	require.JSONEq(t, `{"error":"insufficient stock"}`, string(got.ResponseBody))
}

func TestIdempotencyRepository_PostgresConflictAndHashMismatch(t *testing.T) {
	store := openPostgresStoreForIdempotencyTest(t)
	repo := NewIdempotencyRepository(store)

	ttl := time.Now().UTC().Add(time.Hour)
	_, err := repo.CreateProcessing("idem-test-key-conflict", "req-hash-a", ttl)
	require.NoError(t, err)

	// Повтор того же запроса возвращает существующую запись.
	existing, err := repo.CreateProcessing("idem-test-key-conflict", "req-hash-a", ttl)
	require.True(t, errors.Is(err, domain.ErrIdempotencyKeyAlreadyExists))
	require.Equal(t, "req-hash-a", existing.RequestHash)
	require.Equal(t, domain.IdempotencyStatusProcessing, existing.Status)

	// Тот же ключ с другим телом запроса — конфликт, не replay.
	_, err = repo.CreateProcessing("idem-test-key-conflict", "req-hash-b", ttl)
	require.True(t, errors.Is(err, domain.ErrIdempotencyHashMismatch))
}

func TestIdempotencyRepository_PostgresValidation(t *testing.T) {
	store := openPostgresStoreForIdempotencyTest(t)
	repo := NewIdempotencyRepository(store)

	_, err := repo.CreateProcessing("  ", "hash", time.Time{})
	require.True(t, errors.Is(err, domain.ErrIdempotencyKeyRequired))

	_, err = repo.CreateProcessing("key", "  ", time.Time{})
	require.True(t, errors.Is(err, domain.ErrIdempotencyRequestHashRequired))

	_, err = repo.Get("missing-key")
	require.True(t, errors.Is(err, domain.ErrIdempotencyKeyNotFound))

	err = repo.MarkDone("missing-key", nil, 200)
	require.True(t, errors.Is(err, domain.ErrIdempotencyKeyNotFound))
}

func TestIdempotencyRepository_PostgresDeleteExpired(t *testing.T) {
	store := openPostgresStoreForIdempotencyTest(t)
	repo := NewIdempotencyRepository(store)

	now := time.Now().UTC()
	_, err := repo.CreateProcessing("idem-expired-1", "h1", now.Add(-5*time.Minute))
	require.NoError(t, err)
	_, err = repo.CreateProcessing("idem-expired-2", "h2", now.Add(-4*time.Minute))
	require.NoError(t, err)
	_, err = repo.CreateProcessing("idem-expired-3", "h3", now.Add(-3*time.Minute))
	require.NoError(t, err)
	_, err = repo.CreateProcessing("idem-active-1", "h4", now.Add(time.Hour))
	require.NoError(t, err)

	// Лимит 2 оставляет одну просроченную запись до следующего вызова.
	removed, err := repo.DeleteExpired(now, 2)
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	removed, err = repo.DeleteExpired(now, 10)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	_, err = repo.Get("idem-active-1")
	require.NoError(t, err)
}

func openPostgresStoreForIdempotencyTest(t *testing.T) *Store {
	t.Helper()

	store := openPostgresStoreForIntegrationTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := store.DB().ExecContext(ctx, `TRUNCATE TABLE idempotency_keys`)
	require.NoError(t, err)

	return store
}
