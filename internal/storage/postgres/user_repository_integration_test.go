package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

func TestUserRepository_PostgresCreateAndGet(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewUserRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	user := domain.User{
		ID:           "user-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	got, err := repo.Get("user-1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.Username != "alice" || got.Email != "alice@example.com" || got.PasswordHash != user.PasswordHash {
		t.Fatalf("unexpected user payload: %+v", got)
	}

	byName, err := repo.GetByUsername("alice")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName.ID != "user-1" {
		t.Fatalf("unexpected user by username: %+v", byName)
	}

	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.GetByUsername("ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound by username, got %v", err)
	}
}

func TestUserRepository_PostgresUniqueness(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewUserRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	base := domain.User{
		ID:           "user-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(base); err != nil {
		t.Fatalf("create base user: %v", err)
	}

	sameName := base
	sameName.ID = "user-2"
	sameName.Email = "other@example.com"
	if err := repo.Create(sameName); !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser for username, got %v", err)
	}

	sameEmail := base
	sameEmail.ID = "user-3"
	sameEmail.Username = "bob"
	if err := repo.Create(sameEmail); !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser for email, got %v", err)
	}
}

func TestUserRepository_PostgresUpdateEmail(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewUserRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	if err := repo.Create(domain.User{
		ID:           "user-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	updated, err := repo.UpdateEmail("user-1", "new@example.com")
	if err != nil {
		t.Fatalf("update email: %v", err)
	}
	if updated.Email != "new@example.com" {
		t.Fatalf("unexpected email: %s", updated.Email)
	}

	if _, err := repo.UpdateEmail("missing", "x@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
