package repositories

import (
	"context"
	"testing"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

func TestUserRepositoryImpl_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &domain.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "hashed_password",
		Role:         "user",
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected create to assign an ID")
	}

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if found.ID != user.ID || found.Name != "Ana" {
		t.Errorf("unexpected user %+v", found)
	}

	if _, err := repo.FindByEmail(ctx, "nobody@example.com"); err != domain.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db, "ana@example.com")

	if err := repo.UpdatePassword(ctx, "ana@example.com", "hashed_newsecret"); err != nil {
		t.Fatalf("failed to update password: %v", err)
	}

	found, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to read user back: %v", err)
	}
	if found.PasswordHash != "hashed_newsecret" {
		t.Errorf("expected new password hash, got %q", found.PasswordHash)
	}

	if err := repo.UpdatePassword(ctx, "nobody@example.com", "x"); err != domain.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound for unknown email, got %v", err)
	}
}

func TestUserRepositoryImpl_MarkEmailVerified(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db, "ana@example.com")

	if err := repo.MarkEmailVerified(ctx, "ana@example.com"); err != nil {
		t.Fatalf("failed to mark email verified: %v", err)
	}

	found, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to read user back: %v", err)
	}
	if !found.EmailVerified {
		t.Error("expected email_verified to be true")
	}
}
