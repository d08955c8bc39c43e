package repositories

import (
	"context"
	"testing"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

func TestCarRepositoryImpl_UpdatePreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewCarRepository(db)
	car := seedCar(t, db, 7)

	stored, err := repo.FindByID(ctx, car.ID)
	if err != nil {
		t.Fatalf("failed to read car back: %v", err)
	}
	if stored.CreatedAt.IsZero() {
		t.Fatal("created_at not set on create")
	}

	stored.IsAvailable = false
	if err := repo.Update(ctx, stored); err != nil {
		t.Fatalf("failed to update car: %v", err)
	}

	updated, err := repo.FindByID(ctx, car.ID)
	if err != nil {
		t.Fatalf("failed to read car after update: %v", err)
	}
	if updated.IsAvailable {
		t.Error("expected car to be unavailable after update")
	}
	if !updated.CreatedAt.Equal(stored.CreatedAt) {
		t.Errorf("created_at changed on update: before %v, after %v", stored.CreatedAt, updated.CreatedAt)
	}
}

func TestCarRepositoryImpl_DeleteDetachesOwnerAndHidesListing(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewCarRepository(db)
	car := seedCar(t, db, 7)

	if err := repo.Delete(ctx, car.ID); err != nil {
		t.Fatalf("failed to delete car: %v", err)
	}

	if _, err := repo.FindByID(ctx, car.ID); err != domain.ErrCarNotFound {
		t.Errorf("expected ErrCarNotFound, got %v", err)
	}

	available, err := repo.FindAvailable(ctx, "")
	if err != nil {
		t.Fatalf("failed to list available cars: %v", err)
	}
	if len(available) != 0 {
		t.Errorf("expected no available cars, got %d", len(available))
	}

	count, err := repo.CountByOwner(ctx, 7)
	if err != nil {
		t.Fatalf("failed to count owner cars: %v", err)
	}
	if count != 0 {
		t.Errorf("expected owner to have 0 listings, got %d", count)
	}

	// The row remains for history, detached from its owner.
	var dbCar DBCar
	if err := db.Unscoped().First(&dbCar, car.ID).Error; err != nil {
		t.Fatalf("expected soft-deleted row to remain: %v", err)
	}
	if dbCar.OwnerID != nil {
		t.Errorf("expected owner reference to be cleared, got %v", *dbCar.OwnerID)
	}
	if !dbCar.DeletedAt.Valid {
		t.Error("expected row to be soft-deleted")
	}
}

func TestCarRepositoryImpl_DeleteUnknownCar(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewCarRepository(db)

	if err := repo.Delete(ctx, 999); err != domain.ErrCarNotFound {
		t.Errorf("expected ErrCarNotFound, got %v", err)
	}
}
