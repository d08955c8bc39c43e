package mocks

import (
	"context"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// MockCarRepository implements domain.CarRepository interface for testing
type MockCarRepository struct {
	CreateFunc        func(ctx context.Context, car *domain.Car) error
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Car, error)
	FindByOwnerFunc   func(ctx context.Context, ownerID uint) ([]domain.Car, error)
	FindAvailableFunc func(ctx context.Context, location string) ([]domain.Car, error)
	UpdateFunc        func(ctx context.Context, car *domain.Car) error
	DeleteFunc        func(ctx context.Context, id uint) error
	CountByOwnerFunc  func(ctx context.Context, ownerID uint) (int64, error)
}

// NewMockCarRepository creates a new MockCarRepository with default behaviors
func NewMockCarRepository() *MockCarRepository {
	return &MockCarRepository{}
}

// Create creates a new car listing
func (m *MockCarRepository) Create(ctx context.Context, car *domain.Car) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, car)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a car by ID
func (m *MockCarRepository) FindByID(ctx context.Context, id uint) (*domain.Car, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrCarNotFound
}

// FindByOwner lists an owner's cars
func (m *MockCarRepository) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Car, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	// Default behavior: empty fleet
	return nil, nil
}

// FindAvailable lists the public catalog
func (m *MockCarRepository) FindAvailable(ctx context.Context, location string) ([]domain.Car, error) {
	if m.FindAvailableFunc != nil {
		return m.FindAvailableFunc(ctx, location)
	}
	// Default behavior: empty catalog
	return nil, nil
}

// Update updates a car listing
func (m *MockCarRepository) Update(ctx context.Context, car *domain.Car) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, car)
	}
	// Default behavior: success
	return nil
}

// Delete removes a car listing
func (m *MockCarRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// CountByOwner counts an owner's cars
func (m *MockCarRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	if m.CountByOwnerFunc != nil {
		return m.CountByOwnerFunc(ctx, ownerID)
	}
	// Default behavior: none
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.CarRepository = (*MockCarRepository)(nil)
