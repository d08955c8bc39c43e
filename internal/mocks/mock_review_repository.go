package mocks

import (
	"context"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// MockReviewRepository implements domain.ReviewRepository interface for testing
type MockReviewRepository struct {
	CreateFunc        func(ctx context.Context, review *domain.Review) error
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Review, error)
	FindByBookingFunc func(ctx context.Context, bookingID uint) (*domain.Review, error)
	FindByCarFunc     func(ctx context.Context, carID uint) ([]domain.Review, error)
	FindByUserFunc    func(ctx context.Context, userID uint) ([]domain.Review, error)
	FindByOwnerFunc   func(ctx context.Context, ownerID uint) ([]domain.Review, error)
	UpdateFunc        func(ctx context.Context, review *domain.Review) error
}

// NewMockReviewRepository creates a new MockReviewRepository with default behaviors
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{}
}

// Create creates a new review
func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, review)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a review by ID
func (m *MockReviewRepository) FindByID(ctx context.Context, id uint) (*domain.Review, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrReviewNotFound
}

// FindByBooking finds the review attached to a booking
func (m *MockReviewRepository) FindByBooking(ctx context.Context, bookingID uint) (*domain.Review, error) {
	if m.FindByBookingFunc != nil {
		return m.FindByBookingFunc(ctx, bookingID)
	}
	// Default behavior: not found
	return nil, domain.ErrReviewNotFound
}

// FindByCar lists a car's reviews
func (m *MockReviewRepository) FindByCar(ctx context.Context, carID uint) ([]domain.Review, error) {
	if m.FindByCarFunc != nil {
		return m.FindByCarFunc(ctx, carID)
	}
	// Default behavior: none
	return nil, nil
}

// FindByUser lists a user's reviews
func (m *MockReviewRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Review, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	// Default behavior: none
	return nil, nil
}

// FindByOwner lists reviews across an owner's fleet
func (m *MockReviewRepository) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Review, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	// Default behavior: none
	return nil, nil
}

// Update updates a review
func (m *MockReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, review)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ReviewRepository = (*MockReviewRepository)(nil)
