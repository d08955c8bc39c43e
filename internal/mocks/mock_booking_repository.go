package mocks

import (
	"context"
	"time"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// MockBookingRepository implements domain.BookingRepository interface for testing
type MockBookingRepository struct {
	CreateFunc           func(ctx context.Context, booking *domain.Booking) error
	FindByIDFunc         func(ctx context.Context, id uint) (*domain.Booking, error)
	FindByIDWithRefsFunc func(ctx context.Context, id uint) (*domain.Booking, error)
	FindByUserFunc       func(ctx context.Context, userID uint) ([]domain.Booking, error)
	FindByOwnerFunc      func(ctx context.Context, ownerID uint) ([]domain.Booking, error)
	CountOverlappingFunc func(ctx context.Context, carID uint, pickup, ret time.Time, statuses []domain.BookingStatus) (int64, error)
	BookedDatesFunc      func(ctx context.Context, carID uint) ([]domain.BookedRange, error)
	UpdateFunc           func(ctx context.Context, booking *domain.Booking) error
	OwnerStatsFunc       func(ctx context.Context, ownerID uint, monthStart time.Time) (*domain.DashboardData, error)
}

// NewMockBookingRepository creates a new MockBookingRepository with default behaviors
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{}
}

// Create creates a new booking
func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a booking by ID
func (m *MockBookingRepository) FindByID(ctx context.Context, id uint) (*domain.Booking, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrBookingNotFound
}

// FindByIDWithRefs finds a booking with its car and user loaded
func (m *MockBookingRepository) FindByIDWithRefs(ctx context.Context, id uint) (*domain.Booking, error) {
	if m.FindByIDWithRefsFunc != nil {
		return m.FindByIDWithRefsFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrBookingNotFound
}

// FindByUser lists a user's bookings
func (m *MockBookingRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	// Default behavior: none
	return nil, nil
}

// FindByOwner lists an owner's fleet bookings
func (m *MockBookingRepository) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Booking, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	// Default behavior: none
	return nil, nil
}

// CountOverlapping counts bookings overlapping a range
func (m *MockBookingRepository) CountOverlapping(ctx context.Context, carID uint, pickup, ret time.Time, statuses []domain.BookingStatus) (int64, error) {
	if m.CountOverlappingFunc != nil {
		return m.CountOverlappingFunc(ctx, carID, pickup, ret, statuses)
	}
	// Default behavior: no conflicts
	return 0, nil
}

// BookedDates returns calendar-blocking ranges for a car
func (m *MockBookingRepository) BookedDates(ctx context.Context, carID uint) ([]domain.BookedRange, error) {
	if m.BookedDatesFunc != nil {
		return m.BookedDatesFunc(ctx, carID)
	}
	// Default behavior: open calendar
	return nil, nil
}

// Update updates a booking
func (m *MockBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, booking)
	}
	// Default behavior: success
	return nil
}

// OwnerStats summarizes an owner's fleet activity
func (m *MockBookingRepository) OwnerStats(ctx context.Context, ownerID uint, monthStart time.Time) (*domain.DashboardData, error) {
	if m.OwnerStatsFunc != nil {
		return m.OwnerStatsFunc(ctx, ownerID, monthStart)
	}
	// Default behavior: empty dashboard
	return &domain.DashboardData{}, nil
}

// Compile-time interface compliance verification
var _ domain.BookingRepository = (*MockBookingRepository)(nil)
