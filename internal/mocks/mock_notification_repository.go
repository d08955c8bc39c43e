package mocks

import (
	"context"
	"time"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// MockNotificationRepository implements domain.NotificationRepository interface for testing
type MockNotificationRepository struct {
	CreateFunc           func(ctx context.Context, n *domain.Notification) error
	FindByUserFunc       func(ctx context.Context, userID uint) ([]domain.Notification, error)
	CountUnreadFunc      func(ctx context.Context, userID uint) (int64, error)
	MarkReadFunc         func(ctx context.Context, id, userID uint, at time.Time) error
	MarkAllReadFunc      func(ctx context.Context, userID uint, at time.Time) error
	DeleteReadBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

// NewMockNotificationRepository creates a new MockNotificationRepository with default behaviors
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{}
}

// Create creates a new notification
func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	// Default behavior: success
	return nil
}

// FindByUser lists a user's notifications
func (m *MockNotificationRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Notification, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	// Default behavior: none
	return nil, nil
}

// CountUnread counts a user's unread notifications
func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	// Default behavior: none
	return 0, nil
}

// MarkRead marks one notification as read
func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID uint, at time.Time) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id, userID, at)
	}
	// Default behavior: success
	return nil
}

// MarkAllRead marks all of a user's notifications as read
func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uint, at time.Time) error {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, userID, at)
	}
	// Default behavior: success
	return nil
}

// DeleteReadBefore sweeps read notifications older than the cutoff
func (m *MockNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteReadBeforeFunc != nil {
		return m.DeleteReadBeforeFunc(ctx, cutoff)
	}
	// Default behavior: nothing swept
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.NotificationRepository = (*MockNotificationRepository)(nil)
