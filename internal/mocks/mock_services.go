package mocks

import (
	"context"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	NotifyFunc      func(ctx context.Context, userID uint, typ domain.NotificationType, title, message string, bookingID, reviewID *uint)
	ListFunc        func(ctx context.Context, userID uint) ([]domain.Notification, error)
	UnreadCountFunc func(ctx context.Context, userID uint) (int64, error)
	MarkReadFunc    func(ctx context.Context, userID, notificationID uint) error
	MarkAllReadFunc func(ctx context.Context, userID uint) error
	PurgeReadFunc   func(ctx context.Context) (int64, error)

	// Notified records every Notify call for assertion
	Notified []domain.Notification
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// Notify records the dispatched notification
func (m *MockNotificationService) Notify(ctx context.Context, userID uint, typ domain.NotificationType, title, message string, bookingID, reviewID *uint) {
	if m.NotifyFunc != nil {
		m.NotifyFunc(ctx, userID, typ, title, message, bookingID, reviewID)
		return
	}
	m.Notified = append(m.Notified, domain.Notification{
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		BookingID: bookingID,
		ReviewID:  reviewID,
	})
}

// List lists a user's notifications
func (m *MockNotificationService) List(ctx context.Context, userID uint) ([]domain.Notification, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

// UnreadCount counts a user's unread notifications
func (m *MockNotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	if m.UnreadCountFunc != nil {
		return m.UnreadCountFunc(ctx, userID)
	}
	return 0, nil
}

// MarkRead marks one notification as read
func (m *MockNotificationService) MarkRead(ctx context.Context, userID, notificationID uint) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, userID, notificationID)
	}
	return nil
}

// MarkAllRead marks all of a user's notifications as read
func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, userID)
	}
	return nil
}

// PurgeRead sweeps old read notifications
func (m *MockNotificationService) PurgeRead(ctx context.Context) (int64, error) {
	if m.PurgeReadFunc != nil {
		return m.PurgeReadFunc(ctx)
	}
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	SendFunc   func(ctx context.Context, email, purpose string) (*domain.OTPRequest, error)
	VerifyFunc func(ctx context.Context, email, purpose, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Send generates and delivers a code
func (m *MockOTPService) Send(ctx context.Context, email, purpose string) (*domain.OTPRequest, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, email, purpose)
	}
	// Default behavior: success
	return &domain.OTPRequest{Email: email, Purpose: purpose, Code: "123456"}, nil
}

// Verify checks a submitted code
func (m *MockOTPService) Verify(ctx context.Context, email, purpose, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, purpose, code)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)

// MockRateLimiter implements domain.RateLimiter interface for testing
type MockRateLimiter struct {
	AllowFunc func(ctx context.Context, operation, key string) (bool, int64, error)
}

// NewMockRateLimiter creates a new MockRateLimiter with default behaviors
func NewMockRateLimiter() *MockRateLimiter {
	return &MockRateLimiter{}
}

// Allow reports whether an operation is inside its cooldown window
func (m *MockRateLimiter) Allow(ctx context.Context, operation, key string) (bool, int64, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, operation, key)
	}
	// Default behavior: always allowed
	return true, 0, nil
}

// Compile-time interface compliance verification
var _ domain.RateLimiter = (*MockRateLimiter)(nil)

// MockMailService implements domain.MailService interface for testing
type MockMailService struct {
	SendEmailFunc func(to, subject, body string) error

	// Sent records delivered messages for assertion
	Sent []struct{ To, Subject, Body string }
}

// NewMockMailService creates a new MockMailService with default behaviors
func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

// SendEmail records the outgoing message
func (m *MockMailService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	m.Sent = append(m.Sent, struct{ To, Subject, Body string }{to, subject, body})
	return nil
}

// Compile-time interface compliance verification
var _ domain.MailService = (*MockMailService)(nil)

// MockSMSService implements domain.SMSService interface for testing
type MockSMSService struct {
	SendSMSFunc func(to, message string) error

	// Sent records delivered messages for assertion
	Sent []struct{ To, Message string }
}

// NewMockSMSService creates a new MockSMSService with default behaviors
func NewMockSMSService() *MockSMSService {
	return &MockSMSService{}
}

// SendSMS records the outgoing message
func (m *MockSMSService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	m.Sent = append(m.Sent, struct{ To, Message string }{to, message})
	return nil
}

// Compile-time interface compliance verification
var _ domain.SMSService = (*MockSMSService)(nil)
