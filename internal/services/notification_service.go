package services

import (
	"context"
	"log"
	"time"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// NotificationServiceImpl implements domain.NotificationService
type NotificationServiceImpl struct {
	repo      domain.NotificationRepository
	retention time.Duration
}

// NewNotificationService creates a new notification service. retention
// is how long a read notification is kept before the sweep removes it.
func NewNotificationService(repo domain.NotificationRepository, retention time.Duration) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		repo:      repo,
		retention: retention,
	}
}

// Notify implements domain.NotificationService. Notifications are a
// side effect of some primary operation; a failed insert is logged and
// swallowed so it cannot abort that operation.
func (s *NotificationServiceImpl) Notify(ctx context.Context, userID uint, typ domain.NotificationType, title, message string, bookingID, reviewID *uint) {
	n := &domain.Notification{
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		BookingID: bookingID,
		ReviewID:  reviewID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("NOTIFY_FAILED: user_id=%d type=%s error=%v", userID, typ, err)
	}
}

// List implements domain.NotificationService
func (s *NotificationServiceImpl) List(ctx context.Context, userID uint) ([]domain.Notification, error) {
	return s.repo.FindByUser(ctx, userID)
}

// UnreadCount implements domain.NotificationService
func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkRead implements domain.NotificationService
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, userID, notificationID uint) error {
	return s.repo.MarkRead(ctx, notificationID, userID, time.Now())
}

// MarkAllRead implements domain.NotificationService
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, userID uint) error {
	return s.repo.MarkAllRead(ctx, userID, time.Now())
}

// PurgeRead implements domain.NotificationService: it deletes
// notifications that were read longer than the retention period ago.
func (s *NotificationServiceImpl) PurgeRead(ctx context.Context) (int64, error) {
	return s.repo.DeleteReadBefore(ctx, time.Now().Add(-s.retention))
}

// RunRetentionSweep blocks, purging read notifications every interval
// until ctx is cancelled. Sweep failures are logged only; the sweep and
// request handling are both idempotent enough that overlap is harmless.
func (s *NotificationServiceImpl) RunRetentionSweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.PurgeRead(ctx)
			if err != nil {
				log.Printf("NOTIFY_SWEEP_FAILED: error=%v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("NOTIFY_SWEEP: deleted=%d", deleted)
			}
		}
	}
}
