package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// NotificationRepositoryImpl implements domain.NotificationRepository using GORM
type NotificationRepositoryImpl struct {
	db *gorm.DB
}

// DBNotification represents the database model for Notification
type DBNotification struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Type      string `gorm:"size:32"`
	Title     string `gorm:"size:128"`
	Message   string `gorm:"size:512"`
	BookingID *uint  `gorm:"index"`
	ReviewID  *uint  `gorm:"index"`
	IsRead    bool   `gorm:"index"`
	ReadAt    *time.Time
	CreatedAt time.Time

	Booking *DBBooking `gorm:"foreignKey:BookingID"`
	Review  *DBReview  `gorm:"foreignKey:ReviewID"`
}

// TableName returns the table name for GORM
func (DBNotification) TableName() string {
	return "notifications"
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

// Create implements domain.NotificationRepository
func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *domain.Notification) error {
	dbNotification := notificationToDB(n)
	if err := r.db.WithContext(ctx).Create(dbNotification).Error; err != nil {
		return err
	}
	n.ID = dbNotification.ID
	n.CreatedAt = dbNotification.CreatedAt
	return nil
}

// FindByUser implements domain.NotificationRepository, newest first,
// with referenced booking/car and review/car/user rows for display.
func (r *NotificationRepositoryImpl) FindByUser(ctx context.Context, userID uint) ([]domain.Notification, error) {
	var dbNotifications []DBNotification
	err := r.db.WithContext(ctx).
		Preload("Booking.Car", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Review.Car", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Review.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dbNotifications).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(dbNotifications))
	for i := range dbNotifications {
		notifications = append(notifications, *notificationToDomain(&dbNotifications[i]))
	}
	return notifications, nil
}

// CountUnread implements domain.NotificationRepository
func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBNotification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead implements domain.NotificationRepository; the user filter
// prevents marking someone else's notification.
func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, id, userID uint, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&DBNotification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead implements domain.NotificationRepository
func (r *NotificationRepositoryImpl) MarkAllRead(ctx context.Context, userID uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&DBNotification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": at}).Error
}

// DeleteReadBefore implements domain.NotificationRepository; it removes
// notifications read before the cutoff and reports how many went.
func (r *NotificationRepositoryImpl) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("is_read = ? AND read_at < ?", true, cutoff).
		Delete(&DBNotification{})
	return res.RowsAffected, res.Error
}

func notificationToDB(n *domain.Notification) *DBNotification {
	return &DBNotification{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		BookingID: n.BookingID,
		ReviewID:  n.ReviewID,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
	}
}

func notificationToDomain(dbNotification *DBNotification) *domain.Notification {
	n := &domain.Notification{
		ID:        dbNotification.ID,
		UserID:    dbNotification.UserID,
		Type:      domain.NotificationType(dbNotification.Type),
		Title:     dbNotification.Title,
		Message:   dbNotification.Message,
		BookingID: dbNotification.BookingID,
		ReviewID:  dbNotification.ReviewID,
		IsRead:    dbNotification.IsRead,
		ReadAt:    dbNotification.ReadAt,
		CreatedAt: dbNotification.CreatedAt,
	}
	if dbNotification.Booking != nil {
		n.Booking = bookingToDomain(dbNotification.Booking)
	}
	if dbNotification.Review != nil {
		n.Review = reviewToDomain(dbNotification.Review)
	}
	return n
}
