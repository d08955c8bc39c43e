package domain

import (
	"context"
	"io"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	MarkEmailVerified(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	UpdateRole(ctx context.Context, userID uint, role string) error
}

// CarRepository defines car data access operations
type CarRepository interface {
	Create(ctx context.Context, car *Car) error
	FindByID(ctx context.Context, id uint) (*Car, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]Car, error)
	FindAvailable(ctx context.Context, location string) ([]Car, error)
	Update(ctx context.Context, car *Car) error
	Delete(ctx context.Context, id uint) error
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
}

// BookingRepository defines booking data access operations
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	FindByID(ctx context.Context, id uint) (*Booking, error)
	FindByIDWithRefs(ctx context.Context, id uint) (*Booking, error)
	FindByUser(ctx context.Context, userID uint) ([]Booking, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]Booking, error)
	CountOverlapping(ctx context.Context, carID uint, pickup, ret time.Time, statuses []BookingStatus) (int64, error)
	BookedDates(ctx context.Context, carID uint) ([]BookedRange, error)
	Update(ctx context.Context, booking *Booking) error
	OwnerStats(ctx context.Context, ownerID uint, monthStart time.Time) (*DashboardData, error)
}

// ReviewRepository defines review data access operations
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	FindByID(ctx context.Context, id uint) (*Review, error)
	FindByBooking(ctx context.Context, bookingID uint) (*Review, error)
	FindByCar(ctx context.Context, carID uint) ([]Review, error)
	FindByUser(ctx context.Context, userID uint) ([]Review, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]Review, error)
	Update(ctx context.Context, review *Review) error
}

// NotificationRepository defines notification data access operations
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	FindByUser(ctx context.Context, userID uint) ([]Notification, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, id, userID uint, at time.Time) error
	MarkAllRead(ctx context.Context, userID uint, at time.Time) error
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	PromoteToOwner(ctx context.Context, userID uint) error
}

// OTPService defines OTP operations. Send covers both first sends and
// resends; both are subject to the same cooldown.
type OTPService interface {
	Send(ctx context.Context, email, purpose string) (*OTPRequest, error)
	Verify(ctx context.Context, email, purpose, code string) error
}

// RateLimiter defines a shared, expiring attempt counter keyed by
// (operation, identity). Allow returns false with the remaining wait in
// seconds when the caller is inside a cooldown window.
type RateLimiter interface {
	Allow(ctx context.Context, operation, key string) (bool, int64, error)
}

// CarService defines car listing business logic
type CarService interface {
	AddCar(ctx context.Context, ownerID uint, car *Car, image io.Reader, filename string) (*Car, error)
	UpdateCar(ctx context.Context, ownerID uint, car *Car) (*Car, error)
	DeleteCar(ctx context.Context, ownerID, carID uint) error
	ToggleAvailability(ctx context.Context, ownerID, carID uint) (*Car, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]Car, error)
	ListAvailable(ctx context.Context, location string) ([]Car, error)
	GetCar(ctx context.Context, carID uint) (*Car, error)
	Dashboard(ctx context.Context, ownerID uint) (*DashboardData, error)
}

// BookingService defines booking lifecycle business logic
type BookingService interface {
	CheckAvailability(ctx context.Context, carID uint, pickup, ret time.Time) (bool, error)
	Create(ctx context.Context, userID, carID uint, pickup, ret time.Time) (*Booking, error)
	ChangeStatus(ctx context.Context, actorID uint, actorRole string, bookingID uint, to BookingStatus, reason string) (*Booking, error)
	ListForUser(ctx context.Context, userID uint) ([]Booking, error)
	ListForOwner(ctx context.Context, ownerID uint) ([]Booking, error)
	BookedDates(ctx context.Context, carID uint) ([]BookedRange, error)
}

// ReviewService defines review business logic
type ReviewService interface {
	Create(ctx context.Context, userID, bookingID uint, rating int, comment string) (*Review, error)
	Reply(ctx context.Context, ownerID, reviewID uint, reply string) (*Review, error)
	ListForCar(ctx context.Context, carID uint) ([]Review, float64, error)
	ListForUser(ctx context.Context, userID uint) ([]Review, error)
	ListForOwner(ctx context.Context, ownerID uint) ([]Review, error)
}

// NotificationService defines in-app notification operations. Notify is
// best-effort: failures are logged by the implementation, never returned,
// so a notification failure cannot abort the business operation that
// triggered it.
type NotificationService interface {
	Notify(ctx context.Context, userID uint, typ NotificationType, title, message string, bookingID, reviewID *uint)
	List(ctx context.Context, userID uint) ([]Notification, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uint) error
	MarkAllRead(ctx context.Context, userID uint) error
	PurgeRead(ctx context.Context) (int64, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint, role string, sessionID string) (string, error)
	GenerateRefreshToken(userID uint, role string, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// MailService delivers email. The OTP path treats a send failure as a
// hard error since email is load-bearing for verification.
type MailService interface {
	SendEmail(to, subject, body string) error
}

// SMSService delivers text messages; best-effort booking updates only.
type SMSService interface {
	SendSMS(to, message string) error
}

// ImageStorage uploads car images and returns a public URL or, for the
// local fallback, a filesystem path string.
type ImageStorage interface {
	Upload(ctx context.Context, name string, r io.Reader, contentType string) (string, error)
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
