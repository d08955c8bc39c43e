package domain

import (
	"math"
	"time"
)

// Roles form a closed set; authorization never dispatches on anything else.
const (
	RoleUser  = "user"
	RoleOwner = "owner"
)

// User represents an account in the marketplace
type User struct {
	ID            uint
	Name          string
	Email         string
	Phone         string
	PasswordHash  string `gorm:"column:password"`
	Role          string
	EmailVerified bool
	Image         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Car represents a listed vehicle. OwnerID is a pointer because the
// reference is nulled, not cascaded, when the listing is deleted so
// historical bookings stay intact.
type Car struct {
	ID              uint
	OwnerID         *uint
	Brand           string
	Model           string
	Year            int
	Category        string
	SeatingCapacity int
	FuelType        string
	Transmission    string
	PricePerDay     float64
	Location        string
	Description     string
	Image           string
	IsAvailable     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BookingStatus is the booking lifecycle state
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingBooked    BookingStatus = "booked"
	BookingOnRent    BookingStatus = "on_rent"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ActiveBookingStatuses are the statuses that block a car's calendar.
// Cancelled and completed bookings never make a date range unavailable.
var ActiveBookingStatuses = []BookingStatus{BookingPending, BookingBooked, BookingOnRent}

// Valid reports whether s is a known lifecycle state.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingBooked, BookingOnRent, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// CanTransition reports whether the lifecycle permits from -> to.
// The same machine applies to users and owners; users are additionally
// restricted to cancellation by the booking service.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingBooked || to == BookingCancelled
	case BookingBooked:
		return to == BookingOnRent || to == BookingCancelled || to == BookingCompleted
	case BookingOnRent:
		return to == BookingCompleted || to == BookingCancelled
	}
	return false
}

// Booking links a user, an owner and a car over a date range
type Booking struct {
	ID           uint
	CarID        uint
	UserID       uint
	OwnerID      uint
	PickupDate   time.Time
	ReturnDate   time.Time
	Status       BookingStatus
	Price        float64
	CancelReason string
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Car  *Car
	User *User
}

// BookedRange is a calendar-blocking tuple for a single car
type BookedRange struct {
	PickupDate time.Time     `json:"pickupDate"`
	ReturnDate time.Time     `json:"returnDate"`
	Status     BookingStatus `json:"status"`
}

// RentalDays returns the chargeable day span, rounding partial days up.
// A same-instant pickup and return still charges one day.
func RentalDays(pickup, ret time.Time) int {
	days := int(math.Ceil(ret.Sub(pickup).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// RentalPrice computes pricePerDay times the chargeable day span.
func RentalPrice(pickup, ret time.Time, pricePerDay float64) float64 {
	return pricePerDay * float64(RentalDays(pickup, ret))
}

// Review rating and length bounds
const (
	RatingMin        = 1
	RatingMax        = 5
	CommentMinLen    = 10
	CommentMaxLen    = 500
	OwnerReplyMinLen = 10
	OwnerReplyMaxLen = 400
)

// Review is a user's rating of a completed booking, one per booking,
// with at most one owner reply.
type Review struct {
	ID         uint
	BookingID  uint
	CarID      uint
	UserID     uint
	Rating     int
	Comment    string
	OwnerReply string
	RepliedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Car  *Car
	User *User
}

// NotificationType classifies in-app notifications
type NotificationType string

const (
	NotifyBookingCreated   NotificationType = "booking_created"
	NotifyBookingConfirmed NotificationType = "booking_confirmed"
	NotifyBookingOnRent    NotificationType = "booking_on_rent"
	NotifyBookingCancelled NotificationType = "booking_cancelled"
	NotifyBookingCompleted NotificationType = "booking_completed"
	NotifyReviewReceived   NotificationType = "review_received"
	NotifyReviewReply      NotificationType = "review_reply"
)

// NotificationTypeForStatus maps a booking status to the notification
// type dispatched when a booking enters that status.
func NotificationTypeForStatus(s BookingStatus) NotificationType {
	switch s {
	case BookingBooked:
		return NotifyBookingConfirmed
	case BookingOnRent:
		return NotifyBookingOnRent
	case BookingCancelled:
		return NotifyBookingCancelled
	case BookingCompleted:
		return NotifyBookingCompleted
	}
	return NotifyBookingCreated
}

// Notification is an in-app message for one user. Read notifications
// are retained for seven days, then swept.
type Notification struct {
	ID        uint
	UserID    uint
	Type      NotificationType
	Title     string
	Message   string
	BookingID *uint
	ReviewID  *uint
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time

	Booking *Booking
	Review  *Review
}

// OTP purposes; each purpose has its own code and rate-limit window.
const (
	OTPPurposeRegister = "register"
	OTPPurposeReset    = "reset"
)

// OTPRequest represents a generated one-time code
type OTPRequest struct {
	Email     string
	Purpose   string
	Code      string
	ExpiresAt time.Time
	Attempts  int
}

// AuthRequest represents authentication credentials
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	SessionID    string
	ExpiresIn    int64
}

// Session represents a user session
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// DashboardData summarizes an owner's fleet activity
type DashboardData struct {
	TotalCars         int64     `json:"totalCars"`
	TotalBookings     int64     `json:"totalBookings"`
	PendingBookings   int64     `json:"pendingBookings"`
	CompletedBookings int64     `json:"completedBookings"`
	MonthlyRevenue    float64   `json:"monthlyRevenue"`
	RecentBookings    []Booking `json:"recentBookings"`
}
