package domain

import (
	"errors"
	"fmt"
)

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidRole        = errors.New("invalid role")
)

// OTP errors
var (
	ErrOTPExpired     = errors.New("otp has expired")
	ErrOTPInvalid     = errors.New("invalid otp code")
	ErrOTPMaxAttempts = errors.New("maximum otp attempts exceeded")
	ErrOTPNotFound    = errors.New("otp not found")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("unauthorized access")
	ErrNotOwner     = errors.New("caller does not own this resource")
)

// Car errors
var (
	ErrCarNotFound    = errors.New("car not found")
	ErrCarUnavailable = errors.New("car is not available")
)

// Booking errors
var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrDatesUnavailable     = errors.New("car is not available for the selected dates")
	ErrInvalidDateRange     = errors.New("return date must be after pickup date")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrIllegalTransition    = errors.New("booking status transition not allowed")
	ErrUserCancelOnly       = errors.New("users may only cancel their bookings")
	ErrBookingNotCancelable = errors.New("booking can no longer be cancelled")
)

// Review errors
var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewExists        = errors.New("review already exists for this booking")
	ErrReplyExists         = errors.New("reply already exists for this review")
	ErrBookingNotCompleted = errors.New("booking is not completed")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrInvalidCommentLen   = errors.New("comment must be between 10 and 500 characters")
	ErrInvalidReplyLen     = errors.New("reply must be between 10 and 400 characters")
)

// Notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// RateLimitError is returned when an operation is inside its cooldown
// window; RetryAfter carries the remaining wait in seconds.
type RateLimitError struct {
	Operation  string
	RetryAfter int64
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many %s requests, retry in %d seconds", e.Operation, e.RetryAfter)
}

// IsRateLimit reports whether err is a cooldown error and extracts the
// remaining wait.
func IsRateLimit(err error) (*RateLimitError, bool) {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl, true
	}
	return nil, false
}
