package domain

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"pending to booked", BookingPending, BookingBooked, true},
		{"pending to cancelled", BookingPending, BookingCancelled, true},
		{"pending to on_rent skips confirmation", BookingPending, BookingOnRent, false},
		{"pending to completed skips confirmation", BookingPending, BookingCompleted, false},
		{"booked to on_rent", BookingBooked, BookingOnRent, true},
		{"booked to cancelled", BookingBooked, BookingCancelled, true},
		{"booked to completed", BookingBooked, BookingCompleted, true},
		{"booked back to pending", BookingBooked, BookingPending, false},
		{"on_rent to completed", BookingOnRent, BookingCompleted, true},
		{"on_rent to cancelled", BookingOnRent, BookingCancelled, true},
		{"on_rent back to booked", BookingOnRent, BookingBooked, false},
		{"cancelled is terminal", BookingCancelled, BookingBooked, false},
		{"completed is terminal", BookingCompleted, BookingOnRent, false},
		{"cancelled cannot be resurrected", BookingCancelled, BookingPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{BookingPending, BookingBooked, BookingOnRent, BookingCancelled, BookingCompleted} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if BookingStatus("refunded").Valid() {
		t.Error("unknown status should not be valid")
	}
}

func TestRentalPrice(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad test date %s: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name        string
		pickup      time.Time
		ret         time.Time
		pricePerDay float64
		want        float64
	}{
		{"three full days", day("2024-01-01"), day("2024-01-04"), 50, 150},
		{"single day", day("2024-01-01"), day("2024-01-02"), 80, 80},
		{"partial day rounds up", day("2024-01-01"), day("2024-01-02").Add(6 * time.Hour), 100, 200},
		{"same instant charges one day", day("2024-01-01"), day("2024-01-01"), 60, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RentalPrice(tt.pickup, tt.ret, tt.pricePerDay); got != tt.want {
				t.Errorf("RentalPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNotificationTypeForStatus(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   NotificationType
	}{
		{BookingBooked, NotifyBookingConfirmed},
		{BookingOnRent, NotifyBookingOnRent},
		{BookingCancelled, NotifyBookingCancelled},
		{BookingCompleted, NotifyBookingCompleted},
		{BookingPending, NotifyBookingCreated},
	}
	for _, tt := range tests {
		if got := NotificationTypeForStatus(tt.status); got != tt.want {
			t.Errorf("NotificationTypeForStatus(%s) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestRateLimitError(t *testing.T) {
	err := &RateLimitError{Operation: "send-otp", RetryAfter: 25}
	rl, ok := IsRateLimit(err)
	if !ok {
		t.Fatal("expected IsRateLimit to match")
	}
	if rl.RetryAfter != 25 {
		t.Errorf("expected RetryAfter 25, got %d", rl.RetryAfter)
	}
	if _, ok := IsRateLimit(ErrOTPInvalid); ok {
		t.Error("plain errors must not match IsRateLimit")
	}
}
