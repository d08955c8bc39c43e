package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// BookingServiceImpl implements domain.BookingService
type BookingServiceImpl struct {
	bookings domain.BookingRepository
	cars     domain.CarRepository
	notifier domain.NotificationService
	smsSvc   domain.SMSService
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookings domain.BookingRepository,
	cars domain.CarRepository,
	notifier domain.NotificationService,
	smsSvc domain.SMSService,
) domain.BookingService {
	return &BookingServiceImpl{
		bookings: bookings,
		cars:     cars,
		notifier: notifier,
		smsSvc:   smsSvc,
	}
}

// CheckAvailability implements domain.BookingService. Only active
// bookings (pending, booked, on_rent) block the calendar; cancelled and
// completed ones are ignored. There is no lock between this check and
// booking creation, so concurrent requests for the same window can
// still race.
func (s *BookingServiceImpl) CheckAvailability(ctx context.Context, carID uint, pickup, ret time.Time) (bool, error) {
	if ret.Before(pickup) {
		return false, domain.ErrInvalidDateRange
	}

	if _, err := s.cars.FindByID(ctx, carID); err != nil {
		return false, err
	}

	count, err := s.bookings.CountOverlapping(ctx, carID, pickup, ret, domain.ActiveBookingStatuses)
	if err != nil {
		return false, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	return count == 0, nil
}

// Create implements domain.BookingService
func (s *BookingServiceImpl) Create(ctx context.Context, userID, carID uint, pickup, ret time.Time) (*domain.Booking, error) {
	if ret.Before(pickup) {
		return nil, domain.ErrInvalidDateRange
	}

	car, err := s.cars.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if !car.IsAvailable || car.OwnerID == nil {
		return nil, domain.ErrCarUnavailable
	}

	count, err := s.bookings.CountOverlapping(ctx, carID, pickup, ret, domain.ActiveBookingStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	if count > 0 {
		return nil, domain.ErrDatesUnavailable
	}

	booking := &domain.Booking{
		CarID:      carID,
		UserID:     userID,
		OwnerID:    *car.OwnerID,
		PickupDate: pickup,
		ReturnDate: ret,
		Status:     domain.BookingPending,
		Price:      domain.RentalPrice(pickup, ret, car.PricePerDay),
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	carName := fmt.Sprintf("%s %s", car.Brand, car.Model)
	dates := formatDates(pickup, ret)
	s.notifier.Notify(ctx, userID, domain.NotifyBookingCreated,
		"Booking requested",
		fmt.Sprintf("Your booking request for %s (%s) has been placed.", carName, dates),
		&booking.ID, nil)
	s.notifier.Notify(ctx, booking.OwnerID, domain.NotifyBookingCreated,
		"New booking request",
		fmt.Sprintf("You have a new booking request for %s (%s).", carName, dates),
		&booking.ID, nil)

	return booking, nil
}

// ChangeStatus implements domain.BookingService. Users may only cancel
// their own pending or booked reservations; owners follow the full
// lifecycle machine, which also rules out resurrecting cancelled or
// completed bookings.
func (s *BookingServiceImpl) ChangeStatus(ctx context.Context, actorID uint, actorRole string, bookingID uint, to domain.BookingStatus, reason string) (*domain.Booking, error) {
	if !to.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch actorRole {
	case domain.RoleOwner:
		if booking.OwnerID != actorID {
			return nil, domain.ErrUnauthorized
		}
		if !domain.CanTransition(booking.Status, to) {
			return nil, domain.ErrIllegalTransition
		}
	default:
		if booking.UserID != actorID {
			return nil, domain.ErrUnauthorized
		}
		if to != domain.BookingCancelled {
			return nil, domain.ErrUserCancelOnly
		}
		if booking.Status != domain.BookingPending && booking.Status != domain.BookingBooked {
			return nil, domain.ErrBookingNotCancelable
		}
	}

	booking.Status = to
	switch to {
	case domain.BookingCancelled:
		booking.CancelReason = reason
	case domain.BookingCompleted:
		now := time.Now()
		booking.CompletedAt = &now
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	// Re-read with car and user joined to build notification text.
	full, err := s.bookings.FindByIDWithRefs(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	s.dispatchStatusNotifications(ctx, full)

	return full, nil
}

// ListForUser implements domain.BookingService
func (s *BookingServiceImpl) ListForUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	return s.bookings.FindByUser(ctx, userID)
}

// ListForOwner implements domain.BookingService
func (s *BookingServiceImpl) ListForOwner(ctx context.Context, ownerID uint) ([]domain.Booking, error) {
	return s.bookings.FindByOwner(ctx, ownerID)
}

// BookedDates implements domain.BookingService
func (s *BookingServiceImpl) BookedDates(ctx context.Context, carID uint) ([]domain.BookedRange, error) {
	return s.bookings.BookedDates(ctx, carID)
}

func (s *BookingServiceImpl) dispatchStatusNotifications(ctx context.Context, booking *domain.Booking) {
	carName := "your car"
	if booking.Car != nil {
		carName = fmt.Sprintf("%s %s", booking.Car.Brand, booking.Car.Model)
	}
	dates := formatDates(booking.PickupDate, booking.ReturnDate)
	typ := domain.NotificationTypeForStatus(booking.Status)

	var userMsg, ownerMsg string
	switch booking.Status {
	case domain.BookingBooked:
		userMsg = fmt.Sprintf("Your booking for %s (%s) has been confirmed.", carName, dates)
		ownerMsg = fmt.Sprintf("You confirmed the booking for %s (%s).", carName, dates)
	case domain.BookingOnRent:
		userMsg = fmt.Sprintf("Your rental of %s has started. Enjoy the ride!", carName)
		ownerMsg = fmt.Sprintf("%s is now on rent (%s).", carName, dates)
	case domain.BookingCancelled:
		userMsg = fmt.Sprintf("Your booking for %s (%s) was cancelled.", carName, dates)
		if booking.CancelReason != "" {
			userMsg += " Reason: " + booking.CancelReason
		}
		ownerMsg = fmt.Sprintf("The booking for %s (%s) was cancelled.", carName, dates)
	case domain.BookingCompleted:
		userMsg = fmt.Sprintf("Your rental of %s is complete. You can now leave a review.", carName)
		ownerMsg = fmt.Sprintf("The rental of %s (%s) is complete.", carName, dates)
	default:
		userMsg = fmt.Sprintf("Your booking for %s is now %s.", carName, booking.Status)
		ownerMsg = fmt.Sprintf("The booking for %s is now %s.", carName, booking.Status)
	}

	title := fmt.Sprintf("Booking %s", booking.Status)
	s.notifier.Notify(ctx, booking.UserID, typ, title, userMsg, &booking.ID, nil)
	s.notifier.Notify(ctx, booking.OwnerID, typ, title, ownerMsg, &booking.ID, nil)

	// Best-effort SMS to the renter when a phone number is on file.
	if s.smsSvc != nil && booking.User != nil && booking.User.Phone != "" {
		if err := s.smsSvc.SendSMS(booking.User.Phone, userMsg); err != nil {
			log.Printf("BOOKING_SMS_FAILED: booking_id=%d error=%v", booking.ID, err)
		}
	}
}

func formatDates(pickup, ret time.Time) string {
	return fmt.Sprintf("%s to %s", pickup.Format("2006-01-02"), ret.Format("2006-01-02"))
}
