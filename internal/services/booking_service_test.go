package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
	"github.com/vishalthakur2004/CarRental-sub001/internal/mocks"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func availableCar(ownerID uint) *domain.Car {
	return &domain.Car{
		ID:          10,
		OwnerID:     &ownerID,
		Brand:       "BMW",
		Model:       "X5",
		PricePerDay: 50,
		IsAvailable: true,
	}
}

func TestBookingCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("pending booking with computed price", func(t *testing.T) {
		cars := mocks.NewMockCarRepository()
		cars.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Car, error) {
			return availableCar(7), nil
		}
		bookings := mocks.NewMockBookingRepository()
		var created *domain.Booking
		bookings.CreateFunc = func(ctx context.Context, b *domain.Booking) error {
			b.ID = 99
			created = b
			return nil
		}
		notifier := mocks.NewMockNotificationService()

		svc := NewBookingService(bookings, cars, notifier, mocks.NewMockSMSService())
		booking, err := svc.Create(ctx, 3, 10, date("2024-01-01"), date("2024-01-04"))

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, domain.BookingPending, booking.Status)
		assert.Equal(t, uint(7), booking.OwnerID)
		assert.Equal(t, 150.0, booking.Price)

		// Both the renter and the owner are notified.
		require.Len(t, notifier.Notified, 2)
		assert.Equal(t, uint(3), notifier.Notified[0].UserID)
		assert.Equal(t, uint(7), notifier.Notified[1].UserID)
		assert.Equal(t, domain.NotifyBookingCreated, notifier.Notified[0].Type)
	})

	t.Run("return before pickup", func(t *testing.T) {
		svc := NewBookingService(mocks.NewMockBookingRepository(), mocks.NewMockCarRepository(),
			mocks.NewMockNotificationService(), mocks.NewMockSMSService())
		_, err := svc.Create(ctx, 3, 10, date("2024-01-04"), date("2024-01-01"))
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})

	t.Run("car toggled unavailable", func(t *testing.T) {
		cars := mocks.NewMockCarRepository()
		cars.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Car, error) {
			car := availableCar(7)
			car.IsAvailable = false
			return car, nil
		}
		svc := NewBookingService(mocks.NewMockBookingRepository(), cars,
			mocks.NewMockNotificationService(), mocks.NewMockSMSService())
		_, err := svc.Create(ctx, 3, 10, date("2024-01-01"), date("2024-01-04"))
		assert.ErrorIs(t, err, domain.ErrCarUnavailable)
	})

	t.Run("orphaned listing cannot be booked", func(t *testing.T) {
		cars := mocks.NewMockCarRepository()
		cars.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Car, error) {
			car := availableCar(7)
			car.OwnerID = nil
			return car, nil
		}
		svc := NewBookingService(mocks.NewMockBookingRepository(), cars,
			mocks.NewMockNotificationService(), mocks.NewMockSMSService())
		_, err := svc.Create(ctx, 3, 10, date("2024-01-01"), date("2024-01-04"))
		assert.ErrorIs(t, err, domain.ErrCarUnavailable)
	})

	t.Run("overlapping active booking blocks", func(t *testing.T) {
		cars := mocks.NewMockCarRepository()
		cars.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Car, error) {
			return availableCar(7), nil
		}
		bookings := mocks.NewMockBookingRepository()
		bookings.CountOverlappingFunc = func(ctx context.Context, carID uint, pickup, ret time.Time, statuses []domain.BookingStatus) (int64, error) {
			assert.Equal(t, domain.ActiveBookingStatuses, statuses)
			return 1, nil
		}
		svc := NewBookingService(bookings, cars,
			mocks.NewMockNotificationService(), mocks.NewMockSMSService())
		_, err := svc.Create(ctx, 3, 10, date("2024-01-01"), date("2024-01-04"))
		assert.ErrorIs(t, err, domain.ErrDatesUnavailable)
	})
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	cars := mocks.NewMockCarRepository()
	cars.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Car, error) {
		return availableCar(7), nil
	}

	tests := []struct {
		name      string
		overlaps  int64
		available bool
	}{
		{"free range", 0, true},
		{"blocked range", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := mocks.NewMockBookingRepository()
			bookings.CountOverlappingFunc = func(ctx context.Context, carID uint, pickup, ret time.Time, statuses []domain.BookingStatus) (int64, error) {
				// Only active bookings block the calendar.
				assert.Equal(t, domain.ActiveBookingStatuses, statuses)
				return tt.overlaps, nil
			}
			svc := NewBookingService(bookings, cars,
				mocks.NewMockNotificationService(), mocks.NewMockSMSService())
			available, err := svc.CheckAvailability(ctx, 10, date("2024-01-01"), date("2024-01-04"))
			require.NoError(t, err)
			assert.Equal(t, tt.available, available)
		})
	}
}

func TestChangeStatusOwner(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      domain.BookingStatus
		wantErr error
	}{
		{"confirm pending", domain.BookingPending, domain.BookingBooked, nil},
		{"start rental", domain.BookingBooked, domain.BookingOnRent, nil},
		{"complete rental", domain.BookingOnRent, domain.BookingCompleted, nil},
		{"cancel pending", domain.BookingPending, domain.BookingCancelled, nil},
		{"skip straight to on_rent", domain.BookingPending, domain.BookingOnRent, domain.ErrIllegalTransition},
		{"complete a pending booking", domain.BookingPending, domain.BookingCompleted, domain.ErrIllegalTransition},
		{"resurrect cancelled", domain.BookingCancelled, domain.BookingBooked, domain.ErrIllegalTransition},
		{"reopen completed", domain.BookingCompleted, domain.BookingOnRent, domain.ErrIllegalTransition},
		{"unknown status", domain.BookingPending, domain.BookingStatus("shredded"), domain.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := mocks.NewMockBookingRepository()
			booking := &domain.Booking{ID: 5, CarID: 10, UserID: 3, OwnerID: 7, Status: tt.from}
			bookings.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Booking, error) {
				return booking, nil
			}
			bookings.FindByIDWithRefsFunc = func(ctx context.Context, id uint) (*domain.Booking, error) {
				full := *booking
				full.Car = availableCar(7)
				full.User = &domain.User{ID: 3, Name: "Ana"}
				return &full, nil
			}

			svc := NewBookingService(bookings, mocks.NewMockCarRepository(),
				mocks.NewMockNotificationService(), mocks.NewMockSMSService())
			updated, err := svc.ChangeStatus(ctx, 7, domain.RoleOwner, 5, tt.to, "")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
			if tt.to == domain.BookingCompleted {
				assert.NotNil(t, updated.CompletedAt)
			}
		})
	}

	t.Run("foreign booking rejected", func(t *testing.T) {
		bookings := mocks.NewMockBookingRepository()
		bookings.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Booking, error) {
			return &domain.Booking{ID: 5, UserID: 3, OwnerID: 99, Status: domain.BookingPending}, nil
		}
		svc := NewBookingService(bookings, mocks.NewMockCarRepository(),
			mocks.NewMockNotificationService(), mocks.NewMockSMSService())
		_, err := svc.ChangeStatus(ctx, 7, domain.RoleOwner, 5, domain.BookingBooked, "")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestChangeStatusUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      domain.BookingStatus
		actorID uint
		wantErr error
	}{
		{"cancel pending", domain.BookingPending, domain.BookingCancelled, 3, nil},
		{"cancel booked", domain.BookingBooked, domain.BookingCancelled, 3, nil},
		{"cancel while on rent", domain.BookingOnRent, domain.BookingCancelled, 3, domain.ErrBookingNotCancelable},
		{"cancel completed", domain.BookingCompleted, domain.BookingCancelled, 3, domain.ErrBookingNotCancelable},
		{"user confirms own booking", domain.BookingPending, domain.BookingBooked, 3, domain.ErrUserCancelOnly},
		{"someone else's booking", domain.BookingPending, domain.BookingCancelled, 4, domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := mocks.NewMockBookingRepository()
			booking := &domain.Booking{ID: 5, CarID: 10, UserID: 3, OwnerID: 7, Status: tt.from}
			bookings.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Booking, error) {
				return booking, nil
			}
			bookings.FindByIDWithRefsFunc = func(ctx context.Context, id uint) (*domain.Booking, error) {
				full := *booking
				full.Car = availableCar(7)
				return &full, nil
			}

			svc := NewBookingService(bookings, mocks.NewMockCarRepository(),
				mocks.NewMockNotificationService(), mocks.NewMockSMSService())
			updated, err := svc.ChangeStatus(ctx, tt.actorID, domain.RoleUser, 5, tt.to, "changed plans")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BookingCancelled, updated.Status)
			assert.Equal(t, "changed plans", updated.CancelReason)
		})
	}
}

func TestChangeStatusNotifications(t *testing.T) {
	ctx := context.Background()

	bookings := mocks.NewMockBookingRepository()
	booking := &domain.Booking{ID: 5, CarID: 10, UserID: 3, OwnerID: 7, Status: domain.BookingPending}
	bookings.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Booking, error) {
		return booking, nil
	}
	bookings.FindByIDWithRefsFunc = func(ctx context.Context, id uint) (*domain.Booking, error) {
		full := *booking
		full.Car = availableCar(7)
		full.User = &domain.User{ID: 3, Name: "Ana", Phone: "+5511999999999"}
		return &full, nil
	}
	notifier := mocks.NewMockNotificationService()
	sms := mocks.NewMockSMSService()

	svc := NewBookingService(bookings, mocks.NewMockCarRepository(), notifier, sms)
	_, err := svc.ChangeStatus(ctx, 7, domain.RoleOwner, 5, domain.BookingBooked, "")
	require.NoError(t, err)

	require.Len(t, notifier.Notified, 2)
	assert.Equal(t, domain.NotifyBookingConfirmed, notifier.Notified[0].Type)
	assert.Equal(t, uint(3), notifier.Notified[0].UserID)
	assert.Equal(t, uint(7), notifier.Notified[1].UserID)

	// The renter with a phone on file also gets a text.
	require.Len(t, sms.Sent, 1)
	assert.Equal(t, "+5511999999999", sms.Sent[0].To)
}
