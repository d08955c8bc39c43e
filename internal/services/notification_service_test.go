package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
	"github.com/vishalthakur2004/CarRental-sub001/internal/mocks"
)

func TestNotifyIsBestEffort(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockNotificationRepository()
	repo.CreateFunc = func(ctx context.Context, n *domain.Notification) error {
		return errors.New("insert failed")
	}

	svc := NewNotificationService(repo, 7*24*time.Hour)

	// A failed insert must not panic or propagate.
	svc.Notify(ctx, 1, domain.NotifyBookingCreated, "Booking requested", "msg", nil, nil)
}

func TestNotifyPersistsRecord(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockNotificationRepository()
	var stored *domain.Notification
	repo.CreateFunc = func(ctx context.Context, n *domain.Notification) error {
		stored = n
		return nil
	}

	svc := NewNotificationService(repo, 7*24*time.Hour)
	bookingID := uint(5)
	svc.Notify(ctx, 1, domain.NotifyBookingConfirmed, "Booking booked", "confirmed", &bookingID, nil)

	require.NotNil(t, stored)
	assert.Equal(t, uint(1), stored.UserID)
	assert.Equal(t, domain.NotifyBookingConfirmed, stored.Type)
	assert.Equal(t, &bookingID, stored.BookingID)
}

func TestPurgeReadUsesRetentionCutoff(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockNotificationRepository()
	var gotCutoff time.Time
	repo.DeleteReadBeforeFunc = func(ctx context.Context, cutoff time.Time) (int64, error) {
		gotCutoff = cutoff
		return 3, nil
	}

	retention := 7 * 24 * time.Hour
	svc := NewNotificationService(repo, retention)

	deleted, err := svc.PurgeRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	want := time.Now().Add(-retention)
	assert.WithinDuration(t, want, gotCutoff, time.Minute)
}

func TestRetentionSweepStopsOnCancel(t *testing.T) {
	repo := mocks.NewMockNotificationRepository()
	svc := NewNotificationService(repo, 7*24*time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.RunRetentionSweep(ctx, time.Hour)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep did not stop after context cancellation")
	}
}
