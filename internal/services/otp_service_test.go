package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
	"github.com/vishalthakur2004/CarRental-sub001/internal/mocks"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func newOTPFixture(t *testing.T) (domain.OTPService, *mocks.MockMailService, *miniredis.Miniredis) {
	t.Helper()

	mr, client := setupTestRedis(t)
	mailSvc := mocks.NewMockMailService()
	svc := NewOTPService(mailSvc, mocks.NewMockRateLimiter(), client, OTPConfig{
		Length:      6,
		TTL:         5 * time.Minute,
		MaxAttempts: 3,
	})
	return svc, mailSvc, mr
}

func TestOTPSendAndVerify(t *testing.T) {
	ctx := context.Background()
	svc, mailSvc, _ := newOTPFixture(t)

	otp, err := svc.Send(ctx, "ana@example.com", domain.OTPPurposeRegister)
	require.NoError(t, err)
	assert.Len(t, otp.Code, 6)

	// The code travels by email.
	require.Len(t, mailSvc.Sent, 1)
	assert.Equal(t, "ana@example.com", mailSvc.Sent[0].To)
	assert.Contains(t, mailSvc.Sent[0].Body, otp.Code)

	require.NoError(t, svc.Verify(ctx, "ana@example.com", domain.OTPPurposeRegister, otp.Code))

	// Success consumes the code.
	err = svc.Verify(ctx, "ana@example.com", domain.OTPPurposeRegister, otp.Code)
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPPurposeIsolation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newOTPFixture(t)

	otp, err := svc.Send(ctx, "ana@example.com", domain.OTPPurposeRegister)
	require.NoError(t, err)

	// A registration code never satisfies a password-reset verification.
	err = svc.Verify(ctx, "ana@example.com", domain.OTPPurposeReset, otp.Code)
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPMaxAttempts(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newOTPFixture(t)

	otp, err := svc.Send(ctx, "ana@example.com", domain.OTPPurposeRegister)
	require.NoError(t, err)

	err = svc.Verify(ctx, "ana@example.com", domain.OTPPurposeRegister, "000000")
	assert.ErrorIs(t, err, domain.ErrOTPInvalid)
	err = svc.Verify(ctx, "ana@example.com", domain.OTPPurposeRegister, "000000")
	assert.ErrorIs(t, err, domain.ErrOTPInvalid)

	// Third failure invalidates the record.
	err = svc.Verify(ctx, "ana@example.com", domain.OTPPurposeRegister, "000000")
	assert.ErrorIs(t, err, domain.ErrOTPMaxAttempts)

	// Even the right code is dead now.
	err = svc.Verify(ctx, "ana@example.com", domain.OTPPurposeRegister, otp.Code)
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPExpiry(t *testing.T) {
	ctx := context.Background()
	svc, _, mr := newOTPFixture(t)

	otp, err := svc.Send(ctx, "ana@example.com", domain.OTPPurposeRegister)
	require.NoError(t, err)

	mr.FastForward(6 * time.Minute)

	err = svc.Verify(ctx, "ana@example.com", domain.OTPPurposeRegister, otp.Code)
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPSendRateLimited(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)

	limiter := mocks.NewMockRateLimiter()
	limiter.AllowFunc = func(ctx context.Context, operation, key string) (bool, int64, error) {
		return false, 42, nil
	}
	svc := NewOTPService(mocks.NewMockMailService(), limiter, client, OTPConfig{
		Length: 6, TTL: 5 * time.Minute, MaxAttempts: 3,
	})

	_, err := svc.Send(ctx, "ana@example.com", domain.OTPPurposeRegister)
	rl, ok := domain.IsRateLimit(err)
	require.True(t, ok, "expected a rate limit error, got %v", err)
	assert.Equal(t, int64(42), rl.RetryAfter)
}

func TestOTPMailFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)

	mailSvc := mocks.NewMockMailService()
	mailSvc.SendEmailFunc = func(to, subject, body string) error {
		return errors.New("smtp unreachable")
	}
	svc := NewOTPService(mailSvc, mocks.NewMockRateLimiter(), client, OTPConfig{
		Length: 6, TTL: 5 * time.Minute, MaxAttempts: 3,
	})

	_, err := svc.Send(ctx, "ana@example.com", domain.OTPPurposeRegister)
	require.Error(t, err)

	// The undeliverable code must not linger.
	keys, err := client.Keys(ctx, "otp:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys)
}
