package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// OTPServiceImpl implements domain.OTPService using Redis persistence.
// Codes are keyed by (purpose, email); a registration code can never
// satisfy a password-reset verification.
type OTPServiceImpl struct {
	mailSvc     domain.MailService
	limiter     domain.RateLimiter
	redisClient *redis.Client
	config      OTPConfig
}

type OTPConfig struct {
	Length      int
	TTL         time.Duration
	MaxAttempts int
}

// NewOTPService creates a new Redis-based OTP service
func NewOTPService(mailSvc domain.MailService, limiter domain.RateLimiter, redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		mailSvc:     mailSvc,
		limiter:     limiter,
		redisClient: redisClient,
		config:      config,
	}
}

func otpKey(purpose, email string) string  { return fmt.Sprintf("otp:%s:%s", purpose, email) }
func attsKey(purpose, email string) string { return fmt.Sprintf("otp:att:%s:%s", purpose, email) }

// Send implements domain.OTPService. Resends go through the same path
// and the same cooldown. The email send is load-bearing: on failure the
// stored code is rolled back and the error surfaced.
func (s *OTPServiceImpl) Send(ctx context.Context, email, purpose string) (*domain.OTPRequest, error) {
	allowed, wait, err := s.limiter.Allow(ctx, RateOpSend, email)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, &domain.RateLimitError{Operation: "send-otp", RetryAfter: wait}
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	key, attempts := otpKey(purpose, email), attsKey(purpose, email)
	if err := s.redisClient.Set(ctx, key, code, s.config.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}
	if err := s.redisClient.Set(ctx, attempts, 0, s.config.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to initialize attempts counter: %w", err)
	}

	otpReq := &domain.OTPRequest{
		Email:     email,
		Purpose:   purpose,
		Code:      code,
		ExpiresAt: time.Now().Add(s.config.TTL),
		Attempts:  0,
	}

	subject := "Your verification code"
	body := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.mailSvc.SendEmail(email, subject, body); err != nil {
		s.redisClient.Del(ctx, key, attempts)
		return nil, fmt.Errorf("failed to send OTP email: %w", err)
	}

	return otpReq, nil
}

// Verify implements domain.OTPService. Every failed match counts; at
// MaxAttempts cumulative failures the record is invalidated.
func (s *OTPServiceImpl) Verify(ctx context.Context, email, purpose, code string) error {
	allowed, wait, err := s.limiter.Allow(ctx, RateOpVerify, email)
	if err != nil {
		return err
	}
	if !allowed {
		return &domain.RateLimitError{Operation: "verify-otp", RetryAfter: wait}
	}

	key, attemptsKey := otpKey(purpose, email), attsKey(purpose, email)

	storedCode, err := s.redisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return domain.ErrOTPNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get OTP: %w", err)
	}

	if storedCode != code {
		attempts, err := s.redisClient.Incr(ctx, attemptsKey).Result()
		if err != nil {
			return fmt.Errorf("failed to increment attempts: %w", err)
		}
		if attempts >= int64(s.config.MaxAttempts) {
			s.redisClient.Del(ctx, key, attemptsKey)
			return domain.ErrOTPMaxAttempts
		}
		return domain.ErrOTPInvalid
	}

	// Success invalidates the code.
	s.redisClient.Del(ctx, key, attemptsKey)
	return nil
}

// generateSecureCode generates a cryptographically secure numeric code
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
