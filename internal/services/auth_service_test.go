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

type authFixture struct {
	userRepo    *mocks.MockUserRepository
	sessionRepo *mocks.MockSessionRepository
	passwordSvc *mocks.MockPasswordService
	tokenSvc    *mocks.MockTokenService
	otpSvc      *mocks.MockOTPService
}

func newAuthFixture() *authFixture {
	return &authFixture{
		userRepo:    mocks.NewMockUserRepository(),
		sessionRepo: mocks.NewMockSessionRepository(),
		passwordSvc: mocks.NewMockPasswordService(),
		tokenSvc:    mocks.NewMockTokenService(),
		otpSvc:      mocks.NewMockOTPService(),
	}
}

func (f *authFixture) service() domain.AuthService {
	return NewAuthService(f.userRepo, f.sessionRepo, f.passwordSvc, f.tokenSvc, f.otpSvc,
		15*time.Minute, 7*24*time.Hour)
}

func verifiedUser() *domain.User {
	return &domain.User{
		ID:            1,
		Name:          "Ana",
		Email:         "ana@example.com",
		PasswordHash:  "hashed_secret123",
		Role:          domain.RoleUser,
		EmailVerified: true,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unverified user and sends code", func(t *testing.T) {
		f := newAuthFixture()
		var created *domain.User
		f.userRepo.CreateFunc = func(ctx context.Context, u *domain.User) error {
			u.ID = 1
			created = u
			return nil
		}
		var sentPurpose string
		f.otpSvc.SendFunc = func(ctx context.Context, email, purpose string) (*domain.OTPRequest, error) {
			sentPurpose = purpose
			return &domain.OTPRequest{Email: email, Purpose: purpose}, nil
		}

		user, err := f.service().Register(ctx, "Ana", "ana@example.com", "secret123")

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.False(t, user.EmailVerified)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.Equal(t, "hashed_secret123", user.PasswordHash)
		assert.Equal(t, domain.OTPPurposeRegister, sentPurpose)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return verifiedUser(), nil
		}
		_, err := f.service().Register(ctx, "Ana", "ana@example.com", "secret123")
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues tokens and a session", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return verifiedUser(), nil
		}
		var storedSession *domain.Session
		f.sessionRepo.CreateFunc = func(ctx context.Context, s *domain.Session) error {
			storedSession = s
			return nil
		}

		result, err := f.service().Login(ctx, "ana@example.com", "secret123")

		require.NoError(t, err)
		require.NotNil(t, storedSession)
		assert.Equal(t, storedSession.ID, result.SessionID)
		assert.Equal(t, "mock_access_token", result.AccessToken)
		assert.Equal(t, "mock_refresh_token", result.RefreshToken)
		assert.Equal(t, int64((15 * time.Minute).Seconds()), result.ExpiresIn)
	})

	t.Run("unverified email blocked", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			u := verifiedUser()
			u.EmailVerified = false
			return u, nil
		}
		_, err := f.service().Login(ctx, "ana@example.com", "secret123")
		assert.ErrorIs(t, err, domain.ErrEmailNotVerified)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return verifiedUser(), nil
		}
		_, err := f.service().Login(ctx, "ana@example.com", "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown account looks like bad credentials", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.service().Login(ctx, "ghost@example.com", "secret123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh issues a new access token", func(t *testing.T) {
		f := newAuthFixture()
		f.tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
			return &domain.TokenClaims{UserID: 1, Role: domain.RoleUser, SessionID: "sess-1"}, nil
		}
		f.userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return verifiedUser(), nil
		}

		result, err := f.service().RefreshToken(ctx, "refresh-token")
		require.NoError(t, err)
		assert.Equal(t, "mock_access_token", result.AccessToken)
		assert.Equal(t, "sess-1", result.SessionID)
	})

	t.Run("expired session rejected", func(t *testing.T) {
		f := newAuthFixture()
		f.tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
			return &domain.TokenClaims{UserID: 1, SessionID: "sess-1"}, nil
		}
		f.sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
			return &domain.Session{ID: sessionID, UserID: 1, ExpiresAt: time.Now().Add(-time.Hour)}, nil
		}
		_, err := f.service().RefreshToken(ctx, "refresh-token")
		assert.ErrorIs(t, err, domain.ErrSessionExpired)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.service().RefreshToken(ctx, "garbage")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("verified code updates the hash", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return verifiedUser(), nil
		}
		var verifiedPurpose, storedHash string
		f.otpSvc.VerifyFunc = func(ctx context.Context, email, purpose, code string) error {
			verifiedPurpose = purpose
			return nil
		}
		f.userRepo.UpdatePasswordFunc = func(ctx context.Context, email, passwordHash string) error {
			storedHash = passwordHash
			return nil
		}

		err := f.service().ResetPassword(ctx, "ana@example.com", "123456", "newsecret")
		require.NoError(t, err)
		assert.Equal(t, domain.OTPPurposeReset, verifiedPurpose)
		assert.Equal(t, "hashed_newsecret", storedHash)
	})

	t.Run("registration code cannot reset a password", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return verifiedUser(), nil
		}
		f.otpSvc.VerifyFunc = func(ctx context.Context, email, purpose, code string) error {
			if purpose != domain.OTPPurposeReset {
				t.Fatalf("expected reset purpose, got %q", purpose)
			}
			return domain.ErrOTPNotFound
		}
		err := f.service().ResetPassword(ctx, "ana@example.com", "123456", "newsecret")
		assert.ErrorIs(t, err, domain.ErrOTPNotFound)
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newAuthFixture()
		err := f.service().ResetPassword(ctx, "ghost@example.com", "123456", "newsecret")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPromoteToOwner(t *testing.T) {
	f := newAuthFixture()
	var gotRole string
	f.userRepo.UpdateRoleFunc = func(ctx context.Context, userID uint, role string) error {
		gotRole = role
		return nil
	}
	require.NoError(t, f.service().PromoteToOwner(context.Background(), 1))
	assert.Equal(t, domain.RoleOwner, gotRole)
}
