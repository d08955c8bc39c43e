package app

import (
	"context"
	"fmt"
	"log"
	nethttp "net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
	"github.com/vishalthakur2004/CarRental-sub001/internal/config"
	httprouter "github.com/vishalthakur2004/CarRental-sub001/internal/http"
	"github.com/vishalthakur2004/CarRental-sub001/internal/http/handlers"
	"github.com/vishalthakur2004/CarRental-sub001/internal/http/middleware"
	"github.com/vishalthakur2004/CarRental-sub001/internal/infrastructure/auth"
	"github.com/vishalthakur2004/CarRental-sub001/internal/infrastructure/database"
	"github.com/vishalthakur2004/CarRental-sub001/internal/infrastructure/notifications"
	"github.com/vishalthakur2004/CarRental-sub001/internal/infrastructure/repositories"
	"github.com/vishalthakur2004/CarRental-sub001/internal/infrastructure/storage"
	"github.com/vishalthakur2004/CarRental-sub001/internal/services"
)

// Run wires the application together and serves HTTP until the server
// stops. It owns every infrastructure handle it opens.
func Run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	redisClient := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := redisClient.Ping(context.Background()); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	casbinSvc, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		return fmt.Errorf("failed to initialize Casbin: %w", err)
	}
	if err := seedPolicies(casbinSvc.E); err != nil {
		return fmt.Errorf("failed to seed authorization policies: %w", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	carRepo := repositories.NewCarRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	sessionRepo := repositories.NewSessionRepository(redisClient.Client, cfg.RefreshTTL)

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	mailSvc := notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	smsSvc := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)

	imageStorage, uploadsDir, err := buildStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize image storage: %w", err)
	}

	// Business services
	limiter := services.NewRateLimiter(redisClient.Client, map[string]services.RateWindow{
		services.RateOpSend:   {Window: cfg.OTPSendWindow, Limit: cfg.OTPSendLimit},
		services.RateOpVerify: {Window: cfg.OTPVerifyWindow, Limit: cfg.OTPVerifyLimit},
	})
	otpSvc := services.NewOTPService(mailSvc, limiter, redisClient.Client, services.OTPConfig{
		Length:      cfg.OTPLength,
		TTL:         cfg.OTPTTL,
		MaxAttempts: cfg.OTPMaxAttempts,
	})
	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, otpSvc, cfg.AccessTTL, cfg.RefreshTTL)
	notificationSvc := services.NewNotificationService(notificationRepo, cfg.NotifyRetention)
	bookingSvc := services.NewBookingService(bookingRepo, carRepo, notificationSvc, smsSvc)
	carSvc := services.NewCarService(carRepo, bookingRepo, imageStorage)
	reviewSvc := services.NewReviewService(reviewRepo, bookingRepo, carRepo, notificationSvc)

	// Read notifications are retained for a week, then swept.
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go notificationSvc.RunRetentionSweep(sweepCtx, cfg.SweepInterval)

	authMW := middleware.NewAuthMW(tokenSvc, sessionRepo)
	roleMW := middleware.NewRoleMW(casbinSvc.E)

	router := httprouter.BuildRouter(httprouter.Handlers{
		Auth:          handlers.NewAuthHandlers(authSvc),
		OTP:           handlers.NewOTPHandlers(otpSvc, userRepo),
		Cars:          handlers.NewCarHandlers(carSvc),
		Bookings:      handlers.NewBookingHandlers(bookingSvc),
		Reviews:       handlers.NewReviewHandlers(reviewSvc),
		Notifications: handlers.NewNotificationHandlers(notificationSvc),
	}, authMW, roleMW, uploadsDir)

	addr := ":" + cfg.Port
	log.Printf("SERVER_STARTING: addr=%s", addr)
	if err := router.Run(addr); err != nil && err != nethttp.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// buildStorage prefers S3 when fully configured and falls back to the
// local uploads directory otherwise. The second return value is the
// directory the router must serve, empty when S3 is in use.
func buildStorage(cfg *config.Config) (domain.ImageStorage, string, error) {
	if cfg.S3Bucket != "" && cfg.AccessKey != "" && cfg.SecretKey != "" {
		s3, err := storage.NewS3Service(cfg.AccessKey, cfg.SecretKey, cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			return nil, "", err
		}
		return s3, "", nil
	}

	log.Printf("STORAGE_FALLBACK: using local directory %s", cfg.UploadDir)
	local, err := storage.NewLocalService(cfg.UploadDir)
	if err != nil {
		return nil, "", err
	}
	return local, cfg.UploadDir, nil
}

// seedPolicies installs the default role policy set on first boot. A
// non-empty policy table is left alone so operators can adjust access
// without the seed overwriting them.
func seedPolicies(e *casbin.Enforcer) error {
	if existing := e.GetPolicy(); len(existing) > 0 {
		return nil
	}

	policies := [][]string{
		{"role_user", "/api/user/data", "GET"},
		{"role_user", "/api/user/logout", "POST"},
		{"role_user", "/api/bookings/create", "POST"},
		{"role_user", "/api/bookings/user", "GET"},
		{"role_user", "/api/bookings/change-status", "POST"},
		{"role_user", "/api/reviews/create", "POST"},
		{"role_user", "/api/reviews/user", "GET"},
		{"role_user", "/api/notifications", "GET"},
		{"role_user", "/api/notifications/unread-count", "GET"},
		{"role_user", "/api/notifications/:id/read", "PUT"},
		{"role_user", "/api/notifications/mark-all-read", "PUT"},
		{"role_user", "/api/owner/change-role", "POST"},

		{"role_owner", "/api/bookings/owner", "GET"},
		{"role_owner", "/api/reviews/:id/reply", "POST"},
		{"role_owner", "/api/reviews/owner", "GET"},
		{"role_owner", "/api/owner/add-car", "POST"},
		{"role_owner", "/api/owner/cars", "GET"},
		{"role_owner", "/api/owner/toggle-car", "POST"},
		{"role_owner", "/api/owner/delete-car", "POST"},
		{"role_owner", "/api/owner/update-car", "POST"},
		{"role_owner", "/api/owner/dashboard", "GET"},
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return err
	}

	// Owners keep every user capability.
	if _, err := e.AddGroupingPolicy("role_owner", "role_user"); err != nil {
		return err
	}

	return e.SavePolicy()
}
