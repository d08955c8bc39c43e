package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
}

type OTPConfig struct {
	TTL          string `yaml:"ttl"`
	Length       int    `yaml:"length"`
	MaxAttempts  int    `yaml:"max_attempts"`
	SendWindow   string `yaml:"send_window"`
	SendLimit    int    `yaml:"send_limit"`
	VerifyWindow string `yaml:"verify_window"`
	VerifyLimit  int    `yaml:"verify_limit"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type StorageConfig struct {
	S3Region  string `yaml:"s3_region"`
	S3Bucket  string `yaml:"s3_bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UploadDir string `yaml:"upload_dir"`
}

type NotificationsConfig struct {
	Retention     string `yaml:"retention"`
	SweepInterval string `yaml:"sweep_interval"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App           AppConfig           `yaml:"app"`
	Database      DatabaseConfig      `yaml:"database"`
	Redis         RedisConfig         `yaml:"redis"`
	JWT           JWTConfig           `yaml:"jwt"`
	OTP           OTPConfig           `yaml:"otp"`
	SMTP          SMTPConfig          `yaml:"smtp"`
	Twilio        TwilioConfig        `yaml:"twilio"`
	Storage       StorageConfig       `yaml:"storage"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Casbin        CasbinConfig        `yaml:"casbin"`
}

// Config is the resolved runtime configuration. Every setting falls back
// to a default except the JWT secret, which must be provided.
type Config struct {
	Port    string
	GinMode string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret  string
	JWTIssuer  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	OTPTTL          time.Duration
	OTPLength       int
	OTPMaxAttempts  int
	OTPSendWindow   time.Duration
	OTPSendLimit    int
	OTPVerifyWindow time.Duration
	OTPVerifyLimit  int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	TwilioSID   string
	TwilioToken string
	TwilioFrom  string

	S3Region  string
	S3Bucket  string
	AccessKey string
	SecretKey string
	UploadDir string

	NotifyRetention time.Duration
	SweepInterval   time.Duration

	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func duration(s, def string) (time.Duration, error) {
	if s == "" {
		s = def
	}
	return time.ParseDuration(s)
}

// Load reads config/config.yml if present and applies environment
// overrides on top. A missing file is not an error; a missing JWT
// secret is.
func Load() (*Config, error) {
	file, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		file = &ConfigFile{}
	}

	accTTL, err := duration(env("JWT_ACCESS_TTL", file.JWT.AccessTTL), "15m")
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}
	refTTL, err := duration(env("JWT_REFRESH_TTL", file.JWT.RefreshTTL), "168h")
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}
	otpTTL, err := duration(env("OTP_TTL", file.OTP.TTL), "5m")
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}
	sendWnd, err := duration(env("OTP_SEND_WINDOW", file.OTP.SendWindow), "30s")
	if err != nil {
		return nil, fmt.Errorf("invalid OTP send window: %w", err)
	}
	verifyWnd, err := duration(env("OTP_VERIFY_WINDOW", file.OTP.VerifyWindow), "60s")
	if err != nil {
		return nil, fmt.Errorf("invalid OTP verify window: %w", err)
	}
	retention, err := duration(env("NOTIFY_RETENTION", file.Notifications.Retention), "168h")
	if err != nil {
		return nil, fmt.Errorf("invalid notification retention: %w", err)
	}
	sweep, err := duration(env("NOTIFY_SWEEP_INTERVAL", file.Notifications.SweepInterval), "24h")
	if err != nil {
		return nil, fmt.Errorf("invalid notification sweep interval: %w", err)
	}

	port := file.App.Port
	if port == 0 {
		port = 3000
	}

	cfg := &Config{
		Port:    env("PORT", fmt.Sprintf("%d", port)),
		GinMode: env("GIN_MODE", orDefault(file.App.GinMode, "release")),

		DSN: env("DATABASE_DSN", orDefault(file.Database.DSN,
			"host=localhost user=postgres password=postgres dbname=carrental port=5432 sslmode=disable")),

		RedisAddr:     env("REDIS_ADDR", orDefault(file.Redis.Addr, "localhost:6379")),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       envInt("REDIS_DB", file.Redis.DB),

		JWTSecret:  env("JWT_SECRET", file.JWT.Secret),
		JWTIssuer:  env("JWT_ISSUER", orDefault(file.JWT.Issuer, "carrental")),
		AccessTTL:  accTTL,
		RefreshTTL: refTTL,

		OTPTTL:          otpTTL,
		OTPLength:       orDefaultInt(envInt("OTP_LENGTH", file.OTP.Length), 6),
		OTPMaxAttempts:  orDefaultInt(envInt("OTP_MAX_ATTEMPTS", file.OTP.MaxAttempts), 5),
		OTPSendWindow:   sendWnd,
		OTPSendLimit:    orDefaultInt(envInt("OTP_SEND_LIMIT", file.OTP.SendLimit), 1),
		OTPVerifyWindow: verifyWnd,
		OTPVerifyLimit:  orDefaultInt(envInt("OTP_VERIFY_LIMIT", file.OTP.VerifyLimit), 5),

		SMTPHost:     env("SMTP_HOST", file.SMTP.Host),
		SMTPPort:     orDefaultInt(envInt("SMTP_PORT", file.SMTP.Port), 587),
		SMTPUsername: env("SMTP_USERNAME", file.SMTP.Username),
		SMTPPassword: env("SMTP_PASSWORD", file.SMTP.Password),
		SMTPFrom:     env("SMTP_FROM", file.SMTP.From),

		TwilioSID:   env("TWILIO_ACCOUNT_SID", file.Twilio.AccountSID),
		TwilioToken: env("TWILIO_AUTH_TOKEN", file.Twilio.AuthToken),
		TwilioFrom:  env("TWILIO_FROM_NUMBER", file.Twilio.FromNumber),

		S3Region:  env("S3_REGION", file.Storage.S3Region),
		S3Bucket:  env("S3_BUCKET", file.Storage.S3Bucket),
		AccessKey: env("AWS_ACCESS_KEY_ID", file.Storage.AccessKey),
		SecretKey: env("AWS_SECRET_ACCESS_KEY", file.Storage.SecretKey),
		UploadDir: env("UPLOAD_DIR", orDefault(file.Storage.UploadDir, "uploads")),

		NotifyRetention: retention,
		SweepInterval:   sweep,

		CasbinModelPath: env("CASBIN_MODEL_PATH", orDefault(file.Casbin.ModelPath, "config/casbin_model.conf")),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is required (JWT_SECRET or jwt.secret)")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
