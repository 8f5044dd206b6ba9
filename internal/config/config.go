package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Mail     MailConfig
	JWT      JWTConfig
	Site     SiteConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string

	ResumeBucket string

	// PublicBaseURL, when set, is used to derive stable public object URLs
	// instead of presigning.
	PublicBaseURL string
}

type MailConfig struct {
	APIKey string
	From   string
	To     string
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type SiteConfig struct {
	// BaseURL is the canonical public origin used in sitemap entries.
	BaseURL string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Placeholder credentials keep local builds working when the external services
// are not configured; real deployments always override them.
const (
	placeholderStorageKey = "local-dev"
	placeholderMailKey    = "re_placeholder"
)

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "empleos-backend"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8080"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", "localhost"),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     opt("DB_NAME", "empleos"),
		DBUser:     opt("DB_USER", "postgres"),
		DBPassword: opt("DB_PASSWORD", ""),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	cfg.Storage = StorageConfig{
		Endpoint:      opt("S3_ENDPOINT", "localhost:9000"),
		AccessKey:     opt("S3_ACCESS_KEY", placeholderStorageKey),
		SecretKey:     opt("S3_SECRET_KEY", placeholderStorageKey),
		UseSSL:        optBool("S3_USE_SSL", false),
		Region:        opt("S3_REGION", "us-east-1"),
		ResumeBucket:  opt("S3_RESUME_BUCKET", "cvs"),
		PublicBaseURL: strings.TrimRight(opt("S3_PUBLIC_BASE_URL", ""), "/"),
	}

	cfg.Mail = MailConfig{
		APIKey: opt("RESEND_API_KEY", placeholderMailKey),
		From:   opt("MAIL_FROM", "onboarding@resend.dev"),
		To:     opt("MAIL_TO", "contacto@agencia.example"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     opt("JWT_ACCESS_SECRET", ""),
		RefreshSecret:    opt("JWT_REFRESH_SECRET", ""),
		AccessExpiresIn:  optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: optDuration("JWT_REFRESH_EXPIRES_IN", 720*time.Hour),
	}

	cfg.Site = SiteConfig{
		BaseURL: strings.TrimRight(opt("SITE_BASE_URL", "http://localhost:3000"), "/"),
	}

	return cfg, nil
}

// Validate reports the variables the HTTP server cannot run without. Load
// itself never fails on them: cmd/sitemap only reads Database and Site and
// must keep working in build environments that carry no auth secrets.
func (c JWTConfig) Validate() error {
	var missing []string
	if c.AccessSecret == "" {
		missing = append(missing, "JWT_ACCESS_SECRET")
	}
	if c.RefreshSecret == "" {
		missing = append(missing, "JWT_REFRESH_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	return nil
}

func optDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func optInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func optBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
