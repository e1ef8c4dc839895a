package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string

	// Origin the API is reached under in split deployments. Empty when the
	// frontend is co-hosted and uses relative URLs.
	APIBaseURL string

	SeedDemoData bool
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

	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type AuthConfig struct {
	// HMAC secret the external identity provider signs access tokens with.
	// Empty disables bearer-token enforcement on mutating routes.
	JWTSecret string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:      req("APP_NAME"),
		Environment:  req("APP_ENV"),
		HTTPPort:     req("HTTP_PORT"),
		APIBaseURL:   opt("API_BASE_URL"),
		SeedDemoData: parseBool(opt("SEED_DEMO_DATA")),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        parseSeconds(opt("DB_CONNECT_TIMEOUT_SECONDS")),
		PoolMaxConns:          parseInt32(opt("DB_POOL_MAX_CONNS")),
		PoolMinConns:          parseInt32(opt("DB_POOL_MIN_CONNS")),
		PoolMaxConnLifetime:   parseSeconds(opt("DB_POOL_MAX_CONN_LIFETIME_SECONDS")),
		PoolMaxConnIdleTime:   parseSeconds(opt("DB_POOL_MAX_CONN_IDLE_SECONDS")),
		PoolHealthCheckPeriod: parseSeconds(opt("DB_POOL_HEALTH_CHECK_SECONDS")),

		MigrationsDir: opt("DB_MIGRATIONS_DIR"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      parseSeconds(opt("REDIS_TTL")),
	}

	cfg.Auth = AuthConfig{
		JWTSecret: opt("AUTH_JWT_SECRET"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}

func parseInt32(raw string) int32 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return 0
	}
	return int32(v)
}

func parseSeconds(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0
	}
	return time.Duration(v) * time.Second
}
