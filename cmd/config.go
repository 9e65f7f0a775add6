package cmd

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	HTTPPort string
	LogLevel string

	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBTxTimeout       time.Duration
	DBLockTimeout     time.Duration

	JWTSecret  string
	JWTExpires time.Duration

	AntiForgeryStore string
	AntiForgeryTTL   time.Duration
	RedisAddr        string
	RedisPoolSize    int

	UploadsPath         string
	LegacyPurgeSchedule string
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LockTimeout is how long a statement may wait for a row lock. It is kept
// strictly below DB_TX_TIMEOUT so that a contended lock is reported by
// Postgres before the request deadline cancels the statement.
func (c Config) LockTimeout() time.Duration {
	if c.DBTxTimeout <= 0 {
		return c.DBLockTimeout
	}
	if c.DBLockTimeout <= 0 || c.DBLockTimeout >= c.DBTxTimeout {
		return c.DBTxTimeout / 2
	}
	return c.DBLockTimeout
}

// LoadConfig reads .env when present and then the process environment.
// Outside production a missing .env is not an error.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && os.Getenv("APP_ENV") == "production" {
		return Config{}, err
	}

	return Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "penguin"),
		DBSslMode:         getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		DBTxTimeout:       getEnvDuration("DB_TX_TIMEOUT", 5*time.Second),
		DBLockTimeout:     getEnvDuration("DB_LOCK_TIMEOUT", 3*time.Second),

		JWTSecret:  getEnv("JWT_SECRET", ""),
		JWTExpires: getEnvDuration("JWT_EXPIRES", 30*time.Minute),

		AntiForgeryStore: getEnv("ANTIFORGERY_STORE", "memory"),
		AntiForgeryTTL:   getEnvDuration("ANTIFORGERY_TTL", 15*time.Minute),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPoolSize:    getEnvInt("REDIS_POOL_SIZE", 10),

		UploadsPath:         getEnv("UPLOADS_PATH", "uploads"),
		LegacyPurgeSchedule: getEnv("LEGACY_PURGE_SCHEDULE", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// getEnvDuration accepts Go durations ("90s", "15m") and bare seconds ("1800").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
