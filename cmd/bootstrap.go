package cmd

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"penguinadmin/internal/adapters/out/postgres"

	"gorm.io/gorm"
)

// NewLogger builds the JSON logger at LOG_LEVEL. Unknown levels mean info.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// OpenDatabase connects and applies the schema.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	dsn := postgres.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSslMode)
	db, err := postgres.Open(context.Background(), dsn, postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
