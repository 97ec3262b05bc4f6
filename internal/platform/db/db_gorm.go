// Package db opens the shared gorm handle to PostgreSQL.
package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds PostgreSQL connection parameters.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Opener opens a gorm handle for a DSN. It exists so retries can be tested without a database.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN renders cfg as a libpq key/value connection string.
func BuildDSN(cfg Config) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, sslMode)
}

// ConnectWithRetry calls open until it succeeds or timeout elapses,
// sleeping interval between attempts. The last error is returned on timeout.
func ConnectWithRetry(dsn string, timeout, interval time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for attempt := 1; ; attempt++ {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(interval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %d attempts: %w", attempt, err)
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("db connect failed, retrying")
		time.Sleep(interval)
	}
}

// Open connects to PostgreSQL through the pgx-backed gorm driver.
// The schema is owned by the database; nothing is migrated here.
func Open(cfg Config, timeout time.Duration) (*gorm.DB, error) {
	return ConnectWithRetry(BuildDSN(cfg), timeout, 3*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: newLogger()})
	})
}

// newLogger routes gorm's warnings through zerolog. Query parameters are never
// printed because they include access tokens.
func newLogger() logger.Interface {
	return logger.New(&log.Logger, logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
	})
}
