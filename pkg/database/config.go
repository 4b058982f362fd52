package database

import (
	"os"
	"strconv"
	"time"
)

// Config holds the connection URL and pool settings
type Config struct {
	URL string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConfig returns a Config for url with the standard pool settings
func DefaultConfig(url string) Config {
	return Config{
		URL:             url,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// LoadConfigFromEnv returns a Config for url with pool settings overridden
// from DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS, DB_CONN_MAX_LIFETIME, and
// DB_CONN_MAX_IDLE_TIME where set.
func LoadConfigFromEnv(url string) Config {
	cfg := DefaultConfig(url)

	if v, err := strconv.Atoi(os.Getenv("DB_MAX_OPEN_CONNS")); err == nil && v > 0 {
		cfg.MaxOpenConns = v
	}
	if v, err := strconv.Atoi(os.Getenv("DB_MAX_IDLE_CONNS")); err == nil && v > 0 {
		cfg.MaxIdleConns = v
	}
	if d, err := time.ParseDuration(os.Getenv("DB_CONN_MAX_LIFETIME")); err == nil && d > 0 {
		cfg.ConnMaxLifetime = d
	}
	if d, err := time.ParseDuration(os.Getenv("DB_CONN_MAX_IDLE_TIME")); err == nil && d > 0 {
		cfg.ConnMaxIdleTime = d
	}
	return cfg
}
