// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, feed, store, list and logging settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Feed describes where the news document comes from
	Feed FeedConfig

	// Store contains durable key-value store configuration
	Store StoreConfig

	// List contains news list engine settings
	List ListConfig

	// Log contains logger settings
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RefreshTimer is the interval in seconds for feed refresh
	RefreshTimer int

	// SessionTTL is the idle lifetime of a client session in seconds
	SessionTTL int

	// RateLimit is the sustained requests per second allowed per client
	RateLimit float64

	// TrustProxy keys rate limits by X-Forwarded-For; set only behind a proxy
	TrustProxy bool
}

// FeedConfig holds feed source configuration
type FeedConfig struct {
	// URL is an http(s) URL, a file:// URL or a local path
	URL string

	// CacheTTL is how long the last good document is kept, in seconds; 0 keeps it forever
	CacheTTL int
}

// StoreConfig holds store backend configuration
type StoreConfig struct {
	// Type specifies the store backend (memory/sqlite/redis/postgres)
	Type string

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// PostgresDSN is the connection string for the postgres backend
	PostgresDSN string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// ListConfig holds the list engine knobs
type ListConfig struct {
	// PageSize is the "load more" increment
	PageSize int

	// MaxVisible is the visible window ceiling
	MaxVisible int

	// ArchiveTimezone is the IANA zone used for archive dates; empty means local
	ArchiveTimezone string

	// CategoriesFile optionally replaces the built-in category table
	CategoriesFile string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8000"),
			RefreshTimer: getEnvAsIntOrDefault("REFRESH_TIMER", 300),
			SessionTTL:   getEnvAsIntOrDefault("SESSION_TTL", 1800),
			RateLimit:    getEnvAsFloatOrDefault("RATE_LIMIT", 10),
			TrustProxy:   getEnvAsBoolOrDefault("TRUST_PROXY", false),
		},
		Feed: FeedConfig{
			URL:      getEnvOrDefault("FEED_URL", "data.json"),
			CacheTTL: getEnvAsIntOrDefault("FEED_CACHE_TTL", 0),
		},
		Store: StoreConfig{
			Type:       strings.ToLower(getEnvOrDefault("STORE_TYPE", StoreMemory)),
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "newsboard.db"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			PostgresDSN: getEnvOrDefault("POSTGRES_DSN", ""),
		},
		List: ListConfig{
			PageSize:        getEnvAsIntOrDefault("PAGE_SIZE", 25),
			MaxVisible:      getEnvAsIntOrDefault("MAX_VISIBLE", 100),
			ArchiveTimezone: getEnvOrDefault("ARCHIVE_TIMEZONE", ""),
			CategoriesFile:  getEnvOrDefault("CATEGORIES_FILE", ""),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// Location resolves ArchiveTimezone
func (l ListConfig) Location() (*time.Location, error) {
	if l.ArchiveTimezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(l.ArchiveTimezone)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RefreshTimer < 1 {
		return errors.New("refresh timer must be at least 1 second")
	}

	if c.Server.SessionTTL < 1 {
		return errors.New("session TTL must be at least 1 second")
	}

	if c.Server.RateLimit <= 0 {
		return errors.New("rate limit must be positive")
	}

	if c.Feed.URL == "" {
		return errors.New("feed URL cannot be empty")
	}

	if c.Feed.CacheTTL < 0 {
		return errors.New("feed cache TTL cannot be negative")
	}

	switch c.Store.Type {
	case StoreMemory:
	case StoreSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("sqlite path cannot be empty when using sqlite store")
		}
	case StoreRedis:
		if c.Store.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis store")
		}
	case StorePostgres:
		if c.Store.PostgresDSN == "" {
			return errors.New("postgres DSN cannot be empty when using postgres store")
		}
	default:
		return fmt.Errorf("store type must be one of memory, sqlite, redis, postgres; got %q", c.Store.Type)
	}

	if c.List.PageSize < 1 {
		return errors.New("page size must be at least 1")
	}

	if c.List.MaxVisible < c.List.PageSize {
		return errors.New("max visible must be at least the page size")
	}

	if _, err := c.List.Location(); err != nil {
		return fmt.Errorf("invalid archive timezone: %w", err)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format must be 'text' or 'json'; got %q", c.Log.Format)
	}

	return nil
}
