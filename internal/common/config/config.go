// internal/common/config/config.go
package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	API     APIConfig     `mapstructure:"api"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Storage StorageConfig `mapstructure:"storage"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// AppConfig identifies the client build.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig is the single source of truth for the backend origin. Every
// request goes through BaseURL; nothing else in the codebase may carry its
// own host or port.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// JoinPath prepends the configured base URL to a relative endpoint path,
// normalizing slashes so no double slash ever appears.
func (a APIConfig) JoinPath(endpoint string) string {
	base := strings.TrimSuffix(a.BaseURL, "/")
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return base + endpoint
}

// AuthConfig carries the legacy admin-detection fallbacks. Role claims are
// authoritative; these literals only rescue sessions issued by backend builds
// that predate role claims.
type AuthConfig struct {
	LegacyAdminUsernames []string `mapstructure:"legacy_admin_usernames"`
	LegacyAdminEmails    []string `mapstructure:"legacy_admin_emails"`
}

// StorageConfig locates durable client-side state (session files, file cache).
type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

// CacheConfig selects the per-user snapshot cache backend.
type CacheConfig struct {
	Backend    string      `mapstructure:"backend"` // "file" or "redis"
	TTLMinutes int         `mapstructure:"ttl_minutes"`
	Redis      RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds connection settings for the redis cache backend.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MetricsConfig controls the Prometheus listener used by watch mode.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

func validateConfig(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", cfg.API.BaseURL)
	}
	switch cfg.Cache.Backend {
	case "file", "redis":
	default:
		return fmt.Errorf("cache.backend must be \"file\" or \"redis\", got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.Backend == "redis" && cfg.Cache.Redis.Address == "" {
		return fmt.Errorf("cache.redis.address is required with the redis backend")
	}
	return nil
}
