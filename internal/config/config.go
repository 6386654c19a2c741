package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process-wide configuration, read once at startup.
type Config struct {
	Host             string        `mapstructure:"HOST"`
	Port             string        `mapstructure:"PORT"`
	DBSource         string        `mapstructure:"DATABASE_URL"`
	Timezone         string        `mapstructure:"TIMEZONE"`
	GoogleMapsAPIKey string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	GeocoderProvider string        `mapstructure:"GEOCODER_PROVIDER"`
	NominatimURL     string        `mapstructure:"NOMINATIM_URL"`
	StoreBackend     string        `mapstructure:"STORE_BACKEND"`
	CacheBackend     string        `mapstructure:"CACHE_BACKEND"`
	RedisURL         string        `mapstructure:"REDIS_URL"`
	CacheSize        int           `mapstructure:"CACHE_SIZE"`
	CacheTTL         time.Duration `mapstructure:"CACHE_TTL"`
	KeepAliveTimeout time.Duration `mapstructure:"KEEP_ALIVE_TIMEOUT"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	LogFile          string        `mapstructure:"LOG_FILE"`
	AutoMigrate      bool          `mapstructure:"AUTO_MIGRATE"`
}

var defaults = map[string]any{
	"HOST":                "",
	"PORT":                "",
	"DATABASE_URL":        "",
	"TIMEZONE":            "",
	"GOOGLE_MAPS_API_KEY": "",
	"GEOCODER_PROVIDER":   "google",
	"NOMINATIM_URL":       "https://nominatim.openstreetmap.org",
	"STORE_BACKEND":       "postgres",
	"CACHE_BACKEND":       "memory",
	"REDIS_URL":           "",
	"CACHE_SIZE":          100,
	"CACHE_TTL":           "60s",
	"KEEP_ALIVE_TIMEOUT":  "30s",
	"LOG_LEVEL":           "info",
	"LOG_FILE":            "",
	"AUTO_MIGRATE":        true,
}

// LoadConfig loads the configuration like Load and validates it for the API
// server.
func LoadConfig(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads app.env from path, then a .env file in the working directory,
// then the environment; later sources win. Nothing is validated, so tools
// that need a single setting can run with a partial configuration.
func Load(path string) (Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: cannot read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: cannot decode config: %w", err)
	}
	return cfg, nil
}

// Validate reports every missing or inconsistent setting at once.
func (c Config) Validate() error {
	var problems []string
	if c.Host == "" {
		problems = append(problems, "HOST is required")
	}
	if c.Port == "" {
		problems = append(problems, "PORT is required")
	}

	switch c.StoreBackend {
	case "postgres":
		if c.DBSource == "" {
			problems = append(problems, "DATABASE_URL is required for the postgres store")
		}
	case "memory":
	default:
		problems = append(problems, fmt.Sprintf("STORE_BACKEND %q is not one of postgres, memory", c.StoreBackend))
	}

	switch c.GeocoderProvider {
	case "google":
		if c.GoogleMapsAPIKey == "" {
			problems = append(problems, "GOOGLE_MAPS_API_KEY is required for the google geocoder")
		}
	case "nominatim":
	default:
		problems = append(problems, fmt.Sprintf("GEOCODER_PROVIDER %q is not one of google, nominatim", c.GeocoderProvider))
	}

	switch c.CacheBackend {
	case "redis":
		if c.RedisURL == "" {
			problems = append(problems, "REDIS_URL is required for the redis cache")
		}
	case "memory":
	default:
		problems = append(problems, fmt.Sprintf("CACHE_BACKEND %q is not one of memory, redis", c.CacheBackend))
	}

	if c.CacheSize <= 0 {
		problems = append(problems, "CACHE_SIZE must be positive")
	}
	if c.CacheTTL <= 0 {
		problems = append(problems, "CACHE_TTL must be positive")
	}
	if _, err := c.Location(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ServerAddress is the listen address for the HTTP server.
func (c Config) ServerAddress() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Location resolves TIMEZONE, defaulting to UTC when unset.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q is invalid: %w", c.Timezone, err)
	}
	return loc, nil
}
