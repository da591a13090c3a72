package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/errors"
)

// Refresh interval bounds in seconds; values outside are clamped.
const (
	MinRefreshIntervalSeconds = 5
	MaxRefreshIntervalSeconds = 300
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Refresh  RefreshConfig
	Keywords KeywordConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds the survey source and cache settings
type DataConfig struct {
	CSVPath  string
	CacheTTL time.Duration
}

// RefreshConfig holds periodic-refresh settings
type RefreshConfig struct {
	Enabled  bool
	Interval time.Duration
}

// KeywordConfig holds word-cloud extraction settings
type KeywordConfig struct {
	DefaultColumn string
	MinLength     int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Data: DataConfig{
			CSVPath:  getEnvOrDefault("SURVEY_CSV", "jeunes_diplomes_afrique_du_sud.csv"),
			CacheTTL: time.Duration(getEnvIntOrDefault("CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		Refresh: RefreshConfig{
			Enabled:  getEnvBoolOrDefault("AUTO_REFRESH", false),
			Interval: time.Duration(ClampRefreshInterval(getEnvIntOrDefault("REFRESH_INTERVAL_SECONDS", 30))) * time.Second,
		},
		Keywords: KeywordConfig{
			DefaultColumn: getEnvOrDefault("WORDCLOUD_COLUMN", "Q1_Domaine"),
			MinLength:     getEnvIntOrDefault("KEYWORD_MIN_LENGTH", 3),
		},
	}

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// ClampRefreshInterval forces an interval into the supported 5-300 s range.
func ClampRefreshInterval(seconds int) int {
	if seconds < MinRefreshIntervalSeconds {
		return MinRefreshIntervalSeconds
	}
	if seconds > MaxRefreshIntervalSeconds {
		return MaxRefreshIntervalSeconds
	}
	return seconds
}

func validate(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if config.Data.CSVPath == "" {
		return errors.ConfigInvalid("SURVEY_CSV must not be empty")
	}
	if config.Data.CacheTTL <= 0 {
		return errors.ConfigInvalid("CACHE_TTL_SECONDS must be positive")
	}
	if config.Keywords.MinLength < 1 {
		return errors.ConfigInvalid("KEYWORD_MIN_LENGTH must be at least 1")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
