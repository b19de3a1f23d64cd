// Package config loads the application configuration from a YAML file and
// LEADFLOW_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level application configuration.
type Config struct {
	// HTTPAddr is the listen address for the API server.
	HTTPAddr string `mapstructure:"http_addr" yaml:"http_addr"`

	// DBPath is the SQLite database file path.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// DailyLeadLimit is the maximum number of leads assigned per user
	// per calendar day.
	DailyLeadLimit int `mapstructure:"daily_lead_limit" yaml:"daily_lead_limit"`

	// SessionTTLHours is how long issued session tokens stay valid.
	SessionTTLHours int `mapstructure:"session_ttl_hours" yaml:"session_ttl_hours"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `mapstructure:"bcrypt_cost" yaml:"bcrypt_cost"`

	// DevLogging switches zap to its human-readable development encoder.
	DevLogging bool `mapstructure:"dev_logging" yaml:"dev_logging"`
}

// defaultConfig returns a sensible default configuration.
func defaultConfig() *Config {
	return &Config{
		HTTPAddr:        ":8080",
		DBPath:          "leadflow.db",
		DailyLeadLimit:  7,
		SessionTTLHours: 24,
		BcryptCost:      10,
	}
}

// Load reads configuration from the given YAML file path using Viper.
// If the file does not exist, defaults apply. Environment variables with
// the LEADFLOW_ prefix override file values (e.g. LEADFLOW_HTTP_ADDR).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("db_path", "leadflow.db")
	v.SetDefault("daily_lead_limit", 7)
	v.SetDefault("session_ttl_hours", 24)
	v.SetDefault("bcrypt_cost", 10)
	v.SetDefault("dev_logging", false)

	v.SetEnvPrefix("LEADFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.DailyLeadLimit < 0 {
		cfg.DailyLeadLimit = 0
	}

	return cfg, nil
}
