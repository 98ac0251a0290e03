package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// HTTP server
	Port string `mapstructure:"PORT"`

	// Database configuration
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Session signing secret for the admin console
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	// History page size for the per-account view
	HistoryPageSize int `mapstructure:"HISTORY_PAGE_SIZE"`

	// Environment: "development", "production" or "test"
	Environment string `mapstructure:"ENVIRONMENT"`
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load reads configuration from the environment, with an optional .env file
func load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("HISTORY_PAGE_SIZE", 50)
	v.SetDefault("ENVIRONMENT", "development")

	for _, key := range []string{"PORT", "DATABASE_URL", "SESSION_SECRET", "HISTORY_PAGE_SIZE", "ENVIRONMENT"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	// A missing .env file is fine; the environment is the source of truth
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !strings.Contains(err.Error(), "no such file") {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if config.HistoryPageSize <= 0 {
		config.HistoryPageSize = 50
	}

	if config.Environment != "test" {
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.SessionSecret == "" {
			return nil, fmt.Errorf("SESSION_SECRET is required")
		}
	}

	return config, nil
}
