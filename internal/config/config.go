package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	ServerPort           string `mapstructure:"SERVER_PORT"`
	LogLevel             string `mapstructure:"LOG_LEVEL"`
	FetchTimeoutSeconds  int    `mapstructure:"FETCH_TIMEOUT"`
	ScrapeTimeoutSeconds int    `mapstructure:"SCRAPE_TIMEOUT"`
	RateDelayMS          int    `mapstructure:"RATE_DELAY_MS"`
	SourceDelayMS        int    `mapstructure:"SOURCE_DELAY_MS"`
	Headless             bool   `mapstructure:"HEADLESS"`
}

// Load reads configuration from file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Attempt to read the .env file, but don't fail if it's not present.
	// This allows configuration purely through environment variables.
	_ = viper.ReadInConfig()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("FETCH_TIMEOUT", 30)   // per-request, in seconds
	viper.SetDefault("SCRAPE_TIMEOUT", 600) // full run, in seconds
	viper.SetDefault("RATE_DELAY_MS", 1000)
	viper.SetDefault("SOURCE_DELAY_MS", 2000)
	viper.SetDefault("HEADLESS", true)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func (c *Config) ScrapeTimeout() time.Duration {
	return time.Duration(c.ScrapeTimeoutSeconds) * time.Second
}

func (c *Config) RateDelay() time.Duration {
	return time.Duration(c.RateDelayMS) * time.Millisecond
}

func (c *Config) SourceDelay() time.Duration {
	return time.Duration(c.SourceDelayMS) * time.Millisecond
}
