package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log      Logger   `mapstructure:"logger"`
	API      API      `mapstructure:"api"`
	Provider Provider `mapstructure:"provider"`
	Cache    Cache    `mapstructure:"cache"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port            int           `mapstructure:"port"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	RateBurst       int           `mapstructure:"rate_burst"`
}

// Provider holds the upstream financial data API settings.
type Provider struct {
	BaseURL             string        `mapstructure:"base_url"`
	ChartPath           string        `mapstructure:"chart_path"`
	InsightsPath        string        `mapstructure:"insights_path"`
	ProfilePath         string        `mapstructure:"profile_path"`
	APIKey              string        `mapstructure:"api_key"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	Region              string        `mapstructure:"region"`
	Lang                string        `mapstructure:"lang"`
}

type Cache struct {
	Enabled           bool          `mapstructure:"enabled"`
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")

	v.SetDefault("api.port", 5000)
	v.SetDefault("api.request_timeout", 30*time.Second)
	v.SetDefault("api.shutdown_timeout", 10*time.Second)
	v.SetDefault("api.rate_limit", 10)
	v.SetDefault("api.rate_burst", 30)

	v.SetDefault("provider.base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("provider.chart_path", "/v8/finance/chart")
	v.SetDefault("provider.insights_path", "/ws/insights/v2/finance/insights")
	v.SetDefault("provider.profile_path", "/v10/finance/quoteSummary")
	v.SetDefault("provider.timeout", 10*time.Second)
	v.SetDefault("provider.max_request_per_minute", 120)
	v.SetDefault("provider.region", "US")
	v.SetDefault("provider.lang", "en-US")

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.default_expiration", 5*time.Minute)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)
}

func Load() (*Config, error) {
	// .env is optional, real environment variables win.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	if c.Provider.MaxRequestPerMinute <= 0 {
		return fmt.Errorf("provider.max_request_per_minute must be positive, got %d", c.Provider.MaxRequestPerMinute)
	}
	if c.API.Port <= 0 {
		return fmt.Errorf("api.port must be positive, got %d", c.API.Port)
	}
	return nil
}
