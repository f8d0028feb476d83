// Package config loads service configuration from a YAML file with
// environment variable overrides, via viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
)

// Default configuration values.
const (
	defaultServiceName     = "normalizer"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8080
	defaultShutdownTimeout = 15 * time.Second
	defaultRateLimit       = 50.0
	defaultRateBurst       = 100
	defaultBatchSize       = 10
	defaultConcurrency     = 4
	defaultDedupThreshold  = 0.8
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
)

// Config holds all configuration for the normalization service.
type Config struct {
	Service  ServiceConfig  `mapstructure:"service"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServiceConfig holds HTTP service settings.
type ServiceConfig struct {
	Name            string        `mapstructure:"name"`
	Version         string        `mapstructure:"version"`
	Port            int           `mapstructure:"port"`
	Debug           bool          `mapstructure:"debug"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	RateBurst       int           `mapstructure:"rate_burst"`
}

// PipelineConfig holds the normalization option surface.
type PipelineConfig struct {
	EnableDeduplication    bool    `mapstructure:"enable_deduplication"`
	DeduplicationThreshold float64 `mapstructure:"deduplication_threshold"`
	ValidateOutput         bool    `mapstructure:"validate_output"`
	BatchSize              int     `mapstructure:"batch_size"`
	Concurrency            int     `mapstructure:"concurrency"`
	DefaultLocale          string  `mapstructure:"default_locale"`
	DefaultCurrency        string  `mapstructure:"default_currency"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from config.yaml (working directory or
// ./config) and the environment. Environment keys use underscores, e.g.
// SERVICE_PORT or PIPELINE_BATCH_SIZE. A missing config file is fine; the
// defaults are complete.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.name", defaultServiceName)
	v.SetDefault("service.version", defaultServiceVersion)
	v.SetDefault("service.port", defaultServicePort)
	v.SetDefault("service.debug", false)
	v.SetDefault("service.shutdown_timeout", defaultShutdownTimeout)
	v.SetDefault("service.rate_limit", defaultRateLimit)
	v.SetDefault("service.rate_burst", defaultRateBurst)

	v.SetDefault("pipeline.enable_deduplication", true)
	v.SetDefault("pipeline.deduplication_threshold", defaultDedupThreshold)
	v.SetDefault("pipeline.validate_output", true)
	v.SetDefault("pipeline.batch_size", defaultBatchSize)
	v.SetDefault("pipeline.concurrency", defaultConcurrency)
	v.SetDefault("pipeline.default_locale", "")
	v.SetDefault("pipeline.default_currency", "USD")

	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.format", defaultLogFormat)
}

func (c *Config) validate() error {
	if c.Service.Port <= 0 || c.Service.Port > 65535 {
		return fmt.Errorf("invalid service port %d", c.Service.Port)
	}
	if c.Pipeline.DeduplicationThreshold <= 0 || c.Pipeline.DeduplicationThreshold > 1 {
		return fmt.Errorf("deduplication threshold %g must be in (0, 1]", c.Pipeline.DeduplicationThreshold)
	}
	if c.Pipeline.BatchSize <= 0 {
		return fmt.Errorf("batch size %d must be positive", c.Pipeline.BatchSize)
	}
	return nil
}

// LoggerConfig converts the logging section into the logger package's
// config shape.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       c.Logging.Level,
		Format:      c.Logging.Format,
		Development: c.Service.Debug,
	}
}
