package config

import (
	"strings"

	"demoready/internal/platform/logger"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type BaseConfig struct {
	Environment string       `envconfig:"ENV" default:"development" validate:"oneof=development staging production test"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

type LoggerConfig struct {
	Level logger.Level `envconfig:"LEVEL" default:"info"`
	// Format defaults by environment when unset, see LoggerSettings.
	Format logger.Format `envconfig:"FORMAT"`
}

func LoadBase() (*BaseConfig, error) {
	var cfg BaseConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func process(cfg interface{}) error {
	return envconfig.Process("", cfg)
}

func (c *BaseConfig) IsDevelopment() bool {
	return strings.ToLower(c.Environment) == EnvDevelopment
}

func (c *BaseConfig) IsProduction() bool {
	return strings.ToLower(c.Environment) == EnvProduction
}

func (c *BaseConfig) IsStaging() bool {
	return strings.ToLower(c.Environment) == EnvStaging
}

// LoggerSettings fills in what LOGGER_FORMAT leaves open: JSON for deployed
// environments where logs are shipped, console text everywhere else.
func (c *BaseConfig) LoggerSettings() logger.Config {
	format := c.Logger.Format
	if format == "" {
		format = logger.FormatText
		if c.IsProduction() || c.IsStaging() {
			format = logger.FormatJSON
		}
	}

	return logger.Config{
		Development: c.IsDevelopment(),
		Level:       c.Logger.Level,
		Format:      format,
	}
}
