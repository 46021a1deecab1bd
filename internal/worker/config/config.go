package config

import (
	"time"

	"golang-family-office/pkg/config"
)

// Schedules holds the cron expression of each recurring task.
type Schedules struct {
	QuoteRefresh string `mapstructure:"quote_refresh"`
	AlertCheck   string `mapstructure:"alert_check"`
	Cleanup      string `mapstructure:"cleanup"`
}

// Worker holds the scheduling and consumption tuning of the worker service.
type Worker struct {
	PollingInterval time.Duration `mapstructure:"polling_interval"`
	StreamTimeout   time.Duration `mapstructure:"stream_timeout"`
	RetentionDays   int           `mapstructure:"retention_days"`
	Schedules       Schedules     `mapstructure:"schedules"`
}

// Config holds the full configuration for the worker service.
type Config struct {
	App       config.App       `mapstructure:"app"`
	Logger    config.Logger    `mapstructure:"logger"`
	Database  config.Database  `mapstructure:"database"`
	Redis     config.Redis     `mapstructure:"redis"`
	Telegram  config.Telegram  `mapstructure:"telegram"`
	Quotes    config.Quotes    `mapstructure:"quotes"`
	Valuation config.Valuation `mapstructure:"valuation"`
	Worker    Worker           `mapstructure:"worker"`
}

// Load loads the worker service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
