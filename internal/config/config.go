// Package config loads process configuration from the environment, with an
// optional .env file for local runs.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/example/tablekeeper/internal/domain/reservation"
)

type Config struct {
	TableCount   int    `env:"TABLEKEEPER_TABLES" envDefault:"10"`
	AuditLogPath string `env:"TABLEKEEPER_LOG_FILE" envDefault:"logs.txt"`
	AccountDB    string `env:"TABLEKEEPER_DB" envDefault:"tablekeeper.db"`
	LogLevel     string `env:"TABLEKEEPER_LOG_LEVEL" envDefault:"info"`

	// Reference "now" for date/time validation. Defaults to the wall clock;
	// pin both for deterministic sessions.
	ReferenceDate string `env:"TABLEKEEPER_TODAY"`
	ReferenceTime string `env:"TABLEKEEPER_NOW"`

	AdminUsername string `env:"TABLEKEEPER_ADMIN_USER" envDefault:"admin"`
	AdminPassword string `env:"TABLEKEEPER_ADMIN_PASSWORD" envDefault:"admin123"`
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.TableCount < 1 {
		return Config{}, fmt.Errorf("TABLEKEEPER_TABLES must be at least 1 (got %d)", cfg.TableCount)
	}
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return Config{}, fmt.Errorf("admin username and password must not be empty")
	}
	return cfg, nil
}

// Clock resolves the reference instant validators compare against.
func (c Config) Clock() (reservation.Clock, error) {
	now := time.Now()
	clk := reservation.Clock{
		Today:  now.Format("2006-01-02"),
		Hour:   now.Hour(),
		Minute: now.Minute(),
	}
	if c.ReferenceDate != "" {
		if _, err := time.Parse("2006-01-02", c.ReferenceDate); err != nil {
			return reservation.Clock{}, fmt.Errorf("TABLEKEEPER_TODAY: want YYYY-MM-DD, got %q", c.ReferenceDate)
		}
		clk.Today = c.ReferenceDate
	}
	if c.ReferenceTime != "" {
		t, err := time.Parse("15:04", c.ReferenceTime)
		if err != nil {
			return reservation.Clock{}, fmt.Errorf("TABLEKEEPER_NOW: want HH:MM, got %q", c.ReferenceTime)
		}
		clk.Hour = t.Hour()
		clk.Minute = t.Minute()
	}
	return clk, nil
}
