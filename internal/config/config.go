// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
)

// Config holds all configuration for the application.
type Config struct {
	DatabaseURL string
	LogLevel    string
	BusinessID  string

	// TaxYear is the year under review. Zero means "derive the current
	// tax year from the clock".
	TaxYear    models.TaxYear
	TaxYearSet bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		BusinessID:  os.Getenv("BUSINESS_ID"),
	}

	if label := os.Getenv("TAX_YEAR"); label != "" {
		ty, err := models.ParseTaxYearLabel(label)
		if err != nil {
			return nil, fmt.Errorf("invalid TAX_YEAR: %w", err)
		}
		cfg.TaxYear = ty
		cfg.TaxYearSet = true
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	var errs []string

	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}

	if c.BusinessID == "" {
		errs = append(errs, "BUSINESS_ID is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
