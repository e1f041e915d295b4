package config

import (
	"fmt"
)

// Validator validates configuration values
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the configuration for fatal startup errors. A failure here
// aborts process startup; configuration problems are never reported per-call.
func (v *Validator) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is required")
	}

	if cfg.Auth.Token == "" {
		return fmt.Errorf("AUTH_TOKEN must be set")
	}
	if cfg.Auth.OperatorID == "" {
		return fmt.Errorf("MY_NUMBER must be set")
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	switch cfg.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", cfg.Logging.Level)
	}

	return nil
}
