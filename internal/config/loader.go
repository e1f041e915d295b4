package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading
type Loader struct {
	configPath string
}

// NewLoader creates a new config loader. configPath may be empty; environment
// variables alone are a complete configuration.
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
	}
}

// Load reads the configuration: defaults, then the optional JSON config file,
// then environment variables. The credential (AUTH_TOKEN) and operator
// identifier (MY_NUMBER) come from the environment only and are never written
// to a config file.
func (l *Loader) Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.max_in_flight", defaults.Server.MaxInFlight)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.console", defaults.Logging.Console)
	v.SetDefault("logging.pretty", defaults.Logging.Pretty)
	v.SetDefault("logging.redaction", defaults.Logging.Redaction)

	v.SetEnvPrefix("CAREERINTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential and operator id are environment-only.
	_ = v.BindEnv("auth.token", "AUTH_TOKEN")
	_ = v.BindEnv("auth.operator_id", "MY_NUMBER")

	if l.configPath != "" {
		if _, err := os.Stat(l.configPath); err != nil {
			return nil, fmt.Errorf("config file not found: %s", l.configPath)
		}
		v.SetConfigFile(l.configPath)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
