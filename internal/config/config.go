package config

// Config represents the full server configuration. It is read once at
// startup and never mutated afterwards.
type Config struct {
	// Auth
	Auth AuthConfig `json:"auth" mapstructure:"auth"`

	// Server
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// AuthConfig holds the shared-secret credential and the operator identity.
type AuthConfig struct {
	// Token is the single valid bearer credential for the process lifetime.
	// Sourced from AUTH_TOKEN; startup fails fatally when unset.
	Token string `json:"token" mapstructure:"token"`

	// OperatorID is the registered operator identifier returned by the
	// validate tool. Sourced from MY_NUMBER; startup fails fatally when unset.
	OperatorID string `json:"operator_id" mapstructure:"operator_id"`
}

// ServerConfig holds the transport endpoint configuration.
type ServerConfig struct {
	Host        string `json:"host" mapstructure:"host"`
	Port        int    `json:"port" mapstructure:"port"`
	MaxInFlight int    `json:"max_in_flight" mapstructure:"max_in_flight"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level     string `json:"level" mapstructure:"level"`
	File      string `json:"file" mapstructure:"file"`
	Console   bool   `json:"console" mapstructure:"console"`
	Pretty    bool   `json:"pretty" mapstructure:"pretty"`
	Redaction bool   `json:"redaction" mapstructure:"redaction"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8086,
			MaxInFlight: 64,
		},
		Logging: LoggingConfig{
			Level:     "info",
			Console:   true,
			Pretty:    true,
			Redaction: true,
		},
	}
}
