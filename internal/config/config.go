package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Dispatch DispatchConfig
	Twilio   TwilioConfig
	DB       DatabaseConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DispatchConfig struct {
	Workers        int
	BufferSize     int
	AttemptTimeout time.Duration
}

type TwilioConfig struct {
	AccountSID      string
	AuthToken       string
	FromNumber      string
	EmergencyNumber string
}

// HasCredentials reports whether an outbound provider client can be built.
func (t TwilioConfig) HasCredentials() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != ""
}

// Configured reports whether notifications can actually be sent: credentials
// plus a destination number.
func (t TwilioConfig) Configured() bool {
	return t.HasCredentials() && t.EmergencyNumber != ""
}

type DatabaseConfig struct {
	Path string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Dispatch: DispatchConfig{
			Workers:        getEnvInt("DISPATCH_WORKERS", 2),
			BufferSize:     getEnvInt("DISPATCH_BUFFER_SIZE", 64),
			AttemptTimeout: getEnvDuration("DISPATCH_ATTEMPT_TIMEOUT", 5*time.Second),
		},
		Twilio: TwilioConfig{
			AccountSID:      getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:       getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber:      getEnv("TWILIO_PHONE_NUMBER", ""),
			EmergencyNumber: getEnv("EMERGENCY_CONTACT_NUMBER", ""),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/sos-alerts.db"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Dispatch.Workers < 1 {
		return fmt.Errorf("dispatch workers must be at least 1, got %d", c.Dispatch.Workers)
	}
	if c.Dispatch.BufferSize < 1 {
		return fmt.Errorf("dispatch buffer size must be at least 1, got %d", c.Dispatch.BufferSize)
	}
	if c.Dispatch.AttemptTimeout < time.Second {
		return fmt.Errorf("dispatch attempt timeout must be at least 1s")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
