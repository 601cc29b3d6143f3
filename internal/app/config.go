package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/polyglot/internal/adapters/otel"
)

const envPrefix = "POLYGLOT"

type Config struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// SessionKey signs the visitor cookie. A random key is generated when empty,
	// which invalidates cookies on restart.
	SessionKey         string        `envconfig:"SESSION_KEY"`
	SessionIdleTimeout time.Duration `envconfig:"SESSION_IDLE_TIMEOUT" default:"2h"`

	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`

	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT"`
	OTELInsecure bool   `envconfig:"OTEL_INSECURE" default:"false"`
}

func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// OTEL returns the exporter configuration.
func (c *Config) OTEL() otel.Config {
	return otel.Config{
		Endpoint: c.OTELEndpoint,
		Enabled:  c.OTELEnabled,
		Insecure: c.OTELInsecure,
	}
}
