// Package config loads the apicall settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every variable read by Load.
const EnvPrefix = "APICALL_"

// Supported APIs.
const (
	APIGusto = "gusto"
	APIOkta  = "okta"
	APISlack = "slack"
)

var (
	errUnknownAPI      = errors.New("unknown API")
	errBaseURLRequired = errors.New("BASE_URL is required for okta")
)

type Config struct {
	API   string `env:"API" envDefault:"slack"`
	Token string `env:"TOKEN,notEmpty"`
	// BaseURL overrides the API's default; Okta has none and requires it.
	BaseURL         string `env:"BASE_URL"`
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-Id"`
	UserAgent       string `env:"USER_AGENT" envDefault:"apicall"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT"`

	// OTLPEndpoint is the host:port of an OTLP/HTTP collector. Traces and
	// metrics are exported only when it is set.
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
	OTLPInsecure bool   `env:"OTLP_INSECURE"`
}

// Load reads envFile into the process environment, when it exists, and then
// parses the APICALL_ variables. Variables already set take precedence over
// the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("godotenv.Load: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("env.ParseWithOptions: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate normalizes API and checks the combination of settings.
func (c *Config) Validate() error {
	c.API = strings.ToLower(strings.TrimSpace(c.API))

	switch c.API {
	case APIGusto, APISlack:
	case APIOkta:
		if strings.TrimSpace(c.BaseURL) == "" {
			return errBaseURLRequired
		}
	default:
		return fmt.Errorf("%w %q: must be one of %s, %s, %s", errUnknownAPI, c.API, APIGusto, APIOkta, APISlack)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return nil
}

// Logger builds the zap logger described by the config.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	loggerConfig := zap.NewProductionConfig()
	if c.Development {
		loggerConfig = zap.NewDevelopmentConfig()
	}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	loggerConfig.Level = zap.NewAtomicLevelAt(level)

	return loggerConfig.Build()
}
