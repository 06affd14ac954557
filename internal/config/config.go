package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	OperatorWorkers int
	LogLevel        string

	// APIURL and Currency are read by the CLI client.
	APIURL   string
	Currency string
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"POSTGRES_ADDRESS":  "localhost",
	"POSTGRES_PORT":     "5433",
	"POSTGRES_DB":       "postgres",
	"POSTGRES_USERNAME": "postgres",
	"POSTGRES_PASSWORD": "testpassword",
	"HTTP_PORT":         "9446",
	"OPERATOR_WORKERS":  4,
	"LOG_LEVEL":         "info",
	"ACCOUNTS_API_URL":  "http://localhost:9446",
	"ACCOUNTS_CURRENCY": "IDR",
}

func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// Empty variables count as unset.
	envProvider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if _, known := defaults[key]; !known || value == "" {
			return "", nil
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Config{
		PostgresAddress:  k.String("POSTGRES_ADDRESS"),
		PostgresPort:     k.String("POSTGRES_PORT"),
		PostgresDB:       k.String("POSTGRES_DB"),
		PostgresUsername: k.String("POSTGRES_USERNAME"),
		PostgresPassword: k.String("POSTGRES_PASSWORD"),
		HTTPPort:         k.String("HTTP_PORT"),
		OperatorWorkers:  k.Int("OPERATOR_WORKERS"),
		LogLevel:         strings.ToLower(k.String("LOG_LEVEL")),
		APIURL:           k.String("ACCOUNTS_API_URL"),
		Currency:         strings.ToUpper(k.String("ACCOUNTS_CURRENCY")),
	}

	if cfg.OperatorWorkers < 1 {
		return nil, fmt.Errorf("OPERATOR_WORKERS must be at least 1, got %q", k.String("OPERATOR_WORKERS"))
	}

	return &cfg, nil
}

// PostgresURL builds the lib/pq connection string.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
