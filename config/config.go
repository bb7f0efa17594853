package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	envAPIKey  = "OPENWEATHER_API_KEY"
	envBaseURL = "OPENWEATHER_BASE_URL"
	envTimeout = "OPENWEATHER_TIMEOUT"

	defaultBaseURL = "http://api.openweathermap.org/data/2.5/weather"
	defaultUnits   = "metric"
	defaultTimeout = 10 * time.Second
)

var (
	ErrMissingAPIKey  = errors.New("openweathermap api key is not set (" + envAPIKey + ")")
	ErrInvalidTimeout = errors.New("request timeout must be positive")
)

type Config struct {
	Provider Provider `yaml:"openweathermap"`
}

// Provider holds the settings of the weather data provider.
type Provider struct {
	BaseURL string        `yaml:"baseURL"`
	APIKey  string        `yaml:"apiKey"`
	Units   string        `yaml:"units"`
	Timeout time.Duration `yaml:"timeout"`
}

// Load parses raw yaml, then applies a .env file (if any) and environment overrides.
func Load(raw []byte) (Config, error) {
	config := Config{}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := config.applyEnv(); err != nil {
		return Config{}, err
	}

	config.setDefaults()

	return config, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(envAPIKey); v != "" {
		c.Provider.APIKey = v
	}
	if v := os.Getenv(envBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envTimeout, err)
		}
		c.Provider.Timeout = timeout
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = defaultBaseURL
	}
	if c.Provider.Units == "" {
		c.Provider.Units = defaultUnits
	}
	if c.Provider.Timeout <= 0 {
		c.Provider.Timeout = defaultTimeout
	}
}

// Validate checks the final configuration, after flags have been applied.
func (c Config) Validate() error {
	if c.Provider.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Provider.Timeout)
	}

	return nil
}
