package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
// Values come from, in increasing precedence: defaults, the YAML file named
// by CONFIG_FILE, a .env file, and the process environment.
type Config struct {
	Port int `yaml:"port" validate:"min=1,max=65535"`

	// GitHub API base URL; overridable for GitHub Enterprise or tests
	GitHubURL string `yaml:"github_url" validate:"required,url"`

	// Outbound request timeout in seconds; 0 disables the timeout
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds" validate:"min=0,max=600"`

	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=json console"`

	MetricsEnabled bool `yaml:"metrics_enabled"`

	// IANA zone used for joined dates; empty or "Local" means the host zone
	Timezone string `yaml:"timezone"`

	// Log destination for the terminal front end; empty discards TUI logs
	TUILogFile string `yaml:"tui_log_file"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Port:               8080,
		GitHubURL:          "https://api.github.com",
		HTTPTimeoutSeconds: 30,
		LogLevel:           "info",
		LogFormat:          "json",
		MetricsEnabled:     true,
		Timezone:           "Local",
	}
}

// Load loads configuration from the optional YAML file, .env and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile overlays values from a YAML file onto cfg.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if portStr := os.Getenv("PORT"); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil {
			c.Port = p
		}
	}
	if timeoutStr := os.Getenv("HTTP_TIMEOUT_SECONDS"); timeoutStr != "" {
		if t, err := strconv.Atoi(timeoutStr); err == nil {
			c.HTTPTimeoutSeconds = t
		}
	}
	if metricsStr := os.Getenv("METRICS_ENABLED"); metricsStr != "" {
		if b, err := strconv.ParseBool(metricsStr); err == nil {
			c.MetricsEnabled = b
		}
	}

	c.GitHubURL = getEnvOrDefault("GITHUB_URL", c.GitHubURL)
	c.LogLevel = strings.ToLower(getEnvOrDefault("LOG_LEVEL", c.LogLevel))
	c.LogFormat = strings.ToLower(getEnvOrDefault("LOG_FORMAT", c.LogFormat))
	c.Timezone = getEnvOrDefault("TIMEZONE", c.Timezone)
	c.TUILogFile = getEnvOrDefault("TUI_LOG_FILE", c.TUILogFile)
}

// Validate checks field constraints and that the timezone can be loaded.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// HTTPTimeout returns the outbound request timeout; zero means none.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// Location resolves Timezone to a *time.Location.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "Local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
