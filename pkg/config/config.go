// Package config handles loading and validation of user configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sgaunet/boolco/internal/security"
	"github.com/sgaunet/boolco/internal/urlutil"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the server the client talks to when none is configured.
	DefaultBaseURL = "https://boolco.dev"
	// DefaultTimeout bounds a single HTTP attempt.
	DefaultTimeout = 10 * time.Second
	// DefaultRetries is how many times an idempotent request is retried.
	DefaultRetries = 3

	minTimeout = time.Second
	maxTimeout = 5 * time.Minute
	maxRetries = 10

	// EnvSession overrides the session value from the config file.
	EnvSession = "BOOLCO_SESSION"
	// EnvBaseURL overrides the base URL from the config file.
	EnvBaseURL = "BOOLCO_BASE_URL"
)

var (
	errConfigNotFound  = errors.New("config file not found")
	errTimeoutRange    = errors.New("timeout out of range")
	errRetriesRange    = errors.New("retries out of range")
	errSessionEncoding = errors.New("session must not contain whitespace or ';'")
)

// Config represents the complete configuration for boolco.
type Config struct {
	BaseURL string        `yaml:"base_url"`
	Session string        `yaml:"session"`
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
		Retries: DefaultRetries,
	}
}

// DefaultPath is ~/.config/boolco/config.yml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "boolco", "config.yml"), nil
}

// Load reads the configuration at path, or at [DefaultPath] when path is
// empty. A missing default file yields [Default]; a missing explicit file is
// an error. Environment overrides are applied before validation.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	config := Default()

	// #nosec G304 - Reading a user-chosen config file is intentional
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults only
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", errConfigNotFound, path)
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvSession); ok {
		c.Session = v
	}
	if v, ok := os.LookupEnv(EnvBaseURL); ok && strings.TrimSpace(v) != "" {
		c.BaseURL = v
	}
}

// Validate checks the base URL, session encoding, timeout and retry bounds.
// It trims whitespace from the base URL and session in place.
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.Session = strings.TrimSpace(c.Session)

	if _, err := urlutil.ParseBaseURL(c.BaseURL); err != nil {
		return err
	}

	if strings.ContainsAny(c.Session, " \t\r\n;") {
		return errSessionEncoding
	}

	if c.Timeout < minTimeout || c.Timeout > maxTimeout {
		return fmt.Errorf("%w: %s (allowed %s to %s)", errTimeoutRange, c.Timeout, minTimeout, maxTimeout)
	}

	if c.Retries < 0 || c.Retries > maxRetries {
		return fmt.Errorf("%w: %d (allowed 0 to %d)", errRetriesRange, c.Retries, maxRetries)
	}

	return nil
}

// SessionToken returns the session wrapped so it cannot leak through fmt.
func (c *Config) SessionToken() security.SecureToken {
	return security.NewSecureToken("session", c.Session)
}

// String describes the configuration with the session masked.
func (c *Config) String() string {
	return fmt.Sprintf("base_url=%s session=%s timeout=%s retries=%d",
		c.BaseURL, c.SessionToken(), c.Timeout, c.Retries)
}
