/*
Package configs is responsible for loading and parsing the application's configuration settings.

It configures the client by reading operating system environment variables, including the
running environment, the REST API base URL, the chat service URL, the durable state
directory, and chat reconnection tuning.
*/
package configs

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AppConfig contains all configuration parameters required for the client to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Settings
	Environment string

	// Collaborator Endpoints
	APIBaseURL string
	ChatURL    string

	// Durable State Settings
	StateDir string

	// Optional credentials for non-interactive sign-in.
	Email    string
	Password string

	// Chat Reconnection Settings
	ReconnectAttempts int
	ReconnectDelay    time.Duration
}

// LoadConfig reads and parses the client configuration from environment variables.
// It provides default values for each configuration item and performs necessary type conversions and validation.
// It returns a pointer to the AppConfig struct and any error encountered.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Settings ---
	// Environment
	cfg.Environment = os.Getenv("HUECAS_ENV")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// --- Collaborator Endpoints ---
	// APIBaseURL
	cfg.APIBaseURL = os.Getenv("HUECAS_API_URL")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8000"
	}
	if err := validateURLScheme(cfg.APIBaseURL, "HUECAS_API_URL", "http", "https"); err != nil {
		return nil, err
	}

	// ChatURL
	cfg.ChatURL = os.Getenv("HUECAS_CHAT_URL")
	if cfg.ChatURL == "" {
		cfg.ChatURL = "ws://localhost:3003/ws"
	}
	if err := validateURLScheme(cfg.ChatURL, "HUECAS_CHAT_URL", "ws", "wss"); err != nil {
		return nil, err
	}

	// --- Durable State Settings ---
	cfg.StateDir = os.Getenv("HUECAS_STATE_DIR")
	if cfg.StateDir == "" {
		baseDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("HUECAS_STATE_DIR is not set and no user config directory is available: %w", err)
		}
		cfg.StateDir = filepath.Join(baseDir, "huecas")
	}

	// --- Credentials (optional) ---
	cfg.Email = os.Getenv("HUECAS_EMAIL")
	cfg.Password = os.Getenv("HUECAS_PASSWORD")

	// --- Chat Reconnection Settings ---
	// ReconnectAttempts
	attemptsStr := os.Getenv("HUECAS_RECONNECT_ATTEMPTS")
	if attemptsStr == "" {
		attemptsStr = "5"
	}
	attempts, err := strconv.Atoi(attemptsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HUECAS_RECONNECT_ATTEMPTS environment variable: %w", err)
	}
	if attempts < 0 {
		return nil, fmt.Errorf("HUECAS_RECONNECT_ATTEMPTS must not be negative, got %d", attempts)
	}
	cfg.ReconnectAttempts = attempts

	// ReconnectDelay
	delayStr := os.Getenv("HUECAS_RECONNECT_DELAY_MS")
	if delayStr == "" {
		delayStr = "1000"
	}
	delayMs, err := strconv.Atoi(delayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HUECAS_RECONNECT_DELAY_MS environment variable: %w", err)
	}
	if delayMs <= 0 {
		return nil, fmt.Errorf("HUECAS_RECONNECT_DELAY_MS must be positive, got %d", delayMs)
	}
	cfg.ReconnectDelay = time.Duration(delayMs) * time.Millisecond

	return cfg, nil
}

// validateURLScheme checks that rawURL parses and uses one of the allowed schemes.
func validateURLScheme(rawURL, envName string, schemes ...string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid %s environment variable: %w", envName, err)
	}

	for _, scheme := range schemes {
		if parsed.Scheme == scheme {
			return nil
		}
	}

	return fmt.Errorf("%s must use one of the schemes %v, got %q", envName, schemes, parsed.Scheme)
}
