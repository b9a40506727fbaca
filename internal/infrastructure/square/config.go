package square

import (
	"errors"
	"fmt"
	"strings"
)

// Environment selects the Square API host.
type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

const (
	// SandboxBaseURL is the Square sandbox API host
	SandboxBaseURL = "https://connect.squareupsandbox.com"
	// ProductionBaseURL is the Square production API host
	ProductionBaseURL = "https://connect.squareup.com"
	// DefaultAPIVersion is sent in the Square-Version header when none is configured
	DefaultAPIVersion = "2025-01-23"
	// DefaultTimeoutSeconds is the HTTP request timeout when none is configured
	DefaultTimeoutSeconds = 30
)

// Errors for Square configuration
var (
	ErrConfigMissingAccessToken = errors.New("square: access token is required")
	ErrConfigMissingLocationID  = errors.New("square: location id is required")
	ErrConfigInvalidEnvironment = errors.New("square: environment must be sandbox or production")
)

// Config holds configuration for the Square REST API
type Config struct {
	// AccessToken is the OAuth or personal access token
	AccessToken string
	// LocationID is the single location orders are created at
	LocationID string
	// Environment selects sandbox or production when BaseURL is empty
	Environment Environment
	// BaseURL overrides the environment host (used by tests and proxies)
	BaseURL string
	// APIVersion is the Square-Version header value
	APIVersion string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// NewConfig creates a sandbox configuration with defaults
func NewConfig(accessToken, locationID string) *Config {
	return &Config{
		AccessToken:    accessToken,
		LocationID:     locationID,
		Environment:    EnvironmentSandbox,
		BaseURL:        SandboxBaseURL,
		APIVersion:     DefaultAPIVersion,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Validate validates the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.AccessToken == "" {
		return ErrConfigMissingAccessToken
	}
	if c.LocationID == "" {
		return ErrConfigMissingLocationID
	}
	switch c.Environment {
	case "":
		c.Environment = EnvironmentSandbox
	case EnvironmentSandbox, EnvironmentProduction:
	default:
		return fmt.Errorf("%w: %q", ErrConfigInvalidEnvironment, c.Environment)
	}
	if c.BaseURL == "" {
		c.BaseURL = c.Environment.BaseURL()
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return nil
}

// IsSandbox reports whether requests go to the sandbox.
func (c *Config) IsSandbox() bool {
	return c.Environment != EnvironmentProduction
}

// BaseURL returns the API host for the environment.
func (e Environment) BaseURL() string {
	if e == EnvironmentProduction {
		return ProductionBaseURL
	}
	return SandboxBaseURL
}
