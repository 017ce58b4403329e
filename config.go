package context7

import (
	"net/url"
	"time"
)

// DefaultBaseURL is the Context7 API root.
const DefaultBaseURL = "https://context7.com/api/v1"

// DefaultTimeout bounds a single API request.
const DefaultTimeout = 30 * time.Second

// DefaultLogLevel keeps request logging quiet unless asked for.
const DefaultLogLevel = "warn"

// Config holds client settings. Zero values mean "not set" so that
// layered sources can be merged.
type Config struct {
	BaseURL           string        `yaml:"base_url"`
	APIKey            string        `yaml:"api_key"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	LogLevel          string        `yaml:"log_level"`
	OTLPEndpoint      string        `yaml:"otlp_endpoint"`
	OTLPInsecure      bool          `yaml:"otlp_insecure"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
	}
}

// Merge returns c with every non-zero field of other applied on top.
func (c Config) Merge(other Config) Config {
	if other.BaseURL != "" {
		c.BaseURL = other.BaseURL
	}
	if other.APIKey != "" {
		c.APIKey = other.APIKey
	}
	if other.Timeout != 0 {
		c.Timeout = other.Timeout
	}
	if other.RequestsPerSecond != 0 {
		c.RequestsPerSecond = other.RequestsPerSecond
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.OTLPEndpoint != "" {
		c.OTLPEndpoint = other.OTLPEndpoint
	}
	if other.OTLPInsecure {
		c.OTLPInsecure = true
	}
	return c
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "invalid base URL %q", c.BaseURL)
	}
	if c.Timeout < 0 {
		return Errorf(EINVALID, "timeout must not be negative")
	}
	if c.RequestsPerSecond < 0 {
		return Errorf(EINVALID, "requests per second must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Errorf(EINVALID, "invalid log level %q", c.LogLevel)
	}
	return nil
}
