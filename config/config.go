// Package config loads the settings of programs built on the connector. The
// connector itself takes its URLs and keys as constructor arguments and never
// reads configuration.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
	"github.com/thrasher-corp/binance-connector/exchanges/binance"
	"github.com/thrasher-corp/binance-connector/log"
)

// Load reads the config file at path, which may be empty, applies BINANCE_*
// environment overrides and defaults, and validates the result
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("httpTimeout", defaultHTTPTimeout)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w %s: %w", errFailureReadConfig, path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("%w %s: %w", errFailureReadConfig, path, err)
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.CheckLoggerConfig()
	return &c, nil
}

// SetDefaults fills empty endpoints with the production or testnet addresses
func (c *Config) SetDefaults() {
	rest, wsAPI, streams := binance.DefaultRESTURL, binance.DefaultWSAPIURL, binance.DefaultStreamURL
	if c.Testnet {
		rest, wsAPI, streams = binance.TestnetRESTURL, binance.TestnetWSAPIURL, binance.TestnetStreamURL
	}
	if c.RESTURL == "" {
		c.RESTURL = rest
	}
	if c.WSAPIURL == "" {
		c.WSAPIURL = wsAPI
	}
	if c.StreamURL == "" {
		c.StreamURL = streams
	}
}

// Validate checks the endpoint schemes and numeric bounds
func (c *Config) Validate() error {
	for _, u := range []struct {
		name, value string
		schemes     []string
	}{
		{"restURL", c.RESTURL, []string{"http", "https"}},
		{"wsAPIURL", c.WSAPIURL, []string{"ws", "wss"}},
		{"streamURL", c.StreamURL, []string{"ws", "wss"}},
	} {
		if err := checkURL(u.value, u.schemes...); err != nil {
			return fmt.Errorf("%s: %w", u.name, err)
		}
	}
	if c.RecvWindow < 0 || c.RecvWindow > maxRecvWindow {
		return fmt.Errorf("%w, got %d", errRecvWindowRange, c.RecvWindow)
	}
	if c.HTTPTimeout < 0 {
		return errNegativeTimeout
	}
	return nil
}

// CheckLoggerConfig replaces a missing logging block with the defaults
func (c *Config) CheckLoggerConfig() {
	if c.Logging.Enabled == nil || c.Logging.Output == "" {
		c.Logging = log.GenDefaultSettings()
		return
	}
	if c.Logging.Level == "" {
		c.Logging.Level = log.GenDefaultSettings().Level
	}
	if c.Logging.AdvancedSettings.ShowLogSystemName == nil {
		show := false
		c.Logging.AdvancedSettings.ShowLogSystemName = &show
	}
	if c.Logging.LoggerFileConfig != nil && c.Logging.LoggerFileConfig.MaxSizeMB <= 0 {
		log.Warnf(log.ConfigMgr, "Logger rotation size invalid, defaulting to %v", log.DefaultMaxFileSize)
		c.Logging.LoggerFileConfig.MaxSizeMB = log.DefaultMaxFileSize
	}
}

// HasCredentials reports whether both keys are set
func (c *Config) HasCredentials() bool {
	return c.APIKey != "" && c.SecretKey != ""
}

// RecvWindowDuration returns RecvWindow as a duration
func (c *Config) RecvWindowDuration() time.Duration {
	return time.Duration(c.RecvWindow) * time.Millisecond
}

func checkURL(raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w %q: %w", errInvalidURL, raw, err)
	}
	if u.Host == "" {
		return fmt.Errorf("%w %q: missing host", errInvalidURL, raw)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("%w %q: scheme must be one of %v", errInvalidURL, raw, schemes)
}
