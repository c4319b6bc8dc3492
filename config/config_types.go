package config

import (
	"errors"
	"time"

	"github.com/thrasher-corp/binance-connector/log"
)

// Constants declared here are file names and environment settings
const (
	File      = "config.yaml"
	EnvPrefix = "BINANCE"

	defaultHTTPTimeout = time.Second * 15
	maxRecvWindow      = 60000
)

// Variables here are used for configuration
var (
	errInvalidURL        = errors.New("invalid url")
	errRecvWindowRange   = errors.New("recvWindow must be between 0 and 60000 milliseconds")
	errNegativeTimeout   = errors.New("http timeout cannot be negative")
	errFailureReadConfig = errors.New("failure reading config")

	// envBindings maps config keys to the environment variables overriding
	// them
	envBindings = map[string]string{
		"apiKey":     "BINANCE_API_KEY",
		"secretKey":  "BINANCE_SECRET_KEY",
		"restURL":    "BINANCE_REST_URL",
		"wsAPIURL":   "BINANCE_WS_API_URL",
		"streamURL":  "BINANCE_STREAM_URL",
		"recvWindow": "BINANCE_RECV_WINDOW",
		"verbose":    "BINANCE_VERBOSE",
		"testnet":    "BINANCE_TESTNET",
	}
)

// Config holds the settings of programs built on the connector
type Config struct {
	APIKey    string `mapstructure:"apiKey"`
	SecretKey string `mapstructure:"secretKey"`
	// Testnet selects the testnet endpoints for any URL left empty
	Testnet   bool   `mapstructure:"testnet"`
	RESTURL   string `mapstructure:"restURL"`
	WSAPIURL  string `mapstructure:"wsAPIURL"`
	StreamURL string `mapstructure:"streamURL"`
	// RecvWindow in milliseconds, 0 leaves the server default of 5000
	RecvWindow  int64         `mapstructure:"recvWindow"`
	HTTPTimeout time.Duration `mapstructure:"httpTimeout"`
	Verbose     bool          `mapstructure:"verbose"`
	Logging     log.Config    `mapstructure:"logging"`
}
