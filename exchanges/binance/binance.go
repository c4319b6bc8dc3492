// Package binance is a typed client for the Binance Spot REST API, websocket
// API and market streams. Endpoint descriptors live in endpoints_gen.go and
// are generated from endpoints.yaml by cmd/endpointgen.
package binance

//go:generate go run ../../cmd/endpointgen -in endpoints.yaml -out endpoints_gen.go

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/thrasher-corp/binance-connector/common/crypto"
	"github.com/thrasher-corp/binance-connector/encoding/query"
	"github.com/thrasher-corp/binance-connector/exchanges/apierror"
	"github.com/thrasher-corp/binance-connector/exchanges/endpoint"
	"github.com/thrasher-corp/binance-connector/exchanges/request"
	"golang.org/x/time/rate"
)

// Service addresses
const (
	DefaultRESTURL   = "https://api.binance.com"
	DefaultWSAPIURL  = "wss://ws-api.binance.com:443/ws-api/v3"
	DefaultStreamURL = "wss://stream.binance.com:9443"

	TestnetRESTURL   = "https://testnet.binance.vision"
	TestnetWSAPIURL  = "wss://ws-api.testnet.binance.vision/ws-api/v3"
	TestnetStreamURL = "wss://stream.testnet.binance.vision"

	apiKeyHeader = "X-MBX-APIKEY"
	// MaxRecvWindow is the largest recvWindow the service accepts, in
	// milliseconds. Larger values are passed through and rejected remotely.
	MaxRecvWindow = 60000
)

var errNilArgument = errors.New("nil argument")

// Client is a REST client. It is safe for concurrent use.
type Client struct {
	base          *url.URL
	apiKey        string
	secretKey     string
	requester     *request.Requester
	verbose       bool
	httpDebugging bool
}

// Option configures a Client
type Option func(*clientConfig)

type clientConfig struct {
	httpClient    *http.Client
	limiter       *rate.Limiter
	proxy         string
	userAgent     string
	verbose       bool
	httpDebugging bool
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = h }
}

// WithLimiter waits on l before each request
func WithLimiter(l *rate.Limiter) Option {
	return func(c *clientConfig) { c.limiter = l }
}

// WithProxy routes requests through the given proxy URL
func WithProxy(proxyURL string) Option {
	return func(c *clientConfig) { c.proxy = proxyURL }
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) { c.userAgent = ua }
}

// WithVerbose logs every request and response
func WithVerbose() Option {
	return func(c *clientConfig) { c.verbose = true }
}

// WithHTTPDebugging dumps raw requests and responses
func WithHTTPDebugging() Option {
	return func(c *clientConfig) { c.httpDebugging = true }
}

// New returns a REST client for baseURL. The base URL may carry a path; an
// absolute endpoint path replaces it.
func New(baseURL, apiKey, secretKey string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, apierror.Client(err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, apierror.Client(fmt.Errorf("invalid base url %q", baseURL))
	}
	var cfg clientConfig
	for _, o := range opts {
		o(&cfg)
	}
	var reqOpts []request.RequesterOption
	if cfg.limiter != nil {
		reqOpts = append(reqOpts, request.WithLimiter(cfg.limiter))
	}
	r := request.New("binance", cfg.httpClient, reqOpts...)
	r.UserAgent = cfg.userAgent
	if cfg.proxy != "" {
		p, err := url.Parse(cfg.proxy)
		if err != nil {
			return nil, apierror.Client(err)
		}
		if err := r.SetProxy(p); err != nil {
			return nil, apierror.Client(err)
		}
	}
	return &Client{
		base:          base,
		apiKey:        apiKey,
		secretKey:     secretKey,
		requester:     r,
		verbose:       cfg.verbose,
		httpDebugging: cfg.httpDebugging,
	}, nil
}

// SendHTTPRequest performs the call described by d. Params are encoded in
// field order; for signed security classes the signature of that exact query
// is appended and the API key header attached.
func (c *Client) SendHTTPRequest(ctx context.Context, d endpoint.Descriptor, params, result any) error {
	if c == nil {
		return apierror.Client(errNilArgument)
	}
	u := c.base.ResolveReference(&url.URL{Path: d.Path})

	q, err := query.Encode(params)
	if err != nil {
		return apierror.Encoding(err)
	}

	var headers map[string]string
	if d.Security.Signed() {
		sig, err := crypto.SignHMACSHA256(c.secretKey, q)
		if err != nil {
			return apierror.Signing(err)
		}
		if q == "" {
			q = "signature=" + sig
		} else {
			q += "&signature=" + sig
		}
		headers = map[string]string{apiKeyHeader: c.apiKey}
	}
	u.RawQuery = q

	return c.requester.SendPayload(ctx, &request.Item{
		Method:        d.Method,
		Path:          u.String(),
		Headers:       headers,
		Result:        result,
		Verbose:       c.verbose,
		HTTPDebugging: c.httpDebugging,
	})
}

// RateLimitUsage returns the usage counters reported on the latest response
func (c *Client) RateLimitUsage() request.RateLimitUsage {
	return c.requester.Usage()
}
