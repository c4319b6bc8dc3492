package stream

import (
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// Status is a connection lifecycle event
type Status uint8

// Connection status events
const (
	Connected Status = iota + 1
	PingReceived
	PongSent
	Disconnected
)

func (s Status) String() string {
	switch s {
	case Connected:
		return "connected"
	case PingReceived:
		return "ping-received"
	case PongSent:
		return "pong-sent"
	case Disconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

const (
	defaultEventBuffer  = 1024
	defaultWriteTimeout = 10 * time.Second
	defaultDialTimeout  = 30 * time.Second
)

// Public errors
var (
	// ErrConnectionClosed is the cause of every failure returned after the
	// connection has gone away. The close reason is appended to it.
	ErrConnectionClosed = errors.New("websocket connection closed")
	// ErrClosedByClient is the close reason after Close
	ErrClosedByClient = errors.New("closed by client")
)

var (
	errIDCollision  = errors.New("request id collision")
	errEmptyURL     = errors.New("websocket url is empty")
	errNilConn      = errors.New("connection is nil")
	errNoCredential = errors.New("api key and secret key required for signed requests")
)

// Conn is a single websocket connection. One goroutine owns the write half of
// the socket and the table of pending requests; callers hand it envelopes.
type Conn struct {
	name      string
	url       string
	ws        *websocket.Conn
	verbose   bool
	limiter   *rate.Limiter
	status    chan<- Status
	unmatched func([]byte)

	outbound chan envelope
	inbound  chan []byte
	pings    chan []byte
	events   chan []byte
	closing  chan struct{}
	done     chan struct{}

	closeOnce sync.Once
	connected atomic.Bool

	// readErr is written by the reader before inbound is closed
	readErr error
	// reason is written by the loop before done is closed
	reason error
}

// envelope hands a request and its reply channel to the connection loop
type envelope struct {
	id    string
	text  []byte
	reply chan reply
}

type reply struct {
	data []byte
	err  error
}

// Option configures a connection
type Option func(*connConfig)

type connConfig struct {
	name        string
	verbose     bool
	limiter     *rate.Limiter
	status      chan<- Status
	proxy       string
	header      http.Header
	dialer      *websocket.Dialer
	eventBuffer int
}

// WithName sets the name used in log output
func WithName(name string) Option {
	return func(c *connConfig) { c.name = name }
}

// WithVerbose logs every frame sent and received
func WithVerbose() Option {
	return func(c *connConfig) { c.verbose = true }
}

// WithLimiter makes every request wait on l before it is queued
func WithLimiter(l *rate.Limiter) Option {
	return func(c *connConfig) { c.limiter = l }
}

// WithStatus delivers lifecycle events to ch. Sends never block the
// connection; a consumer that falls behind misses events, so ch should be
// buffered.
func WithStatus(ch chan<- Status) Option {
	return func(c *connConfig) { c.status = ch }
}

// WithProxy dials through the given proxy URL
func WithProxy(proxyURL string) Option {
	return func(c *connConfig) { c.proxy = proxyURL }
}

// WithHeader adds headers to the handshake request
func WithHeader(h http.Header) Option {
	return func(c *connConfig) { c.header = h }
}

// WithDialer replaces the default dialer
func WithDialer(d *websocket.Dialer) Option {
	return func(c *connConfig) { c.dialer = d }
}

// WithEventBuffer sets how many unsolicited frames may queue for the event
// sink before the connection stops reading
func WithEventBuffer(n int) Option {
	return func(c *connConfig) { c.eventBuffer = n }
}

// RateLimit is a usage counter reported on websocket API responses
type RateLimit struct {
	RateLimitType string `json:"rateLimitType"`
	Interval      string `json:"interval"`
	IntervalNum   int64  `json:"intervalNum"`
	Limit         int64  `json:"limit"`
	Count         int64  `json:"count"`
}
