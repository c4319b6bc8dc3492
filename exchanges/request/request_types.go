package request

import (
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	userAgent       = "User-Agent"
	proxyTLSTimeout = 15 * time.Second

	usedWeightPrefix = "X-Mbx-Used-Weight-"
	orderCountPrefix = "X-Mbx-Order-Count-"
)

// Requester dispatches HTTP requests for a single service
type Requester struct {
	HTTPClient *http.Client
	Name       string
	UserAgent  string

	limiter *rate.Limiter

	usageMtx sync.RWMutex
	usage    RateLimitUsage
}

// RequesterOption configures a Requester
type RequesterOption func(*Requester)

// Item is a single prepared request
type Item struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    io.Reader
	// Result receives the decoded 2xx response body when non-nil
	Result        any
	Verbose       bool
	HTTPDebugging bool
}

// RateLimitUsage is a snapshot of the server reported usage counters. Keys
// are the interval suffix of the header, e.g. "1m" or "10s".
type RateLimitUsage struct {
	UsedWeight map[string]int64
	OrderCount map[string]int64
	Updated    time.Time
}
