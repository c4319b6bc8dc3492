package request

import (
	"context"
	"errors"
	"io"
	"maps"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/thrasher-corp/binance-connector/encoding/json"
	"github.com/thrasher-corp/binance-connector/exchanges/apierror"
	"github.com/thrasher-corp/binance-connector/log"
)

var (
	errRequestSystemIsNil = errors.New("request system is nil")
	errRequestItemNil     = errors.New("request item is nil")
	errInvalidPath        = errors.New("invalid path")
	errNoProxyURL         = errors.New("no proxy URL supplied")
	errTransportNotSet    = errors.New("transport not set, cannot set proxy")
)

// New returns a new Requester. A nil httpRequester is replaced by a client
// with a default transport and a 30 second timeout.
func New(name string, httpRequester *http.Client, opts ...RequesterOption) *Requester {
	if httpRequester == nil {
		httpRequester = &http.Client{
			Timeout:   30 * time.Second,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		}
	}
	r := &Requester{
		HTTPClient: httpRequester,
		Name:       name,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// SendPayload dispatches the item and decodes a successful response into
// item.Result. Every returned error is an *apierror.Error: a non-2xx status is
// a domain failure carrying the status line and, when decodable, the server
// error body.
func (r *Requester) SendPayload(ctx context.Context, item *Item) error {
	if r == nil {
		return apierror.Client(errRequestSystemIsNil)
	}
	req, err := item.validateRequest(ctx, r)
	if err != nil {
		return apierror.Client(err)
	}

	if err := Wait(ctx, r.limiter); err != nil {
		return apierror.Client(err)
	}

	verbose := IsVerbose(ctx, item.Verbose)
	if verbose {
		log.Debugf(log.RequestSys, "%s request path: %s", r.Name, item.Path)
		for k, d := range req.Header {
			log.Debugf(log.RequestSys, "%s request header [%s]: %s", r.Name, k, d)
		}
		log.Debugf(log.RequestSys, "%s request type: %s", r.Name, item.Method)
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return apierror.Transport(err)
	}
	defer resp.Body.Close()

	contents, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierror.Transport(err)
	}

	r.captureUsage(resp.Header)

	if item.HTTPDebugging {
		dump, err := httputil.DumpResponse(resp, false)
		if err != nil {
			log.Errorf(log.RequestSys, "DumpResponse invalid response: %v:", err)
		}
		log.Debugf(log.RequestSys, "DumpResponse Headers (%v):\n%s", item.Path, dump)
		log.Debugf(log.RequestSys, "DumpResponse Body (%v):\n %s", item.Path, string(contents))
	}

	if verbose {
		log.Debugf(log.RequestSys, "%s HTTP status: %s, Code: %v", r.Name, resp.Status, resp.StatusCode)
		if !item.HTTPDebugging {
			log.Debugf(log.RequestSys, "%s raw response: %s", r.Name, string(contents))
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apierror.FromBody(resp.Status, contents)
	}

	if item.Result == nil || len(contents) == 0 {
		return nil
	}
	if err := json.Unmarshal(contents, item.Result); err != nil {
		return apierror.Encoding(err)
	}
	return nil
}

// validateRequest validates the requester item fields
func (i *Item) validateRequest(ctx context.Context, r *Requester) (*http.Request, error) {
	if i == nil {
		return nil, errRequestItemNil
	}
	if i.Path == "" {
		return nil, errInvalidPath
	}

	req, err := http.NewRequestWithContext(ctx, i.Method, i.Path, i.Body)
	if err != nil {
		return nil, err
	}

	for k, v := range i.Headers {
		req.Header.Add(k, v)
	}
	if r.UserAgent != "" && req.Header.Get(userAgent) == "" {
		req.Header.Add(userAgent, r.UserAgent)
	}

	if i.HTTPDebugging {
		// Err not evaluated due to validation check above
		dump, _ := httputil.DumpRequestOut(req, true)
		log.Debugf(log.RequestSys, "DumpRequest:\n%s", dump)
	}
	return req, nil
}

// captureUsage records the usage counters carried by the response headers.
// Responses without counters leave the previous snapshot untouched.
func (r *Requester) captureUsage(h http.Header) {
	var usage RateLimitUsage
	for k, v := range h {
		if len(v) == 0 {
			continue
		}
		var target *map[string]int64
		var interval string
		switch {
		case strings.HasPrefix(k, usedWeightPrefix):
			target, interval = &usage.UsedWeight, k[len(usedWeightPrefix):]
		case strings.HasPrefix(k, orderCountPrefix):
			target, interval = &usage.OrderCount, k[len(orderCountPrefix):]
		default:
			continue
		}
		n, err := strconv.ParseInt(v[0], 10, 64)
		if err != nil {
			log.Warnf(log.RequestSys, "%s unparsable usage header %s: %q", r.Name, k, v[0])
			continue
		}
		if *target == nil {
			*target = make(map[string]int64)
		}
		(*target)[strings.ToLower(interval)] = n
	}
	if usage.UsedWeight == nil && usage.OrderCount == nil {
		return
	}
	usage.Updated = time.Now()
	r.usageMtx.Lock()
	r.usage = usage
	r.usageMtx.Unlock()
}

// Usage returns a copy of the most recent server reported usage
func (r *Requester) Usage() RateLimitUsage {
	r.usageMtx.RLock()
	defer r.usageMtx.RUnlock()
	return RateLimitUsage{
		UsedWeight: maps.Clone(r.usage.UsedWeight),
		OrderCount: maps.Clone(r.usage.OrderCount),
		Updated:    r.usage.Updated,
	}
}

// SetProxy sets a proxy address to the client transport
func (r *Requester) SetProxy(p *url.URL) error {
	if p == nil || p.String() == "" {
		return errNoProxyURL
	}

	t, ok := r.HTTPClient.Transport.(*http.Transport)
	if !ok {
		return errTransportNotSet
	}
	t.Proxy = http.ProxyURL(p)
	t.TLSHandshakeTimeout = proxyTLSTimeout
	return nil
}
