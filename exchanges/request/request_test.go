package request

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/binance-connector/exchanges/apierror"
	"golang.org/x/time/rate"
)

var testURL string

func TestMain(m *testing.M) {
	sm := http.NewServeMux()
	sm.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-MBX-USED-WEIGHT-1M", "12")
		w.Header().Set("X-MBX-ORDER-COUNT-10S", "3")
		_, _ = io.WriteString(w, `{"response":true}`)
	})
	sm.HandleFunc("/empty", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	sm.HandleFunc("/headers", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"key":"`+r.Header.Get("X-MBX-APIKEY")+`","agent":"`+r.Header.Get("User-Agent")+`"}`)
	})
	sm.HandleFunc("/error", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"code":-1121,"msg":"Invalid symbol."}`)
	})
	sm.HandleFunc("/html", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `<html>bad gateway</html>`)
	})
	sm.HandleFunc("/garbage", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"response":`)
	})
	server := httptest.NewServer(sm)
	testURL = server.URL
	code := m.Run()
	server.Close()
	os.Exit(code)
}

type response struct {
	Response bool `json:"response"`
}

func TestSendPayload(t *testing.T) {
	t.Parallel()
	r := New("test", nil, WithLimiter(NewRateLimit(0, 0)))

	var resp response
	err := r.SendPayload(context.Background(), &Item{Method: http.MethodGet, Path: testURL, Result: &resp, Verbose: true})
	require.NoError(t, err)
	assert.True(t, resp.Response)

	usage := r.Usage()
	assert.Equal(t, map[string]int64{"1m": 12}, usage.UsedWeight)
	assert.Equal(t, map[string]int64{"10s": 3}, usage.OrderCount)
	assert.False(t, usage.Updated.IsZero())

	err = r.SendPayload(context.Background(), &Item{Method: http.MethodGet, Path: testURL + "/empty", Result: &resp})
	require.NoError(t, err, "empty body must not be decoded")
	assert.Equal(t, map[string]int64{"1m": 12}, r.Usage().UsedWeight, "usage must survive responses without counters")

	err = r.SendPayload(WithVerbose(context.Background()), &Item{Method: http.MethodPost, Path: testURL, HTTPDebugging: true})
	require.NoError(t, err, "nil result must be accepted")
}

func TestSendPayloadHeaders(t *testing.T) {
	t.Parallel()
	r := New("test", nil)
	r.UserAgent = "connector/1"
	var resp struct {
		Key   string `json:"key"`
		Agent string `json:"agent"`
	}
	err := r.SendPayload(context.Background(), &Item{
		Method:  http.MethodGet,
		Path:    testURL + "/headers",
		Headers: map[string]string{"X-MBX-APIKEY": "abc"},
		Result:  &resp,
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Key)
	assert.Equal(t, "connector/1", resp.Agent)
}

func TestSendPayloadErrors(t *testing.T) {
	t.Parallel()
	r := New("test", nil)
	ctx := context.Background()

	var nilRequester *Requester
	assert.True(t, apierror.IsKind(nilRequester.SendPayload(ctx, &Item{}), apierror.KindClient))
	assert.ErrorIs(t, r.SendPayload(ctx, nil), errRequestItemNil)
	assert.ErrorIs(t, r.SendPayload(ctx, &Item{Method: http.MethodGet}), errInvalidPath)

	err := r.SendPayload(ctx, &Item{Method: http.MethodGet, Path: testURL + "/error", Result: &response{}})
	e, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindDomain, e.Kind)
	assert.Equal(t, "400 Bad Request", e.Status)
	require.NotNil(t, e.Server)
	assert.Equal(t, apierror.CodeBadSymbol, e.Server.Code)
	assert.Equal(t, "Invalid symbol.", e.Server.Message)

	err = r.SendPayload(ctx, &Item{Method: http.MethodGet, Path: testURL + "/html"})
	e, ok = apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindDomain, e.Kind)
	assert.Equal(t, "502 Bad Gateway", e.Status)
	assert.Nil(t, e.Server)
	assert.Equal(t, "<html>bad gateway</html>", string(e.Body))

	err = r.SendPayload(ctx, &Item{Method: http.MethodGet, Path: testURL + "/garbage", Result: &response{}})
	assert.True(t, apierror.IsKind(err, apierror.KindEncoding), "got %v", err)

	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close()
	err = r.SendPayload(ctx, &Item{Method: http.MethodGet, Path: dead.URL})
	assert.True(t, apierror.IsKind(err, apierror.KindTransport), "got %v", err)
}

func TestWait(t *testing.T) {
	t.Parallel()
	require.NoError(t, Wait(context.Background(), nil))

	l := rate.NewLimiter(rate.Every(time.Hour), 1)
	require.NoError(t, Wait(context.Background(), l))
	err := Wait(WithDelayNotAllowed(context.Background()), l)
	assert.ErrorIs(t, err, errDelayNotAllowed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, Wait(ctx, l))

	r := New("test", nil, WithLimiter(l))
	err = r.SendPayload(WithDelayNotAllowed(context.Background()), &Item{Method: http.MethodGet, Path: testURL})
	assert.True(t, apierror.IsKind(err, apierror.KindClient))
	assert.ErrorIs(t, err, errDelayNotAllowed)
}

func TestNewRateLimit(t *testing.T) {
	t.Parallel()
	assert.Equal(t, rate.Inf, NewRateLimit(0, 10).Limit())
	assert.Equal(t, rate.Inf, NewRateLimit(time.Second, 0).Limit())
	assert.InDelta(t, 20, float64(NewRateLimit(time.Second/2, 10).Limit()), 1e-9)
}

func TestSetProxy(t *testing.T) {
	t.Parallel()
	r := New("test", nil)
	assert.ErrorIs(t, r.SetProxy(nil), errNoProxyURL)
	p, err := url.Parse("http://127.0.0.1:3128")
	require.NoError(t, err)
	require.NoError(t, r.SetProxy(p))

	r = New("test", &http.Client{})
	assert.ErrorIs(t, r.SetProxy(p), errTransportNotSet)
}
