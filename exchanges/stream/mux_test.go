package stream

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/buger/jsonparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/binance-connector/common/crypto"
	"github.com/thrasher-corp/binance-connector/exchanges/apierror"
	"github.com/thrasher-corp/binance-connector/internal/mockserver"
	"golang.org/x/time/rate"
)

func dialMux(t *testing.T, batch int, opts ...Option) (*Mux, *mockserver.WS) {
	t.Helper()
	srv := mockserver.NewWSAPI(batch)
	t.Cleanup(srv.Close)
	m, err := DialMux(context.Background(), srv.URL, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m, srv
}

func TestMuxOutOfOrderReplies(t *testing.T) {
	t.Parallel()
	m, _ := dialMux(t, 2)

	var wg sync.WaitGroup
	var pingErr, timeErr error
	var serverTime struct {
		ServerTime int64 `json:"serverTime"`
	}
	var ping map[string]any
	wg.Add(2)
	go func() {
		defer wg.Done()
		pingErr = m.Send(context.Background(), "ping", nil, &ping)
	}()
	go func() {
		defer wg.Done()
		timeErr = m.Send(context.Background(), "time", nil, &serverTime)
	}()
	wg.Wait()

	require.NoError(t, pingErr)
	require.NoError(t, timeErr)
	assert.Empty(t, ping)
	assert.Equal(t, mockserver.ServerTime, serverTime.ServerTime)
}

func TestMuxCorrelationIsolation(t *testing.T) {
	t.Parallel()
	const callers = 16
	m, _ := dialMux(t, callers)

	type echo struct {
		N int `json:"n"`
	}
	var wg sync.WaitGroup
	results := make([]echo, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = m.Send(context.Background(), "echo", echo{N: i}, &results[i])
		}(i)
	}
	wg.Wait()
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, i, results[i].N, "caller %d received another caller's reply", i)
	}
}

func TestMuxDomainErrors(t *testing.T) {
	t.Parallel()
	m, _ := dialMux(t, 1)

	err := m.Send(context.Background(), "depth", map[string]string{"symbol": "NONEXIST"}, nil)
	e, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindDomain, e.Kind)
	assert.Equal(t, "400", e.Status)
	require.NotNil(t, e.Server)
	assert.Equal(t, apierror.CodeBadSymbol, e.Server.Code)
	assert.Equal(t, "Invalid symbol.", e.Server.Message)

	err = m.Send(context.Background(), "teapot", nil, nil)
	e, ok = apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindDomain, e.Kind)
	assert.Equal(t, "418", e.Status)
	assert.Nil(t, e.Server)

	limits, err := m.SendWithLimits(context.Background(), "ping", nil, nil)
	require.NoError(t, err)
	require.Len(t, limits, 1)
	assert.Equal(t, "REQUEST_WEIGHT", limits[0].RateLimitType)
	assert.Equal(t, int64(6000), limits[0].Limit)

	err = m.Send(context.Background(), "ping", func() {}, nil)
	assert.True(t, apierror.IsKind(err, apierror.KindEncoding))
}

func TestMuxSendSigned(t *testing.T) {
	t.Parallel()
	m, _ := dialMux(t, 1)

	err := m.SendSigned(context.Background(), "account.status", nil, nil)
	assert.True(t, apierror.IsKind(err, apierror.KindSigning))

	m.SetCredentials(mockserver.APIKey, mockserver.SecretKey)
	var account struct {
		CanTrade bool `json:"canTrade"`
	}
	require.NoError(t, m.SendSigned(context.Background(), "account.status", nil, &account))
	assert.True(t, account.CanTrade)

	params := struct {
		Symbol   string `json:"symbol"`
		Side     string `json:"side"`
		Type     string `json:"type"`
		Quantity string `json:"quantity"`
		RespType string `json:"newOrderRespType"`
	}{"BTCUSDT", "SELL", "MARKET", "10", "ACK"}
	var order struct {
		OrderID int64 `json:"orderId"`
	}
	require.NoError(t, m.SendSigned(context.Background(), "order.place", params, &order))
	assert.Equal(t, int64(28), order.OrderID)

	m.SetCredentials(mockserver.APIKey, "wrong")
	err = m.SendSigned(context.Background(), "order.place", params, &order)
	code, _ := asCode(err)
	assert.Equal(t, apierror.CodeInvalidSignature, code)
}

func asCode(err error) (apierror.Code, bool) {
	e, ok := apierror.As(err)
	if !ok {
		return 0, false
	}
	return e.Code()
}

func TestSignParams(t *testing.T) {
	t.Parallel()
	now := time.UnixMilli(1499827319559)
	raw, err := signParams([]byte(`{"symbol":"BTCUSDT","quantity":1,"price":"0.1"}`), "key", "secret", now)
	require.NoError(t, err)

	want, err := crypto.SignHMACSHA256("secret", "apiKey=key&price=0.1&quantity=1&symbol=BTCUSDT&timestamp=1499827319559")
	require.NoError(t, err)
	assert.JSONEq(t, `{"symbol":"BTCUSDT","quantity":1,"price":"0.1","apiKey":"key","timestamp":1499827319559,"signature":"`+want+`"}`, string(raw))

	raw, err = signParams([]byte(`{"apiKey":"other","timestamp":5}`), "key", "secret", now)
	require.NoError(t, err)
	got, err := jsonparser.GetString(raw, "apiKey")
	require.NoError(t, err)
	assert.Equal(t, "other", got, "caller supplied members are kept")
	ts, err := jsonparser.GetInt(raw, "timestamp")
	require.NoError(t, err)
	assert.Equal(t, int64(5), ts)

	_, err = signParams([]byte(`[1]`), "key", "secret", now)
	assert.True(t, apierror.IsKind(err, apierror.KindEncoding))
}

func TestMuxLimiter(t *testing.T) {
	t.Parallel()
	m, _ := dialMux(t, 1, WithLimiter(rate.NewLimiter(rate.Every(time.Hour), 1)))
	require.NoError(t, m.Send(context.Background(), "ping", nil, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := m.Send(ctx, "ping", nil, nil)
	assert.True(t, apierror.IsKind(err, apierror.KindClient))
}

func TestMuxCallerCancellation(t *testing.T) {
	t.Parallel()
	m, _ := dialMux(t, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := m.Send(ctx, "drop", nil, nil)
	assert.True(t, apierror.IsKind(err, apierror.KindClient))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	require.NoError(t, m.Send(context.Background(), "ping", nil, nil), "connection must survive a cancelled caller")
	assert.True(t, m.Conn().IsConnected())
}

func TestMuxUniqueIDs(t *testing.T) {
	t.Parallel()
	m, srv := dialMux(t, 1)
	seen := make(map[string]bool)
	for range 20 {
		require.NoError(t, m.Send(context.Background(), "ping", nil, nil))
	}
	for _, frame := range srv.Received() {
		id, err := jsonparser.GetString([]byte(frame), "id")
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, 20)
}
