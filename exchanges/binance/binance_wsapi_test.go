package binance

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/binance-connector/exchanges/apierror"
	"github.com/thrasher-corp/binance-connector/internal/mockserver"
)

func dialTestWSAPI(t *testing.T, batch int, secret string) *WSAPI {
	t.Helper()
	srv := mockserver.NewWSAPI(batch)
	t.Cleanup(srv.Close)
	w, err := DialWSAPI(context.Background(), srv.URL, mockserver.APIKey, secret)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestWSAPIMultiplex(t *testing.T) {
	t.Parallel()
	w := dialTestWSAPI(t, 2, mockserver.SecretKey)

	var wg sync.WaitGroup
	var pingErr, timeErr error
	var st ServerTime
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, pingErr = w.Ping(context.Background())
	}()
	go func() {
		defer wg.Done()
		st, timeErr = w.ServerTime(context.Background())
	}()
	wg.Wait()

	require.NoError(t, pingErr)
	require.NoError(t, timeErr)
	assert.Equal(t, mockserver.ServerTime, st.ServerTime.Time().UnixMilli())
}

func TestWSAPIDepth(t *testing.T) {
	t.Parallel()
	w := dialTestWSAPI(t, 1, mockserver.SecretKey)
	book, err := w.Depth(context.Background(), DepthParams{Symbol: "BTCUSDT", Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, mockserver.LastUpdateID, book.LastUpdateID)

	_, err = w.Depth(context.Background(), DepthParams{Symbol: "NONEXIST"})
	e, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindDomain, e.Kind)
	assert.Equal(t, "400", e.Status)
	code, ok := e.Code()
	require.True(t, ok)
	assert.Equal(t, apierror.CodeBadSymbol, code)
}

func TestWSAPISigned(t *testing.T) {
	t.Parallel()
	w := dialTestWSAPI(t, 1, mockserver.SecretKey)
	ctx := context.Background()

	omit := true
	params := NewAccountParams()
	params.OmitZeroBalances = &omit
	acc, err := w.Account(ctx, params)
	require.NoError(t, err)
	require.Len(t, acc.Balances, 1)

	key, err := w.NewListenKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, mockserver.ListenKey, key.ListenKey)

	qty, price := decimal.NewFromInt(1), decimal.RequireFromString("0.1")
	order := NewOrderParams("BTCUSDT", SideBuy, OrderTypeLimit)
	order.TimeInForce = TimeInForceGTC
	order.Quantity, order.Price = &qty, &price
	order.NewOrderRespType = OrderResponseRESULT
	resp, err := w.NewOrder(ctx, order)
	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.Equal(t, int64(28), resp.Result.OrderID)

	_, err = w.TestNewOrder(ctx, order)
	require.NoError(t, err)
}

func TestWSAPIBadSignature(t *testing.T) {
	t.Parallel()
	w := dialTestWSAPI(t, 1, "not the secret")
	_, err := w.Account(context.Background(), NewAccountParams())
	e, ok := apierror.As(err)
	require.True(t, ok)
	code, ok := e.Code()
	require.True(t, ok)
	assert.Equal(t, apierror.CodeInvalidSignature, code)
}

func TestWSAPIClosed(t *testing.T) {
	t.Parallel()
	w := dialTestWSAPI(t, 1, mockserver.SecretKey)
	require.NoError(t, w.Close())
	_, err := w.Ping(context.Background())
	assert.True(t, apierror.IsKind(err, apierror.KindClient))
	assert.False(t, w.Conn().IsConnected())
}
