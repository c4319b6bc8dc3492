package binance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/binance-connector/encoding/json"
	"github.com/thrasher-corp/binance-connector/encoding/query"
)

func TestKlineUnmarshal(t *testing.T) {
	t.Parallel()
	data := `[[1499040000000,"0.01634790","0.80000000","0.01575800","0.01577100","148976.11427815",1499644799999,"2434.19055334",308,"1756.87402397","28.46694368","0"]]`
	var klines []Kline
	require.NoError(t, json.Unmarshal([]byte(data), &klines))
	require.Len(t, klines, 1)
	k := klines[0]
	assert.Equal(t, int64(1499040000000), k.OpenTime.Time().UnixMilli())
	assert.True(t, decimal.RequireFromString("0.0163479").Equal(k.Open))
	assert.True(t, decimal.RequireFromString("0.015771").Equal(k.Close))
	assert.Equal(t, int64(1499644799999), k.CloseTime.Time().UnixMilli())
	assert.Equal(t, int64(308), k.TradeCount)
	assert.True(t, decimal.RequireFromString("28.46694368").Equal(k.TakerBuyQuoteAssetVolume))

	assert.Error(t, json.Unmarshal([]byte(`[1499040000000,"0.01"]`), &k), "short klines must be rejected")
	assert.Error(t, json.Unmarshal([]byte(`[1499040000000,"x","1","1","1","1",1,"1",1,"1","1"]`), &k))
}

func TestPriceLevelUnmarshal(t *testing.T) {
	t.Parallel()
	var p PriceLevel
	require.NoError(t, json.Unmarshal([]byte(`["4.00000200","12.00000000"]`), &p))
	assert.True(t, decimal.RequireFromString("4.000002").Equal(p.Price))
	assert.True(t, decimal.RequireFromString("12").Equal(p.Quantity))
	assert.Error(t, json.Unmarshal([]byte(`{"price":"1"}`), &p))
}

func TestOneOrMany(t *testing.T) {
	t.Parallel()
	var one OneOrMany[SymbolPrice]
	require.NoError(t, json.Unmarshal([]byte(`{"symbol":"LTCBTC","price":"4.00000200"}`), &one))
	require.Len(t, one, 1)
	assert.Equal(t, "LTCBTC", one[0].Symbol)

	var many OneOrMany[SymbolPrice]
	require.NoError(t, json.Unmarshal([]byte(`[{"symbol":"LTCBTC","price":"4"},{"symbol":"ETHBTC","price":"0.07"}]`), &many))
	require.Len(t, many, 2)
	assert.Equal(t, "ETHBTC", many[1].Symbol)
}

func TestOrderResponseVariants(t *testing.T) {
	t.Parallel()
	var resp OrderResponse
	require.NoError(t, json.Unmarshal([]byte(`{"symbol":"BTCUSDT","orderId":28,"orderListId":-1,"clientOrderId":"x","transactTime":1507725176595}`), &resp))
	require.NotNil(t, resp.Ack)
	assert.Nil(t, resp.Result)
	assert.Nil(t, resp.Full)
	assert.Equal(t, "x", resp.Common().ClientOrderID)

	require.NoError(t, json.Unmarshal([]byte(`{"symbol":"BTCUSDT","orderId":29,"status":"NEW"}`), &resp))
	assert.Nil(t, resp.Ack, "a reused value must only hold the latest variant")
	require.NotNil(t, resp.Result)
	assert.Equal(t, int64(29), resp.Common().OrderID)

	require.NoError(t, json.Unmarshal([]byte(`{"symbol":"BTCUSDT","orderId":30,"status":"FILLED","fills":[]}`), &resp))
	assert.Nil(t, resp.Result)
	require.NotNil(t, resp.Full)
	assert.Equal(t, int64(30), resp.Common().OrderID)

	assert.Equal(t, OrderAck{}, (&OrderResponse{}).Common())
}

func TestSignedParams(t *testing.T) {
	t.Parallel()
	before := time.Now().UnixMilli()
	p := NewSignedParams()
	assert.GreaterOrEqual(t, p.Timestamp, before)
	assert.Nil(t, p.RecvWindow)

	p.SetRecvWindow(time.Minute)
	require.NotNil(t, p.RecvWindow)
	assert.Equal(t, int64(MaxRecvWindow), *p.RecvWindow)

	q, err := query.Encode(SignedParams{Timestamp: 1})
	require.NoError(t, err)
	assert.Equal(t, "timestamp=1", q)

	omit := false
	q, err = query.Encode(AccountParams{OmitZeroBalances: &omit, SignedParams: SignedParams{Timestamp: 2}})
	require.NoError(t, err)
	assert.Equal(t, "omitZeroBalances=false&timestamp=2", q)

	q, err = query.Encode(ExchangeInfoParams{Symbols: []string{"BTCUSDT", "ETHUSDT"}})
	require.NoError(t, err)
	assert.Equal(t, "symbols=%5B%22BTCUSDT%22%2C%22ETHUSDT%22%5D", q)
}
