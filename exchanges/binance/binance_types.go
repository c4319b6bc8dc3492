package binance

import (
	"fmt"
	"time"

	"github.com/buger/jsonparser"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/binance-connector/encoding/json"
	"github.com/thrasher-corp/binance-connector/exchanges/stream"
	"github.com/thrasher-corp/binance-connector/types"
)

// OrderSide is the side of an order
type OrderSide string

// Order sides
const (
	SideBuy  OrderSide = "BUY"
	SideSell OrderSide = "SELL"
)

// OrderType is the type of an order
type OrderType string

// Order types
const (
	OrderTypeLimit           OrderType = "LIMIT"
	OrderTypeMarket          OrderType = "MARKET"
	OrderTypeStopLoss        OrderType = "STOP_LOSS"
	OrderTypeStopLossLimit   OrderType = "STOP_LOSS_LIMIT"
	OrderTypeTakeProfit      OrderType = "TAKE_PROFIT"
	OrderTypeTakeProfitLimit OrderType = "TAKE_PROFIT_LIMIT"
	OrderTypeLimitMaker      OrderType = "LIMIT_MAKER"
)

// TimeInForce specifies how long an order remains in effect
type TimeInForce string

// Time in force values
const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceIOC TimeInForce = "IOC"
	TimeInForceFOK TimeInForce = "FOK"
)

// OrderResponseType selects the order response variant
type OrderResponseType string

// Order response variants
const (
	OrderResponseACK    OrderResponseType = "ACK"
	OrderResponseRESULT OrderResponseType = "RESULT"
	OrderResponseFULL   OrderResponseType = "FULL"
)

// KlineInterval is a candlestick period
type KlineInterval string

// Kline intervals
const (
	Interval1s  KlineInterval = "1s"
	Interval1m  KlineInterval = "1m"
	Interval3m  KlineInterval = "3m"
	Interval5m  KlineInterval = "5m"
	Interval15m KlineInterval = "15m"
	Interval30m KlineInterval = "30m"
	Interval1h  KlineInterval = "1h"
	Interval2h  KlineInterval = "2h"
	Interval4h  KlineInterval = "4h"
	Interval6h  KlineInterval = "6h"
	Interval8h  KlineInterval = "8h"
	Interval12h KlineInterval = "12h"
	Interval1d  KlineInterval = "1d"
	Interval3d  KlineInterval = "3d"
	Interval1w  KlineInterval = "1w"
	Interval1M  KlineInterval = "1M"
)

// SignedParams carries the timing members of a signed request. Records embed
// it as their last field so the members trail the query string.
type SignedParams struct {
	RecvWindow *int64 `url:"recvWindow" json:"recvWindow,omitempty"`
	Timestamp  int64  `url:"timestamp" json:"timestamp,omitempty"`
}

// NewSignedParams returns SignedParams stamped with the local clock
func NewSignedParams() SignedParams {
	return SignedParams{Timestamp: time.Now().UnixMilli()}
}

// SetRecvWindow bounds how long after Timestamp the server accepts the
// request. The service caps the window at MaxRecvWindow.
func (s *SignedParams) SetRecvWindow(d time.Duration) {
	ms := d.Milliseconds()
	s.RecvWindow = &ms
}

// DepthParams requests an order book snapshot
type DepthParams struct {
	Symbol string `url:"symbol" json:"symbol"`
	// Limit defaults to 100 server side, max 5000
	Limit int `url:"limit,omitempty" json:"limit,omitempty"`
}

// ExchangeInfoParams filters the exchange information
type ExchangeInfoParams struct {
	Symbol      string   `url:"symbol,omitempty" json:"symbol,omitempty"`
	Symbols     []string `url:"symbols" json:"symbols,omitempty"`
	Permissions []string `url:"permissions" json:"permissions,omitempty"`
}

// RecentTradesParams requests recent trades
type RecentTradesParams struct {
	Symbol string `url:"symbol" json:"symbol"`
	Limit  int    `url:"limit,omitempty" json:"limit,omitempty"`
}

// HistoricalTradesParams requests older trades
type HistoricalTradesParams struct {
	Symbol string `url:"symbol" json:"symbol"`
	Limit  int    `url:"limit,omitempty" json:"limit,omitempty"`
	FromID *int64 `url:"fromId" json:"fromId,omitempty"`
}

// AggTradesParams requests compressed trades
type AggTradesParams struct {
	Symbol    string `url:"symbol" json:"symbol"`
	FromID    *int64 `url:"fromId" json:"fromId,omitempty"`
	StartTime int64  `url:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime   int64  `url:"endTime,omitempty" json:"endTime,omitempty"`
	Limit     int    `url:"limit,omitempty" json:"limit,omitempty"`
}

// KlinesParams requests candlesticks
type KlinesParams struct {
	Symbol    string        `url:"symbol" json:"symbol"`
	Interval  KlineInterval `url:"interval" json:"interval"`
	StartTime int64         `url:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime   int64         `url:"endTime,omitempty" json:"endTime,omitempty"`
	TimeZone  string        `url:"timeZone,omitempty" json:"timeZone,omitempty"`
	Limit     int           `url:"limit,omitempty" json:"limit,omitempty"`
}

// SymbolParams names a single symbol
type SymbolParams struct {
	Symbol string `url:"symbol" json:"symbol"`
}

// TickerParams selects one symbol, a list of symbols or, when both are
// empty, every symbol
type TickerParams struct {
	Symbol  string   `url:"symbol,omitempty" json:"symbol,omitempty"`
	Symbols []string `url:"symbols" json:"symbols,omitempty"`
	// Type is FULL or MINI, 24hr ticker only
	Type string `url:"type,omitempty" json:"type,omitempty"`
}

// OrderParams places a new order
type OrderParams struct {
	Symbol                  string            `url:"symbol" json:"symbol"`
	Side                    OrderSide         `url:"side" json:"side"`
	Type                    OrderType         `url:"type" json:"type"`
	TimeInForce             TimeInForce       `url:"timeInForce,omitempty" json:"timeInForce,omitempty"`
	Quantity                *decimal.Decimal  `url:"quantity" json:"quantity,omitempty"`
	QuoteOrderQty           *decimal.Decimal  `url:"quoteOrderQty" json:"quoteOrderQty,omitempty"`
	Price                   *decimal.Decimal  `url:"price" json:"price,omitempty"`
	NewClientOrderID        string            `url:"newClientOrderId,omitempty" json:"newClientOrderId,omitempty"`
	StopPrice               *decimal.Decimal  `url:"stopPrice" json:"stopPrice,omitempty"`
	TrailingDelta           int64             `url:"trailingDelta,omitempty" json:"trailingDelta,omitempty"`
	IcebergQty              *decimal.Decimal  `url:"icebergQty" json:"icebergQty,omitempty"`
	NewOrderRespType        OrderResponseType `url:"newOrderRespType,omitempty" json:"newOrderRespType,omitempty"`
	SelfTradePreventionMode string            `url:"selfTradePreventionMode,omitempty" json:"selfTradePreventionMode,omitempty"`
	SignedParams
}

// NewOrderParams returns order parameters stamped with the local clock
func NewOrderParams(symbol string, side OrderSide, orderType OrderType) OrderParams {
	return OrderParams{Symbol: symbol, Side: side, Type: orderType, SignedParams: NewSignedParams()}
}

// CancelOrderParams cancels an order by id or client id
type CancelOrderParams struct {
	Symbol            string `url:"symbol" json:"symbol"`
	OrderID           int64  `url:"orderId,omitempty" json:"orderId,omitempty"`
	OrigClientOrderID string `url:"origClientOrderId,omitempty" json:"origClientOrderId,omitempty"`
	NewClientOrderID  string `url:"newClientOrderId,omitempty" json:"newClientOrderId,omitempty"`
	SignedParams
}

// NewCancelOrderParams returns cancel parameters stamped with the local clock
func NewCancelOrderParams(symbol string) CancelOrderParams {
	return CancelOrderParams{Symbol: symbol, SignedParams: NewSignedParams()}
}

// QueryOrderParams looks up an order by id or client id
type QueryOrderParams struct {
	Symbol            string `url:"symbol" json:"symbol"`
	OrderID           int64  `url:"orderId,omitempty" json:"orderId,omitempty"`
	OrigClientOrderID string `url:"origClientOrderId,omitempty" json:"origClientOrderId,omitempty"`
	SignedParams
}

// NewQueryOrderParams returns query parameters stamped with the local clock
func NewQueryOrderParams(symbol string) QueryOrderParams {
	return QueryOrderParams{Symbol: symbol, SignedParams: NewSignedParams()}
}

// SymbolSignedParams names a symbol on a signed request. An empty symbol
// selects every symbol where the endpoint allows it.
type SymbolSignedParams struct {
	Symbol string `url:"symbol,omitempty" json:"symbol,omitempty"`
	SignedParams
}

// NewSymbolSignedParams returns symbol parameters stamped with the local clock
func NewSymbolSignedParams(symbol string) SymbolSignedParams {
	return SymbolSignedParams{Symbol: symbol, SignedParams: NewSignedParams()}
}

// AllOrdersParams pages through the order history of a symbol
type AllOrdersParams struct {
	Symbol    string `url:"symbol" json:"symbol"`
	OrderID   int64  `url:"orderId,omitempty" json:"orderId,omitempty"`
	StartTime int64  `url:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime   int64  `url:"endTime,omitempty" json:"endTime,omitempty"`
	Limit     int    `url:"limit,omitempty" json:"limit,omitempty"`
	SignedParams
}

// NewAllOrdersParams returns order history parameters stamped with the local
// clock
func NewAllOrdersParams(symbol string) AllOrdersParams {
	return AllOrdersParams{Symbol: symbol, SignedParams: NewSignedParams()}
}

// AccountParams requests the account state
type AccountParams struct {
	OmitZeroBalances *bool `url:"omitZeroBalances" json:"omitZeroBalances,omitempty"`
	SignedParams
}

// NewAccountParams returns account parameters stamped with the local clock
func NewAccountParams() AccountParams {
	return AccountParams{SignedParams: NewSignedParams()}
}

// MyTradesParams pages through the account's trades on a symbol
type MyTradesParams struct {
	Symbol    string `url:"symbol" json:"symbol"`
	OrderID   int64  `url:"orderId,omitempty" json:"orderId,omitempty"`
	StartTime int64  `url:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime   int64  `url:"endTime,omitempty" json:"endTime,omitempty"`
	FromID    *int64 `url:"fromId" json:"fromId,omitempty"`
	Limit     int    `url:"limit,omitempty" json:"limit,omitempty"`
	SignedParams
}

// NewMyTradesParams returns trade history parameters stamped with the local
// clock
func NewMyTradesParams(symbol string) MyTradesParams {
	return MyTradesParams{Symbol: symbol, SignedParams: NewSignedParams()}
}

// ListenKeyParams names a user data stream
type ListenKeyParams struct {
	ListenKey string `url:"listenKey" json:"listenKey"`
}

// MarginBorrowRepayParams borrows or repays a margin asset
type MarginBorrowRepayParams struct {
	Asset string `url:"asset" json:"asset"`
	// IsIsolated is TRUE for isolated margin, defaults to FALSE
	IsIsolated string          `url:"isIsolated,omitempty" json:"isIsolated,omitempty"`
	Symbol     string          `url:"symbol,omitempty" json:"symbol,omitempty"`
	Amount     decimal.Decimal `url:"amount" json:"amount"`
	// Type is BORROW or REPAY
	Type string `url:"type" json:"type"`
	SignedParams
}

// NewMarginBorrowRepayParams returns borrow or repay parameters stamped with
// the local clock
func NewMarginBorrowRepayParams(asset, kind string, amount decimal.Decimal) MarginBorrowRepayParams {
	return MarginBorrowRepayParams{Asset: asset, Type: kind, Amount: amount, SignedParams: NewSignedParams()}
}

// ServerTime holds the server clock
type ServerTime struct {
	ServerTime types.Time `json:"serverTime"`
}

// RateLimit is a limit definition or usage counter
type RateLimit = stream.RateLimit

// ExchangeInfo holds the full exchange information type
type ExchangeInfo struct {
	Timezone        string            `json:"timezone"`
	ServerTime      types.Time        `json:"serverTime"`
	RateLimits      []RateLimit       `json:"rateLimits"`
	ExchangeFilters []json.RawMessage `json:"exchangeFilters"`
	Symbols         []SymbolInfo      `json:"symbols"`
}

// SymbolInfo describes a tradable symbol
type SymbolInfo struct {
	Symbol                     string            `json:"symbol"`
	Status                     string            `json:"status"`
	BaseAsset                  string            `json:"baseAsset"`
	BaseAssetPrecision         int               `json:"baseAssetPrecision"`
	QuoteAsset                 string            `json:"quoteAsset"`
	QuoteAssetPrecision        int               `json:"quoteAssetPrecision"`
	OrderTypes                 []OrderType       `json:"orderTypes"`
	IcebergAllowed             bool              `json:"icebergAllowed"`
	OcoAllowed                 bool              `json:"ocoAllowed"`
	IsSpotTradingAllowed       bool              `json:"isSpotTradingAllowed"`
	IsMarginTradingAllowed     bool              `json:"isMarginTradingAllowed"`
	Filters                    []json.RawMessage `json:"filters"`
	Permissions                []string          `json:"permissions"`
	DefaultSelfTradePrevention string            `json:"defaultSelfTradePreventionMode"`
}

// PriceLevel is a single order book level, sent as a [price, quantity] pair
type PriceLevel struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// UnmarshalJSON decodes a [price, quantity] pair
func (p *PriceLevel) UnmarshalJSON(data []byte) error {
	var pair [2]decimal.Decimal
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.Price, p.Quantity = pair[0], pair[1]
	return nil
}

// OrderBook is an order book snapshot
type OrderBook struct {
	LastUpdateID int64        `json:"lastUpdateId"`
	Bids         []PriceLevel `json:"bids"`
	Asks         []PriceLevel `json:"asks"`
}

// Trade is a public trade
type Trade struct {
	ID           int64           `json:"id"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"qty"`
	QuoteQty     decimal.Decimal `json:"quoteQty"`
	Time         types.Time      `json:"time"`
	IsBuyerMaker bool            `json:"isBuyerMaker"`
	IsBestMatch  bool            `json:"isBestMatch"`
}

// AggTrade holds aggregated trade information
type AggTrade struct {
	ID           int64           `json:"a"`
	Price        decimal.Decimal `json:"p"`
	Quantity     decimal.Decimal `json:"q"`
	FirstTradeID int64           `json:"f"`
	LastTradeID  int64           `json:"l"`
	Time         types.Time      `json:"T"`
	IsBuyerMaker bool            `json:"m"`
	IsBestMatch  bool            `json:"M"`
}

// Kline is a candlestick, sent as a positional array
type Kline struct {
	OpenTime                 types.Time
	Open                     decimal.Decimal
	High                     decimal.Decimal
	Low                      decimal.Decimal
	Close                    decimal.Decimal
	Volume                   decimal.Decimal
	CloseTime                types.Time
	QuoteAssetVolume         decimal.Decimal
	TradeCount               int64
	TakerBuyBaseAssetVolume  decimal.Decimal
	TakerBuyQuoteAssetVolume decimal.Decimal
}

// UnmarshalJSON decodes the positional kline array
func (k *Kline) UnmarshalJSON(data []byte) error {
	fields := []any{
		&k.OpenTime, &k.Open, &k.High, &k.Low, &k.Close, &k.Volume,
		&k.CloseTime, &k.QuoteAssetVolume, &k.TradeCount,
		&k.TakerBuyBaseAssetVolume, &k.TakerBuyQuoteAssetVolume,
	}
	var idx int
	var innerErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, _ int, _ error) {
		if innerErr != nil || idx >= len(fields) {
			idx++
			return
		}
		if dt == jsonparser.String {
			value = append(append([]byte{'"'}, value...), '"')
		}
		innerErr = json.Unmarshal(value, fields[idx])
		idx++
	})
	if err != nil {
		return err
	}
	if innerErr != nil {
		return innerErr
	}
	if idx < len(fields) {
		return fmt.Errorf("kline has %d fields, expected at least %d", idx, len(fields))
	}
	return nil
}

// AvgPrice is the current average price of a symbol
type AvgPrice struct {
	Mins      int64           `json:"mins"`
	Price     decimal.Decimal `json:"price"`
	CloseTime types.Time      `json:"closeTime"`
}

// Ticker24hr contains statistics for the last 24 hours trade
type Ticker24hr struct {
	Symbol             string          `json:"symbol"`
	PriceChange        decimal.Decimal `json:"priceChange"`
	PriceChangePercent decimal.Decimal `json:"priceChangePercent"`
	WeightedAvgPrice   decimal.Decimal `json:"weightedAvgPrice"`
	PrevClosePrice     decimal.Decimal `json:"prevClosePrice"`
	LastPrice          decimal.Decimal `json:"lastPrice"`
	LastQty            decimal.Decimal `json:"lastQty"`
	BidPrice           decimal.Decimal `json:"bidPrice"`
	BidQty             decimal.Decimal `json:"bidQty"`
	AskPrice           decimal.Decimal `json:"askPrice"`
	AskQty             decimal.Decimal `json:"askQty"`
	OpenPrice          decimal.Decimal `json:"openPrice"`
	HighPrice          decimal.Decimal `json:"highPrice"`
	LowPrice           decimal.Decimal `json:"lowPrice"`
	Volume             decimal.Decimal `json:"volume"`
	QuoteVolume        decimal.Decimal `json:"quoteVolume"`
	OpenTime           types.Time      `json:"openTime"`
	CloseTime          types.Time      `json:"closeTime"`
	FirstID            int64           `json:"firstId"`
	LastID             int64           `json:"lastId"`
	Count              int64           `json:"count"`
}

// SymbolPrice holds basic symbol price
type SymbolPrice struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// BookTicker holds best price data
type BookTicker struct {
	Symbol   string          `json:"symbol"`
	BidPrice decimal.Decimal `json:"bidPrice"`
	BidQty   decimal.Decimal `json:"bidQty"`
	AskPrice decimal.Decimal `json:"askPrice"`
	AskQty   decimal.Decimal `json:"askQty"`
}

// OneOrMany decodes endpoints that return a single object when one symbol is
// requested and an array otherwise
type OneOrMany[T any] []T

// UnmarshalJSON accepts an object or an array
func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	_, dt, _, err := jsonparser.Get(data)
	if err != nil {
		return err
	}
	if dt == jsonparser.Object {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*o = OneOrMany[T]{v}
		return nil
	}
	var vs []T
	if err := json.Unmarshal(data, &vs); err != nil {
		return err
	}
	*o = vs
	return nil
}

// OrderAck is the ACK order response
type OrderAck struct {
	Symbol        string     `json:"symbol"`
	OrderID       int64      `json:"orderId"`
	OrderListID   int64      `json:"orderListId"`
	ClientOrderID string     `json:"clientOrderId"`
	TransactTime  types.Time `json:"transactTime"`
}

// OrderResult is the RESULT order response
type OrderResult struct {
	OrderAck
	Price                   decimal.Decimal `json:"price"`
	OrigQty                 decimal.Decimal `json:"origQty"`
	ExecutedQty             decimal.Decimal `json:"executedQty"`
	CummulativeQuoteQty     decimal.Decimal `json:"cummulativeQuoteQty"`
	Status                  string          `json:"status"`
	TimeInForce             TimeInForce     `json:"timeInForce"`
	Type                    OrderType       `json:"type"`
	Side                    OrderSide       `json:"side"`
	WorkingTime             types.Time      `json:"workingTime"`
	SelfTradePreventionMode string          `json:"selfTradePreventionMode"`
}

// Fill is a partial execution reported on a FULL order response
type Fill struct {
	Price           decimal.Decimal `json:"price"`
	Qty             decimal.Decimal `json:"qty"`
	Commission      decimal.Decimal `json:"commission"`
	CommissionAsset string          `json:"commissionAsset"`
	TradeID         int64           `json:"tradeId"`
}

// OrderFull is the FULL order response
type OrderFull struct {
	OrderResult
	Fills []Fill `json:"fills"`
}

// OrderResponse is one of the three order response variants. Exactly one
// field is set, chosen by the members present in the response: fills marks
// FULL, status marks RESULT, anything else is ACK.
type OrderResponse struct {
	Ack    *OrderAck
	Result *OrderResult
	Full   *OrderFull
}

// UnmarshalJSON selects the variant by field presence
func (o *OrderResponse) UnmarshalJSON(data []byte) error {
	*o = OrderResponse{}
	if _, _, _, err := jsonparser.Get(data, "fills"); err == nil {
		o.Full = new(OrderFull)
		return json.Unmarshal(data, o.Full)
	}
	if _, _, _, err := jsonparser.Get(data, "status"); err == nil {
		o.Result = new(OrderResult)
		return json.Unmarshal(data, o.Result)
	}
	o.Ack = new(OrderAck)
	return json.Unmarshal(data, o.Ack)
}

// Common returns the members shared by every variant
func (o *OrderResponse) Common() OrderAck {
	switch {
	case o.Full != nil:
		return o.Full.OrderAck
	case o.Result != nil:
		return o.Result.OrderAck
	case o.Ack != nil:
		return *o.Ack
	}
	return OrderAck{}
}

// Order is an order as reported by the query endpoints
type Order struct {
	Symbol                  string          `json:"symbol"`
	OrderID                 int64           `json:"orderId"`
	OrderListID             int64           `json:"orderListId"`
	ClientOrderID           string          `json:"clientOrderId"`
	Price                   decimal.Decimal `json:"price"`
	OrigQty                 decimal.Decimal `json:"origQty"`
	ExecutedQty             decimal.Decimal `json:"executedQty"`
	CummulativeQuoteQty     decimal.Decimal `json:"cummulativeQuoteQty"`
	Status                  string          `json:"status"`
	TimeInForce             TimeInForce     `json:"timeInForce"`
	Type                    OrderType       `json:"type"`
	Side                    OrderSide       `json:"side"`
	StopPrice               decimal.Decimal `json:"stopPrice"`
	IcebergQty              decimal.Decimal `json:"icebergQty"`
	Time                    types.Time      `json:"time"`
	UpdateTime              types.Time      `json:"updateTime"`
	IsWorking               bool            `json:"isWorking"`
	WorkingTime             types.Time      `json:"workingTime"`
	OrigQuoteOrderQty       decimal.Decimal `json:"origQuoteOrderQty"`
	SelfTradePreventionMode string          `json:"selfTradePreventionMode"`
}

// CancelledOrder is the response to an order cancellation
type CancelledOrder struct {
	Symbol              string          `json:"symbol"`
	OrigClientOrderID   string          `json:"origClientOrderId"`
	OrderID             int64           `json:"orderId"`
	OrderListID         int64           `json:"orderListId"`
	ClientOrderID       string          `json:"clientOrderId"`
	TransactTime        types.Time      `json:"transactTime"`
	Price               decimal.Decimal `json:"price"`
	OrigQty             decimal.Decimal `json:"origQty"`
	ExecutedQty         decimal.Decimal `json:"executedQty"`
	CummulativeQuoteQty decimal.Decimal `json:"cummulativeQuoteQty"`
	Status              string          `json:"status"`
	TimeInForce         TimeInForce     `json:"timeInForce"`
	Type                OrderType       `json:"type"`
	Side                OrderSide       `json:"side"`
}

// Balance is the balance of one asset
type Balance struct {
	Asset  string          `json:"asset"`
	Free   decimal.Decimal `json:"free"`
	Locked decimal.Decimal `json:"locked"`
}

// Account holds the account data
type Account struct {
	MakerCommission  int64      `json:"makerCommission"`
	TakerCommission  int64      `json:"takerCommission"`
	BuyerCommission  int64      `json:"buyerCommission"`
	SellerCommission int64      `json:"sellerCommission"`
	CanTrade         bool       `json:"canTrade"`
	CanWithdraw      bool       `json:"canWithdraw"`
	CanDeposit       bool       `json:"canDeposit"`
	Brokered         bool       `json:"brokered"`
	UpdateTime       types.Time `json:"updateTime"`
	AccountType      string     `json:"accountType"`
	Balances         []Balance  `json:"balances"`
	Permissions      []string   `json:"permissions"`
	UID              int64      `json:"uid"`
}

// AccountTrade is a trade of the account
type AccountTrade struct {
	Symbol          string          `json:"symbol"`
	ID              int64           `json:"id"`
	OrderID         int64           `json:"orderId"`
	OrderListID     int64           `json:"orderListId"`
	Price           decimal.Decimal `json:"price"`
	Qty             decimal.Decimal `json:"qty"`
	QuoteQty        decimal.Decimal `json:"quoteQty"`
	Commission      decimal.Decimal `json:"commission"`
	CommissionAsset string          `json:"commissionAsset"`
	Time            types.Time      `json:"time"`
	IsBuyer         bool            `json:"isBuyer"`
	IsMaker         bool            `json:"isMaker"`
	IsBestMatch     bool            `json:"isBestMatch"`
}

// ListenKey names a user data stream
type ListenKey struct {
	ListenKey string `json:"listenKey"`
}

// MarginAsset is a cross margin asset balance
type MarginAsset struct {
	Asset    string          `json:"asset"`
	Borrowed decimal.Decimal `json:"borrowed"`
	Free     decimal.Decimal `json:"free"`
	Interest decimal.Decimal `json:"interest"`
	Locked   decimal.Decimal `json:"locked"`
	NetAsset decimal.Decimal `json:"netAsset"`
}

// MarginAccount holds the cross margin account data
type MarginAccount struct {
	BorrowEnabled       bool            `json:"borrowEnabled"`
	MarginLevel         decimal.Decimal `json:"marginLevel"`
	TotalAssetOfBTC     decimal.Decimal `json:"totalAssetOfBtc"`
	TotalLiabilityOfBTC decimal.Decimal `json:"totalLiabilityOfBtc"`
	TotalNetAssetOfBTC  decimal.Decimal `json:"totalNetAssetOfBtc"`
	TradeEnabled        bool            `json:"tradeEnabled"`
	TransferEnabled     bool            `json:"transferEnabled"`
	UserAssets          []MarginAsset   `json:"userAssets"`
}

// MarginTransaction is the response to a borrow or repay
type MarginTransaction struct {
	TranID int64 `json:"tranId"`
}
