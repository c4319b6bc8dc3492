package binance

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/binance-connector/types"
)

// Event type names carried in the "e" member of stream payloads
const (
	eventTrade                   = "trade"
	eventAggTrade                = "aggTrade"
	eventKline                   = "kline"
	eventTicker                  = "24hrTicker"
	eventMiniTicker              = "24hrMiniTicker"
	eventAvgPrice                = "avgPrice"
	eventDepthUpdate             = "depthUpdate"
	eventExecutionReport         = "executionReport"
	eventOutboundAccountPosition = "outboundAccountPosition"
	eventBalanceUpdate           = "balanceUpdate"
	eventListStatus              = "listStatus"
	eventListenKeyExpired        = "listenKeyExpired"
)

// Payloads use single letter members that differ only by case; every member
// is declared so that case-insensitive matching cannot cross-assign them.

// TradeEvent is a trade stream payload
type TradeEvent struct {
	EventType    string          `json:"e"`
	EventTime    types.Time      `json:"E"`
	Symbol       string          `json:"s"`
	TradeID      int64           `json:"t"`
	Price        decimal.Decimal `json:"p"`
	Quantity     decimal.Decimal `json:"q"`
	TradeTime    types.Time      `json:"T"`
	IsBuyerMaker bool            `json:"m"`
	IsBestMatch  bool            `json:"M"`
}

// AggTradeEvent is an aggregate trade stream payload
type AggTradeEvent struct {
	EventType    string          `json:"e"`
	EventTime    types.Time      `json:"E"`
	Symbol       string          `json:"s"`
	AggTradeID   int64           `json:"a"`
	Price        decimal.Decimal `json:"p"`
	Quantity     decimal.Decimal `json:"q"`
	FirstTradeID int64           `json:"f"`
	LastTradeID  int64           `json:"l"`
	TradeTime    types.Time      `json:"T"`
	IsBuyerMaker bool            `json:"m"`
	IsBestMatch  bool            `json:"M"`
}

// KlineEvent is a candlestick stream payload
type KlineEvent struct {
	EventType string      `json:"e"`
	EventTime types.Time  `json:"E"`
	Symbol    string      `json:"s"`
	Kline     StreamKline `json:"k"`
}

// StreamKline is the candlestick carried by a KlineEvent
type StreamKline struct {
	StartTime                types.Time      `json:"t"`
	CloseTime                types.Time      `json:"T"`
	Symbol                   string          `json:"s"`
	Interval                 KlineInterval   `json:"i"`
	FirstTradeID             int64           `json:"f"`
	LastTradeID              int64           `json:"L"`
	OpenPrice                decimal.Decimal `json:"o"`
	ClosePrice               decimal.Decimal `json:"c"`
	HighPrice                decimal.Decimal `json:"h"`
	LowPrice                 decimal.Decimal `json:"l"`
	Volume                   decimal.Decimal `json:"v"`
	NumberOfTrades           int64           `json:"n"`
	IsClosed                 bool            `json:"x"`
	QuoteAssetVolume         decimal.Decimal `json:"q"`
	TakerBuyBaseAssetVolume  decimal.Decimal `json:"V"`
	TakerBuyQuoteAssetVolume decimal.Decimal `json:"Q"`
	Ignore                   string          `json:"B"`
}

// TickerEvent is a 24 hour ticker stream payload
type TickerEvent struct {
	EventType          string          `json:"e"`
	EventTime          types.Time      `json:"E"`
	Symbol             string          `json:"s"`
	PriceChange        decimal.Decimal `json:"p"`
	PriceChangePercent decimal.Decimal `json:"P"`
	WeightedAvgPrice   decimal.Decimal `json:"w"`
	PrevClosePrice     decimal.Decimal `json:"x"`
	LastPrice          decimal.Decimal `json:"c"`
	LastQty            decimal.Decimal `json:"Q"`
	BestBidPrice       decimal.Decimal `json:"b"`
	BestBidQty         decimal.Decimal `json:"B"`
	BestAskPrice       decimal.Decimal `json:"a"`
	BestAskQty         decimal.Decimal `json:"A"`
	OpenPrice          decimal.Decimal `json:"o"`
	HighPrice          decimal.Decimal `json:"h"`
	LowPrice           decimal.Decimal `json:"l"`
	TotalTradedVolume  decimal.Decimal `json:"v"`
	TotalTradedQuote   decimal.Decimal `json:"q"`
	OpenTime           types.Time      `json:"O"`
	CloseTime          types.Time      `json:"C"`
	FirstTradeID       int64           `json:"F"`
	LastTradeID        int64           `json:"L"`
	NumberOfTrades     int64           `json:"n"`
}

// RollingWindowTickerEvent is a ticker stream payload over a 1h, 4h or 1d
// window
type RollingWindowTickerEvent struct {
	EventType          string          `json:"e"`
	EventTime          types.Time      `json:"E"`
	Symbol             string          `json:"s"`
	PriceChange        decimal.Decimal `json:"p"`
	PriceChangePercent decimal.Decimal `json:"P"`
	OpenPrice          decimal.Decimal `json:"o"`
	HighPrice          decimal.Decimal `json:"h"`
	LowPrice           decimal.Decimal `json:"l"`
	LastPrice          decimal.Decimal `json:"c"`
	WeightedAvgPrice   decimal.Decimal `json:"w"`
	TotalTradedVolume  decimal.Decimal `json:"v"`
	TotalTradedQuote   decimal.Decimal `json:"q"`
	OpenTime           types.Time      `json:"O"`
	CloseTime          types.Time      `json:"C"`
	FirstTradeID       int64           `json:"F"`
	LastTradeID        int64           `json:"L"`
	NumberOfTrades     int64           `json:"n"`
}

// MiniTickerEvent is a reduced 24 hour ticker stream payload
type MiniTickerEvent struct {
	EventType         string          `json:"e"`
	EventTime         types.Time      `json:"E"`
	Symbol            string          `json:"s"`
	ClosePrice        decimal.Decimal `json:"c"`
	OpenPrice         decimal.Decimal `json:"o"`
	HighPrice         decimal.Decimal `json:"h"`
	LowPrice          decimal.Decimal `json:"l"`
	TotalTradedVolume decimal.Decimal `json:"v"`
	TotalTradedQuote  decimal.Decimal `json:"q"`
}

// BookTickerEvent is a best bid and ask stream payload
type BookTickerEvent struct {
	UpdateID int64           `json:"u"`
	Symbol   string          `json:"s"`
	BidPrice decimal.Decimal `json:"b"`
	BidQty   decimal.Decimal `json:"B"`
	AskPrice decimal.Decimal `json:"a"`
	AskQty   decimal.Decimal `json:"A"`
}

// AvgPriceEvent is an average price stream payload
type AvgPriceEvent struct {
	EventType     string          `json:"e"`
	EventTime     types.Time      `json:"E"`
	Symbol        string          `json:"s"`
	Interval      string          `json:"i"`
	AveragePrice  decimal.Decimal `json:"w"`
	LastTradeTime types.Time      `json:"T"`
}

// DepthUpdateEvent is a diff depth stream payload
type DepthUpdateEvent struct {
	EventType     string       `json:"e"`
	EventTime     types.Time   `json:"E"`
	Symbol        string       `json:"s"`
	FirstUpdateID int64        `json:"U"`
	LastUpdateID  int64        `json:"u"`
	Bids          []PriceLevel `json:"b"`
	Asks          []PriceLevel `json:"a"`
}

// PartialDepthEvent is a partial book depth stream payload
type PartialDepthEvent struct {
	LastUpdateID int64        `json:"lastUpdateId"`
	Bids         []PriceLevel `json:"bids"`
	Asks         []PriceLevel `json:"asks"`
}

// ExecutionReport is a user data stream order update
type ExecutionReport struct {
	EventType                string          `json:"e"`
	EventTime                types.Time      `json:"E"`
	Symbol                   string          `json:"s"`
	ClientOrderID            string          `json:"c"`
	Side                     OrderSide       `json:"S"`
	OrderType                OrderType       `json:"o"`
	TimeInForce              TimeInForce     `json:"f"`
	Quantity                 decimal.Decimal `json:"q"`
	Price                    decimal.Decimal `json:"p"`
	StopPrice                decimal.Decimal `json:"P"`
	IcebergQuantity          decimal.Decimal `json:"F"`
	OrderListID              int64           `json:"g"`
	OriginalClientOrderID    string          `json:"C"`
	CurrentExecutionType     string          `json:"x"`
	CurrentOrderStatus       string          `json:"X"`
	RejectReason             string          `json:"r"`
	OrderID                  int64           `json:"i"`
	LastExecutedQuantity     decimal.Decimal `json:"l"`
	CumulativeFilledQuantity decimal.Decimal `json:"z"`
	LastExecutedPrice        decimal.Decimal `json:"L"`
	Commission               decimal.Decimal `json:"n"`
	CommissionAsset          string          `json:"N"`
	TransactionTime          types.Time      `json:"T"`
	TradeID                  int64           `json:"t"`
	PreventedMatchID         int64           `json:"v"`
	Ignore                   int64           `json:"I"`
	IsOnTheBook              bool            `json:"w"`
	IsMaker                  bool            `json:"m"`
	Ignored                  bool            `json:"M"`
	CreationTime             types.Time      `json:"O"`
	CumulativeQuoteQuantity  decimal.Decimal `json:"Z"`
	LastQuoteQuantity        decimal.Decimal `json:"Y"`
	QuoteOrderQuantity       decimal.Decimal `json:"Q"`
	WorkingTime              types.Time      `json:"W"`
	SelfTradePreventionMode  string          `json:"V"`
}

// OutboundAccountPosition reports the balances changed by an account update
type OutboundAccountPosition struct {
	EventType      string          `json:"e"`
	EventTime      types.Time      `json:"E"`
	LastUpdateTime types.Time      `json:"u"`
	Balances       []StreamBalance `json:"B"`
}

// StreamBalance is one balance of an OutboundAccountPosition
type StreamBalance struct {
	Asset  string          `json:"a"`
	Free   decimal.Decimal `json:"f"`
	Locked decimal.Decimal `json:"l"`
}

// BalanceUpdate reports a deposit, withdrawal or transfer
type BalanceUpdate struct {
	EventType    string          `json:"e"`
	EventTime    types.Time      `json:"E"`
	Asset        string          `json:"a"`
	BalanceDelta decimal.Decimal `json:"d"`
	ClearTime    types.Time      `json:"T"`
}

// ListStatus is a user data stream order list update
type ListStatus struct {
	EventType         string            `json:"e"`
	EventTime         types.Time        `json:"E"`
	Symbol            string            `json:"s"`
	OrderListID       int64             `json:"g"`
	ContingencyType   string            `json:"c"`
	ListStatusType    string            `json:"l"`
	ListOrderStatus   string            `json:"L"`
	ListRejectReason  string            `json:"r"`
	ListClientOrderID string            `json:"C"`
	TransactionTime   types.Time        `json:"T"`
	Orders            []ListStatusOrder `json:"O"`
}

// ListStatusOrder is one order of a ListStatus
type ListStatusOrder struct {
	Symbol        string `json:"s"`
	OrderID       int64  `json:"i"`
	ClientOrderID string `json:"c"`
}

// ListenKeyExpired reports that a user data stream has expired
type ListenKeyExpired struct {
	EventType string     `json:"e"`
	EventTime types.Time `json:"E"`
	ListenKey string     `json:"listenKey"`
}
