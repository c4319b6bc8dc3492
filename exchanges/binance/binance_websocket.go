package binance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/thrasher-corp/binance-connector/encoding/json"
	"github.com/thrasher-corp/binance-connector/exchanges/stream"
)

// Combined stream names for every symbol
const (
	AllMarketTickersStream     = "!ticker@arr"
	AllMarketMiniTickersStream = "!miniTicker@arr"
)

var (
	errUnknownStream = errors.New("unknown stream")
	errUnknownEvent  = errors.New("unknown event type")
)

// DialStreams connects to a market stream endpoint, such as the result of
// CombinedStreamURL or UserDataStreamURL, and decodes every pushed payload
// with DecodeStreamEvent
func DialStreams(ctx context.Context, rawURL string, data chan<- stream.Event, errs chan<- error, opts ...stream.Option) (*stream.Subscriptions, error) {
	return stream.DialSubscriptions(ctx, rawURL, DecodeStreamEvent, data, errs,
		append([]stream.Option{stream.WithName("binance streams")}, opts...)...)
}

// CombinedStreamURL returns the combined stream endpoint, whose payloads
// arrive in {stream, data} envelopes
func CombinedStreamURL(base string) string {
	return strings.TrimSuffix(base, "/") + "/stream"
}

// UserDataStreamURL returns the raw stream endpoint of a listen key
func UserDataStreamURL(base, listenKey string) string {
	return strings.TrimSuffix(base, "/") + "/ws/" + listenKey
}

// TradeStream returns the trade stream name of symbol
func TradeStream(symbol string) string {
	return strings.ToLower(symbol) + "@trade"
}

// AggTradeStream returns the aggregate trade stream name of symbol
func AggTradeStream(symbol string) string {
	return strings.ToLower(symbol) + "@aggTrade"
}

// KlineStream returns the candlestick stream name of symbol
func KlineStream(symbol string, interval KlineInterval) string {
	return strings.ToLower(symbol) + "@kline_" + string(interval)
}

// TickerStream returns the 24 hour ticker stream name of symbol
func TickerStream(symbol string) string {
	return strings.ToLower(symbol) + "@ticker"
}

// RollingWindowTickerStream returns the ticker stream name of symbol over a
// 1h, 4h or 1d window
func RollingWindowTickerStream(symbol, window string) string {
	return strings.ToLower(symbol) + "@ticker_" + window
}

// MiniTickerStream returns the mini ticker stream name of symbol
func MiniTickerStream(symbol string) string {
	return strings.ToLower(symbol) + "@miniTicker"
}

// BookTickerStream returns the best bid and ask stream name of symbol
func BookTickerStream(symbol string) string {
	return strings.ToLower(symbol) + "@bookTicker"
}

// AvgPriceStream returns the average price stream name of symbol
func AvgPriceStream(symbol string) string {
	return strings.ToLower(symbol) + "@avgPrice"
}

// DepthStream returns the diff depth stream name of symbol, pushed every
// second or every 100ms when fast is set
func DepthStream(symbol string, fast bool) string {
	name := strings.ToLower(symbol) + "@depth"
	if fast {
		name += "@100ms"
	}
	return name
}

// PartialDepthStream returns the top levels stream name of symbol. levels is
// 5, 10 or 20.
func PartialDepthStream(symbol string, levels int, fast bool) string {
	name := strings.ToLower(symbol) + "@depth" + strconv.Itoa(levels)
	if fast {
		name += "@100ms"
	}
	return name
}

// DecodeStreamEvent decodes a stream payload into its event type. The stream
// name selects the type; payloads from raw or user data streams, whose name
// is empty or a listen key, are typed by their "e" member.
func DecodeStreamEvent(name string, data []byte) (any, error) {
	symbol, kind, ok := strings.Cut(name, "@")
	if !ok {
		return decodeByEventType(data)
	}
	if strings.HasPrefix(symbol, "!") {
		// Market wide streams carry the kind in the name part
		if kind == "arr" {
			return decodeArray(symbol[1:], data)
		}
		kind = symbol[1:]
	}
	kind, _, _ = strings.Cut(kind, "@")

	switch {
	case kind == "trade":
		return decode[TradeEvent](data)
	case kind == "aggTrade":
		return decode[AggTradeEvent](data)
	case strings.HasPrefix(kind, "kline_"):
		return decode[KlineEvent](data)
	case kind == "ticker":
		return decode[TickerEvent](data)
	case strings.HasPrefix(kind, "ticker_"):
		return decode[RollingWindowTickerEvent](data)
	case kind == "miniTicker":
		return decode[MiniTickerEvent](data)
	case kind == "bookTicker":
		return decode[BookTickerEvent](data)
	case kind == "avgPrice":
		return decode[AvgPriceEvent](data)
	case kind == "depth":
		return decode[DepthUpdateEvent](data)
	case isPartialDepth(kind):
		return decode[PartialDepthEvent](data)
	}
	return nil, fmt.Errorf("%w: %q", errUnknownStream, name)
}

// decodeArray decodes the payload of a market wide @arr stream
func decodeArray(kind string, data []byte) (any, error) {
	switch {
	case kind == "ticker":
		return decodeSlice[TickerEvent](data)
	case kind == "miniTicker":
		return decodeSlice[MiniTickerEvent](data)
	case strings.HasPrefix(kind, "ticker_"):
		return decodeSlice[RollingWindowTickerEvent](data)
	}
	return nil, fmt.Errorf("%w: %q", errUnknownStream, "!"+kind+"@arr")
}

// decodeByEventType decodes a payload that arrived without a stream name
func decodeByEventType(data []byte) (any, error) {
	if len(data) > 0 && data[0] == '[' {
		first, _, _, err := jsonparser.Get(data, "[0]", "e")
		if err != nil {
			return nil, fmt.Errorf("%w: array without event type", errUnknownEvent)
		}
		switch e := string(first); {
		case e == eventTicker:
			return decodeSlice[TickerEvent](data)
		case e == eventMiniTicker:
			return decodeSlice[MiniTickerEvent](data)
		case strings.HasSuffix(e, "Ticker"):
			return decodeSlice[RollingWindowTickerEvent](data)
		default:
			return nil, fmt.Errorf("%w: %q", errUnknownEvent, e)
		}
	}

	e, err := jsonparser.GetString(data, "e")
	if err != nil {
		// Book tickers and partial depth carry no event type
		if _, _, _, err := jsonparser.Get(data, "lastUpdateId"); err == nil {
			return decode[PartialDepthEvent](data)
		}
		if _, _, _, err := jsonparser.Get(data, "u"); err == nil {
			return decode[BookTickerEvent](data)
		}
		return nil, fmt.Errorf("%w: missing event type", errUnknownEvent)
	}

	switch e {
	case eventTrade:
		return decode[TradeEvent](data)
	case eventAggTrade:
		return decode[AggTradeEvent](data)
	case eventKline:
		return decode[KlineEvent](data)
	case eventTicker:
		return decode[TickerEvent](data)
	case eventMiniTicker:
		return decode[MiniTickerEvent](data)
	case eventAvgPrice:
		return decode[AvgPriceEvent](data)
	case eventDepthUpdate:
		return decode[DepthUpdateEvent](data)
	case eventExecutionReport:
		return decode[ExecutionReport](data)
	case eventOutboundAccountPosition:
		return decode[OutboundAccountPosition](data)
	case eventBalanceUpdate:
		return decode[BalanceUpdate](data)
	case eventListStatus:
		return decode[ListStatus](data)
	case eventListenKeyExpired:
		return decode[ListenKeyExpired](data)
	}
	if strings.HasSuffix(e, "Ticker") {
		return decode[RollingWindowTickerEvent](data)
	}
	return nil, fmt.Errorf("%w: %q", errUnknownEvent, e)
}

func isPartialDepth(kind string) bool {
	switch kind {
	case "depth5", "depth10", "depth20":
		return true
	}
	return false
}

func decodeSlice[T any](data []byte) (any, error) {
	var v []T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func decode[T any](data []byte) (any, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
