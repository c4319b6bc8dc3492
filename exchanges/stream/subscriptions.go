package stream

import (
	"context"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/thrasher-corp/binance-connector/encoding/json"
	"github.com/thrasher-corp/binance-connector/exchanges/apierror"
	"github.com/thrasher-corp/binance-connector/log"
)

// Stream control methods
const (
	methodSubscribe        = "SUBSCRIBE"
	methodUnsubscribe      = "UNSUBSCRIBE"
	methodListSubscription = "LIST_SUBSCRIPTIONS"
	methodSetProperty      = "SET_PROPERTY"
	methodGetProperty      = "GET_PROPERTY"
)

var (
	errNoStreams   = errors.New("no stream names supplied")
	errNilDecoder  = errors.New("decoder is nil")
	errNilDataChan = errors.New("data channel is nil")
)

// Event is a decoded server pushed payload
type Event struct {
	// Stream is the envelope's stream name, empty on raw streams
	Stream string
	Data   any
}

// Decoder turns an event payload into a typed value. stream is empty when
// the frame arrived without a {stream, data} envelope.
type Decoder func(stream string, data []byte) (any, error)

// Subscriptions manages the stream subscriptions of one connection and
// delivers decoded events to a caller supplied channel
type Subscriptions struct {
	conn   *Conn
	decode Decoder
	data   chan<- Event
	errs   chan<- error
	// ready is closed once conn is set
	ready chan struct{}
}

// DialSubscriptions connects to a stream endpoint. Decoded events are sent to
// data; decode failures are sent to errs when it is non-nil and logged
// otherwise. A slow data consumer holds back further reads from the socket.
func DialSubscriptions(ctx context.Context, rawURL string, decode Decoder, data chan<- Event, errs chan<- error, opts ...Option) (*Subscriptions, error) {
	if decode == nil {
		return nil, apierror.Client(errNilDecoder)
	}
	if data == nil {
		return nil, apierror.Client(errNilDataChan)
	}
	s := &Subscriptions{decode: decode, data: data, errs: errs, ready: make(chan struct{})}
	conn, err := Dial(ctx, rawURL, s.deliver, opts...)
	if err != nil {
		return nil, err
	}
	s.conn = conn
	close(s.ready)
	return s, nil
}

// Subscribe subscribes to the named streams
func (s *Subscriptions) Subscribe(ctx context.Context, streams ...string) error {
	if len(streams) == 0 {
		return apierror.Client(errNoStreams)
	}
	return s.control(ctx, methodSubscribe, streams, nil)
}

// Unsubscribe removes the named streams
func (s *Subscriptions) Unsubscribe(ctx context.Context, streams ...string) error {
	if len(streams) == 0 {
		return apierror.Client(errNoStreams)
	}
	return s.control(ctx, methodUnsubscribe, streams, nil)
}

// List returns the streams the server holds for this connection
func (s *Subscriptions) List(ctx context.Context) ([]string, error) {
	var streams []string
	if err := s.control(ctx, methodListSubscription, nil, &streams); err != nil {
		return nil, err
	}
	return streams, nil
}

// SetProperty sets a connection property, e.g. "combined"
func (s *Subscriptions) SetProperty(ctx context.Context, name string, value any) error {
	return s.control(ctx, methodSetProperty, []any{name, value}, nil)
}

// GetProperty decodes the value of a connection property into out
func (s *Subscriptions) GetProperty(ctx context.Context, name string, out any) error {
	return s.control(ctx, methodGetProperty, []string{name}, out)
}

// Conn returns the underlying connection
func (s *Subscriptions) Conn() *Conn {
	return s.conn
}

// Close closes the underlying connection
func (s *Subscriptions) Close() error {
	return s.conn.Close()
}

func (s *Subscriptions) control(ctx context.Context, method string, params, result any) error {
	raw, err := marshalParams(params)
	if err != nil {
		return err
	}
	resp, err := roundTrip(ctx, s.conn, method, raw)
	if err != nil {
		return err
	}
	return decodeResult(resp.Result, result)
}

// deliver unwraps, decodes and forwards one unsolicited frame
func (s *Subscriptions) deliver(frame []byte) {
	<-s.ready
	name, payload, err := unwrap(frame)
	if err == nil {
		var v any
		if v, err = s.decode(name, payload); err == nil {
			select {
			case s.data <- Event{Stream: name, Data: v}:
			case <-s.conn.closing:
			case <-s.conn.done:
			}
			return
		}
	}
	err = apierror.Encoding(fmt.Errorf("stream %q: %w", name, err))
	if s.errs != nil {
		select {
		case s.errs <- err:
		case <-s.conn.closing:
		case <-s.conn.done:
		}
		return
	}
	log.Errorf(log.StreamSys, "%v %v", s.conn.name, err)
}

// unwrap splits a {stream, data} envelope. Frames without an envelope are
// returned whole with an empty stream name.
func unwrap(frame []byte) (string, []byte, error) {
	name, err := jsonparser.GetString(frame, "stream")
	if err != nil {
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			if !json.Valid(frame) {
				return "", nil, errors.New("invalid json frame")
			}
			return "", frame, nil
		}
		return "", nil, err
	}
	data, _, _, err := jsonparser.Get(frame, "data")
	if err != nil {
		return name, nil, err
	}
	return name, data, nil
}
