package stream

import (
	"context"
	"strconv"
	"time"

	"github.com/buger/jsonparser"
	"github.com/gofrs/uuid"
	"github.com/thrasher-corp/binance-connector/common/crypto"
	"github.com/thrasher-corp/binance-connector/encoding/json"
	"github.com/thrasher-corp/binance-connector/encoding/query"
	"github.com/thrasher-corp/binance-connector/exchanges/apierror"
)

// Mux multiplexes concurrent request/response calls over one connection.
// Frames that answer no pending request are logged and dropped.
type Mux struct {
	conn      *Conn
	apiKey    string
	secretKey string
}

// DialMux connects to a websocket API endpoint
func DialMux(ctx context.Context, rawURL string, opts ...Option) (*Mux, error) {
	conn, err := Dial(ctx, rawURL, nil, opts...)
	if err != nil {
		return nil, err
	}
	return &Mux{conn: conn}, nil
}

// SetCredentials sets the keys used by SendSigned
func (m *Mux) SetCredentials(apiKey, secretKey string) {
	m.apiKey, m.secretKey = apiKey, secretKey
}

// Conn returns the underlying connection
func (m *Mux) Conn() *Conn {
	return m.conn
}

// Close closes the underlying connection
func (m *Mux) Close() error {
	return m.conn.Close()
}

// Send calls method with params and decodes the result into result
func (m *Mux) Send(ctx context.Context, method string, params, result any) error {
	_, err := m.SendWithLimits(ctx, method, params, result)
	return err
}

// SendWithLimits is Send that also returns the usage counters reported on the
// response frame
func (m *Mux) SendWithLimits(ctx context.Context, method string, params, result any) ([]RateLimit, error) {
	raw, err := marshalParams(params)
	if err != nil {
		return nil, err
	}
	resp, err := roundTrip(ctx, m.conn, method, raw)
	if err != nil {
		return nil, err
	}
	return resp.RateLimits, decodeResult(resp.Result, result)
}

// SendSigned calls a method requiring a signature. apiKey and timestamp are
// added when params lack them and the signature is computed over all params
// sorted by name and joined as key=value pairs.
func (m *Mux) SendSigned(ctx context.Context, method string, params, result any) error {
	if m.apiKey == "" || m.secretKey == "" {
		return apierror.Signing(errNoCredential)
	}
	raw, err := marshalParams(params)
	if err != nil {
		return err
	}
	if raw == nil {
		raw = []byte("{}")
	}
	raw, err = signParams(raw, m.apiKey, m.secretKey, time.Now())
	if err != nil {
		return err
	}
	resp, err := roundTrip(ctx, m.conn, method, raw)
	if err != nil {
		return err
	}
	return decodeResult(resp.Result, result)
}

// roundTrip frames a call with a fresh id, sends it and parses the reply
func roundTrip(ctx context.Context, c *Conn, method string, params json.RawMessage) (*response, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, apierror.Client(err)
	}
	text, err := json.Marshal(requestFrame{ID: id.String(), Method: method, Params: params})
	if err != nil {
		return nil, apierror.Encoding(err)
	}
	frame, err := c.Request(ctx, id.String(), text)
	if err != nil {
		return nil, err
	}
	return parseResponse(frame)
}

// marshalParams encodes params as a JSON value. Nil params and empty objects
// are omitted from the frame.
func marshalParams(params any) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, apierror.Encoding(err)
	}
	if string(raw) == "{}" || string(raw) == "null" {
		return nil, nil
	}
	return raw, nil
}

// signParams adds apiKey, timestamp and signature to a JSON params object.
// The object is rebuilt with the added members appended in that order.
func signParams(raw []byte, apiKey, secretKey string, now time.Time) ([]byte, error) {
	var vals query.Values
	var members [][2][]byte
	err := jsonparser.ObjectEach(raw, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
		v, encoded := string(value), value
		if dt == jsonparser.String {
			s, err := jsonparser.ParseString(value)
			if err != nil {
				return err
			}
			v = s
			encoded = append(append([]byte{'"'}, value...), '"')
		}
		vals.Add(string(key), v)
		members = append(members, [2][]byte{key, encoded})
		return nil
	})
	if err != nil {
		return nil, apierror.Encoding(err)
	}

	if _, ok := vals.Get("apiKey"); !ok {
		quoted, err := json.Marshal(apiKey)
		if err != nil {
			return nil, apierror.Encoding(err)
		}
		vals.Add("apiKey", apiKey)
		members = append(members, [2][]byte{[]byte("apiKey"), quoted})
	}
	if _, ok := vals.Get("timestamp"); !ok {
		ts := strconv.FormatInt(now.UnixMilli(), 10)
		vals.Add("timestamp", ts)
		members = append(members, [2][]byte{[]byte("timestamp"), []byte(ts)})
	}

	sig, err := crypto.SignHMACSHA256(secretKey, vals.Sorted().Join())
	if err != nil {
		return nil, apierror.Signing(err)
	}
	members = append(members, [2][]byte{[]byte("signature"), []byte(`"` + sig + `"`)})

	out := make([]byte, 0, len(raw)+128)
	out = append(out, '{')
	for i := range members {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, '"')
		out = append(out, members[i][0]...)
		out = append(out, '"', ':')
		out = append(out, members[i][1]...)
	}
	return append(out, '}'), nil
}
