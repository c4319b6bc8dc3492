package binance

import (
	"context"

	"github.com/thrasher-corp/binance-connector/exchanges/endpoint"
	"github.com/thrasher-corp/binance-connector/exchanges/stream"
)

// WSAPI is a websocket API client. Calls are multiplexed over one connection
// and it is safe for concurrent use.
type WSAPI struct {
	mux *stream.Mux
}

// DialWSAPI connects to the websocket API at rawURL. The keys are only used by
// signed methods and may be empty for public use.
func DialWSAPI(ctx context.Context, rawURL, apiKey, secretKey string, opts ...stream.Option) (*WSAPI, error) {
	m, err := stream.DialMux(ctx, rawURL, append([]stream.Option{stream.WithName("binance ws-api")}, opts...)...)
	if err != nil {
		return nil, err
	}
	m.SetCredentials(apiKey, secretKey)
	return &WSAPI{mux: m}, nil
}

// SendWSRequest calls method, signing the params when security requires it
func (w *WSAPI) SendWSRequest(ctx context.Context, method string, security endpoint.Security, params, result any) error {
	if security.Signed() {
		return w.mux.SendSigned(ctx, method, params, result)
	}
	return w.mux.Send(ctx, method, params, result)
}

// Conn returns the underlying connection, for status and liveness checks
func (w *WSAPI) Conn() *stream.Conn {
	return w.mux.Conn()
}

// Close closes the connection. In-flight calls fail with a client error.
func (w *WSAPI) Close() error {
	return w.mux.Close()
}
