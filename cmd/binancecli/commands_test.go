package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/binance-connector/internal/mockserver"
)

// run executes the cli against srv, commands share the package globals so
// these tests are not parallel
func run(t *testing.T, srv *mockserver.REST, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	full := append([]string{"binancecli",
		"--env", "does-not-exist.env",
		"--resturl", srv.URL,
		"--apikey", mockserver.APIKey,
		"--apisecret", mockserver.SecretKey,
	}, args...)
	err := app.RunContext(context.Background(), full)
	return out.String(), err
}

func TestPingCommand(t *testing.T) {
	srv := mockserver.NewREST()
	defer srv.Close()

	out, err := run(t, srv, "ping")
	require.NoError(t, err)
	assert.Contains(t, out, "pong from "+srv.URL)
	assert.Equal(t, "/api/v3/ping", srv.Last().Path)
}

func TestTimeCommand(t *testing.T) {
	srv := mockserver.NewREST()
	defer srv.Close()

	out, err := run(t, srv, "time")
	require.NoError(t, err)
	assert.Contains(t, out, "server time 2017-07-12T02:41:59.559Z")
}

func TestDepthCommand(t *testing.T) {
	srv := mockserver.NewREST()
	defer srv.Close()

	out, err := run(t, srv, "depth", "--limit", "5", "btcusdt")
	require.NoError(t, err)
	assert.Contains(t, out, "BTCUSDT order book, update 1027024")
	assert.Equal(t, "symbol=BTCUSDT&limit=5", srv.Last().RawQuery)

	_, err = run(t, srv, "depth")
	assert.ErrorIs(t, err, errNoSymbol)
}

func TestOrderTestCommand(t *testing.T) {
	srv := mockserver.NewREST()
	defer srv.Close()

	out, err := run(t, srv, "order", "test", "--side", "buy", "--quantity", "1", "--price", "0.1", "BTCUSDT")
	require.NoError(t, err)
	assert.Contains(t, out, "accepted")
	last := srv.Last()
	assert.Equal(t, "/api/v3/order/test", last.Path)
	assert.Contains(t, last.RawQuery, "symbol=BTCUSDT&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1")

	_, err = run(t, srv, "order", "test", "--side", "hold", "--quantity", "1", "BTCUSDT")
	assert.ErrorIs(t, err, errInvalidSide)
}
