package stream

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/binance-connector/exchanges/apierror"
	"github.com/thrasher-corp/binance-connector/internal/mockserver"
)

const waitFor = 2 * time.Second

func nextStatus(t *testing.T, ch <-chan Status) Status {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(waitFor):
		require.FailNow(t, "no status event")
		return 0
	}
}

func TestDialErrors(t *testing.T) {
	t.Parallel()
	_, err := Dial(context.Background(), "", nil)
	assert.ErrorIs(t, err, errEmptyURL)

	srv := mockserver.NewWSAPI(1)
	srv.Close()
	_, err = Dial(context.Background(), srv.URL, nil)
	assert.True(t, apierror.IsKind(err, apierror.KindTransport), "got %v", err)

	_, err = Dial(context.Background(), "ws://127.0.0.1:1", nil, WithProxy("://bad"))
	assert.True(t, apierror.IsKind(err, apierror.KindClient))

	var c *Conn
	_, err = c.Request(context.Background(), "1", nil)
	assert.ErrorIs(t, err, errNilConn)
	assert.NoError(t, c.Close())
	assert.False(t, c.IsConnected())
}

func TestHeartbeat(t *testing.T) {
	t.Parallel()
	status := make(chan Status, 16)
	m, srv := dialMux(t, 1, WithStatus(status), WithName("heartbeat"))
	assert.Equal(t, Connected, nextStatus(t, status))

	peer := srv.WaitForPeer(waitFor)
	require.NotNil(t, peer)
	require.NoError(t, peer.Ping("hb"))
	assert.Equal(t, PingReceived, nextStatus(t, status))
	assert.Equal(t, PongSent, nextStatus(t, status))

	require.NoError(t, m.Send(context.Background(), "ping", nil, nil))
	received := srv.Received()
	require.Len(t, received, 2)
	assert.Equal(t, "pong:hb", received[0], "pong must precede the next outbound text")
	assert.Contains(t, received[1], `"method":"ping"`)
}

func TestHeartbeatAnswersEveryPing(t *testing.T) {
	t.Parallel()
	m, srv := dialMux(t, 1)
	peer := srv.WaitForPeer(waitFor)
	require.NotNil(t, peer)

	for range 5 {
		require.NoError(t, peer.Ping("p"))
	}
	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.Send(context.Background(), "ping", nil, nil))
		}()
	}
	wg.Wait()
	require.Eventually(t, func() bool { return len(srv.Received()) == 10 }, waitFor, 10*time.Millisecond)
	pongs := 0
	for _, r := range srv.Received() {
		if r == "pong:p" {
			pongs++
		}
	}
	assert.Equal(t, 5, pongs, "every ping must be answered exactly once")
}

func TestCloseCancelsPending(t *testing.T) {
	t.Parallel()
	status := make(chan Status, 16)
	m, srv := dialMux(t, 1, WithStatus(status))
	peer := srv.WaitForPeer(waitFor)
	require.NotNil(t, peer)

	const waiters = 5
	errs := make(chan error, waiters)
	for range waiters {
		go func() { errs <- m.Send(context.Background(), "drop", nil, nil) }()
	}
	require.Eventually(t, func() bool { return len(srv.Received()) == waiters }, waitFor, 10*time.Millisecond)

	require.NoError(t, peer.CloseFrame())
	for range waiters {
		select {
		case err := <-errs:
			assert.True(t, apierror.IsKind(err, apierror.KindClient), "got %v", err)
			assert.ErrorIs(t, err, ErrConnectionClosed)
		case <-time.After(waitFor):
			require.FailNow(t, "waiter not cancelled")
		}
	}

	select {
	case <-m.Conn().Done():
	case <-time.After(waitFor):
		require.FailNow(t, "connection did not stop")
	}
	assert.False(t, m.Conn().IsConnected())
	assert.Error(t, m.Conn().Err())

	err := m.Send(context.Background(), "ping", nil, nil)
	assert.True(t, apierror.IsKind(err, apierror.KindClient))
	assert.ErrorIs(t, err, ErrConnectionClosed)

	var seen []Status
	for len(status) > 0 {
		seen = append(seen, <-status)
	}
	assert.Contains(t, seen, Disconnected)
}

func TestClientClose(t *testing.T) {
	t.Parallel()
	m, _ := dialMux(t, 1)
	assert.Nil(t, m.Conn().Err())

	errs := make(chan error, 1)
	go func() { errs <- m.Send(context.Background(), "drop", nil, nil) }()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "close must be idempotent")
	assert.ErrorIs(t, m.Conn().Err(), ErrClosedByClient)

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrConnectionClosed)
	case <-time.After(waitFor):
		require.FailNow(t, "waiter not cancelled")
	}
}

func TestRequestIDCollision(t *testing.T) {
	t.Parallel()
	m, srv := dialMux(t, 1)
	c := m.Conn()

	go func() {
		_, _ = c.Request(context.Background(), "dup", []byte(`{"id":"dup","method":"drop"}`))
	}()
	require.Eventually(t, func() bool { return len(srv.Received()) == 1 }, waitFor, 10*time.Millisecond)

	_, err := c.Request(context.Background(), "dup", []byte(`{"id":"dup","method":"ping"}`))
	assert.True(t, apierror.IsKind(err, apierror.KindClient))
	assert.True(t, errors.Is(err, errIDCollision))
	assert.Len(t, srv.Received(), 1, "a colliding request must not be written")
}

func TestStatusString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ping-received", PingReceived.String())
	assert.Equal(t, "unknown", Status(0).String())
	assert.Equal(t, "wss://stream.binance.com/ws", removeURLQueryString("wss://stream.binance.com/ws?key=1"))
}
