package stream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/gorilla/websocket"
	"github.com/thrasher-corp/binance-connector/exchanges/apierror"
	"github.com/thrasher-corp/binance-connector/exchanges/request"
	"github.com/thrasher-corp/binance-connector/log"
)

// Dial connects to rawURL and starts the connection loop. Frames that do not
// answer a pending request are passed to unmatched on a dedicated goroutine;
// a nil unmatched logs and discards them.
func Dial(ctx context.Context, rawURL string, unmatched func([]byte), opts ...Option) (*Conn, error) {
	if rawURL == "" {
		return nil, apierror.Client(errEmptyURL)
	}
	cfg := connConfig{name: "websocket", eventBuffer: defaultEventBuffer}
	for _, o := range opts {
		o(&cfg)
	}

	dialer := cfg.dialer
	if dialer == nil {
		dialer = &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: defaultDialTimeout,
		}
	}
	if cfg.proxy != "" {
		proxy, err := url.Parse(cfg.proxy)
		if err != nil {
			return nil, apierror.Client(err)
		}
		d := *dialer
		d.Proxy = http.ProxyURL(proxy)
		dialer = &d
	}

	ws, conStatus, err := dialer.DialContext(ctx, rawURL, cfg.header)
	if err != nil {
		if conStatus != nil {
			return nil, apierror.Transport(fmt.Errorf("%s websocket connection: %v %v Error: %w", cfg.name, removeURLQueryString(rawURL), conStatus.StatusCode, err))
		}
		return nil, apierror.Transport(fmt.Errorf("%s websocket connection: %v Error: %w", cfg.name, removeURLQueryString(rawURL), err))
	}
	if conStatus != nil && conStatus.Body != nil {
		conStatus.Body.Close()
	}

	c := &Conn{
		name:      cfg.name,
		url:       rawURL,
		ws:        ws,
		verbose:   cfg.verbose,
		limiter:   cfg.limiter,
		status:    cfg.status,
		unmatched: unmatched,
		outbound:  make(chan envelope),
		inbound:   make(chan []byte),
		pings:     make(chan []byte),
		events:    make(chan []byte, cfg.eventBuffer),
		closing:   make(chan struct{}),
		done:      make(chan struct{}),
	}
	if c.unmatched == nil {
		c.unmatched = c.discard
	}
	ws.SetPingHandler(c.forwardPing)
	c.connected.Store(true)

	if c.verbose {
		log.Infof(log.WebsocketMgr, "%v websocket connected to %s", c.name, removeURLQueryString(rawURL))
	}
	c.emit(Connected)

	go c.read()
	go c.sink()
	go c.run()
	return c, nil
}

// Request sends text and waits for the frame whose id matches. The pending
// entry is registered by the connection loop before text is written. If ctx
// is done first the entry stays registered and its eventual reply is
// discarded.
func (c *Conn) Request(ctx context.Context, id string, text []byte) ([]byte, error) {
	if c == nil {
		return nil, apierror.Client(errNilConn)
	}
	select {
	case <-c.done:
		return nil, c.closedErr()
	default:
	}
	if err := request.Wait(ctx, c.limiter); err != nil {
		return nil, apierror.Client(err)
	}
	if request.IsVerbose(ctx, c.verbose) {
		log.Debugf(log.WebsocketMgr, "%v %v: Sending message: %s", c.name, removeURLQueryString(c.url), text)
	}

	ch := make(chan reply, 1)
	select {
	case c.outbound <- envelope{id: id, text: text, reply: ch}:
	case <-c.done:
		return nil, c.closedErr()
	case <-ctx.Done():
		return nil, apierror.Client(ctx.Err())
	}

	select {
	case r, ok := <-ch:
		if !ok {
			return nil, c.closedErr()
		}
		return r.data, r.err
	case <-ctx.Done():
		return nil, apierror.Client(ctx.Err())
	}
}

// Close sends a close frame and stops the connection. Pending requests fail
// with ErrConnectionClosed.
func (c *Conn) Close() error {
	if c == nil {
		return nil
	}
	c.closeOnce.Do(func() { close(c.closing) })
	<-c.done
	return nil
}

// Done is closed once the connection has stopped
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// IsConnected exposes websocket connection status
func (c *Conn) IsConnected() bool {
	return c != nil && c.connected.Load()
}

// Err returns the reason the connection stopped, or nil while it is running
func (c *Conn) Err() error {
	select {
	case <-c.done:
		return c.reason
	default:
		return nil
	}
}

// URL returns the dialled URL
func (c *Conn) URL() string {
	return c.url
}

func (c *Conn) closedErr() error {
	return apierror.Client(fmt.Errorf("%w: %v", ErrConnectionClosed, c.reason))
}

// run is the connection loop. It is the only writer on the socket and the
// only user of the pending table.
func (c *Conn) run() {
	table := make(pending)
	defer c.shutdown(table)
	for {
		// A ping that has been handed over is answered before any further
		// outbound text is considered.
		select {
		case p := <-c.pings:
			if !c.pong(p) {
				return
			}
			continue
		default:
		}

		select {
		case p := <-c.pings:
			if !c.pong(p) {
				return
			}
		case env := <-c.outbound:
			if !table.set(env.id, env.reply) {
				env.reply <- reply{err: apierror.Client(fmt.Errorf("%w: %s", errIDCollision, env.id))}
				continue
			}
			if err := c.write(env.text); err != nil {
				c.reason = err
				return
			}
		case frame, ok := <-c.inbound:
			if !ok {
				c.reason = c.readErr
				return
			}
			c.dispatch(table, frame)
		case <-c.closing:
			c.reason = ErrClosedByClient
			err := c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(defaultWriteTimeout))
			if err != nil && c.verbose {
				log.Debugf(log.WebsocketMgr, "%v close frame not sent: %v", c.name, err)
			}
			return
		}
	}
}

func (c *Conn) shutdown(table pending) {
	c.connected.Store(false)
	if err := c.ws.Close(); err != nil && c.verbose {
		log.Debugf(log.WebsocketMgr, "%v close: %v", c.name, err)
	}
	table.drain()
	close(c.events)
	if c.reason != ErrClosedByClient {
		log.Warnf(log.WebsocketMgr, "%v websocket disconnected: %v", c.name, c.reason)
	}
	c.emit(Disconnected)
	close(c.done)
}

func (c *Conn) pong(payload []byte) bool {
	c.emit(PingReceived)
	if err := c.ws.WriteControl(websocket.PongMessage, payload, time.Now().Add(defaultWriteTimeout)); err != nil {
		c.reason = err
		return false
	}
	c.emit(PongSent)
	return true
}

func (c *Conn) write(text []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(defaultWriteTimeout)); err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.TextMessage, text)
}

// dispatch routes an inbound frame to its waiter or, when no request claims
// it, to the event sink
func (c *Conn) dispatch(table pending, frame []byte) {
	if id, ok := frameID(frame); ok && table.fulfil(id, frame) {
		return
	}
	select {
	case c.events <- frame:
	case <-c.closing:
	}
}

// read is the single reader of the socket
func (c *Conn) read() {
	defer close(c.inbound)
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			c.readErr = err
			return
		}
		if c.verbose {
			log.Debugf(log.WebsocketMgr, "%v %v: Message received: %s", c.name, removeURLQueryString(c.url), data)
		}
		select {
		case c.inbound <- data:
		case <-c.done:
			return
		}
	}
}

// forwardPing runs on the reader goroutine and hands the ping to the loop,
// which owns the write half
func (c *Conn) forwardPing(payload string) error {
	select {
	case c.pings <- []byte(payload):
	case <-c.done:
	}
	return nil
}

// sink delivers unsolicited frames off the loop goroutine
func (c *Conn) sink() {
	for frame := range c.events {
		c.unmatched(frame)
	}
}

func (c *Conn) discard(frame []byte) {
	log.Warnf(log.WebsocketMgr, "%v unmatched frame discarded: %s", c.name, frame)
}

func (c *Conn) emit(s Status) {
	if c.status == nil {
		return
	}
	select {
	case c.status <- s:
	default:
	}
}

// frameID returns the id of a response frame. String and numeric ids are
// accepted; a missing or null id marks an unsolicited frame.
func frameID(frame []byte) (string, bool) {
	v, dt, _, err := jsonparser.Get(frame, "id")
	if err != nil {
		return "", false
	}
	switch dt {
	case jsonparser.String, jsonparser.Number:
		return string(v), true
	default:
		return "", false
	}
}

func removeURLQueryString(u string) string {
	if index := strings.Index(u, "?"); index != -1 {
		return u[:index]
	}
	return u
}
