package mockserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

// Peer is one client connection held by a websocket mock
type Peer struct {
	ws *websocket.Conn
	mu sync.Mutex

	// guarded by the owning server's mutex
	subs  map[string]bool
	props map[string]any
	batch [][]byte
}

// WriteText writes a text frame to the client
func (p *Peer) WriteText(b []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ws.WriteMessage(websocket.TextMessage, b)
}

// Ping writes a ping control frame to the client
func (p *Peer) Ping(payload string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ws.WriteControl(websocket.PingMessage, []byte(payload), time.Now().Add(time.Second))
}

// CloseFrame writes a normal closure frame to the client
func (p *Peer) CloseFrame() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"), time.Now().Add(time.Second))
}

// WS is a websocket mock. Every frame and pong it reads is appended to a
// received log in wire order.
type WS struct {
	*httptest.Server
	// URL is the ws:// address of the server
	URL string

	handle func(*WS, *Peer, []byte)

	mu       sync.Mutex
	peers    []*Peer
	received []string
	joined   chan *Peer
}

func newWS(handle func(*WS, *Peer, []byte)) *WS {
	s := &WS{handle: handle, joined: make(chan *Peer, 16)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	s.URL = "ws" + strings.TrimPrefix(s.Server.URL, "http")
	return s
}

func (s *WS) serve(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	p := &Peer{ws: ws, subs: make(map[string]bool), props: map[string]any{"combined": false}}
	ws.SetPongHandler(func(data string) error {
		s.mu.Lock()
		s.received = append(s.received, "pong:"+data)
		s.mu.Unlock()
		return nil
	})
	s.mu.Lock()
	s.peers = append(s.peers, p)
	s.mu.Unlock()
	s.joined <- p

	defer ws.Close()
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.received = append(s.received, string(data))
		s.mu.Unlock()
		if s.handle != nil {
			s.handle(s, p, data)
		}
	}
}

// WaitForPeer returns the next client to connect, or nil after timeout
func (s *WS) WaitForPeer(timeout time.Duration) *Peer {
	select {
	case p := <-s.joined:
		return p
	case <-time.After(timeout):
		return nil
	}
}

// Received returns the frames and pongs read so far
func (s *WS) Received() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.received...)
}

// Peers returns the connected clients
func (s *WS) Peers() []*Peer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Peer(nil), s.peers...)
}
