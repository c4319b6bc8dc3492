package mockserver

import (
	"sort"

	"github.com/buger/jsonparser"
	"github.com/thrasher-corp/binance-connector/encoding/json"
)

// NewStreams starts a market stream mock honouring SUBSCRIBE, UNSUBSCRIBE,
// LIST_SUBSCRIPTIONS, SET_PROPERTY and GET_PROPERTY
func NewStreams() *WS {
	return newWS(func(s *WS, p *Peer, frame []byte) {
		id, _, _, err := jsonparser.Get(frame, "id")
		if err != nil {
			return
		}
		method, _ := jsonparser.GetString(frame, "method")
		var params []any
		if raw, _, _, err := jsonparser.Get(frame, "params"); err == nil {
			_ = json.Unmarshal(raw, &params)
		}

		result := "null"
		s.mu.Lock()
		switch method {
		case "SUBSCRIBE":
			for _, v := range params {
				if name, ok := v.(string); ok {
					p.subs[name] = true
				}
			}
		case "UNSUBSCRIBE":
			for _, v := range params {
				if name, ok := v.(string); ok {
					delete(p.subs, name)
				}
			}
		case "LIST_SUBSCRIPTIONS":
			names := make([]string, 0, len(p.subs))
			for name := range p.subs {
				names = append(names, name)
			}
			sort.Strings(names)
			b, _ := json.Marshal(names)
			result = string(b)
		case "SET_PROPERTY":
			if len(params) == 2 {
				if name, ok := params[0].(string); ok {
					p.props[name] = params[1]
				}
			}
		case "GET_PROPERTY":
			if len(params) == 1 {
				name, _ := params[0].(string)
				b, _ := json.Marshal(p.props[name])
				result = string(b)
			}
		default:
			s.mu.Unlock()
			_ = p.WriteText([]byte(`{"error":{"code":2,"msg":"Invalid request: unknown method"},"id":"` + string(id) + `"}`))
			return
		}
		s.mu.Unlock()
		_ = p.WriteText([]byte(`{"result":` + result + `,"id":"` + string(id) + `"}`))
	})
}

// Push sends a {stream, data} envelope to every client subscribed to stream
func (s *WS) Push(stream, data string) {
	frame := []byte(`{"stream":"` + stream + `","data":` + data + `}`)
	for _, p := range s.Peers() {
		s.mu.Lock()
		subscribed := p.subs[stream]
		s.mu.Unlock()
		if subscribed {
			_ = p.WriteText(frame)
		}
	}
}

// Broadcast sends a raw frame to every client
func (s *WS) Broadcast(frame string) {
	for _, p := range s.Peers() {
		_ = p.WriteText([]byte(frame))
	}
}
