package mockserver

import (
	"sort"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/thrasher-corp/binance-connector/encoding/json"
)

const rateLimitsJSON = `[{"rateLimitType":"REQUEST_WEIGHT","interval":"MINUTE","intervalNum":1,"limit":6000,"count":2}]`

// NewWSAPI starts a websocket API mock. Requests are held until batch of them
// have arrived on a connection and then answered in reverse order. The method
// "echo" answers with its params, "teapot" with a bare 418 status and "drop"
// is never answered.
func NewWSAPI(batch int) *WS {
	return newWS(func(s *WS, p *Peer, frame []byte) {
		id, _, _, err := jsonparser.Get(frame, "id")
		if err != nil {
			return
		}
		method, _ := jsonparser.GetString(frame, "method")
		if method == "drop" {
			return
		}
		out := []byte(`{"id":"` + string(id) + `",` + answer(method, frame) + `,"rateLimits":` + rateLimitsJSON + `}`)

		s.mu.Lock()
		p.batch = append(p.batch, out)
		if len(p.batch) < batch {
			s.mu.Unlock()
			return
		}
		pending := p.batch
		p.batch = nil
		s.mu.Unlock()

		for i := len(pending) - 1; i >= 0; i-- {
			if err := p.WriteText(pending[i]); err != nil {
				return
			}
		}
	})
}

// answer returns the status and result or error members for a request
func answer(method string, frame []byte) string {
	symbol, _ := jsonparser.GetString(frame, "params", "symbol")
	switch method {
	case "ping":
		return ok(`{}`)
	case "time":
		return ok(`{"serverTime":` + strconv.FormatInt(ServerTime, 10) + `}`)
	case "depth":
		if symbol == "NONEXIST" {
			return fail(400, -1121, "Invalid symbol.")
		}
		return ok(depthJSON)
	case "exchangeInfo":
		return ok(exchangeInfoJSON)
	case "account.status", "order.place", "order.test", "userDataStream.start":
		if !verifyParams(frame) {
			return fail(400, -1022, "Signature for this request is not valid.")
		}
		switch method {
		case "account.status":
			return ok(accountJSON)
		case "order.test":
			return ok(`{}`)
		case "userDataStream.start":
			return ok(`{"listenKey":"` + ListenKey + `"}`)
		}
		respType, _ := jsonparser.GetString(frame, "params", "newOrderRespType")
		switch respType {
		case "ACK":
			return ok(orderAckJSON)
		case "RESULT":
			return ok(orderResultJSON)
		}
		return ok(orderFullJSON)
	case "echo":
		params, _, _, err := jsonparser.Get(frame, "params")
		if err != nil {
			return ok(`null`)
		}
		return ok(string(params))
	case "teapot":
		return `"status":418`
	default:
		return fail(400, -1000, "Unknown method.")
	}
}

func ok(result string) string {
	return `"status":200,"result":` + result
}

func fail(status, code int, msg string) string {
	return `"status":` + strconv.Itoa(status) + `,"error":{"code":` + strconv.Itoa(code) + `,"msg":"` + msg + `"}`
}

// verifyParams checks the apiKey and the signature over the remaining params
// sorted by name
func verifyParams(frame []byte) bool {
	params, _, _, err := jsonparser.Get(frame, "params")
	if err != nil {
		return false
	}
	var m map[string]any
	if err := json.Unmarshal(params, &m); err != nil {
		return false
	}
	if m["apiKey"] != APIKey {
		return false
	}
	sig, _ := m["signature"].(string)
	delete(m, "signature")
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		raw, _, _, _ := jsonparser.Get(params, k)
		pairs[i] = k + "=" + string(raw)
	}
	return VerifySignature(SecretKey, strings.Join(pairs, "&"), sig)
}
