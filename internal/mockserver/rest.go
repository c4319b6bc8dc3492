package mockserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
)

// Request is a snapshot of a request received by the REST server
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
}

// REST is a mock of the REST surface
type REST struct {
	*httptest.Server

	mu   sync.Mutex
	last Request
}

// NewREST starts a REST mock. Signed routes verify the X-MBX-APIKEY header
// and the trailing signature against APIKey and SecretKey.
func NewREST() *REST {
	s := &REST{}
	r := mux.NewRouter()
	r.Use(s.record)

	api := r.PathPrefix("/api/v3").Subrouter()
	api.HandleFunc("/ping", writeBody(`{}`)).Methods(http.MethodGet)
	api.HandleFunc("/time", writeBody(`{"serverTime":`+strconv.FormatInt(ServerTime, 10)+`}`)).Methods(http.MethodGet)
	api.HandleFunc("/depth", depth).Methods(http.MethodGet)
	api.HandleFunc("/exchangeInfo", exchangeInfo).Methods(http.MethodGet)
	api.HandleFunc("/ticker/price", writeBody(`{"symbol":"BTCUSDT","price":"43250.01000000"}`)).Methods(http.MethodGet)
	api.HandleFunc("/account", signed(writeBody(accountJSON))).Methods(http.MethodGet)
	api.HandleFunc("/order", signed(newOrder)).Methods(http.MethodPost)
	api.HandleFunc("/order", signed(writeBody(canceledOrderJSON))).Methods(http.MethodDelete)
	api.HandleFunc("/order/test", signed(writeBody(`{}`))).Methods(http.MethodPost)
	api.HandleFunc("/openOrders", signed(writeBody(`[]`))).Methods(http.MethodGet)
	api.HandleFunc("/userDataStream", signed(writeBody(`{"listenKey":"`+ListenKey+`"}`))).Methods(http.MethodPost)
	api.HandleFunc("/userDataStream", signed(writeBody(`{}`))).Methods(http.MethodPut, http.MethodDelete)

	sapi := r.PathPrefix("/sapi/v1").Subrouter()
	sapi.HandleFunc("/margin/account", signed(writeBody(marginAccountJSON))).Methods(http.MethodGet)

	r.HandleFunc("/gateway", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `<html><body>502 Bad Gateway</body></html>`)
	})
	r.HandleFunc("/garbage", writeBody(`{"serverTime":`))

	s.Server = httptest.NewServer(r)
	return s
}

// Last returns the most recent request received
func (s *REST) Last() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *REST) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.last = Request{Method: r.Method, Path: r.URL.Path, RawQuery: r.URL.RawQuery, Header: r.Header.Clone()}
		s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-MBX-USED-WEIGHT-1M", "7")
		next.ServeHTTP(w, r)
	})
}

func signed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-MBX-APIKEY") != APIKey {
			writeError(w, http.StatusUnauthorized, -2014, "API-key format invalid.")
			return
		}
		payload, sig, ok := splitSignature(r.URL.RawQuery)
		if !ok || !VerifySignature(SecretKey, payload, sig) {
			writeError(w, http.StatusBadRequest, -1022, "Signature for this request is not valid.")
			return
		}
		next(w, r)
	}
}

func writeBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	}
}

func writeError(w http.ResponseWriter, status, code int, msg string) {
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `{"code":`+strconv.Itoa(code)+`,"msg":"`+msg+`"}`)
}

func depth(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("symbol") == "" {
		writeError(w, http.StatusBadRequest, -1102, "Mandatory parameter 'symbol' was not sent, was empty/null, or malformed.")
		return
	}
	_, _ = io.WriteString(w, depthJSON)
}

func exchangeInfo(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("symbol") == "NONEXIST" {
		writeError(w, http.StatusBadRequest, -1121, "Invalid symbol.")
		return
	}
	_, _ = io.WriteString(w, exchangeInfoJSON)
}

func newOrder(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("newOrderRespType") {
	case "ACK":
		_, _ = io.WriteString(w, orderAckJSON)
	case "RESULT":
		_, _ = io.WriteString(w, orderResultJSON)
	default:
		_, _ = io.WriteString(w, orderFullJSON)
	}
}
