// Package apierror defines the single failure type returned by every
// connector operation. An *Error is one of five kinds; domain failures carry
// the server status and, when the body could be decoded, the structured
// server error.
package apierror

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/thrasher-corp/binance-connector/encoding/json"
)

// Kind classifies a failure
type Kind uint8

// Failure kinds
const (
	// KindTransport is an underlying I/O or TLS failure
	KindTransport Kind = iota + 1
	// KindEncoding is a query serialisation or JSON parse failure
	KindEncoding
	// KindSigning is a signature computation failure
	KindSigning
	// KindDomain is a rejection reported by the server
	KindDomain
	// KindClient is a local failure such as a closed connection
	KindClient
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindEncoding:
		return "encoding"
	case KindSigning:
		return "signing"
	case KindDomain:
		return "domain"
	case KindClient:
		return "client"
	default:
		return "unknown"
	}
}

// ServerError is the structured error body returned by the service
type ServerError struct {
	Code    Code   `json:"code"`
	Message string `json:"msg"`
}

// Error is a connector failure
type Error struct {
	Kind Kind
	// Status is the HTTP status line or websocket numeric status. Domain only.
	Status string
	// Server is the decoded server error, nil when the body was not a known
	// structured error. Domain only.
	Server *ServerError
	// Body is the raw response body. Domain only.
	Body []byte
	// Err is the underlying cause for non-domain kinds
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Kind != KindDomain {
		return fmt.Sprintf("%s failure: %v", e.Kind, e.Err)
	}
	if e.Server != nil {
		return fmt.Sprintf("domain failure: status %s: code %d (%s): %s", e.Status, int(e.Server.Code), e.Server.Code, e.Server.Message)
	}
	if len(e.Body) > 0 {
		return fmt.Sprintf("domain failure: status %s: %s", e.Status, e.Body)
	}
	return "domain failure: status " + e.Status
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Format prints the cause with its recorded stack trace when used with %+v
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && e.Err != nil {
			fmt.Fprintf(s, "%s failure: %+v", e.Kind, e.Err)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// Code returns the server error code if one was decoded
func (e *Error) Code() (Code, bool) {
	if e == nil || e.Server == nil {
		return 0, false
	}
	return e.Server.Code, true
}

// Transport wraps an I/O or TLS failure
func Transport(err error) *Error {
	return &Error{Kind: KindTransport, Err: errors.WithStack(err)}
}

// Encoding wraps a serialisation or deserialisation failure
func Encoding(err error) *Error {
	return &Error{Kind: KindEncoding, Err: errors.WithStack(err)}
}

// Signing wraps a signature failure
func Signing(err error) *Error {
	return &Error{Kind: KindSigning, Err: err}
}

// Client wraps a local failure
func Client(err error) *Error {
	return &Error{Kind: KindClient, Err: err}
}

// Domain returns a server rejection
func Domain(status string, server *ServerError) *Error {
	return &Error{Kind: KindDomain, Status: status, Server: server}
}

// FromBody builds a domain failure from a non-success response, decoding the
// structured server error when the body holds one with a known code
func FromBody(status string, body []byte) *Error {
	e := &Error{Kind: KindDomain, Status: status, Body: body}
	if len(body) == 0 {
		return e
	}
	var se ServerError
	if err := json.Unmarshal(body, &se); err == nil && se.Code != 0 {
		e.Server = &se
	}
	return e
}

// KindOf returns the kind of err, or zero if err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}

// As returns err as an *Error
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
