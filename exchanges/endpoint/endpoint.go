// Package endpoint describes the endpoints the connector can call. A
// descriptor is an immutable value naming the path, HTTP verb and security
// class of an endpoint and, through its type parameters, the parameter and
// response records it pairs. Descriptors hold no client state; a call borrows
// a Sender for its duration.
package endpoint

import (
	"context"
	"net/http"
)

// Security is the authentication class of an endpoint
type Security uint8

// Security classes
const (
	Public Security = iota
	Trade
	UserData
	UserStream
	Margin
	MarketData
)

// Signed reports whether requests of this class carry the API key header and
// a signature. Every class other than Public does; the distinction between
// the signed classes is documentary.
func (s Security) Signed() bool {
	return s != Public
}

func (s Security) String() string {
	switch s {
	case Public:
		return "public"
	case Trade:
		return "trade"
	case UserData:
		return "user-data"
	case UserStream:
		return "user-stream"
	case Margin:
		return "margin"
	case MarketData:
		return "market-data"
	default:
		return "unknown"
	}
}

// Empty is the parameter or response record of endpoints that take or return
// nothing
type Empty struct{}

// Descriptor is the untyped part of an endpoint
type Descriptor struct {
	Method   string
	Path     string
	Security Security
}

// Sender performs a REST call described by d, encoding params into the query
// string and decoding the response into result
type Sender interface {
	SendHTTPRequest(ctx context.Context, d Descriptor, params, result any) error
}

// Endpoint is a REST endpoint taking P and returning R
type Endpoint[P, R any] struct {
	Descriptor
}

// New returns a REST descriptor
func New[P, R any](method, path string, security Security) Endpoint[P, R] {
	return Endpoint[P, R]{Descriptor{Method: method, Path: path, Security: security}}
}

// Get returns a GET descriptor
func Get[P, R any](path string, security Security) Endpoint[P, R] {
	return New[P, R](http.MethodGet, path, security)
}

// Do calls the endpoint through s
func (e Endpoint[P, R]) Do(ctx context.Context, s Sender, params P) (R, error) {
	var result R
	err := s.SendHTTPRequest(ctx, e.Descriptor, params, &result)
	return result, err
}

// MethodSender performs a websocket API call
type MethodSender interface {
	SendWSRequest(ctx context.Context, method string, security Security, params, result any) error
}

// Method is a websocket API method taking P and returning R
type Method[P, R any] struct {
	Name     string
	Security Security
}

// NewMethod returns a websocket API descriptor
func NewMethod[P, R any](name string, security Security) Method[P, R] {
	return Method[P, R]{Name: name, Security: security}
}

// Do calls the method through s
func (m Method[P, R]) Do(ctx context.Context, s MethodSender, params P) (R, error) {
	var result R
	err := s.SendWSRequest(ctx, m.Name, m.Security, params, &result)
	return result, err
}
