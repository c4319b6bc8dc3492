package main

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
package: binance
rest:
  - name: Ping
    method: GET
    path: /api/v3/ping
    security: Public
    response: endpoint.Empty
    doc: tests connectivity
  - name: Account
    method: GET
    path: /api/v3/account
    security: UserData
    params: AccountParams
    response: Account
    doc: returns the account
ws:
  - name: Ping
    method: ping
    security: Public
    response: endpoint.Empty
    doc: tests connectivity
`

func TestGenerate(t *testing.T) {
	t.Parallel()
	src, err := generate([]byte(testSchema))
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by endpointgen; DO NOT EDIT.")
	assert.Contains(t, out, `PingEndpoint = endpoint.New[endpoint.Empty, endpoint.Empty](http.MethodGet, "/api/v3/ping", endpoint.Public)`)
	assert.Contains(t, out, `AccountEndpoint = endpoint.New[AccountParams, Account](http.MethodGet, "/api/v3/account", endpoint.UserData)`)
	assert.Contains(t, out, `PingMethod = endpoint.NewMethod[endpoint.Empty, endpoint.Empty]("ping", endpoint.Public)`)
	assert.Contains(t, out, "func (c *Client) Ping(ctx context.Context) (endpoint.Empty, error) {")
	assert.Contains(t, out, "func (c *Client) Account(ctx context.Context, params AccountParams) (Account, error) {")
	assert.Contains(t, out, "func (w *WSAPI) Ping(ctx context.Context) (endpoint.Empty, error) {")

	_, err = parser.ParseFile(token.NewFileSet(), "endpoints_gen.go", src, parser.AllErrors)
	assert.NoError(t, err, "generated source must parse")
}

func TestGenerateValidation(t *testing.T) {
	t.Parallel()
	for name, tc := range map[string]struct {
		schema string
		err    error
	}{
		"no package":       {"rest: []", errNoPackage},
		"unknown security": {"package: p\nrest:\n  - {name: A, method: GET, path: /a, security: Secret, response: R}", errUnknownSecurity},
		"unknown method":   {"package: p\nrest:\n  - {name: A, method: PATCH, path: /a, security: Public, response: R}", errUnknownMethod},
		"relative path":    {"package: p\nrest:\n  - {name: A, method: GET, path: a, security: Public, response: R}", errMissingField},
		"missing response": {"package: p\nws:\n  - {name: A, method: a, security: Public}", errMissingField},
		"duplicate":        {"package: p\nws:\n  - {name: A, method: a, security: Public, response: R}\n  - {name: A, method: b, security: Public, response: R}", errDuplicateName},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := generate([]byte(tc.schema))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestMethodConst(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Get", Entry{Method: "GET"}.MethodConst())
	assert.Equal(t, "Delete", Entry{Method: "DELETE"}.MethodConst())
}
