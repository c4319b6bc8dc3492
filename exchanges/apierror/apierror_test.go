package apierror

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/binance-connector/encoding/json"
)

func TestFromBody(t *testing.T) {
	t.Parallel()
	e := FromBody("400 Bad Request", []byte(`{"code":-1121,"msg":"Invalid symbol."}`))
	require.NotNil(t, e.Server)
	assert.Equal(t, KindDomain, e.Kind)
	assert.Equal(t, "400 Bad Request", e.Status)
	assert.Equal(t, CodeBadSymbol, e.Server.Code)
	assert.Equal(t, "Invalid symbol.", e.Server.Message)
	code, ok := e.Code()
	assert.True(t, ok)
	assert.Equal(t, CodeBadSymbol, code)
	assert.Equal(t, "domain failure: status 400 Bad Request: code -1121 (BAD_SYMBOL): Invalid symbol.", e.Error())

	e = FromBody("502 Bad Gateway", []byte(`<html>bad gateway</html>`))
	assert.Nil(t, e.Server, "HTML bodies carry no structured error")
	assert.Equal(t, KindDomain, e.Kind)
	assert.Contains(t, e.Error(), "502 Bad Gateway")

	e = FromBody("400 Bad Request", []byte(`{"code":-9999,"msg":"new"}`))
	assert.Nil(t, e.Server, "unknown codes are a decode failure, not a new variant")

	e = FromBody("500 Internal Server Error", nil)
	assert.Nil(t, e.Server)
	assert.Equal(t, "domain failure: status 500 Internal Server Error", e.Error())
	_, ok = e.Code()
	assert.False(t, ok)
}

func TestCodeUnmarshalJSON(t *testing.T) {
	t.Parallel()
	var se ServerError
	require.NoError(t, json.Unmarshal([]byte(`{"code":-2010,"msg":"Account has insufficient balance"}`), &se))
	assert.Equal(t, CodeNewOrderRejected, se.Code)
	assert.Equal(t, "NEW_ORDER_REJECTED", se.Code.String())

	var c Code
	assert.ErrorIs(t, c.UnmarshalJSON([]byte("-4242")), ErrUnknownCode)
	assert.Error(t, c.UnmarshalJSON([]byte("nope")))
	assert.Equal(t, "Code(-4242)", Code(-4242).String())
	assert.GreaterOrEqual(t, len(codeNames), 60)
}

func TestKinds(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection reset by peer")
	for _, tc := range []struct {
		err  *Error
		kind Kind
		name string
	}{
		{Transport(cause), KindTransport, "transport"},
		{Encoding(cause), KindEncoding, "encoding"},
		{Signing(cause), KindSigning, "signing"},
		{Client(cause), KindClient, "client"},
		{Domain("418", nil), KindDomain, "domain"},
	} {
		assert.Equal(t, tc.kind, tc.err.Kind)
		assert.Equal(t, tc.name, tc.kind.String())
		wrapped := fmt.Errorf("calling depth: %w", tc.err)
		assert.Equal(t, tc.kind, KindOf(wrapped))
		assert.True(t, IsKind(wrapped, tc.kind))
		got, ok := As(wrapped)
		require.True(t, ok)
		assert.Same(t, tc.err, got)
	}
	assert.ErrorIs(t, Transport(cause), cause)
	assert.Equal(t, Kind(0), KindOf(io.EOF))
	assert.Equal(t, "unknown", Kind(0).String())
	assert.Contains(t, fmt.Sprintf("%+v", Transport(cause)), "apierror_test.go", "%+v must print the recorded stack")
	assert.Equal(t, "client failure: connection reset by peer", fmt.Sprintf("%v", Client(cause)))
}
