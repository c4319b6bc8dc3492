package endpoint

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type depthParams struct {
	Symbol string `url:"symbol"`
}

type depthResponse struct {
	LastUpdateID int64
}

type fakeSender struct {
	got    Descriptor
	params any
	err    error
}

func (f *fakeSender) SendHTTPRequest(_ context.Context, d Descriptor, params, result any) error {
	f.got, f.params = d, params
	if f.err != nil {
		return f.err
	}
	if r, ok := result.(*depthResponse); ok {
		r.LastUpdateID = 42
	}
	return nil
}

func (f *fakeSender) SendWSRequest(_ context.Context, method string, security Security, params, result any) error {
	f.got = Descriptor{Path: method, Security: security}
	f.params = params
	if r, ok := result.(*depthResponse); ok {
		r.LastUpdateID = 7
	}
	return f.err
}

func TestSecurity(t *testing.T) {
	t.Parallel()
	assert.False(t, Public.Signed())
	for _, s := range []Security{Trade, UserData, UserStream, Margin, MarketData} {
		assert.True(t, s.Signed(), s.String())
	}
	assert.Equal(t, "user-stream", UserStream.String())
	assert.Equal(t, "unknown", Security(99).String())
}

func TestEndpointDo(t *testing.T) {
	t.Parallel()
	depth := Get[depthParams, depthResponse]("/api/v3/depth", Public)
	s := &fakeSender{}
	resp, err := depth.Do(context.Background(), s, depthParams{Symbol: "BTCUSDT"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.LastUpdateID)
	assert.Equal(t, Descriptor{Method: http.MethodGet, Path: "/api/v3/depth", Security: Public}, s.got)
	assert.Equal(t, depthParams{Symbol: "BTCUSDT"}, s.params)

	s.err = errors.New("boom")
	_, err = New[Empty, Empty](http.MethodPut, "/x", UserStream).Do(context.Background(), s, Empty{})
	assert.ErrorIs(t, err, s.err)
	assert.Equal(t, http.MethodPut, s.got.Method)
}

func TestMethodDo(t *testing.T) {
	t.Parallel()
	m := NewMethod[depthParams, depthResponse]("depth", Public)
	s := &fakeSender{}
	resp, err := m.Do(context.Background(), s, depthParams{Symbol: "BNBBTC"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.LastUpdateID)
	assert.Equal(t, "depth", s.got.Path)
}
