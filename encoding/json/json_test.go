package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripRawMessage(t *testing.T) {
	t.Parallel()
	var env struct {
		Stream string     `json:"stream"`
		Data   RawMessage `json:"data"`
	}
	require.NoError(t, Unmarshal([]byte(`{"stream":"btcusdt@trade","data":{"e":"trade","p":"1.5"}}`), &env))
	assert.Equal(t, "btcusdt@trade", env.Stream)
	assert.JSONEq(t, `{"e":"trade","p":"1.5"}`, string(env.Data))
	assert.True(t, Valid(env.Data))
	assert.False(t, Valid([]byte(`{"e":`)))
	assert.NotEmpty(t, Implementation)
}

func BenchmarkUnmarshal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Unmarshal([]byte(`{"Name":"Wednesday","Age":6,"Parents":["Gomez","Morticia"]}`), &map[string]any{})
	}
}
