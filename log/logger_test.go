package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this package mutate global sub logger state and do not run in
// parallel.

func TestSubLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout); SetLevel(RequestSys, defaultLevels) })

	SetLevel(RequestSys, "INFO|ERROR")
	Debugf(RequestSys, "hidden %d", 1)
	assert.Empty(t, buf.String(), "debug must be filtered")

	Infof(RequestSys, "sent %s", "ping")
	assert.Contains(t, buf.String(), "sent ping")
	assert.Contains(t, buf.String(), "sublogger=REQUESTER")

	buf.Reset()
	SetLevel(RequestSys, allLevels)
	Debugln(RequestSys, "visible", 2)
	assert.Contains(t, buf.String(), "visible2")
	assert.True(t, RequestSys.Enabled("debug"))
	assert.False(t, RequestSys.Enabled("bogus"))

	var nilLogger *SubLogger
	assert.NotPanics(t, func() { Info(nilLogger, "nothing") })
}

func TestCustomLogHook(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	var got []string
	SetCustomLogHook(func(level, name, msg string) bool {
		got = append(got, level+":"+name+":"+msg)
		return true
	})
	t.Cleanup(func() { SetCustomLogHook(nil); SetOutput(os.Stdout) })

	Warn(WebsocketMgr, "disconnected")
	assert.Equal(t, []string{"warning:WEBSOCKET:disconnected"}, got)
	assert.Empty(t, buf.String(), "hook must bypass the library output")
}

func TestSetupGlobalLogger(t *testing.T) {
	t.Cleanup(func() {
		def := GenDefaultSettings()
		def.LoggerFileConfig = nil
		require.NoError(t, SetupGlobalLogger(&def))
		require.NoError(t, Close())
	})

	require.ErrorIs(t, SetupGlobalLogger(nil), errNilConfig)

	cfg := GenDefaultSettings()
	cfg.LoggerFileConfig = nil
	cfg.Output = "console|file"
	require.ErrorIs(t, SetupGlobalLogger(&cfg), errFileSettingsMissing)

	cfg.Output = "carrier-pigeon"
	require.ErrorIs(t, SetupGlobalLogger(&cfg), errUnhandledOutputWriter)

	dir := t.TempDir()
	cfg = GenDefaultSettings()
	cfg.LoggerFileConfig.FileName = filepath.Join(dir, "connector.log")
	cfg.Output = "file"
	cfg.AdvancedSettings.JSON = true
	cfg.SubLoggers = []SubLoggerConfig{{Name: "stream", Level: allLevels}}
	require.NoError(t, SetupGlobalLogger(&cfg))
	assert.True(t, StreamSys.Enabled("debug"))
	assert.False(t, RequestSys.Enabled("debug"))

	Debugf(StreamSys, "event %s", "btcusdt@trade")
	require.NoError(t, Close())
	contents, err := os.ReadFile(cfg.LoggerFileConfig.FileName)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `"msg":"event btcusdt@trade"`)
	assert.Contains(t, string(contents), `"sublogger":"STREAM"`)

	cfg.SubLoggers = []SubLoggerConfig{{Name: "nope"}}
	cfg.LoggerFileConfig = nil
	cfg.Output = "console"
	assert.ErrorIs(t, SetupGlobalLogger(&cfg), errSubLoggerNotFound)

	disabled := false
	cfg = Config{Enabled: &disabled}
	require.NoError(t, SetupGlobalLogger(&cfg))
	assert.False(t, Global.Enabled("error"))
}

func TestNewSubLogger(t *testing.T) {
	sl, err := NewSubLogger("custom")
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM", sl.Name())
	_, err = NewSubLogger("CUSTOM")
	assert.ErrorIs(t, err, errSubLoggerExists)
}
