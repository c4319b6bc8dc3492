package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	errSubloggerConfigIsNil  = errors.New("sublogger config is nil")
	errUnhandledOutputWriter = errors.New("unhandled output writer")
	errSubLoggerNotFound     = errors.New("sub logger not found")
	errSubLoggerExists       = errors.New("sub logger already registered")
	errFileSettingsMissing   = errors.New("file output requested without file settings")
	errNilConfig             = errors.New("log config is nil")
)

// GenDefaultSettings return struct with known sane/working logger settings
func GenDefaultSettings() Config {
	enabled, showName := true, true
	return Config{
		Enabled: &enabled,
		SubLoggerConfig: SubLoggerConfig{
			Level:  defaultLevels,
			Output: "console",
		},
		LoggerFileConfig: &FileConfig{
			FileName:   "binance-connector.log",
			MaxSizeMB:  DefaultMaxFileSize,
			MaxBackups: DefaultMaxBackups,
		},
		AdvancedSettings: AdvancedSettings{
			ShowLogSystemName: &showName,
			TimeStampFormat:   timestampFormat,
		},
	}
}

// SetupGlobalLogger applies the configuration to every registered sub logger
func SetupGlobalLogger(cfg *Config) error {
	if cfg == nil {
		return errNilConfig
	}
	mu.Lock()
	defer mu.Unlock()

	if fileWriter != nil {
		if err := fileWriter.Close(); err != nil {
			return err
		}
		fileWriter = nil
	}

	if cfg.Enabled != nil && !*cfg.Enabled {
		for _, sl := range subLoggers {
			sl.levels = Levels{}
		}
		return nil
	}

	if cfg.LoggerFileConfig != nil && cfg.LoggerFileConfig.FileName != "" {
		fileWriter = &lumberjack.Logger{
			Filename:   cfg.LoggerFileConfig.FileName,
			MaxSize:    cfg.LoggerFileConfig.MaxSizeMB,
			MaxBackups: cfg.LoggerFileConfig.MaxBackups,
			MaxAge:     cfg.LoggerFileConfig.MaxAgeDays,
			Compress:   cfg.LoggerFileConfig.Compress,
		}
	}

	output, err := getWriters(&cfg.SubLoggerConfig)
	if err != nil {
		return err
	}
	formatter := newFormatter(cfg.AdvancedSettings)
	showName := cfg.AdvancedSettings.ShowLogSystemName == nil || *cfg.AdvancedSettings.ShowLogSystemName
	level := cfg.Level
	if level == "" {
		level = defaultLevels
	}
	for _, sl := range subLoggers {
		sl.levels = splitLevel(level)
		sl.showName = showName
		sl.logger.SetOutput(output)
		sl.logger.SetFormatter(formatter)
	}

	for x := range cfg.SubLoggers {
		sl, ok := subLoggers[strings.ToUpper(cfg.SubLoggers[x].Name)]
		if !ok {
			return fmt.Errorf("%w: %s", errSubLoggerNotFound, cfg.SubLoggers[x].Name)
		}
		if cfg.SubLoggers[x].Output != "" {
			w, err := getWriters(&cfg.SubLoggers[x])
			if err != nil {
				return err
			}
			sl.logger.SetOutput(w)
		}
		if cfg.SubLoggers[x].Level != "" {
			sl.levels = splitLevel(cfg.SubLoggers[x].Level)
		}
	}
	return nil
}

func getWriters(s *SubLoggerConfig) (io.Writer, error) {
	if s == nil {
		return nil, errSubloggerConfigIsNil
	}
	if s.Output == "" {
		return os.Stdout, nil
	}
	outputWriters := strings.Split(s.Output, "|")
	writers := make([]io.Writer, 0, len(outputWriters))
	for x := range outputWriters {
		switch strings.ToLower(outputWriters[x]) {
		case "stdout", "console":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		case "file":
			if fileWriter == nil {
				return nil, errFileSettingsMissing
			}
			writers = append(writers, fileWriter)
		default:
			return nil, fmt.Errorf("%w: %s", errUnhandledOutputWriter, outputWriters[x])
		}
	}
	if len(writers) == 1 {
		return writers[0], nil
	}
	return io.MultiWriter(writers...), nil
}

func newFormatter(s AdvancedSettings) logrus.Formatter {
	ts := s.TimeStampFormat
	if ts == "" {
		ts = timestampFormat
	}
	if s.JSON {
		return &logrus.JSONFormatter{TimestampFormat: ts}
	}
	return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: ts, DisableColors: true}
}

// SetOutput redirects every sub logger to w
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	for _, sl := range subLoggers {
		sl.logger.SetOutput(w)
	}
}

// SetLevel sets the enabled levels of a sub logger, e.g. "INFO|DEBUG"
func SetLevel(sl *SubLogger, levels string) {
	mu.Lock()
	sl.levels = splitLevel(levels)
	mu.Unlock()
}

// SetCustomLogHook sets a custom log hook function that allows the complete
// bypass of the library's internal logging system
func SetCustomLogHook(h CustomLogHook) {
	mu.Lock()
	customLogHook = h
	mu.Unlock()
}

// NewSubLogger registers a new sub logger with the default levels
func NewSubLogger(name string) (*SubLogger, error) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := subLoggers[strings.ToUpper(name)]; ok {
		return nil, fmt.Errorf("%w: %s", errSubLoggerExists, name)
	}
	return registerNewSubLogger(name), nil
}

// Close releases the rotating file writer if one is open
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

func splitLevel(level string) (l Levels) {
	enabledLevels := strings.Split(level, "|")
	for x := range enabledLevels {
		switch strings.ToUpper(strings.TrimSpace(enabledLevels[x])) {
		case "DEBUG":
			l.Debug = true
		case "INFO":
			l.Info = true
		case "WARN":
			l.Warn = true
		case "ERROR":
			l.Error = true
		}
	}
	return
}

func registerNewSubLogger(subLogger string) *SubLogger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(newFormatter(AdvancedSettings{}))
	temp := &SubLogger{
		name:     strings.ToUpper(subLogger),
		levels:   splitLevel(defaultLevels),
		showName: true,
		logger:   l,
	}
	subLoggers[temp.name] = temp
	return temp
}
