package log

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	timestampFormat = "02/01/2006 15:04:05"

	// DefaultMaxFileSize is the rotation size in megabytes of the log file
	DefaultMaxFileSize = 100
	// DefaultMaxBackups is the number of rotated log files retained
	DefaultMaxBackups = 3

	defaultLevels = "INFO|WARN|ERROR"
	allLevels     = "INFO|DEBUG|WARN|ERROR"
)

var (
	// read/write mutex for logger
	mu = &sync.RWMutex{}

	customLogHook CustomLogHook
	fileWriter    io.WriteCloser
)

// Config holds configuration settings for the logger
type Config struct {
	Enabled          *bool `json:"enabled" mapstructure:"enabled"`
	SubLoggerConfig  `mapstructure:",squash"`
	LoggerFileConfig *FileConfig       `json:"fileSettings,omitempty" mapstructure:"fileSettings"`
	AdvancedSettings AdvancedSettings  `json:"advancedSettings" mapstructure:"advancedSettings"`
	SubLoggers       []SubLoggerConfig `json:"subloggers,omitempty" mapstructure:"subloggers"`
}

// AdvancedSettings holds formatting options
type AdvancedSettings struct {
	ShowLogSystemName *bool  `json:"showLogSystemName" mapstructure:"showLogSystemName"`
	TimeStampFormat   string `json:"timeStampFormat" mapstructure:"timeStampFormat"`
	JSON              bool   `json:"json" mapstructure:"json"`
}

// SubLoggerConfig holds sub logger configuration settings
type SubLoggerConfig struct {
	Name   string `json:"name,omitempty" mapstructure:"name"`
	Level  string `json:"level" mapstructure:"level"`
	Output string `json:"output" mapstructure:"output"`
}

// FileConfig holds the rotating file writer settings
type FileConfig struct {
	FileName   string `json:"filename,omitempty" mapstructure:"filename"`
	MaxSizeMB  int    `json:"maxsize,omitempty" mapstructure:"maxsize"`
	MaxBackups int    `json:"maxbackups,omitempty" mapstructure:"maxbackups"`
	MaxAgeDays int    `json:"maxage,omitempty" mapstructure:"maxage"`
	Compress   bool   `json:"compress,omitempty" mapstructure:"compress"`
}

// Levels flags for each sub logger type
type Levels struct {
	Info, Debug, Warn, Error bool
}

// CustomLogHook is a function type for external log handling. It should return
// true if the library's internal logging system should be bypassed.
type CustomLogHook func(level, subLoggerName string, msg string) (bypassLibraryLogSystem bool)

// SubLogger defines a named log system with its own levels and output
type SubLogger struct {
	name     string
	levels   Levels
	showName bool
	logger   *logrus.Logger
}
