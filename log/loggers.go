package log

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Info takes a pointer subLogger struct and string and logs it
func Info(sl *SubLogger, data string) {
	sl.stage(logrus.InfoLevel, func() string { return data })
}

// Infoln takes a pointer subLogger struct and interface and logs it
func Infoln(sl *SubLogger, v ...any) {
	sl.stage(logrus.InfoLevel, func() string { return fmt.Sprint(v...) })
}

// Infof takes a pointer subLogger struct, string and interface and formats it
func Infof(sl *SubLogger, data string, v ...any) {
	sl.stage(logrus.InfoLevel, func() string { return fmt.Sprintf(data, v...) })
}

// Debug takes a pointer subLogger struct and string and logs it
func Debug(sl *SubLogger, data string) {
	sl.stage(logrus.DebugLevel, func() string { return data })
}

// Debugln takes a pointer subLogger struct and interface and logs it
func Debugln(sl *SubLogger, v ...any) {
	sl.stage(logrus.DebugLevel, func() string { return fmt.Sprint(v...) })
}

// Debugf takes a pointer subLogger struct, string and interface and formats it
func Debugf(sl *SubLogger, data string, v ...any) {
	sl.stage(logrus.DebugLevel, func() string { return fmt.Sprintf(data, v...) })
}

// Warn takes a pointer subLogger struct and string and logs it
func Warn(sl *SubLogger, data string) {
	sl.stage(logrus.WarnLevel, func() string { return data })
}

// Warnln takes a pointer subLogger struct and interface and logs it
func Warnln(sl *SubLogger, v ...any) {
	sl.stage(logrus.WarnLevel, func() string { return fmt.Sprint(v...) })
}

// Warnf takes a pointer subLogger struct, string and interface and formats it
func Warnf(sl *SubLogger, data string, v ...any) {
	sl.stage(logrus.WarnLevel, func() string { return fmt.Sprintf(data, v...) })
}

// Error takes a pointer subLogger struct and string and logs it
func Error(sl *SubLogger, data string) {
	sl.stage(logrus.ErrorLevel, func() string { return data })
}

// Errorln takes a pointer subLogger struct and interface and logs it
func Errorln(sl *SubLogger, v ...any) {
	sl.stage(logrus.ErrorLevel, func() string { return fmt.Sprint(v...) })
}

// Errorf takes a pointer subLogger struct, string and interface and formats it
func Errorf(sl *SubLogger, data string, v ...any) {
	sl.stage(logrus.ErrorLevel, func() string { return fmt.Sprintf(data, v...) })
}

// enabled checks if the log level is enabled
func (sl *SubLogger) enabled(level logrus.Level) bool {
	switch level {
	case logrus.InfoLevel:
		return sl.levels.Info
	case logrus.DebugLevel:
		return sl.levels.Debug
	case logrus.WarnLevel:
		return sl.levels.Warn
	case logrus.ErrorLevel:
		return sl.levels.Error
	}
	return false
}

// stage formats and writes a log event if the level is enabled. The message
// is only built once the level check has passed.
func (sl *SubLogger) stage(level logrus.Level, msg func() string) {
	if sl == nil {
		return
	}
	mu.RLock()
	defer mu.RUnlock()
	if !sl.enabled(level) {
		return
	}
	data := msg()
	if customLogHook != nil && customLogHook(level.String(), sl.name, data) {
		return
	}
	if sl.showName {
		sl.logger.WithField("sublogger", sl.name).Log(level, data)
		return
	}
	sl.logger.Log(level, data)
}

// Name returns the sub logger name
func (sl *SubLogger) Name() string {
	return sl.name
}

// Enabled reports whether the level string (INFO, DEBUG, WARN, ERROR) is
// enabled for this sub logger
func (sl *SubLogger) Enabled(level string) bool {
	mu.RLock()
	defer mu.RUnlock()
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return false
	}
	return sl.enabled(l)
}
