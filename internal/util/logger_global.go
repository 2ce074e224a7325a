package util

import (
	"sync"
)

var (
	globalLogger LoggerInterface
	loggerOnce   sync.Once
)

// InitLogger sets up the global logger once. Later calls are no-ops.
func InitLogger(logLevel, logFile string, debugToConsole bool) error {
	var err error
	loggerOnce.Do(func() {
		var logger *Logger
		logger, err = NewLogger(logLevel, logFile, debugToConsole)
		if err == nil {
			globalLogger = logger
		}
	})
	return err
}

// SetLogger replaces the global logger, mainly for tests
func SetLogger(logger LoggerInterface) {
	globalLogger = logger
}

// CloseLogger closes the global logger's outputs and clears it so a later
// InitLogger starts afresh. It is a no-op before InitLogger.
func CloseLogger() error {
	logger := globalLogger
	globalLogger = nil
	loggerOnce = sync.Once{}
	if logger == nil {
		return nil
	}
	return logger.Close()
}

// GetLogger returns the global logger, or nil before InitLogger
func GetLogger() LoggerInterface {
	return globalLogger
}

func LogInfo(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Info(msg, fields...)
	}
}

func LogInfof(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Infof(format, args...)
	}
}

func LogDebug(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Debug(msg, fields...)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Debugf(format, args...)
	}
}

func LogWarn(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Warn(msg, fields...)
	}
}

func LogWarnf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Warnf(format, args...)
	}
}

func LogError(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Error(msg, fields...)
	}
}

func LogErrorf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	}
}
