// Package logging owns the process-wide arbor logger.
package logging

import (
	"sync"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
)

var (
	globalLogger arbor.ILogger
	loggerMutex  sync.RWMutex
)

func consoleWriter() models.WriterConfiguration {
	return models.WriterConfiguration{
		Type:       models.LogWriterTypeConsole,
		TimeFormat: "15:04:05",
		OutputType: models.OutputFormatLogfmt,
	}
}

// GetLogger returns the global logger, creating a console logger on first use.
func GetLogger() arbor.ILogger {
	loggerMutex.RLock()
	if globalLogger != nil {
		loggerMutex.RUnlock()
		return globalLogger
	}
	loggerMutex.RUnlock()

	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	if globalLogger == nil {
		globalLogger = arbor.NewLogger().WithConsoleWriter(consoleWriter())
	}
	return globalLogger
}

// InitLogger builds the console logger at the given level and stores it as
// the global logger.
func InitLogger(level string) arbor.ILogger {
	if level == "" {
		level = "info"
	}
	logger := arbor.NewLogger().
		WithConsoleWriter(consoleWriter()).
		WithLevelFromString(level)

	loggerMutex.Lock()
	globalLogger = logger
	loggerMutex.Unlock()
	return logger
}

// OrDefault returns l, or the global logger when l is nil.
func OrDefault(l arbor.ILogger) arbor.ILogger {
	if l != nil {
		return l
	}
	return GetLogger()
}
