package logger

import (
	"fmt"
	"os"
	"sync"

	"github.com/MGTheTrain/text-rsa/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// sinks builds a Logger per config.LogType value.
var sinks = map[string]func(c *config.LoggerSettings) Logger{
	config.LogTypeConsole: func(c *config.LoggerSettings) Logger {
		return NewConsoleLogger(os.Stdout, c.LogLevel)
	},
	config.LogTypeFile: func(c *config.LoggerSettings) Logger {
		return NewFileLogger(c.LogLevel, c.FilePath, c.MaxSize, c.MaxBackups, c.MaxAge)
	},
}

// InitLogger initializes the process-wide logger once. Later calls return the first
// result and ignore their settings.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = NewLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the logger set up by InitLogger.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

// NewLogger builds a standalone logger from settings.
func NewLogger(c *config.LoggerSettings) (Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	build, ok := sinks[c.LogType]
	if !ok {
		return nil, fmt.Errorf("unsupported log type: %s", c.LogType)
	}
	return build(c), nil
}
