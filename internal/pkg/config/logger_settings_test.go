//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettings_Validate(t *testing.T) {
	tests := []struct {
		name      string
		settings  LoggerSettings
		shouldErr bool
	}{
		{"console", LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole}, false},
		{"critical level", LoggerSettings{LogLevel: LogLevelCritical, LogType: LogTypeConsole}, false},
		{"file without rotation", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "text-rsa.log"}, false},
		{"file with rotation", LoggerSettings{LogLevel: LogLevelWarning, LogType: LogTypeFile, FilePath: "text-rsa.log", MaxSize: 100, MaxBackups: 10, MaxAge: 365}, false},
		{"file without path", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile}, true},
		{"max size above limit", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "a.log", MaxSize: 101}, true},
		{"negative backups", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "a.log", MaxBackups: -1}, true},
		{"unknown level", LoggerSettings{LogLevel: "verbose", LogType: LogTypeConsole}, true},
		{"unknown type", LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, true},
		{"empty", LoggerSettings{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerSettings_ApplyDefaults(t *testing.T) {
	file := LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "a.log", MaxBackups: 7}
	file.applyDefaults()
	assert.Equal(t, DefaultLogMaxSize, file.MaxSize)
	assert.Equal(t, 7, file.MaxBackups)
	assert.Equal(t, DefaultLogMaxAge, file.MaxAge)

	console := LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole}
	console.applyDefaults()
	assert.Zero(t, console.MaxSize)
}
