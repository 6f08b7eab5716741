package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log levels. Critical is accepted for compatibility and logged as error.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation defaults applied to file loggers loaded from YAML
const (
	DefaultLogMaxSize    = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28
)

// LoggerSettings selects the log sink and level. Rotation fields only apply to file
// loggers; sizes are in megabytes and ages in days.
type LoggerSettings struct {
	LogLevel   string `yaml:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `yaml:"log_type" validate:"required,oneof=console file"`
	FilePath   string `yaml:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `yaml:"max_size" validate:"omitempty,min=1,max=100"`
	MaxBackups int    `yaml:"max_backups" validate:"omitempty,min=1,max=10"`
	MaxAge     int    `yaml:"max_age" validate:"omitempty,min=1,max=365"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	return nil
}

func (s *LoggerSettings) applyDefaults() {
	if s.LogType != LogTypeFile {
		return
	}
	if s.MaxSize == 0 {
		s.MaxSize = DefaultLogMaxSize
	}
	if s.MaxBackups == 0 {
		s.MaxBackups = DefaultLogMaxBackups
	}
	if s.MaxAge == 0 {
		s.MaxAge = DefaultLogMaxAge
	}
}
