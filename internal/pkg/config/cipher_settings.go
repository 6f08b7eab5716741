package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Cipher defaults
const (
	DefaultCipherWorkers    = 4
	DefaultMaxMessageLength = 65536
)

// CipherSettings tunes the text cipher: how many exponentiations run in parallel and how
// many symbols a single message may have.
type CipherSettings struct {
	Workers          int `yaml:"workers" validate:"min=1,max=256"`
	MaxMessageLength int `yaml:"max_message_length" validate:"min=1,max=1000000"`
}

// DefaultCipherSettings returns the settings used when none are configured.
func DefaultCipherSettings() CipherSettings {
	return CipherSettings{
		Workers:          DefaultCipherWorkers,
		MaxMessageLength: DefaultMaxMessageLength,
	}
}

func (s *CipherSettings) applyDefaults() {
	if s.Workers == 0 {
		s.Workers = DefaultCipherWorkers
	}
	if s.MaxMessageLength == 0 {
		s.MaxMessageLength = DefaultMaxMessageLength
	}
}

// Validate checks that all fields in CipherSettings are valid
func (s *CipherSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for CipherSettings: %w", err)
	}
	return nil
}
