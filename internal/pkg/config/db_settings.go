package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
	BoltDbType     = "bolt"
)

// DatabaseSettings selects the message store. DSN is a connection string for sqlite and
// postgres and a file path for bolt.
type DatabaseSettings struct {
	Type string `yaml:"type" validate:"required,oneof=sqlite postgres bolt"`
	DSN  string `yaml:"dsn"`
	Name string `yaml:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type != SqliteDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for database type %s", s.Type)
	}

	return nil
}
