//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
				Name: "messages",
			},
			expectedError: false,
		},
		{
			name: "sqlite defaults to in-memory",
			settings: &DatabaseSettings{
				Type: SqliteDbType,
			},
			expectedError: false,
		},
		{
			name: "valid bolt settings",
			settings: &DatabaseSettings{
				Type: BoltDbType,
				DSN:  "/var/lib/text-rsa/messages.db",
			},
			expectedError: false,
		},
		{
			name: "bolt without path",
			settings: &DatabaseSettings{
				Type: BoltDbType,
			},
			expectedError: true,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN: "file.db",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mysql",
				DSN:  "user:password@tcp(localhost:3306)/dbname",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
