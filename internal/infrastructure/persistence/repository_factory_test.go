//go:build unit
// +build unit

package persistence

import (
	"testing"

	"github.com/MGTheTrain/text-rsa/internal/pkg/config"
	"github.com/MGTheTrain/text-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
)

func TestNewMessageRepository_InvalidSettings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	tests := []struct {
		name     string
		settings config.DatabaseSettings
	}{
		{"missing type", config.DatabaseSettings{}},
		{"unknown type", config.DatabaseSettings{Type: "mysql", DSN: "root@/db"}},
		{"bolt without path", config.DatabaseSettings{Type: config.BoltDbType}},
		{"postgres without dsn", config.DatabaseSettings{Type: config.PostgresDbType}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, closer, err := NewMessageRepository(tt.settings, logger)
			assert.Error(t, err)
			assert.Nil(t, repo)
			assert.Nil(t, closer)
		})
	}
}
