//go:build integration
// +build integration

package persistence

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/text-rsa/internal/domain/messages"
	"github.com/MGTheTrain/text-rsa/internal/pkg/config"
	"github.com/MGTheTrain/text-rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test constants
const (
	TestFingerprintA = "0123456789abcdef0123456789abcdef"
	TestFingerprintB = "fedcba9876543210fedcba9876543210"
)

// SetupTestRepository creates a message repository of dbType with automatic cleanup
func SetupTestRepository(t *testing.T, dbType string) messages.MessageRepository {
	t.Helper()

	var settings config.DatabaseSettings
	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
	case config.BoltDbType:
		settings = config.DatabaseSettings{
			Type: config.BoltDbType,
			DSN:  filepath.Join(t.TempDir(), "messages.db"),
		}
	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	log := testutil.SetupTestLogger(t)

	repo, closer, err := NewMessageRepository(settings, log)
	require.NoError(t, err, "Failed to create message repository")

	t.Cleanup(func() {
		_ = closer.Close()
	})

	return repo
}

// CreateTestMessage creates a valid message with symbolCount symbols
func CreateTestMessage(t *testing.T, fingerprint string, symbolCount int, created time.Time) *messages.Message {
	t.Helper()

	return &messages.Message{
		ID:                 uuid.NewString(),
		CipherText:         strings.Repeat("1#", symbolCount),
		SymbolCount:        symbolCount,
		ModulusFingerprint: fingerprint,
		DateTimeCreated:    created.UTC().Truncate(time.Millisecond),
	}
}
