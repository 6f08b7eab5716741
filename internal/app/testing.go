//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/text-rsa/internal/domain/messages"
	"github.com/MGTheTrain/text-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/text-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/text-rsa/internal/pkg/config"
	"github.com/MGTheTrain/text-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services for testing
type TestServices struct {
	MessageEncryptService  messages.MessageEncryptService
	MessageDecryptService  messages.MessageDecryptService
	MessageMetadataService messages.MessageMetadataService
}

// SetupTestServices wires the message services against a fresh repository of dbType
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	repo := persistence.SetupTestRepository(t, dbType)

	textRSA, err := cryptography.NewTextRSAProcessor(config.DefaultCipherSettings(), logger)
	require.NoError(t, err, "Failed to create text RSA processor")

	encryptService, err := NewMessageEncryptService(repo, textRSA, logger)
	require.NoError(t, err, "Failed to create message encrypt service")

	decryptService, err := NewMessageDecryptService(repo, textRSA, logger)
	require.NoError(t, err, "Failed to create message decrypt service")

	metadataService, err := NewMessageMetadataService(repo, logger)
	require.NoError(t, err, "Failed to create message metadata service")

	return &TestServices{
		MessageEncryptService:  encryptService,
		MessageDecryptService:  decryptService,
		MessageMetadataService: metadataService,
	}
}
