//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/text-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-rsa/internal/domain/textrsa"
	"github.com/MGTheTrain/text-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestKeySize1024 = 1024
)

func setupRSAKeyProcessor(t *testing.T) cryptoalg.RSAKeyProcessor {
	t.Helper()
	processor, err := NewRSAKeyProcessor(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return processor
}

func TestRSAKeyProcessor(t *testing.T) {
	processor := setupRSAKeyProcessor(t)

	t.Run("GenerateKeys", func(t *testing.T) {
		privateKey, publicKey, err := processor.GenerateKeys(TestKeySize1024)
		require.NoError(t, err)
		assert.Equal(t, TestKeySize1024, privateKey.N.BitLen())
		assert.Equal(t, privateKey.N, publicKey.N)
	})

	t.Run("GenerateKeysUnsupportedSize", func(t *testing.T) {
		_, _, err := processor.GenerateKeys(1000)
		assert.Error(t, err)
	})

	t.Run("SaveAndReadKeys", func(t *testing.T) {
		tmpDir := t.TempDir()
		privFile := filepath.Join(tmpDir, "private.pem")
		pubFile := filepath.Join(tmpDir, "public.pem")

		privateKey, publicKey, err := processor.GenerateKeys(TestKeySize1024)
		require.NoError(t, err)

		require.NoError(t, processor.SavePrivateKeyToFile(privateKey, privFile))
		require.NoError(t, processor.SavePublicKeyToFile(publicKey, pubFile))

		info, err := os.Stat(privFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		readPriv, err := processor.ReadPrivateKey(privFile)
		require.NoError(t, err)
		assert.Equal(t, 0, privateKey.D.Cmp(readPriv.D))
		assert.Equal(t, 0, privateKey.N.Cmp(readPriv.N))

		readPub, err := processor.ReadPublicKey(pubFile)
		require.NoError(t, err)
		assert.Equal(t, publicKey.E, readPub.E)
		assert.Equal(t, 0, publicKey.N.Cmp(readPub.N))
	})

	t.Run("SaveInvalidPath", func(t *testing.T) {
		privateKey, publicKey, err := processor.GenerateKeys(TestKeySize1024)
		require.NoError(t, err)

		assert.Error(t, processor.SavePrivateKeyToFile(privateKey, "/invalid/path/private.pem"))
		assert.Error(t, processor.SavePublicKeyToFile(publicKey, "/invalid/path/public.pem"))
		assert.Error(t, processor.SavePrivateKeyToFile(nil, filepath.Join(t.TempDir(), "nil.pem")))
	})

	t.Run("ReadInvalidFiles", func(t *testing.T) {
		garbage := testutil.WriteTempFile(t, "garbage.pem", []byte("not a pem file"))

		_, err := processor.ReadPrivateKey(garbage)
		assert.Error(t, err)
		_, err = processor.ReadPublicKey(garbage)
		assert.Error(t, err)
		_, err = processor.ReadPublicKey(filepath.Join(t.TempDir(), "missing.pem"))
		assert.Error(t, err)
	})
}

func TestTextKeysRoundTrip(t *testing.T) {
	processor := setupRSAKeyProcessor(t)

	privateKey, publicKey, err := processor.GenerateKeys(TestKeySize1024)
	require.NoError(t, err)

	public := PublicToTextKey(publicKey)
	private := PrivateToTextKey(privateKey)
	assert.Equal(t, 0, public.E.Cmp(big.NewInt(int64(publicKey.E))))
	assert.Equal(t, 0, public.N.Cmp(private.N))

	cipher := textrsa.NewCipher()
	cipherText, err := cipher.EncryptWithPublicKey("pem keys work too", public)
	require.NoError(t, err)

	message, err := cipher.DecryptWithPrivateKey(cipherText, private)
	require.NoError(t, err)
	assert.Equal(t, "pem keys work too", message)
}

func TestModulusFingerprint(t *testing.T) {
	a := ModulusFingerprint(big.NewInt(3233))
	b := ModulusFingerprint(big.NewInt(3233))
	c := ModulusFingerprint(big.NewInt(3127))

	assert.Len(t, a, 32)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "", ModulusFingerprint(nil))
}
