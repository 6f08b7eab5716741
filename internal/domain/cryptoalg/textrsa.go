package cryptoalg

import (
	"context"
	"errors"
	"math/big"

	"github.com/MGTheTrain/text-rsa/internal/domain/textrsa"
)

// ErrMessageTooLong is returned when a message exceeds the configured symbol limit.
var ErrMessageTooLong = errors.New("message too long")

// TextRSAProcessor encrypts and decrypts text with textbook RSA.
// Which exponent is "public" is a convention of the caller; both directions reduce to the
// same two operations.
type TextRSAProcessor interface {
	// Encrypt maps message to codes, exponentiates them and returns the '#'-delimited cipher text.
	Encrypt(ctx context.Context, message string, exponent, modulus *big.Int) (string, error)

	// Decrypt reverses Encrypt. A wrong key yields a wrong but printable message, not an error.
	Decrypt(ctx context.Context, cipherText string, exponent, modulus *big.Int) (string, error)

	// EncryptWithPublicKey encrypts message with the public exponent e and modulus n.
	EncryptWithPublicKey(ctx context.Context, message string, key textrsa.PublicKey) (string, error)

	// EncryptWithPrivateKey encrypts message with the private exponent d and modulus n.
	EncryptWithPrivateKey(ctx context.Context, message string, key textrsa.PrivateKey) (string, error)

	// DecryptWithPublicKey decrypts cipherText with e and n, reversing EncryptWithPrivateKey.
	DecryptWithPublicKey(ctx context.Context, cipherText string, key textrsa.PublicKey) (string, error)

	// DecryptWithPrivateKey decrypts cipherText with d and n, reversing EncryptWithPublicKey.
	DecryptWithPrivateKey(ctx context.Context, cipherText string, key textrsa.PrivateKey) (string, error)
}
