package cryptography

import (
	"context"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/MGTheTrain/text-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-rsa/internal/domain/textrsa"
	"github.com/MGTheTrain/text-rsa/internal/pkg/config"
	"github.com/MGTheTrain/text-rsa/internal/pkg/logger"
)

// textRSAProcessor struct that implements the TextRSAProcessor interface
type textRSAProcessor struct {
	cipher   *textrsa.Cipher
	settings config.CipherSettings
	logger   logger.Logger
}

// NewTextRSAProcessor creates a processor exponentiating with settings.Workers goroutines.
func NewTextRSAProcessor(settings config.CipherSettings, logger logger.Logger) (cryptoalg.TextRSAProcessor, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cipher settings: %w", err)
	}

	return &textRSAProcessor{
		cipher:   textrsa.NewCipher(textrsa.WithWorkers(settings.Workers)),
		settings: settings,
		logger:   logger,
	}, nil
}

// Encrypt encrypts message with (exponent, modulus).
func (p *textRSAProcessor) Encrypt(ctx context.Context, message string, exponent, modulus *big.Int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	length := utf8.RuneCountInString(message)
	if length > p.settings.MaxMessageLength {
		return "", fmt.Errorf("%w: %d symbols, limit is %d", cryptoalg.ErrMessageTooLong, length, p.settings.MaxMessageLength)
	}

	p.logger.Debug("Encrypting ", length, " symbols with a ", bitLen(modulus), " bit modulus")
	cipherText, err := p.cipher.Encrypt(message, exponent, modulus)
	if err != nil {
		return "", err
	}

	p.logger.Info("Text RSA encryption succeeded")
	return cipherText, nil
}

// Decrypt decrypts cipherText with (exponent, modulus).
func (p *textRSAProcessor) Decrypt(ctx context.Context, cipherText string, exponent, modulus *big.Int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.logger.Debug("Decrypting ", len(cipherText), " bytes of cipher text with a ", bitLen(modulus), " bit modulus")
	message, err := p.cipher.Decrypt(cipherText, exponent, modulus)
	if err != nil {
		return "", err
	}

	p.logger.Info("Text RSA decryption succeeded")
	return message, nil
}

// EncryptWithPublicKey encrypts message with (e, n).
func (p *textRSAProcessor) EncryptWithPublicKey(ctx context.Context, message string, key textrsa.PublicKey) (string, error) {
	return p.Encrypt(ctx, message, key.E, key.N)
}

// EncryptWithPrivateKey encrypts message with (d, n).
func (p *textRSAProcessor) EncryptWithPrivateKey(ctx context.Context, message string, key textrsa.PrivateKey) (string, error) {
	return p.Encrypt(ctx, message, key.D, key.N)
}

// DecryptWithPublicKey decrypts cipherText with (e, n).
func (p *textRSAProcessor) DecryptWithPublicKey(ctx context.Context, cipherText string, key textrsa.PublicKey) (string, error) {
	return p.Decrypt(ctx, cipherText, key.E, key.N)
}

// DecryptWithPrivateKey decrypts cipherText with (d, n).
func (p *textRSAProcessor) DecryptWithPrivateKey(ctx context.Context, cipherText string, key textrsa.PrivateKey) (string, error) {
	return p.Decrypt(ctx, cipherText, key.D, key.N)
}

func bitLen(v *big.Int) int {
	if v == nil {
		return 0
	}
	return v.BitLen()
}
