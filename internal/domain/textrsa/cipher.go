package textrsa

import (
	"fmt"
	"math/big"
)

// PublicKey is the (e, n) half of a key pair.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// Validate checks the sign constraints the cipher relies on. Primality and coprimality
// are the caller's concern.
func (k PublicKey) Validate() error {
	return checkKey(k.E, k.N)
}

// PrivateKey is the (d, n) half of a key pair.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// Validate checks the sign constraints the cipher relies on.
func (k PrivateKey) Validate() error {
	return checkKey(k.D, k.N)
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithCodec replaces DefaultCodec.
func WithCodec(codec *Codec) Option {
	return func(c *Cipher) {
		c.codec = codec
	}
}

// WithWorkers sets how many exponentiations may run concurrently. Values below 2
// keep the computation on the calling goroutine.
func WithWorkers(workers int) Option {
	return func(c *Cipher) {
		c.workers = workers
	}
}

// Cipher chains Codec, Transcoder and ModExp. It holds no mutable state and is safe for
// concurrent use.
type Cipher struct {
	codec   *Codec
	workers int
}

// NewCipher returns a Cipher using DefaultCodec unless overridden.
func NewCipher(opts ...Option) *Cipher {
	c := &Cipher{
		codec:   DefaultCodec,
		workers: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt encodes message, raises every code to exponent mod modulus and serializes the result.
func (c *Cipher) Encrypt(message string, exponent, modulus *big.Int) (string, error) {
	codes, err := c.codec.StringToCodes(message)
	if err != nil {
		return "", fmt.Errorf("failed to encode message: %w", err)
	}

	values, err := c.exp(ToBigInts(codes), exponent, modulus)
	if err != nil {
		return "", fmt.Errorf("failed to exponentiate codes: %w", err)
	}

	return Serialize(values), nil
}

// Decrypt parses cipherText, raises every value to exponent mod modulus and decodes the
// codes. A wrong key is not detected: out-of-range values of any size are wrapped into
// the alphabet before narrowing.
func (c *Cipher) Decrypt(cipherText string, exponent, modulus *big.Int) (string, error) {
	values, err := Deserialize(cipherText)
	if err != nil {
		return "", fmt.Errorf("failed to parse cipher text: %w", err)
	}

	values, err = c.exp(values, exponent, modulus)
	if err != nil {
		return "", fmt.Errorf("failed to exponentiate cipher text: %w", err)
	}

	for i, v := range values {
		values[i] = c.codec.WrapBig(v)
	}

	codes, err := ToCodes(values)
	if err != nil {
		return "", fmt.Errorf("failed to narrow decrypted values: %w", err)
	}

	return c.codec.CodesToString(codes), nil
}

// EncryptWithPublicKey encrypts message with (e, n).
func (c *Cipher) EncryptWithPublicKey(message string, key PublicKey) (string, error) {
	return c.Encrypt(message, key.E, key.N)
}

// EncryptWithPrivateKey encrypts message with (d, n).
func (c *Cipher) EncryptWithPrivateKey(message string, key PrivateKey) (string, error) {
	return c.Encrypt(message, key.D, key.N)
}

// DecryptWithPublicKey decrypts cipherText with (e, n).
func (c *Cipher) DecryptWithPublicKey(cipherText string, key PublicKey) (string, error) {
	return c.Decrypt(cipherText, key.E, key.N)
}

// DecryptWithPrivateKey decrypts cipherText with (d, n).
func (c *Cipher) DecryptWithPrivateKey(cipherText string, key PrivateKey) (string, error) {
	return c.Decrypt(cipherText, key.D, key.N)
}

func (c *Cipher) exp(values BigIntSequence, exponent, modulus *big.Int) (BigIntSequence, error) {
	return ModExpVectorConcurrent(values, exponent, modulus, c.workers)
}
