package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/text-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-rsa/internal/domain/textrsa"
	"github.com/MGTheTrain/text-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/text-rsa/internal/pkg/validators"
)

// rsaKeyProcessor struct that implements the RSAKeyProcessor interface
type rsaKeyProcessor struct {
	logger logger.Logger
}

// NewRSAKeyProcessor creates and returns a new instance of rsaKeyProcessor
func NewRSAKeyProcessor(logger logger.Logger) (cryptoalg.RSAKeyProcessor, error) {
	return &rsaKeyProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified bit size.
func (r *rsaKeyProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	if !validators.IsRSAKeySize(keySize) {
		return nil, nil, fmt.Errorf("unsupported RSA key size %d, expected one of %v", keySize, validators.RSAKeySizes)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	r.logger.Info("Generated RSA key pair with ", keySize, " bits")
	return privateKey, &privateKey.PublicKey, nil
}

// SavePrivateKeyToFile saves the RSA private key to a PEM-encoded file (PKCS#1 format).
func (r *rsaKeyProcessor) SavePrivateKeyToFile(privateKey *rsa.PrivateKey, filename string) error {
	if privateKey == nil {
		return fmt.Errorf("private key cannot be nil")
	}

	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}
	if err := writePEM(block, filename); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}

	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// SavePublicKeyToFile saves the RSA public key to a PEM-encoded file (PKIX format).
func (r *rsaKeyProcessor) SavePublicKeyToFile(publicKey *rsa.PublicKey, filename string) error {
	if publicKey == nil {
		return fmt.Errorf("public key cannot be nil")
	}

	pubKeyBytes, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("failed to marshal public key: %w", err)
	}

	block := &pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubKeyBytes,
	}
	if err := writePEM(block, filename); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}

	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

func writePEM(block *pem.Block, filename string) error {
	file, err := os.OpenFile(filepath.Clean(filename), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	if err := pem.Encode(file, block); err != nil {
		return fmt.Errorf("failed to encode key: %w", err)
	}
	return nil
}

func readPEM(path string) (*pem.Block, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("unable to read key file: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block in %s", path)
	}
	return block, nil
}

// ReadPrivateKey reads an RSA private key from a PEM-encoded file (PKCS#1 or PKCS#8).
func (r *rsaKeyProcessor) ReadPrivateKey(privateKeyPath string) (*rsa.PrivateKey, error) {
	block, err := readPEM(privateKeyPath)
	if err != nil {
		return nil, err
	}

	if privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return privateKey, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key in either PKCS#1 or PKCS#8 format: %w", err)
	}

	privateKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not of type RSA")
	}
	return privateKey, nil
}

// ReadPublicKey reads an RSA public key from a PEM-encoded file (PKCS#1 or PKIX).
func (r *rsaKeyProcessor) ReadPublicKey(publicKeyPath string) (*rsa.PublicKey, error) {
	block, err := readPEM(publicKeyPath)
	if err != nil {
		return nil, err
	}

	if publicKey, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return publicKey, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key in either PKCS#1 or PKIX format: %w", err)
	}

	publicKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is not of type RSA")
	}
	return publicKey, nil
}

// PublicToTextKey projects a standard RSA public key onto its (e, n) pair.
func PublicToTextKey(publicKey *rsa.PublicKey) textrsa.PublicKey {
	return textrsa.PublicKey{
		E: big.NewInt(int64(publicKey.E)),
		N: new(big.Int).Set(publicKey.N),
	}
}

// PrivateToTextKey projects a standard RSA private key onto its (d, n) pair.
func PrivateToTextKey(privateKey *rsa.PrivateKey) textrsa.PrivateKey {
	return textrsa.PrivateKey{
		D: new(big.Int).Set(privateKey.D),
		N: new(big.Int).Set(privateKey.N),
	}
}
