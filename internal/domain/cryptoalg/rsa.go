package cryptoalg

import "crypto/rsa"

// RSAKeyProcessor generates and persists standard RSA key pairs. The textbook cipher only
// consumes their (e, n) and (d, n) components.
type RSAKeyProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// SavePrivateKeyToFile saves the RSA private key to a PEM-encoded file (PKCS#1 format).
	SavePrivateKeyToFile(privateKey *rsa.PrivateKey, filename string) error

	// SavePublicKeyToFile saves the RSA public key to a PEM-encoded file (PKIX format).
	SavePublicKeyToFile(publicKey *rsa.PublicKey, filename string) error

	// ReadPrivateKey reads an RSA private key from a PEM-encoded file (PKCS#1 or PKCS#8).
	ReadPrivateKey(privateKeyPath string) (*rsa.PrivateKey, error)

	// ReadPublicKey reads an RSA public key from a PEM-encoded file (PKCS#1 or PKIX).
	ReadPublicKey(publicKeyPath string) (*rsa.PublicKey, error)
}
