package cryptography

import (
	"encoding/hex"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// fingerprintSize is the number of SHA3-256 bytes kept in a fingerprint.
const fingerprintSize = 16

// ModulusFingerprint identifies a modulus without storing it: the first 16 bytes of the
// SHA3-256 digest of its big-endian bytes, hex encoded.
func ModulusFingerprint(modulus *big.Int) string {
	if modulus == nil {
		return ""
	}
	digest := sha3.Sum256(modulus.Bytes())
	return hex.EncodeToString(digest[:fingerprintSize])
}
