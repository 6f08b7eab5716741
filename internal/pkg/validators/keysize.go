// Package validators contains custom go-playground validation functions.
package validators

import (
	"github.com/go-playground/validator/v10"
)

// RSAKeySizes lists the modulus sizes accepted for generated key pairs.
var RSAKeySizes = []int{512, 1024, 2048, 3072, 4096}

// KeySizeValidation validates an RSA modulus size in bits. It is registered as "rsaKeySize".
func KeySizeValidation(fl validator.FieldLevel) bool {
	return IsRSAKeySize(int(fl.Field().Int()))
}

// IsRSAKeySize reports whether bits is one of RSAKeySizes.
func IsRSAKeySize(bits int) bool {
	for _, size := range RSAKeySizes {
		if bits == size {
			return true
		}
	}
	return false
}
