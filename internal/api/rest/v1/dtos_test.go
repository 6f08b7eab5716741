//go:build unit
// +build unit

package v1

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyRequest_Validate(t *testing.T) {
	huge := "1" + strings.Repeat("0", 600)

	tests := []struct {
		name      string
		request   KeyRequest
		shouldErr bool
	}{
		{"valid", KeyRequest{Exponent: "17", Modulus: "3233"}, false},
		{"valid big modulus", KeyRequest{Exponent: "65537", Modulus: huge}, false},
		{"missing exponent", KeyRequest{Modulus: "3233"}, true},
		{"missing modulus", KeyRequest{Exponent: "17"}, true},
		{"negative", KeyRequest{Exponent: "-1", Modulus: "3233"}, true},
		{"signed", KeyRequest{Exponent: "+1", Modulus: "3233"}, true},
		{"fraction", KeyRequest{Exponent: "1.5", Modulus: "3233"}, true},
		{"whitespace", KeyRequest{Exponent: " 17", Modulus: "3233"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestEncryptRequest_ValidateEmbeddedKey(t *testing.T) {
	assert.NoError(t, (&EncryptRequest{Message: "", KeyRequest: KeyRequest{Exponent: "17", Modulus: "3233"}}).Validate())
	assert.Error(t, (&EncryptRequest{Message: "Hi!"}).Validate())
	assert.Error(t, (&DecryptRequest{CipherText: "1#", KeyRequest: KeyRequest{Exponent: "x", Modulus: "3233"}}).Validate())
}

func TestKeyRequest_Key(t *testing.T) {
	request := KeyRequest{Exponent: "2753", Modulus: "3233"}
	require.NoError(t, request.Validate())

	exponent, modulus := request.Key()
	assert.Equal(t, 0, exponent.Cmp(big.NewInt(2753)))
	assert.Equal(t, 0, modulus.Cmp(big.NewInt(3233)))
}
