//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyRequest struct {
	Bits     int    `validate:"rsaKeySize"`
	Exponent string `validate:"required,decimal"`
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		request   keyRequest
		shouldErr bool
	}{
		{"valid", keyRequest{Bits: 2048, Exponent: "65537"}, false},
		{"huge exponent", keyRequest{Bits: 512, Exponent: "123456789012345678901234567890"}, false},
		{"invalid key size", keyRequest{Bits: 1234, Exponent: "3"}, true},
		{"negative exponent", keyRequest{Bits: 1024, Exponent: "-3"}, true},
		{"hex exponent", keyRequest{Bits: 1024, Exponent: "0x10"}, true},
		{"missing exponent", keyRequest{Bits: 1024}, true},
	}

	validate := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	v, ok := ParseDecimal("3233")
	require.True(t, ok)
	assert.Equal(t, int64(3233), v.Int64())

	for _, s := range []string{"", "+1", "1e3", " 1"} {
		_, ok := ParseDecimal(s)
		assert.False(t, ok, s)
	}
}
