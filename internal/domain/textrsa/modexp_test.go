//go:build unit
// +build unit

package textrsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModExp(t *testing.T) {
	tests := []struct {
		name                    string
		base, exponent, modulus int64
		want                    int64
	}{
		{"textbook", 4, 13, 497, 445},
		{"zero exponent", 7, 0, 13, 1},
		{"modulus one", 7, 5, 1, 0},
		{"zero exponent modulus one", 7, 0, 1, 0},
		{"zero base", 0, 5, 13, 0},
		{"base above modulus", 20, 3, 7, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModExp(big.NewInt(tt.base), big.NewInt(tt.exponent), big.NewInt(tt.modulus))
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(big.NewInt(tt.want)), "got %s", got)
		})
	}
}

func TestModExp_LargeExponent(t *testing.T) {
	// 2^(2^200) mod a prime finishes only with square-and-multiply
	exponent := new(big.Int).Lsh(big.NewInt(1), 200)
	modulus := big.NewInt(1000000007)

	got, err := ModExp(big.NewInt(2), exponent, modulus)
	require.NoError(t, err)

	want := big.NewInt(2)
	for i := 0; i < 200; i++ {
		want.Mul(want, want).Mod(want, modulus)
	}
	assert.Equal(t, 0, got.Cmp(want))
}

func TestModExp_DoesNotMutateInputs(t *testing.T) {
	base, exponent, modulus := big.NewInt(4), big.NewInt(13), big.NewInt(497)

	_, err := ModExp(base, exponent, modulus)
	require.NoError(t, err)

	assert.Equal(t, int64(4), base.Int64())
	assert.Equal(t, int64(13), exponent.Int64())
	assert.Equal(t, int64(497), modulus.Int64())
}

func TestModExp_InvalidInput(t *testing.T) {
	_, err := ModExp(big.NewInt(2), big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidModulus)

	_, err = ModExp(big.NewInt(2), big.NewInt(3), nil)
	assert.ErrorIs(t, err, ErrInvalidModulus)

	_, err = ModExp(big.NewInt(2), big.NewInt(-3), big.NewInt(7))
	assert.ErrorIs(t, err, ErrInvalidExponent)

	_, err = ModExp(big.NewInt(-2), big.NewInt(3), big.NewInt(7))
	assert.ErrorIs(t, err, ErrNegativeBase)
}

func TestModExpVector(t *testing.T) {
	bases := BigIntSequence{big.NewInt(35), big.NewInt(10), big.NewInt(68)}

	got, err := ModExpVector(bases, big.NewInt(17), big.NewInt(3233))
	require.NoError(t, err)
	assert.Equal(t, "921#1096#1759#", Serialize(got))

	empty, err := ModExpVector(BigIntSequence{}, big.NewInt(17), big.NewInt(3233))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestModExpVectorConcurrent_MatchesSequential(t *testing.T) {
	bases := make(BigIntSequence, 500)
	for i := range bases {
		bases[i] = big.NewInt(int64(i%92 + 2))
	}
	exponent, modulus := big.NewInt(65537), big.NewInt(3233)

	sequential, err := ModExpVector(bases, exponent, modulus)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 2, 8, 1000} {
		concurrent, err := ModExpVectorConcurrent(bases, exponent, modulus, workers)
		require.NoError(t, err)
		assert.Equal(t, Serialize(sequential), Serialize(concurrent), "workers=%d", workers)
	}
}

func TestModExpVectorConcurrent_InvalidBase(t *testing.T) {
	bases := BigIntSequence{big.NewInt(2), big.NewInt(-1), big.NewInt(3)}

	_, err := ModExpVectorConcurrent(bases, big.NewInt(3), big.NewInt(7), 4)
	assert.ErrorIs(t, err, ErrNegativeBase)
}
