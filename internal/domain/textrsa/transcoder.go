package textrsa

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Delimiter terminates every value in a cipher text.
const Delimiter = "#"

var (
	maxCode = big.NewInt(math.MaxInt)
	minCode = big.NewInt(math.MinInt)
)

// ToBigInts widens codes to arbitrary-precision values.
func ToBigInts(codes CodeSequence) BigIntSequence {
	out := make(BigIntSequence, len(codes))
	for i, code := range codes {
		out[i] = big.NewInt(int64(code))
	}
	return out
}

// ToCodes narrows values to int codes. A nil value fails with ErrNegativeBase. A value
// outside the int range is rejected with a *CodeOverflowError rather than truncated.
// Values inside the int range but outside the alphabet are left for the codec to wrap.
func ToCodes(values BigIntSequence) (CodeSequence, error) {
	out := make(CodeSequence, len(values))
	for i, v := range values {
		if v == nil {
			return nil, fmt.Errorf("value at index %d is nil: %w", i, ErrNegativeBase)
		}
		if v.Cmp(maxCode) > 0 || v.Cmp(minCode) < 0 {
			return nil, &CodeOverflowError{Index: i, BitLen: v.BitLen()}
		}
		out[i] = int(v.Int64())
	}
	return out, nil
}

// Serialize writes the decimal form of every value followed by Delimiter.
// An empty sequence serializes to the empty string.
func Serialize(values BigIntSequence) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(v.String())
		b.WriteString(Delimiter)
	}
	return b.String()
}

// Deserialize parses a cipher text produced by Serialize. The trailing delimiter is
// optional on the last value. Empty segments, signs and any non-digit byte are rejected.
func Deserialize(text string) (BigIntSequence, error) {
	if text == "" {
		return BigIntSequence{}, nil
	}

	segments := strings.Split(text, Delimiter)
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	out := make(BigIntSequence, len(segments))
	for i, segment := range segments {
		if !isDecimal(segment) {
			return nil, &MalformedCipherTextError{Segment: segment, Index: i}
		}
		v, ok := new(big.Int).SetString(segment, 10)
		if !ok {
			return nil, &MalformedCipherTextError{Segment: segment, Index: i}
		}
		out[i] = v
	}

	return out, nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
