package textrsa

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol is returned when a message contains a symbol outside the alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrMalformedCipherText is returned when a cipher text segment is not a non-negative decimal integer.
	ErrMalformedCipherText = errors.New("malformed cipher text")

	// ErrCodeOverflow is returned when a decrypted value does not fit into a machine integer code.
	ErrCodeOverflow = errors.New("code overflow")

	// ErrInvalidModulus is returned for a nil or non-positive modulus.
	ErrInvalidModulus = errors.New("modulus must be a positive integer")

	// ErrInvalidExponent is returned for a nil or negative exponent.
	ErrInvalidExponent = errors.New("exponent must be a non-negative integer")

	// ErrNegativeBase is returned for a nil or negative base.
	ErrNegativeBase = errors.New("base must be a non-negative integer")
)

// UnknownSymbolError reports the offending symbol and its rune position in the message.
type UnknownSymbolError struct {
	Symbol   rune
	Position int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrUnknownSymbol, e.Symbol, e.Position)
}

func (e *UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}

// MalformedCipherTextError reports the first segment that could not be parsed.
type MalformedCipherTextError struct {
	Segment string
	Index   int
}

func (e *MalformedCipherTextError) Error() string {
	return fmt.Sprintf("%s: segment %d (%q) is not a non-negative decimal integer", ErrMalformedCipherText, e.Index, e.Segment)
}

func (e *MalformedCipherTextError) Unwrap() error {
	return ErrMalformedCipherText
}

// CodeOverflowError reports a value that cannot be narrowed to an int code.
type CodeOverflowError struct {
	Index  int
	BitLen int
}

func (e *CodeOverflowError) Error() string {
	return fmt.Sprintf("%s: value at index %d has %d bits", ErrCodeOverflow, e.Index, e.BitLen)
}

func (e *CodeOverflowError) Unwrap() error {
	return ErrCodeOverflow
}
