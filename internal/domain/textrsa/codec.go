package textrsa

import (
	"errors"
	"math/big"
	"strings"
)

// CodeSequence holds one integer code per message symbol.
type CodeSequence []int

// DefaultCodec uses DefaultSymbolTable.
var DefaultCodec = NewCodec(DefaultSymbolTable)

// Codec converts text to code sequences and back.
type Codec struct {
	table *SymbolTable
}

// NewCodec creates a Codec over table.
func NewCodec(table *SymbolTable) *Codec {
	return &Codec{table: table}
}

// Table returns the underlying symbol table.
func (c *Codec) Table() *SymbolTable {
	return c.table
}

// StringToCodes encodes every rune of text. The first unknown rune aborts with an
// *UnknownSymbolError carrying its rune position.
func (c *Codec) StringToCodes(text string) (CodeSequence, error) {
	codes := make(CodeSequence, 0, len(text))

	position := 0
	for _, r := range text {
		code, err := c.table.Encode(r)
		if err != nil {
			var symbolErr *UnknownSymbolError
			if errors.As(err, &symbolErr) {
				symbolErr.Position = position
			}
			return nil, err
		}
		codes = append(codes, code)
		position++
	}

	return codes, nil
}

// CodesToString decodes codes. Codes outside the alphabet range are wrapped back into
// it (see Wrap), so the result is always printable but not necessarily meaningful.
func (c *Codec) CodesToString(codes CodeSequence) string {
	var b strings.Builder
	b.Grow(len(codes))

	for _, code := range codes {
		symbol, ok := c.table.Decode(code)
		if !ok {
			symbol, _ = c.table.Decode(c.Wrap(code))
		}
		b.WriteRune(symbol)
	}

	return b.String()
}

// Wrap maps any code into [MinCode, MaxCode()] as ((code - MinCode) floormod N) + MinCode.
func (c *Codec) Wrap(code int) int {
	n := c.table.Size()
	// reduce before subtracting so codes near math.MinInt cannot overflow
	m := (code%n - MinCode%n + n) % n
	if m < 0 {
		m += n
	}
	return m + MinCode
}

// WrapBig applies Wrap to an arbitrary-precision value. Values already inside
// [MinCode, MaxCode()] are returned as is.
func (c *Codec) WrapBig(v *big.Int) *big.Int {
	lo, hi := big.NewInt(MinCode), big.NewInt(int64(c.table.MaxCode()))
	if v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0 {
		return v
	}
	m := new(big.Int).Sub(v, lo)
	m.Mod(m, big.NewInt(int64(c.table.Size())))
	return m.Add(m, lo)
}
