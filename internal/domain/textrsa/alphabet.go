package textrsa

import "errors"

// Symbols is the reference alphabet. Its order defines the codes and must not change.
// Note that '-' occurs twice and '0' is absent; both quirks are kept for compatibility
// with existing cipher texts.
const Symbols = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ123456789 .,_-!?'<>:;@$&%#|()[]{}=+-*/\t\n"

// MinCode is the code of the first alphabet symbol. 0 and 1 are never used as codes
// since they are fixed points of modular exponentiation.
const MinCode = 2

// DefaultSymbolTable is built once from Symbols and is safe for concurrent use.
var DefaultSymbolTable = mustSymbolTable(Symbols)

// SymbolTable maps alphabet symbols to codes in [MinCode, MaxCode()] and back.
// It is immutable after construction.
type SymbolTable struct {
	symbols []rune
	codes   map[rune]int
}

// NewSymbolTable builds a table from an ordered alphabet. A symbol occurring more than
// once decodes from every position but encodes to its last position.
func NewSymbolTable(alphabet string) (*SymbolTable, error) {
	if alphabet == "" {
		return nil, errors.New("alphabet must not be empty")
	}

	table := &SymbolTable{
		symbols: []rune(alphabet),
		codes:   make(map[rune]int),
	}
	for i, r := range table.symbols {
		table.codes[r] = i + MinCode
	}

	return table, nil
}

func mustSymbolTable(alphabet string) *SymbolTable {
	table, err := NewSymbolTable(alphabet)
	if err != nil {
		panic(err)
	}
	return table
}

// Size returns the number of alphabet positions N.
func (t *SymbolTable) Size() int {
	return len(t.symbols)
}

// MaxCode returns the highest valid code, N+1.
func (t *SymbolTable) MaxCode() int {
	return len(t.symbols) + MinCode - 1
}

// Encode returns the code of symbol.
func (t *SymbolTable) Encode(symbol rune) (int, error) {
	code, ok := t.codes[symbol]
	if !ok {
		return 0, &UnknownSymbolError{Symbol: symbol, Position: -1}
	}
	return code, nil
}

// Decode returns the symbol for a code in [MinCode, MaxCode()].
func (t *SymbolTable) Decode(code int) (rune, bool) {
	if code < MinCode || code > t.MaxCode() {
		return 0, false
	}
	return t.symbols[code-MinCode], true
}
