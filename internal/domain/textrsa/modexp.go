package textrsa

import (
	"math/big"

	"golang.org/x/sync/errgroup"
)

// BigIntSequence holds arbitrary-precision values, one per code or cipher text block.
type BigIntSequence []*big.Int

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// ModExp returns base^exponent mod modulus using square-and-multiply, so the cost grows
// with the bit length of exponent rather than its value. None of the arguments is modified.
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if err := checkKey(exponent, modulus); err != nil {
		return nil, err
	}
	if base == nil || base.Sign() < 0 {
		return nil, ErrNegativeBase
	}

	return modExp(base, exponent, modulus), nil
}

func modExp(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Cmp(bigOne) == 0 {
		return new(big.Int)
	}
	if exponent.Sign() == 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(base, exponent, modulus)
}

func checkKey(exponent, modulus *big.Int) error {
	if modulus == nil || modulus.Cmp(bigZero) <= 0 {
		return ErrInvalidModulus
	}
	if exponent == nil || exponent.Sign() < 0 {
		return ErrInvalidExponent
	}
	return nil
}

func checkBases(bases BigIntSequence) error {
	for _, base := range bases {
		if base == nil || base.Sign() < 0 {
			return ErrNegativeBase
		}
	}
	return nil
}

// ModExpVector applies ModExp to every element of bases, preserving order.
func ModExpVector(bases BigIntSequence, exponent, modulus *big.Int) (BigIntSequence, error) {
	if err := checkKey(exponent, modulus); err != nil {
		return nil, err
	}
	if err := checkBases(bases); err != nil {
		return nil, err
	}

	out := make(BigIntSequence, len(bases))
	for i, base := range bases {
		out[i] = modExp(base, exponent, modulus)
	}
	return out, nil
}

// ModExpVectorConcurrent computes the same result as ModExpVector with at most workers
// goroutines. Elements are independent; each result is stored at its input index.
func ModExpVectorConcurrent(bases BigIntSequence, exponent, modulus *big.Int, workers int) (BigIntSequence, error) {
	if workers <= 1 || len(bases) < 2 {
		return ModExpVector(bases, exponent, modulus)
	}
	if err := checkKey(exponent, modulus); err != nil {
		return nil, err
	}
	if err := checkBases(bases); err != nil {
		return nil, err
	}

	out := make(BigIntSequence, len(bases))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, base := range bases {
		i, base := i, base
		g.Go(func() error {
			out[i] = modExp(base, exponent, modulus)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
