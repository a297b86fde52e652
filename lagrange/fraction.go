package lagrange

import (
	"fmt"
	"math/big"
)

// Fraction is an exact rational number. It is not kept in reduced form and
// the denominator may be negative.
type Fraction struct {
	Num *big.Int
	Den *big.Int
}

func (f Fraction) String() string {
	return fmt.Sprintf("%s/%s", f.Num, f.Den)
}

// SumInteger adds the fractions over the LCM of their denominators and
// returns the sum, which must be an integer.
func SumInteger(fracs []Fraction) (*big.Int, error) {
	commonDen := big.NewInt(1)
	for _, frac := range fracs {
		commonDen = LCM(commonDen, frac.Den)
	}
	if commonDen.Sign() == 0 {
		return nil, ErrZeroDenominator
	}

	totalNum := new(big.Int)
	scaled := new(big.Int)
	for _, frac := range fracs {
		scaled.Quo(commonDen, frac.Den)
		scaled.Mul(scaled, frac.Num)
		totalNum.Add(totalNum, scaled)
	}

	quo, rem := new(big.Int).QuoRem(totalNum, commonDen, new(big.Int))
	if rem.Sign() != 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrNonIntegerResult, totalNum, commonDen)
	}
	return quo, nil
}
