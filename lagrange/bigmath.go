package lagrange

import "math/big"

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	return new(big.Int).GCD(nil, nil, x, y)
}

// LCM returns a*b/GCD(a, b), or 0 if either argument is 0. The sign follows
// the sign of a*b.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	res := new(big.Int).Mul(a, b)
	return res.Quo(res, GCD(a, b))
}
