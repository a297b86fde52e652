package lagrange

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/ruteri/threshold-secret-recovery/combinations"
	"github.com/ruteri/threshold-secret-recovery/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evaluate computes the polynomial with the given coefficients (constant
// term first) at x using Horner's rule.
func evaluate(coeffs []*big.Int, x *big.Int) *big.Int {
	res := new(big.Int)
	for i := len(coeffs) - 1; i >= 0; i-- {
		res.Mul(res, x)
		res.Add(res, coeffs[i])
	}
	return res
}

func sharesOf(coeffs []*big.Int, xs ...int64) []interfaces.Share {
	shares := make([]interfaces.Share, 0, len(xs))
	for _, x := range xs {
		bx := big.NewInt(x)
		shares = append(shares, interfaces.Share{X: bx, Y: evaluate(coeffs, bx)})
	}
	return shares
}

func TestReconstruct_SimplePolynomials(t *testing.T) {
	tests := []struct {
		name     string
		points   []interfaces.Share
		expected int64
	}{
		{
			name:     "single point",
			points:   []interfaces.Share{interfaces.NewShare(5, 42)},
			expected: 42,
		},
		{
			name:     "line through origin",
			points:   []interfaces.Share{interfaces.NewShare(10, 100), interfaces.NewShare(30, 300)},
			expected: 0,
		},
		{
			name:     "quadratic x^2+3",
			points:   []interfaces.Share{interfaces.NewShare(1, 4), interfaces.NewShare(2, 7), interfaces.NewShare(3, 12)},
			expected: 3,
		},
		{
			name:     "negative coordinates",
			points:   []interfaces.Share{interfaces.NewShare(-2, -3), interfaces.NewShare(4, 9)},
			expected: 1,
		},
		{
			name:     "unsorted points",
			points:   []interfaces.Share{interfaces.NewShare(6, 39), interfaces.NewShare(1, 4), interfaces.NewShare(3, 12)},
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, err := Reconstruct(tt.points)
			require.NoError(t, err)
			assert.Equal(t, big.NewInt(tt.expected).String(), secret.String())
		})
	}
}

func TestReconstruct_EverySubsetOfRandomPolynomials(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for degree := 0; degree < 6; degree++ {
		k := degree + 1
		coeffs := make([]*big.Int, k)
		for i := range coeffs {
			// Large coefficients, including negative ones.
			c := new(big.Int).Lsh(big.NewInt(rng.Int63()), 64)
			c.Sub(c, big.NewInt(rng.Int63()))
			if rng.Intn(2) == 0 {
				c.Neg(c)
			}
			coeffs[i] = c
		}

		shares := sharesOf(coeffs, -3, 1, 2, 5, 8, 13, 21, 100)
		for subset := range combinations.Of(shares, k) {
			secret, err := Reconstruct(subset)
			require.NoError(t, err, "degree %d subset %v", degree, subset)
			require.Equal(t, 0, coeffs[0].Cmp(secret), "degree %d subset %v", degree, subset)
		}
	}
}

func TestReconstruct_Errors(t *testing.T) {
	_, err := Reconstruct(nil)
	assert.ErrorIs(t, err, ErrNoPoints)

	_, err = Reconstruct([]interfaces.Share{interfaces.NewShare(1, 4), interfaces.NewShare(1, 5)})
	assert.ErrorIs(t, err, ErrDuplicateCoordinate)

	// Same x with the same y is still a duplicate coordinate.
	_, err = Reconstruct([]interfaces.Share{interfaces.NewShare(2, 4), interfaces.NewShare(3, 1), interfaces.NewShare(2, 4)})
	assert.ErrorIs(t, err, ErrDuplicateCoordinate)

	// The line through (1,1) and (3,2) crosses x=0 at 1/2.
	_, err = Reconstruct([]interfaces.Share{interfaces.NewShare(1, 1), interfaces.NewShare(3, 2)})
	assert.ErrorIs(t, err, ErrNonIntegerResult)
}

func TestReconstructor_ImplementsInterface(t *testing.T) {
	var r interfaces.Reconstructor = Reconstructor{}
	secret, err := r.Reconstruct([]interfaces.Share{interfaces.NewShare(1, 4), interfaces.NewShare(2, 7), interfaces.NewShare(6, 39)})
	require.NoError(t, err)
	assert.Equal(t, "3", secret.String())
}

func TestTerms(t *testing.T) {
	fracs, err := Terms([]interfaces.Share{interfaces.NewShare(1, 4), interfaces.NewShare(2, 7), interfaces.NewShare(3, 12)})
	require.NoError(t, err)
	require.Len(t, fracs, 3)

	// L_0(0) = (-2)(-3) / ((1-2)(1-3)) = 6/2
	assert.Equal(t, "24/2", fracs[0].String())
	// L_1(0) = (-1)(-3) / ((2-1)(2-3)) = 3/-1
	assert.Equal(t, "21/-1", fracs[1].String())
	// L_2(0) = (-1)(-2) / ((3-1)(3-2)) = 2/2
	assert.Equal(t, "24/2", fracs[2].String())
}

func TestSumInteger(t *testing.T) {
	frac := func(num, den int64) Fraction {
		return Fraction{Num: big.NewInt(num), Den: big.NewInt(den)}
	}

	sum, err := SumInteger([]Fraction{frac(1, 2), frac(1, 3), frac(1, 6)})
	require.NoError(t, err)
	assert.Equal(t, "1", sum.String())

	sum, err = SumInteger([]Fraction{frac(3, -2), frac(1, 2)})
	require.NoError(t, err)
	assert.Equal(t, "-1", sum.String())

	sum, err = SumInteger(nil)
	require.NoError(t, err)
	assert.Equal(t, "0", sum.String())

	_, err = SumInteger([]Fraction{frac(1, 2), frac(1, 3)})
	assert.ErrorIs(t, err, ErrNonIntegerResult)

	_, err = SumInteger([]Fraction{frac(1, 2), frac(1, 0)})
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestGCDAndLCM(t *testing.T) {
	assert.Equal(t, "6", GCD(big.NewInt(-12), big.NewInt(18)).String())
	assert.Equal(t, "5", GCD(big.NewInt(0), big.NewInt(-5)).String())
	assert.Equal(t, "0", GCD(big.NewInt(0), big.NewInt(0)).String())

	assert.Equal(t, "36", LCM(big.NewInt(12), big.NewInt(18)).String())
	assert.Equal(t, "-36", LCM(big.NewInt(-12), big.NewInt(18)).String())
	assert.Equal(t, "36", LCM(big.NewInt(-12), big.NewInt(-18)).String())
	assert.Equal(t, "0", LCM(big.NewInt(0), big.NewInt(7)).String())

	// Arguments are not modified.
	a := big.NewInt(-4)
	GCD(a, big.NewInt(6))
	LCM(a, big.NewInt(6))
	assert.Equal(t, "-4", a.String())
}
