package lagrange

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ruteri/threshold-secret-recovery/interfaces"
)

var (
	// ErrNoPoints is returned when interpolating an empty point set.
	ErrNoPoints = errors.New("no points to interpolate")

	// ErrDuplicateCoordinate is returned when two points share an x value.
	ErrDuplicateCoordinate = errors.New("duplicate x coordinate")

	// ErrZeroDenominator is returned when the common denominator vanishes.
	ErrZeroDenominator = errors.New("zero denominator")

	// ErrNonIntegerResult is returned when the points do not lie on one
	// integer polynomial, so the value at zero is not an integer.
	ErrNonIntegerResult = errors.New("secret is not an integer")
)

// Reconstructor interpolates secrets with Reconstruct. The zero value is
// ready to use.
type Reconstructor struct{}

var _ interfaces.Reconstructor = Reconstructor{}

// Reconstruct implements interfaces.Reconstructor.
func (Reconstructor) Reconstruct(points []interfaces.Share) (*big.Int, error) {
	return Reconstruct(points)
}

// Terms returns the Lagrange terms y_i * L_i(0) of the points as unreduced
// fractions, where
//
//	L_i(0) = prod_{j != i} (-x_j) / prod_{j != i} (x_i - x_j)
func Terms(points []interfaces.Share) ([]Fraction, error) {
	fracs := make([]Fraction, 0, len(points))
	diff := new(big.Int)
	for i, pi := range points {
		num := big.NewInt(1)
		den := big.NewInt(1)
		for j, pj := range points {
			if j == i {
				continue
			}
			if pi.X.Cmp(pj.X) == 0 {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateCoordinate, pi.X)
			}
			num.Mul(num, diff.Neg(pj.X))
			den.Mul(den, diff.Sub(pi.X, pj.X))
		}
		fracs = append(fracs, Fraction{Num: num.Mul(num, pi.Y), Den: den})
	}
	return fracs, nil
}

// Reconstruct returns the value at x=0 of the unique polynomial of degree
// len(points)-1 through the points, computed with exact rational arithmetic.
// The result must be an integer, otherwise ErrNonIntegerResult is returned.
func Reconstruct(points []interfaces.Share) (*big.Int, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	fracs, err := Terms(points)
	if err != nil {
		return nil, err
	}
	return SumInteger(fracs)
}
