package interfaces

import (
	"math/big"
)

// Share is a decoded point (x, y) on the sharing polynomial.
type Share struct {
	X *big.Int
	Y *big.Int
}

// NewShare creates a share from small integer coordinates.
func NewShare(x, y int64) Share {
	return Share{X: big.NewInt(x), Y: big.NewInt(y)}
}

// String returns the share formatted as "(x,y)".
func (s Share) String() string {
	return "(" + s.X.String() + "," + s.Y.String() + ")"
}

// RawShareEntry is the undecoded y value of a share as found in a share
// document: a decimal base in [2,36] and the digits in that base.
type RawShareEntry struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

// InputDocument is a parsed share document.
type InputDocument struct {
	// N is the declared number of shares. It is informational only.
	N int
	// K is the reconstruction threshold.
	K int
	// HasK reports whether the threshold was present in the document.
	HasK bool
	// Entries maps decimal x coordinates to raw y values.
	Entries map[string]RawShareEntry
}

// Reconstructor recovers the secret (the polynomial value at zero) from
// exactly threshold-many shares.
type Reconstructor interface {
	Reconstruct(points []Share) (*big.Int, error)
}
