// Package interfaces defines the types shared between the share decoding,
// interpolation and recovery packages, and the Reconstructor contract the
// recovery solver depends on.
//
//	// Reconstructor recovers the secret from exactly threshold-many shares.
//	type Reconstructor interface {
//	    Reconstruct(points []Share) (*big.Int, error)
//	}
//
// lagrange.Reconstructor is the implementation used by default. Tests and
// callers may substitute their own, for example to count or filter
// combinations.
package interfaces
