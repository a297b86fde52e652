// Package lagrange recovers the constant term of an integer polynomial from
// points on it using Lagrange interpolation at zero over the rationals.
//
// For points (x_i, y_i), i = 1..k, the secret is
//
//	f(0) = sum_i y_i * prod_{j != i} (-x_j) / (x_i - x_j)
//
// Every term is kept as an exact Fraction. The terms are summed over the least
// common multiple of their denominators and the sum must divide exactly:
// shares produced by an integer polynomial always give an integer, so a
// remainder means at least one point is not on the same polynomial as the
// others (ErrNonIntegerResult). Points with equal x coordinates are rejected
// with ErrDuplicateCoordinate before any division happens.
//
// Unlike the finite-field interpolation used by most Shamir implementations no
// modulus is involved; numbers grow with the coordinates and are handled by
// math/big.
package lagrange
