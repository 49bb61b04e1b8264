// Package poly implements the two pure polynomial operations the Shamir
// engine needs over GF(2^8): Horner evaluation and Lagrange interpolation
// at x=0. Neither operation allocates or retains its inputs.
package poly

import (
	"errors"

	"github.com/oarkflow/xsss/internal/gf256"
)

// ErrDuplicatePoint indicates two interpolation points share an x coordinate.
var ErrDuplicatePoint = errors.New("poly: duplicate point")

// Point is one (x, y) sample of a polynomial, both in GF(2^8).
type Point struct {
	X byte
	Y byte
}

// Evaluate computes Σ coeffs[i]·x^i via Horner's method. coeffs[0] is the
// constant term.
func Evaluate(coeffs []byte, x byte) byte {
	var result byte
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = gf256.Add(gf256.Mul(result, x), coeffs[i])
	}
	return result
}

// InterpolateAtZero returns the constant term of the unique polynomial
// through points, i.e. Σ_i y_i · Π_{j≠i} (x_j / (x_j - x_i)).
//
// Fails with ErrDuplicatePoint if any two points share an x coordinate, or
// with gf256.ErrDivisionByZero if an x coordinate collision slips past that
// check (should be unreachable given the check above).
func InterpolateAtZero(points []Point) (byte, error) {
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].X == points[j].X {
				return 0, ErrDuplicatePoint
			}
		}
	}

	var secret byte
	for i, pi := range points {
		num := byte(1)
		den := byte(1)
		for j, pj := range points {
			if i == j {
				continue
			}
			num = gf256.Mul(num, pj.X)
			den = gf256.Mul(den, gf256.Add(pj.X, pi.X))
		}
		invDen, err := gf256.Inv(den)
		if err != nil {
			return 0, err
		}
		term := gf256.Mul(pi.Y, gf256.Mul(num, invDen))
		secret = gf256.Add(secret, term)
	}
	return secret, nil
}
