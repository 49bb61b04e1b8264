// Package shamir implements Shamir's Secret Sharing over GF(2^8): split a
// byte secret into a family of up to 255 shares such that any k of them
// reconstruct it exactly, while any k-1 reveal nothing beyond its length.
//
// The field and polynomial layers live in internal/gf256 and internal/poly;
// this package composes them with a randomness source (internal/rng) into
// the Splitter and Reconstructor described in spec §4.D/§4.E.
package shamir

import (
	"fmt"

	"github.com/oarkflow/xsss/internal/poly"
	"github.com/oarkflow/xsss/internal/rng"
)

// maxShares is the largest number of distinct non-zero share points GF(2^8)
// admits.
const maxShares = 255

// Shamir is a fixed-threshold instance: constructed once with the minimum
// number of shares required to reconstruct, it produces share streams and
// recovers secrets using that threshold.
type Shamir struct {
	threshold int
}

// New validates 2 <= threshold <= 255 and returns a bound instance.
func New(threshold int) (*Shamir, error) {
	if threshold < 2 || threshold > maxShares {
		return nil, ErrInvalidThreshold
	}
	return &Shamir{threshold: threshold}, nil
}

// Threshold returns the k this instance was constructed with.
func (s *Shamir) Threshold() int {
	return s.threshold
}

// Split returns a share stream for secret using the system CSPRNG.
func (s *Shamir) Split(secret []byte) (*ShareStream, error) {
	return s.SplitWithRNG(secret, rng.System{})
}

// SplitWithRNG returns a share stream for secret, drawing the polynomial
// coefficients from source. With a rng.Seeded source, the resulting share
// family is a pure function of (threshold, secret, seed) — spec §4.D.
func (s *Shamir) SplitWithRNG(secret []byte, source rng.Source) (*ShareStream, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	rows := s.threshold - 1
	flat := make([]byte, rows*len(secret))
	if err := source.Fill(flat); err != nil {
		return nil, fmt.Errorf("shamir: filling coefficient matrix: %w", err)
	}
	matrix := make([][]byte, rows)
	for i := range matrix {
		matrix[i] = flat[i*len(secret) : (i+1)*len(secret)]
	}

	secretCopy := make([]byte, len(secret))
	copy(secretCopy, secret)

	return &ShareStream{
		secret:    secretCopy,
		coeffs:    matrix,
		threshold: s.threshold,
		nextX:     1,
	}, nil
}

// Recover reconstructs the secret from shares, requiring at least this
// instance's threshold. See the package-level Recover for the variant used
// when no threshold is known in advance (spec §9 Open Question).
func (s *Shamir) Recover(shares []Share) ([]byte, error) {
	return Recover(shares, s.threshold)
}

// ShareStream is a lazy, single-owner producer of shares for x = 1, 2, 3,
// …, up to 255, capped because x must be non-zero and distinct (spec
// §4.D). It is not safe for concurrent use by multiple goroutines, though
// independent streams over disjoint inputs may run in parallel freely.
type ShareStream struct {
	secret    []byte
	coeffs    [][]byte // coeffs[i-1][j] is the x^i coefficient for secret byte j
	threshold int
	nextX     int // 1..256; 256 means exhausted
	nextID    int
	closed    bool
}

// Next produces the next share in the stream (x = 1, 2, 3, …). Returns
// ErrShareLimitExceeded once 255 shares have been emitted.
func (st *ShareStream) Next() (Share, error) {
	if st.closed {
		return Share{}, ErrShareLimitExceeded
	}
	if st.nextX > maxShares {
		st.Close()
		return Share{}, ErrShareLimitExceeded
	}

	x := byte(st.nextX)
	y := make([]byte, len(st.secret))
	coeffs := make([]byte, st.threshold)
	for j, b := range st.secret {
		coeffs[0] = b
		for i := 1; i < st.threshold; i++ {
			coeffs[i] = st.coeffs[i-1][j]
		}
		y[j] = poly.Evaluate(coeffs, x)
	}
	zeroize(coeffs)

	threshold := st.threshold
	id := st.nextID
	share := Share{X: x, Y: y, Threshold: &threshold, ID: &id}

	st.nextID++
	st.nextX++
	if st.nextX > maxShares {
		st.Close()
	}
	return share, nil
}

// Take draws up to n shares, stopping early (without error) if the stream
// is exhausted first.
func (st *ShareStream) Take(n int) ([]Share, error) {
	shares := make([]Share, 0, n)
	for i := 0; i < n; i++ {
		share, err := st.Next()
		if err == ErrShareLimitExceeded {
			break
		}
		if err != nil {
			return shares, err
		}
		shares = append(shares, share)
	}
	return shares, nil
}

// Close zeroizes the coefficient matrix and marks the stream exhausted. It
// is idempotent and safe to call whether or not the stream was drained;
// spec §5 requires the matrix be overwritten before its memory is released.
func (st *ShareStream) Close() {
	if st.closed {
		return
	}
	zeroizeMatrix(st.coeffs)
	zeroize(st.secret)
	st.closed = true
}

// Recover reconstructs a secret from shares. If expectedThreshold is 0, the
// effective threshold is inferred from unanimous Share.Threshold metadata
// when present, or otherwise accepted as len(shares) — the "recover without
// a declared threshold" behavior preserved from spec §9's Open Question. If
// expectedThreshold is positive, it is treated as an authoritative minimum.
func Recover(shares []Share, expectedThreshold int) ([]byte, error) {
	if len(shares) == 0 {
		return nil, ErrEmptyShares
	}

	length := len(shares[0].Y)
	seen := make(map[byte]bool, len(shares))
	metaThreshold := -1 // -1: not yet seen; -2: shares disagree
	for _, sh := range shares {
		if sh.X == 0 {
			return nil, ErrInvalidShareIndex
		}
		if seen[sh.X] {
			return nil, ErrDuplicateShareIndex
		}
		seen[sh.X] = true
		if len(sh.Y) != length {
			return nil, ErrInconsistentShareLength
		}
		if sh.Threshold != nil {
			switch metaThreshold {
			case -1:
				metaThreshold = *sh.Threshold
			case *sh.Threshold:
				// agrees
			default:
				metaThreshold = -2
			}
		}
	}

	effective := expectedThreshold
	if effective == 0 && metaThreshold > 0 {
		effective = metaThreshold
	}
	if effective > 0 && len(shares) < effective {
		return nil, ErrInsufficientShares
	}

	secret := make([]byte, length)
	points := make([]poly.Point, len(shares))
	for j := 0; j < length; j++ {
		for i, sh := range shares {
			points[i] = poly.Point{X: sh.X, Y: sh.Y[j]}
		}
		b, err := poly.InterpolateAtZero(points)
		if err != nil {
			return nil, err
		}
		secret[j] = b
	}
	return secret, nil
}
