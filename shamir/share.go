package shamir

import "fmt"

// Share is one point on the secret-encoding polynomials: X identifies the
// evaluation point (1..=255, never 0), and Y holds one interpolated byte
// per byte of the original secret. Threshold and ID are optional metadata
// carried alongside a share; they never enter the field arithmetic, but
// Recover uses unanimous Threshold metadata as the minimum share count
// when no threshold is given. External serializers may drop them.
type Share struct {
	X         byte
	Y         []byte
	Threshold *int
	ID        *int
}

// Bytes returns the canonical on-wire encoding: the single byte X followed
// by the raw Y bytes, with no length prefix (spec §6). Metadata is not
// part of this encoding.
func (s Share) Bytes() []byte {
	out := make([]byte, 1+len(s.Y))
	out[0] = s.X
	copy(out[1:], s.Y)
	return out
}

// ShareFromBytes parses the canonical encoding produced by Bytes. It fails
// if b has fewer than 2 bytes (an X byte plus at least one Y byte).
func ShareFromBytes(b []byte) (Share, error) {
	if len(b) < 2 {
		return Share{}, fmt.Errorf("shamir: encoded share must be at least 2 bytes, got %d", len(b))
	}
	y := make([]byte, len(b)-1)
	copy(y, b[1:])
	return Share{X: b[0], Y: y}, nil
}

// String renders a share for logs/errors without dumping its full payload.
func (s Share) String() string {
	return fmt.Sprintf("share{x=%d, len(y)=%d}", s.X, len(s.Y))
}
