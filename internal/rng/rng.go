// Package rng provides the randomness capability the splitter is given at
// call time: a System source backed by crypto/rand, and a Seeded source
// backed by a ChaCha20 stream for reproducible test vectors and the CLI's
// --seed flag.
package rng

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/chacha20"
)

// Source fills a buffer with random bytes.
type Source interface {
	Fill(buf []byte) error
}

// System is the default, cryptographically secure OS-backed source.
type System struct{}

// Fill reads len(buf) bytes from the operating system's CSPRNG.
func (System) Fill(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}

// SeedSize is the required length of a Seeded key.
const SeedSize = 32

// ErrInvalidSeed indicates a seed was not exactly SeedSize bytes.
var ErrInvalidSeed = errors.New("rng: seed must be 32 bytes")

// Seeded is a deterministic byte stream keyed by a 32-byte seed, built on
// ChaCha20. The same seed always yields the same byte stream, which is what
// makes split() reproducible per spec §4.C/§4.D.
type Seeded struct {
	cipher *chacha20.Cipher
}

// NewSeeded constructs a deterministic source from a 32-byte seed. The
// nonce is fixed (all-zero), so two instances built from the same seed
// produce the same keystream; successive Fill calls on one instance
// continue that keystream rather than restarting it.
func NewSeeded(seed [SeedSize]byte) (*Seeded, error) {
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, err
	}
	return &Seeded{cipher: c}, nil
}

// Fill overwrites buf with the next len(buf) bytes of the ChaCha20
// keystream; whatever buf held before is discarded.
func (s *Seeded) Fill(buf []byte) error {
	zero := make([]byte, len(buf))
	s.cipher.XORKeyStream(buf, zero)
	return nil
}
