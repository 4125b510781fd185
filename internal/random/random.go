// internal/random/random.go
//
// Seeded pseudo-random sequence used for daily puzzle selection and hints.
//
// Rand is a value: every draw returns the next generator state instead of
// mutating a shared seed, so callers thread it explicitly and tests can pin
// a sequence by choosing the seed.
//
// Recurrence (linear congruential):
//   state' = (state*9301 + 49297) mod 233280
//   value  = state' / 233280        ∈ [0, 1)

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280
)

// Rand is the generator state. The zero value is a valid generator seeded with 0.
type Rand struct {
	state int64
}

// New returns a generator seeded with seed. Negative seeds are folded into
// range so every seed produces values in [0, 1).
func New(seed int64) Rand {
	s := seed % modulus
	if s < 0 {
		s += modulus
	}
	return Rand{state: s}
}

// Next returns a uniform value in [0, 1) and the following state.
func (r Rand) Next() (float64, Rand) {
	next := (r.state*multiplier + increment) % modulus
	return float64(next) / modulus, Rand{state: next}
}

// Intn returns floor(Next()*n) for n > 0. It panics if n <= 0.
func (r Rand) Intn(n int) (int, Rand) {
	if n <= 0 {
		panic("random: Intn with non-positive n")
	}
	v, next := r.Next()
	i := int(v * float64(n))
	if i >= n { // float rounding guard
		i = n - 1
	}
	return i, next
}

// State exposes the raw generator state (useful for logging and tests).
func (r Rand) State() int64 { return r.state }

// NewSeed generates a high-entropy seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
