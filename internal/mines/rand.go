package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// Rand is the only source of randomness the board uses. *rand.Rand
// satisfies it.
type Rand interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
}

// NewRand returns a PCG backed generator. A zero seed draws the seed from
// the runtime hash seed instead, so every process gets a different board.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
