package geom

import "math/rand/v2"

// Source yields uniform integers in [0, n). It drives both the kind
// selector and the vertex counts.
type Source interface {
	IntN(n int) int
}

// NewSource returns a seeded PCG generator. The result satisfies Source.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
