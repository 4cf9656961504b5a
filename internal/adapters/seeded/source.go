// Package seeded turns day keys into reproducible random sources.
package seeded

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/randomtoy/setdaily/internal/domain"
)

// Factory hashes seed strings into PCG generators. Changing Salt changes every
// board without changing the day keys.
type Factory struct {
	Salt string
}

func NewFactory(salt string) *Factory {
	return &Factory{Salt: salt}
}

// NewSource returns a generator that yields the same sequence for the same
// seed and salt.
func (f *Factory) NewSource(seed string) domain.Source {
	hi := xxhash.Sum64String(f.Salt + "\x00" + seed)
	lo := xxhash.Sum64String(seed + "\x00" + f.Salt)
	return rand.New(rand.NewPCG(hi, lo))
}
