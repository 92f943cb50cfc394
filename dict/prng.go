package dict

import "math/rand/v2"

// PRNG is the 64-bit uniform generator collaborator from spec §2. Sampling
// operations (RandomKey, SomeKeys, FairRandomKey) draw from one of these
// instead of reaching for a global generator, so callers can inject a
// deterministic source in tests.
type PRNG interface {
	Uint64() uint64
}

// splitmix64 is the default PRNG: a small, fast, reseedable generator with
// no shared global state, seeded from math/rand/v2 at construction time. No
// dependency in the retrieval pack exposes a pluggable 64-bit PRNG behind an
// interface boundary like this one (see SPEC_FULL.md §2), so this is the one
// deliberately stdlib-only piece of the sampling machinery.
type splitmix64 struct {
	state uint64
}

func newSplitmix64() *splitmix64 {
	return &splitmix64{state: rand.Uint64()}
}

func (s *splitmix64) Uint64() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
