package quiz

import "math/rand/v2"

// Shuffler reorders options uniformly at random.
type Shuffler struct {
	rnd *rand.Rand
}

// NewShuffler returns a Shuffler drawing from src. A nil src uses the
// runtime's randomly seeded generator.
func NewShuffler(src rand.Source) *Shuffler {
	if src == nil {
		return &Shuffler{}
	}
	return &Shuffler{rnd: rand.New(src)}
}

// NewSeededShuffler returns a deterministic Shuffler.
func NewSeededShuffler(seed uint64) *Shuffler {
	return NewShuffler(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Options returns a shuffled copy of opts (Fisher–Yates). opts is not
// modified.
func (s *Shuffler) Options(opts []Option) []Option {
	out := append([]Option(nil), opts...)
	for i := len(out) - 1; i > 0; i-- {
		j := s.intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (s *Shuffler) intN(n int) int {
	if s == nil || s.rnd == nil {
		return rand.IntN(n)
	}
	return s.rnd.IntN(n)
}
