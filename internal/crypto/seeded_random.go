package crypto

import (
	"math"
	mrand "math/rand/v2"
	"sync"
)

// SeededRandom is a deterministic [Random] for tests and simulations. It must
// never back a production server.
type SeededRandom struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

func NewSeededRandom(seed uint64) *SeededRandom {
	return &SeededRandom{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededRandom) RotationNumber() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int64N(math.MaxInt32-1) + 1, nil
}

func (s *SeededRandom) IntN(n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}

func (s *SeededRandom) HexString(n int) (string, error) {
	const digits = "0123456789abcdef"
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = digits[s.rng.IntN(len(digits))]
	}
	return string(b), nil
}
