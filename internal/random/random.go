package random

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
	"sync"
)

var allowedLetters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Letters returns a string of n letters drawn from a cryptographically secure source.
func Letters(n uint) (string, error) {
	letters := make([]rune, n)
	for i := range letters {
		letterIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(allowedLetters))))
		if err != nil {
			return "", err
		}
		letters[i] = allowedLetters[letterIndex.Int64()]
	}
	return string(letters), nil
}

// Crypto is a source of uniform integers backed by crypto/rand. It is safe for concurrent use, which makes it suitable
// for shuffling decks of tables shared by many request goroutines.
type Crypto struct{}

// Intn returns a uniform integer in [0, n). It panics if n <= 0, like [math/rand.Intn].
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failing means the platform is broken beyond repair.
		panic(err)
	}
	return int(v.Int64())
}

// Seeded is a reproducible source of integers. The same seed always yields the same sequence, so games dealt from it
// can be replayed. It is safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewSeeded returns a [Seeded] source starting from seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{
		mu:  sync.Mutex{},
		rng: mathrand.New(mathrand.NewPCG(seed, seed)), //nolint:gosec // reproducibility is the point
	}
}

// Intn returns an integer in [0, n). It panics if n <= 0.
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
