package game

import "slices"

// RNG is the source of randomness for shuffling. *math/rand.Rand satisfies it.
type RNG interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Shuffle returns a uniformly permuted copy of cards using the Fisher-Yates algorithm. The input is not modified.
func Shuffle(cards []Card, rng RNG) []Card {
	shuffled := slices.Clone(cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
