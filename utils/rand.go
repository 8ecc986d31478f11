package utils

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
)

// Weighted is a single entry of a weighted choice table
type Weighted[T any] struct {
	Value  T
	Weight int
}

// Returns a new pseudo-random source seeded from crypto/rand
func NewRandomSource() *mathrand.Rand {
	return mathrand.New(mathrand.NewSource(NewRandomSeed())) //nolint:gosec
}

// Returns a non-zero seed drawn from crypto/rand
func NewRandomSeed() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<62)) //nolint:gomnd
	if err != nil || n.Int64() == 0 {
		return 1
	}

	return n.Int64()
}

// Returns a random percentage in [0, 100)
func Percent(r *mathrand.Rand) int {
	return r.Intn(100) //nolint:gomnd
}

// Returns true with the given probability expressed as a percentage
func Chance(r *mathrand.Rand, percent int) bool {
	return Percent(r) < percent
}

// Returns the sum of all weights of the table
func TotalWeight[T any](table []Weighted[T]) int {
	total := 0

	for _, entry := range table {
		if entry.Weight > 0 {
			total += entry.Weight
		}
	}

	return total
}

// WeightedChoice draws one value of the table, each entry being picked proportionally to its weight.
// Entries with a weight <= 0 are never picked. Panics on a table without any positive weight.
func WeightedChoice[T any](r *mathrand.Rand, table []Weighted[T]) T {
	total := TotalWeight(table)

	if total == 0 {
		panic("weighted choice on a table without positive weights")
	}

	return weightedPick(table, r.Intn(total))
}

// weightedPick returns the entry whose cumulative weight range contains draw
func weightedPick[T any](table []Weighted[T], draw int) T {
	var last T

	for _, entry := range table {
		if entry.Weight <= 0 {
			continue
		}

		if draw < entry.Weight {
			return entry.Value
		}

		draw -= entry.Weight
		last = entry.Value
	}

	return last
}
