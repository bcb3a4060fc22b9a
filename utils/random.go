package utils

import (
	"time"

	"golang.org/x/exp/rand"
)

// NewRand returns a PCG-backed source seeded with seed, or with the current
// time when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// RandomSequence returns a random permutation of 0..n-1.
func RandomSequence(rnd *rand.Rand, n int) []int {
	seq := SortedSequence(n)
	RandomShuffle(rnd, seq)
	return seq
}

func RandomShuffle(rnd *rand.Rand, seq []int) {
	rnd.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
}

func SortedSequence(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	return seq
}

func ReversedSequence(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = n - 1 - i
	}
	return seq
}

func ConstantSequence(n, v int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = v
	}
	return seq
}

// RandomValues returns n values drawn uniformly from [0, max), duplicates allowed.
func RandomValues(rnd *rand.Rand, n, max int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = rnd.Intn(max)
	}
	return seq
}
