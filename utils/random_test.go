package utils

import (
	"sort"
	"testing"

	testifyassert "github.com/stretchr/testify/assert"
)

func TestRandomSequence(t *testing.T) {
	assert := testifyassert.New(t)

	rnd := NewRand(7)
	seq := RandomSequence(rnd, 1000)
	assert.Len(seq, 1000)
	sorted := append([]int(nil), seq...)
	sort.Ints(sorted)
	assert.Equal(SortedSequence(1000), sorted)
	assert.NotEqual(SortedSequence(1000), seq)

	assert.Equal(RandomSequence(NewRand(11), 64), RandomSequence(NewRand(11), 64))
}

func TestSequences(t *testing.T) {
	assert := testifyassert.New(t)

	assert.Equal([]int{3, 2, 1, 0}, ReversedSequence(4))
	assert.Equal([]int{5, 5, 5}, ConstantSequence(3, 5))
	assert.Empty(SortedSequence(0))
	for _, v := range RandomValues(NewRand(3), 100, 4) {
		assert.True(v >= 0 && v < 4)
	}
}
