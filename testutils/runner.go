package testutils

import (
	"testing"

	"github.com/leisurelyrcxf/lazyselect/utils"
)

// RunTestForNRounds runs testCase rounds times, stopping at the first failed round.
func RunTestForNRounds(t *testing.T, rounds int, testCase func(t *testing.T, round int) (b bool)) {
	for i := 0; i < rounds; i++ {
		if !testCase(t, i) {
			t.Errorf("%s failed @round %d", t.Name(), i)
			return
		}
		if i%(utils.MaxInt(1, rounds/10)) == 0 {
			t.Logf("%s succeeded %d rounds", t.Name(), i)
		}
	}
}

// CountFailuresForNRounds runs testCase rounds times and returns how many
// rounds reported failure. Used for properties that only hold with high
// probability.
func CountFailuresForNRounds(rounds int, testCase func(round int) (ok bool)) (failures int) {
	for i := 0; i < rounds; i++ {
		if !testCase(i) {
			failures++
		}
	}
	return failures
}
