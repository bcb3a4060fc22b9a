package utils

import "math"

const powEpsilon = 1e-9

func MinInt(a, b int) int {
	if a > b {
		return b
	}
	return a
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ClampInt limits x to [lo, hi], assuming lo <= hi.
func ClampInt(x, lo, hi int) int {
	return MaxInt(lo, MinInt(x, hi))
}

// CeilPow returns ⌈n^exp⌉. Results within powEpsilon of an integer are
// treated as exact so that e.g. 10000^(3/4) yields 1000, not 1001.
func CeilPow(n int, exp float64) int {
	p := math.Pow(float64(n), exp)
	if r := math.Round(p); math.Abs(p-r) < powEpsilon {
		return int(r)
	}
	return int(math.Ceil(p))
}

// Pow returns n^exp.
func Pow(n int, exp float64) float64 {
	return math.Pow(float64(n), exp)
}

// Mean returns the arithmetic mean of total over count, 0 if count is 0.
func Mean(total int64, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
