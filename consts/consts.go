package consts

const (
	// SampleExponent is the exponent of n giving the sample size ⌈n^(3/4)⌉.
	SampleExponent = 3.0 / 4.0
	// RegimeExponent is the exponent of n giving the regime threshold n^(1/4).
	RegimeExponent = 1.0 / 4.0

	// CandidateSetFactor and CandidateSetSlack bound the terminating
	// candidate set: |P| <= CandidateSetFactor*n^(3/4) + CandidateSetSlack.
	CandidateSetFactor = 4.0
	CandidateSetSlack  = 2.0

	DefaultMaxRecursionDepth = 32
	DefaultMaxSelectAttempts = 16
)

const (
	LazySelectExpectedComparisonFactor  = 2.0
	QuickSelectExpectedComparisonFactor = 3.386
)

const (
	DefaultBenchMinSize = 10000
	DefaultBenchMaxSize = 10000000
	DefaultBenchGrowth  = 2
	DefaultBenchRuns    = 100

	DefaultQuickSelectCSV = "quick_selection_data.csv"
	DefaultLazySelectCSV  = "lazy_selection_data.csv"
)
