package bench

import (
	"time"
)

// Stopwatch measures wall-clock time of a trial and laps of a whole size.
type Stopwatch struct {
	start, last time.Time
}

func StartStopwatch() *Stopwatch {
	now := time.Now()
	return &Stopwatch{start: now, last: now}
}

// Elapsed returns the time since the stopwatch started.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Lap returns the time since the previous lap and starts a new one.
func (s *Stopwatch) Lap() time.Duration {
	now := time.Now()
	elapsed := now.Sub(s.last)
	s.last = now
	return elapsed
}
