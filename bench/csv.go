package bench

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"ArraySize", "Run", "Kth", "EmpiricalComparisons", "ExpectedComparisons", "RunningTime(us)"}

type csvSink struct {
	w *csv.Writer
}

func newCSVSink(w io.Writer) (*csvSink, error) {
	s := &csvSink{w: csv.NewWriter(w)}
	if err := s.w.Write(csvHeader); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *csvSink) writeRecord(rec Record) error {
	return s.w.Write([]string{
		strconv.Itoa(rec.Size),
		strconv.Itoa(rec.Run),
		rec.Target,
		strconv.FormatInt(rec.Comparisons, 10),
		formatFloat(rec.Expected),
		strconv.FormatInt(rec.Elapsed.Microseconds(), 10),
	})
}

func (s *csvSink) writeSummary(sum Summary) error {
	return s.w.Write([]string{
		strconv.Itoa(sum.Size),
		"Average",
		sum.Target,
		formatFloat(sum.MeanComparisons),
		formatFloat(sum.Expected),
		strconv.FormatInt(sum.MeanElapsed.Microseconds(), 10),
	})
}

func (s *csvSink) flush() error {
	s.w.Flush()
	return s.w.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
