package statsui

import "github.com/typr-dev/typr/internal/session"

// Summary aggregates the full result history.
type Summary struct {
	Sessions     int
	AvgNetWPM    float64
	BestNetWPM   float64
	AvgAccuracy  float64
	TotalSeconds float64
}

// Summarize folds the history into headline numbers.
func Summarize(results []session.Result) Summary {
	s := Summary{Sessions: len(results)}
	if len(results) == 0 {
		return s
	}
	for _, res := range results {
		s.AvgNetWPM += res.NetWPM
		s.AvgAccuracy += res.Accuracy
		s.TotalSeconds += res.Seconds
		if res.NetWPM > s.BestNetWPM {
			s.BestNetWPM = res.NetWPM
		}
	}
	s.AvgNetWPM /= float64(len(results))
	s.AvgAccuracy /= float64(len(results))
	return s
}
