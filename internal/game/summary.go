package game

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/DaanHessen/bayes-tree/internal/engine"
)

// Summary accumulates per-session statistics.
type Summary struct {
	Answered   int
	Correct    int
	BestStreak int
	errs       []float64
}

func (s *Summary) record(ev engine.Evaluation, streak int) {
	s.Answered++
	if ev.IsCorrect {
		s.Correct++
	}
	s.BestStreak = max(s.BestStreak, streak)
	s.errs = append(s.errs, math.Abs(ev.Parsed-ev.Correct))
}

// MeanError is the mean absolute difference between answers and truths. It fails before the
// first answer.
func (s Summary) MeanError() (float64, error) { return stats.Mean(s.errs) }

// MedianError is the median absolute difference between answers and truths.
func (s Summary) MedianError() (float64, error) { return stats.Median(s.errs) }

// Accuracy is the fraction of answers judged correct, 0 before the first answer.
func (s Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}
