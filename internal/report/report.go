// Package report summarizes and plots the outcome of a training run.
package report

import (
	"errors"
	"fmt"

	"github.com/FlavioCFOliveira/neuralmlp/internal/net"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrNoData is returned when there is nothing to summarize.
var ErrNoData = errors.New("report: no data")

// EpochCosts averages a per-step cost history into one value per epoch.
// The history is split into epochs contiguous chunks, larger chunks first.
func EpochCosts(history []float64, epochs int) ([]float64, error) {
	if len(history) == 0 {
		return nil, ErrNoData
	}
	if epochs < 1 || epochs > len(history) {
		return nil, fmt.Errorf("report: cannot split %d costs into %d epochs", len(history), epochs)
	}

	out := make([]float64, 0, epochs)
	for _, r := range net.SplitRanges(len(history), epochs) {
		out = append(out, stat.Mean(history[r.Start:r.End], nil))
	}
	return out, nil
}

// Summary describes a cost history.
type Summary struct {
	Steps    int
	First    float64
	Last     float64
	Min      float64
	MinIndex int
	Max      float64
	Mean     float64
	StdDev   float64
}

// Summarize computes summary statistics of a cost history.
func Summarize(history []float64) (Summary, error) {
	if len(history) == 0 {
		return Summary{}, ErrNoData
	}
	mean, std := stat.MeanStdDev(history, nil)
	if len(history) == 1 {
		std = 0
	}
	return Summary{
		Steps:    len(history),
		First:    history[0],
		Last:     history[len(history)-1],
		Min:      floats.Min(history),
		MinIndex: floats.MinIdx(history),
		Max:      floats.Max(history),
		Mean:     mean,
		StdDev:   std,
	}, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("steps=%d first=%.4f last=%.4f min=%.4f@%d max=%.4f mean=%.4f std=%.4f",
		s.Steps, s.First, s.Last, s.Min, s.MinIndex, s.Max, s.Mean, s.StdDev)
}

// Accuracy returns the fraction of predictions equal to the true labels.
func Accuracy(pred, truth []int) (float64, error) {
	if len(pred) != len(truth) {
		return 0, fmt.Errorf("report: %d predictions for %d labels", len(pred), len(truth))
	}
	if len(pred) == 0 {
		return 0, ErrNoData
	}
	correct := 0
	for i := range pred {
		if pred[i] == truth[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(pred)), nil
}

// ConfusionMatrix counts (true, predicted) class pairs in a k x k matrix.
// Labels outside [0, k) are ignored.
func ConfusionMatrix(pred, truth []int, k int) (*mat.Dense, error) {
	if len(pred) != len(truth) {
		return nil, fmt.Errorf("report: %d predictions for %d labels", len(pred), len(truth))
	}
	if k < 1 {
		return nil, fmt.Errorf("report: need at least one class, got %d", k)
	}
	cm := mat.NewDense(k, k, nil)
	for i := range pred {
		t, p := truth[i], pred[i]
		if t < 0 || t >= k || p < 0 || p >= k {
			continue
		}
		cm.Set(t, p, cm.At(t, p)+1)
	}
	return cm, nil
}
