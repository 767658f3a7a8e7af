package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestEpochCosts tests averaging mini-batch costs per epoch.
func TestEpochCosts(t *testing.T) {
	history := []float64{4, 2, 3, 1, 2, 0}

	got, err := EpochCosts(history, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 2, 1}, got, 1e-12)

	// Uneven split puts the larger chunk first
	got, err = EpochCosts([]float64{1, 2, 3, 10, 20}, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 15}, got, 1e-12)

	got, err = EpochCosts(history, 6)
	require.NoError(t, err)
	assert.Equal(t, history, got)
}

// TestEpochCostsErrors tests invalid arguments.
func TestEpochCostsErrors(t *testing.T) {
	_, err := EpochCosts(nil, 1)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = EpochCosts([]float64{1, 2}, 0)
	assert.Error(t, err)

	_, err = EpochCosts([]float64{1, 2}, 3)
	assert.Error(t, err)
}

// TestSummarize tests summary statistics of a cost history.
func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{5, 3, 1, 2, 4})
	require.NoError(t, err)

	assert.Equal(t, 5, s.Steps)
	assert.Equal(t, 5.0, s.First)
	assert.Equal(t, 4.0, s.Last)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 2, s.MinIndex)
	assert.Equal(t, 5.0, s.Max)
	assert.InDelta(t, 3, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.StdDev, 1e-12)
	assert.Contains(t, s.String(), "min=1.0000@2")

	one, err := Summarize([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, one.StdDev)

	_, err = Summarize(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

// TestAccuracy tests the fraction of correct predictions.
func TestAccuracy(t *testing.T) {
	acc, err := Accuracy([]int{0, 1, 2, 2}, []int{0, 1, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, acc, 1e-12)

	_, err = Accuracy([]int{0}, []int{0, 1})
	assert.Error(t, err)

	_, err = Accuracy(nil, nil)
	assert.ErrorIs(t, err, ErrNoData)
}

// TestConfusionMatrix tests counting of (true, predicted) pairs.
func TestConfusionMatrix(t *testing.T) {
	cm, err := ConfusionMatrix([]int{0, 1, 1, 2, 5}, []int{0, 1, 2, 2, 0}, 3)
	require.NoError(t, err)

	want := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 1, 1,
	})
	assert.True(t, mat.Equal(want, cm))

	_, err = ConfusionMatrix([]int{0}, nil, 2)
	assert.Error(t, err)
	_, err = ConfusionMatrix(nil, nil, 0)
	assert.Error(t, err)
}

// TestPlotCost tests that a cost chart is written to disk.
func TestPlotCost(t *testing.T) {
	dir := t.TempDir()
	history := make([]float64, 40)
	for i := range history {
		history[i] = 10 / float64(i+1)
	}

	for _, name := range []string{"cost.png", "cost.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, PlotCost(history, 10, "training", path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	assert.ErrorIs(t, PlotCost(nil, 1, "empty", filepath.Join(dir, "empty.png")), ErrNoData)
	assert.Error(t, PlotCost(history, 1, "bad", filepath.Join(dir, "cost.unknown")))
}
