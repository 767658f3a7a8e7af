package neuralmlp

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlobsEndToEnd tests training, prediction and reporting through the
// public API on well separated clusters.
func TestBlobsEndToEnd(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	data := Blobs(rng, [][]float64{{-3, -3}, {3, -3}, {0, 3}}, 40, 0.5)
	data.Shuffle(rng)
	train, test := data.Split(0.75)
	scaler := train.Standardize()
	require.NoError(t, scaler.Transform(test.X))

	cfg := DefaultConfig(data.NumClasses(), data.Features())
	cfg.NHidden = 8
	cfg.Epochs = 200
	cfg.Eta = 0.01
	cfg.Alpha = 0.1
	cfg.Minibatches = 3
	cfg.Seed = Seed(7)

	costs := &CostRecorder{}
	m, err := New(cfg, costs)
	require.NoError(t, err)
	_, err = m.Fit(train.X, train.Y)
	require.NoError(t, err)

	pred, err := m.Predict(test.X)
	require.NoError(t, err)
	acc, err := Accuracy(pred, test.Y)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, acc, 0.9)

	history := m.CostHistory()
	epochCosts, err := EpochCosts(history, cfg.Epochs)
	require.NoError(t, err)
	assert.Len(t, epochCosts, cfg.Epochs)
	assert.Len(t, costs.Costs, cfg.Epochs)

	s, err := Summarize(epochCosts)
	require.NoError(t, err)
	assert.Less(t, s.Last, s.First)

	require.NoError(t, PlotCost(history, cfg.Epochs, "blobs", filepath.Join(t.TempDir(), "cost.svg")))
}

// TestErrorsReexported tests that sentinel errors match the internal ones.
func TestErrorsReexported(t *testing.T) {
	_, err := New(DefaultConfig(0, 1))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = OneHot([]int{3}, 2)
	assert.ErrorIs(t, err, ErrInvalidLabel)
}
