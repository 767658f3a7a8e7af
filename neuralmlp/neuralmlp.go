// Package neuralmlp is the public entry point to the two-layer sigmoid MLP
// classifier and its data helpers.
package neuralmlp

import (
	"math/rand/v2"

	"github.com/FlavioCFOliveira/neuralmlp/internal/dataset"
	"github.com/FlavioCFOliveira/neuralmlp/internal/net"
	"github.com/FlavioCFOliveira/neuralmlp/internal/report"

	"gonum.org/v1/gonum/mat"
)

// Re-export common types and functions for easier access
type (
	Model        = net.MLP
	Config       = net.Config
	Callback     = net.Callback
	BaseCallback = net.BaseCallback
	Progress     = net.Progress
	CSVLogger    = net.CSVLogger
	CostRecorder = net.CostRecorder
	Dataset      = dataset.Dataset
	Scaler       = dataset.Scaler
	Summary      = report.Summary
)

// Errors
var (
	ErrInvalidConfig = net.ErrInvalidConfig
	ErrShapeMismatch = net.ErrShapeMismatch
	ErrInvalidLabel  = net.ErrInvalidLabel
	ErrEmptyInput    = net.ErrEmptyInput
)

// Model creation
func New(cfg Config, callbacks ...Callback) (*Model, error) {
	return net.New(cfg, callbacks...)
}

func DefaultConfig(nOutput, nFeatures int) Config {
	return net.DefaultConfig(nOutput, nFeatures)
}

func Seed(v uint64) *uint64 {
	return net.Seed(v)
}

// Callbacks
func NewCSVLogger(filename string, append bool) *CSVLogger {
	return net.NewCSVLogger(filename, append)
}

// Data
func LoadCSV(filename string, labelCol int, hasHeader bool) (*Dataset, error) {
	return dataset.LoadCSV(filename, labelCol, hasHeader)
}

func Blobs(rng *rand.Rand, centers [][]float64, perClass int, std float64) *Dataset {
	return dataset.Blobs(rng, centers, perClass, std)
}

func XOR(rng *rand.Rand, n int) *Dataset {
	return dataset.XOR(rng, n)
}

func OneHot(y []int, k int) (*mat.Dense, error) {
	return net.OneHot(y, k)
}

// Reporting
func EpochCosts(history []float64, epochs int) ([]float64, error) {
	return report.EpochCosts(history, epochs)
}

func Summarize(history []float64) (Summary, error) {
	return report.Summarize(history)
}

func Accuracy(pred, truth []int) (float64, error) {
	return report.Accuracy(pred, truth)
}

func PlotCost(history []float64, epochs int, title, path string) error {
	return report.PlotCost(history, epochs, title, path)
}
