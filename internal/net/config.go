package net

import "fmt"

// Config holds the hyperparameters of a two-layer MLP classifier.
type Config struct {
	NOutput   int // Number of output units, one per class
	NFeatures int // Number of input features (columns of X)
	NHidden   int // Number of hidden units

	L1 float64 // L1 regularization strength
	L2 float64 // L2 regularization strength

	Epochs        int     // Passes over the training set
	Eta           float64 // Initial learning rate
	Alpha         float64 // Momentum weight of the previous step's delta
	DecreaseConst float64 // Learning rate decay: eta /= 1 + DecreaseConst*epoch

	ShuffleInit  bool // Shuffle a copy of the data once before training
	ShuffleEpoch bool // Reshuffle the data before every epoch
	Minibatches  int  // Number of contiguous mini-batches per epoch; 1 is full-batch

	ZeroInitWeight bool    // Initialize weights to 0 instead of N(0, 1)
	Seed           *uint64 // Seed for initialization and shuffling; nil draws from entropy

	PrintProgress int // 0 silent, 1 epoch and cost, 2 + elapsed time, 3 + ETA

	// ClipOutput, when positive, clamps output activations into
	// [ClipOutput, 1-ClipOutput] inside the cost's log terms only.
	ClipOutput float64
}

// DefaultConfig returns the default hyperparameters for the given problem size.
func DefaultConfig(nOutput, nFeatures int) Config {
	return Config{
		NOutput:      nOutput,
		NFeatures:    nFeatures,
		NHidden:      30,
		Epochs:       500,
		Eta:          0.001,
		ShuffleInit:  true,
		ShuffleEpoch: true,
		Minibatches:  1,
	}
}

// Seed returns a pointer to v, for use as Config.Seed.
func Seed(v uint64) *uint64 {
	return &v
}

// Validate checks that every hyperparameter is in range.
func (c Config) Validate() error {
	switch {
	case c.NOutput < 1:
		return fmt.Errorf("%w: n_output must be >= 1 (got %d)", ErrInvalidConfig, c.NOutput)
	case c.NFeatures < 1:
		return fmt.Errorf("%w: n_features must be >= 1 (got %d)", ErrInvalidConfig, c.NFeatures)
	case c.NHidden < 1:
		return fmt.Errorf("%w: n_hidden must be >= 1 (got %d)", ErrInvalidConfig, c.NHidden)
	case c.L1 < 0:
		return fmt.Errorf("%w: l1 must be >= 0 (got %g)", ErrInvalidConfig, c.L1)
	case c.L2 < 0:
		return fmt.Errorf("%w: l2 must be >= 0 (got %g)", ErrInvalidConfig, c.L2)
	case c.Epochs < 1:
		return fmt.Errorf("%w: epochs must be >= 1 (got %d)", ErrInvalidConfig, c.Epochs)
	case c.Eta <= 0:
		return fmt.Errorf("%w: eta must be > 0 (got %g)", ErrInvalidConfig, c.Eta)
	case c.Alpha < 0:
		return fmt.Errorf("%w: alpha must be >= 0 (got %g)", ErrInvalidConfig, c.Alpha)
	case c.DecreaseConst < 0:
		return fmt.Errorf("%w: decrease_const must be >= 0 (got %g)", ErrInvalidConfig, c.DecreaseConst)
	case c.Minibatches < 1:
		return fmt.Errorf("%w: minibatches must be >= 1 (got %d)", ErrInvalidConfig, c.Minibatches)
	case c.PrintProgress < 0 || c.PrintProgress > 3:
		return fmt.Errorf("%w: print_progress must be in [0, 3] (got %d)", ErrInvalidConfig, c.PrintProgress)
	case c.ClipOutput < 0 || c.ClipOutput >= 0.5:
		return fmt.Errorf("%w: clip_output must be in [0, 0.5) (got %g)", ErrInvalidConfig, c.ClipOutput)
	}
	return nil
}
