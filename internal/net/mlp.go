// Package net provides a two-layer feedforward classifier with sigmoid units,
// trained by mini-batch gradient descent with momentum and learning-rate decay.
package net

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/FlavioCFOliveira/neuralmlp/internal/loss"
	"github.com/FlavioCFOliveira/neuralmlp/internal/opt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MLP is a classifier with one sigmoid hidden layer and sigmoid outputs.
//
// Weights are stored with the bias in column 0:
// w1 is hidden x (features+1) and w2 is outputs x (hidden+1).
//
// An MLP is not safe for concurrent use. Run independent experiments on
// independently constructed models.
type MLP struct {
	cfg Config

	w1 *mat.Dense
	w2 *mat.Dense

	rng       *rand.Rand
	optimizer *opt.Momentum
	scheduler *opt.InverseDecay
	loss      loss.BinaryCrossEntropy
	callbacks []Callback

	costHistory []float64
	gradient    []float64
}

// New creates a model with freshly initialized weights.
// When cfg.PrintProgress > 0 a Progress callback writing to stderr is added
// after the given callbacks.
func New(cfg Config, callbacks ...Callback) (*MLP, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := newRand(cfg.Seed)
	optimizer := opt.NewMomentum(cfg.Eta, cfg.Alpha)

	m := &MLP{
		cfg:       cfg,
		w1:        InitWeights(cfg.NHidden, cfg.NFeatures+1, cfg.ZeroInitWeight, rng),
		w2:        InitWeights(cfg.NOutput, cfg.NHidden+1, cfg.ZeroInitWeight, rng),
		rng:       rng,
		optimizer: optimizer,
		scheduler: opt.NewInverseDecay(optimizer, cfg.DecreaseConst),
		loss:      loss.BinaryCrossEntropy{Clip: cfg.ClipOutput},
		callbacks: append([]Callback(nil), callbacks...),
	}
	if cfg.PrintProgress > 0 {
		m.callbacks = append(m.callbacks, NewProgress(os.Stderr, cfg.PrintProgress))
	}
	return m, nil
}

// Config returns the model's hyperparameters.
func (m *MLP) Config() Config {
	return m.cfg
}

// Weights returns copies of the input->hidden and hidden->output weights.
func (m *MLP) Weights() (w1, w2 *mat.Dense) {
	return mat.DenseCopyOf(m.w1), mat.DenseCopyOf(m.w2)
}

// SetWeights replaces the weights with copies of w1 and w2.
func (m *MLP) SetWeights(w1, w2 mat.Matrix) error {
	if err := sameShape("w1", w1, m.w1); err != nil {
		return err
	}
	if err := sameShape("w2", w2, m.w2); err != nil {
		return err
	}
	m.w1.Copy(w1)
	m.w2.Copy(w2)
	return nil
}

// CostHistory returns the cost of every mini-batch step of the last Fit.
func (m *MLP) CostHistory() []float64 {
	return append([]float64(nil), m.costHistory...)
}

// Gradient returns the analytic gradient of the last training step,
// flattened row-major as grad1 followed by grad2.
func (m *MLP) Gradient() []float64 {
	return append([]float64(nil), m.gradient...)
}

// LearningRate returns the current, possibly decayed, learning rate.
func (m *MLP) LearningRate() float64 {
	return m.optimizer.LR()
}

// Fit trains the model on X (samples x features) and class labels y and
// returns the model.
//
// Every call resets the cost history and momentum, but continues from the
// current weights and the current learning rate. With a non-zero
// DecreaseConst the rate therefore keeps shrinking across calls.
func (m *MLP) Fit(X mat.Matrix, y []int) (*MLP, error) {
	n, err := m.checkLabeled(X, y)
	if err != nil {
		return nil, err
	}
	if m.cfg.Minibatches > n {
		return nil, fmt.Errorf("%w: %d minibatches for %d samples", ErrInvalidConfig, m.cfg.Minibatches, n)
	}

	if m.cfg.Seed != nil {
		m.rng = newRand(m.cfg.Seed)
	}
	m.costHistory = make([]float64, 0, m.cfg.Epochs*m.cfg.Minibatches)
	m.gradient = nil

	xData := mat.DenseCopyOf(X)
	yData := append([]int(nil), y...)
	if m.cfg.ShuffleInit {
		perm := m.rng.Perm(n)
		xData = permuteRows(xData, perm)
		yData = permuteLabels(yData, perm)
	}

	yEnc, err := OneHot(yData, m.cfg.NOutput)
	if err != nil {
		return nil, err
	}

	m.optimizer.Reset(m.w1, m.w2)
	batches := SplitRanges(n, m.cfg.Minibatches)

	for _, cb := range m.callbacks {
		cb.OnTrainBegin(m)
	}

	for epoch := 0; epoch < m.cfg.Epochs; epoch++ {
		m.scheduler.Step(epoch)

		if m.cfg.ShuffleEpoch {
			perm := m.rng.Perm(n)
			xData = permuteRows(xData, perm)
			yEnc = permuteCols(yEnc, perm)
		}

		for _, cb := range m.callbacks {
			cb.OnEpochBegin(epoch, m)
		}

		var cost float64
		for b, r := range batches {
			cost = m.step(
				xData.Slice(r.Start, r.End, 0, m.cfg.NFeatures),
				yEnc.Slice(0, m.cfg.NOutput, r.Start, r.End),
			)
			for _, cb := range m.callbacks {
				cb.OnBatchEnd(b, cost, m)
			}
		}

		for _, cb := range m.callbacks {
			cb.OnEpochEnd(epoch, cost, m)
		}
	}

	for _, cb := range m.callbacks {
		cb.OnTrainEnd(m)
	}

	return m, nil
}

// step runs one forward/backward pass on a mini-batch and updates the weights.
func (m *MLP) step(X, yEnc mat.Matrix) float64 {
	act := Forward(X, m.w1, m.w2)

	cost := m.cost(act.A3, yEnc, m.w1, m.w2)
	m.costHistory = append(m.costHistory, cost)

	grad1, grad2 := Backprop(act, yEnc, m.w1, m.w2, m.cfg.L1, m.cfg.L2)
	m.gradient = flatten(grad1, grad2)

	m.optimizer.StepInPlace(0, m.w1, grad1)
	m.optimizer.StepInPlace(1, m.w2, grad2)

	return cost
}

// cost is the regularized cross-entropy of output activations a3.
func (m *MLP) cost(a3, yEnc mat.Matrix, w1, w2 *mat.Dense) float64 {
	return m.loss.Forward(a3, yEnc) +
		loss.L1(m.cfg.L1, w1, w2) +
		loss.L2(m.cfg.L2, w1, w2)
}

// Cost returns the regularized cost of the current weights on X and y.
func (m *MLP) Cost(X mat.Matrix, y []int) (float64, error) {
	if _, err := m.checkLabeled(X, y); err != nil {
		return 0, err
	}
	yEnc, err := OneHot(y, m.cfg.NOutput)
	if err != nil {
		return 0, err
	}
	act := Forward(X, m.w1, m.w2)
	return m.cost(act.A3, yEnc, m.w1, m.w2), nil
}

// Predict returns the class index of every row of X: the output unit with the
// largest net input, the lowest index winning ties.
func (m *MLP) Predict(X mat.Matrix) ([]int, error) {
	n, err := m.checkFeatures(X)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []int{}, nil
	}

	act := Forward(X, m.w1, m.w2)
	return argmaxCols(act.Z3), nil
}

// PredictProba returns the output activations as a samples x outputs matrix.
// Each unit is an independent sigmoid, so rows need not sum to 1.
func (m *MLP) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	n, err := m.checkFeatures(X)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return &mat.Dense{}, nil
	}

	act := Forward(X, m.w1, m.w2)
	return mat.DenseCopyOf(act.A3.T()), nil
}

// Score returns the fraction of rows of X whose predicted class equals y.
func (m *MLP) Score(X mat.Matrix, y []int) (float64, error) {
	n, err := m.checkLabeled(X, y)
	if err != nil {
		return 0, err
	}
	pred, err := m.Predict(X)
	if err != nil {
		return 0, err
	}

	correct := 0
	for i := range pred {
		if pred[i] == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// checkFeatures validates the column count of X and returns its row count.
// An empty matrix is valid and has zero rows.
func (m *MLP) checkFeatures(X mat.Matrix) (int, error) {
	if X == nil {
		return 0, fmt.Errorf("%w: nil feature matrix", ErrEmptyInput)
	}
	n, f := X.Dims()
	if n == 0 {
		return 0, nil
	}
	if f != m.cfg.NFeatures {
		return 0, fmt.Errorf("%w: X has %d features, model expects %d", ErrShapeMismatch, f, m.cfg.NFeatures)
	}
	return n, nil
}

// checkLabeled validates a non-empty labeled sample set and returns its size.
func (m *MLP) checkLabeled(X mat.Matrix, y []int) (int, error) {
	n, err := m.checkFeatures(X)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: no samples", ErrEmptyInput)
	}
	if len(y) != n {
		return 0, fmt.Errorf("%w: X has %d samples, y has %d labels", ErrShapeMismatch, n, len(y))
	}
	for i, v := range y {
		if v < 0 || v >= m.cfg.NOutput {
			return 0, fmt.Errorf("%w: y[%d] = %d, want [0, %d)", ErrInvalidLabel, i, v, m.cfg.NOutput)
		}
	}
	return n, nil
}

func sameShape(name string, got, want mat.Matrix) error {
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	if gr != wr || gc != wc {
		return fmt.Errorf("%w: %s is %dx%d, want %dx%d", ErrShapeMismatch, name, gr, gc, wr, wc)
	}
	return nil
}

// flatten concatenates the row-major entries of the given matrices.
func flatten(ms ...*mat.Dense) []float64 {
	var total int
	for _, m := range ms {
		r, c := m.Dims()
		total += r * c
	}

	out := make([]float64, 0, total)
	for _, m := range ms {
		r, _ := m.Dims()
		for i := 0; i < r; i++ {
			out = append(out, m.RawRowView(i)...)
		}
	}
	return out
}

// argmaxCols returns the row index of the maximum of every column.
func argmaxCols(z *mat.Dense) []int {
	r, c := z.Dims()
	out := make([]int, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, z)
		out[j] = floats.MaxIdx(col)
	}
	return out
}

func permuteRows(x *mat.Dense, perm []int) *mat.Dense {
	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	for i, p := range perm {
		out.SetRow(i, x.RawRowView(p))
	}
	return out
}

func permuteCols(x *mat.Dense, perm []int) *mat.Dense {
	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	for j, p := range perm {
		mat.Col(col, p, x)
		out.SetCol(j, col)
	}
	return out
}

func permuteLabels(y []int, perm []int) []int {
	out := make([]int, len(y))
	for i, p := range perm {
		out[i] = y[p]
	}
	return out
}
