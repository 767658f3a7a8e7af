package net

import (
	"fmt"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CostFunc evaluates the cost of output activations a3 against yEnc for the
// weights that produced them.
type CostFunc func(a3, yEnc mat.Matrix, w1, w2 *mat.Dense) float64

// NumericalGradient approximates the cost gradient at (w1, w2) by central
// differences, (cost(w+eps) - cost(w-eps)) / (2*eps), perturbing one weight
// at a time. The result is flattened row-major as w1 followed by w2.
// It costs two forward passes per weight and is meant for debugging.
func NumericalGradient(X, yEnc mat.Matrix, w1, w2 *mat.Dense, cost CostFunc, epsilon float64) []float64 {
	r1, c1 := w1.Dims()
	r2, c2 := w2.Dims()
	n1 := r1 * c1

	f := func(w []float64) float64 {
		pw1 := mat.NewDense(r1, c1, w[:n1])
		pw2 := mat.NewDense(r2, c2, w[n1:])
		act := Forward(X, pw1, pw2)
		return cost(act.A3, yEnc, pw1, pw2)
	}

	return fd.Gradient(nil, f, flatten(w1, w2), &fd.Settings{
		Formula: fd.Central,
		Step:    epsilon,
	})
}

// GradientCheck compares backpropagation against a numerical gradient and
// returns the Euclidean distance between them.
//
// It first approximates the gradient at the current weights, then runs a
// full Fit on X and y, and finally compares against the analytic gradient of
// the last training step. The weights are therefore trained as a side
// effect. For the two gradients to refer to the same weights, configure a
// single epoch over a single mini-batch.
func (m *MLP) GradientCheck(X mat.Matrix, y []int, epsilon float64) (float64, error) {
	if epsilon <= 0 {
		return 0, fmt.Errorf("%w: epsilon must be > 0 (got %g)", ErrInvalidConfig, epsilon)
	}
	if _, err := m.checkLabeled(X, y); err != nil {
		return 0, err
	}
	yEnc, err := OneHot(y, m.cfg.NOutput)
	if err != nil {
		return 0, err
	}

	numGrad := NumericalGradient(X, yEnc, m.w1, m.w2, m.cost, epsilon)

	if _, err := m.Fit(X, y); err != nil {
		return 0, fmt.Errorf("gradient check fit: %w", err)
	}

	return floats.Distance(numGrad, m.gradient, 2), nil
}
