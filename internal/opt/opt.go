// Package opt provides optimization algorithms.
package opt

import "gonum.org/v1/gonum/mat"

// Optimizer updates weight matrices in place from their gradients.
type Optimizer interface {
	// Reset clears any per-parameter state and sizes it for params.
	Reset(params ...*mat.Dense)

	// StepInPlace updates the i-th parameter in place from its gradient.
	StepInPlace(i int, param, grad *mat.Dense)

	// LR returns the current learning rate.
	LR() float64

	// SetLR replaces the current learning rate.
	SetLR(lr float64)
}

// Momentum is gradient descent with a momentum term:
//
//	delta = lr * grad
//	param -= delta + alpha * deltaPrev
//
// deltaPrev is the previous step's delta for the same parameter,
// without its own momentum contribution.
type Momentum struct {
	LearningRate float64
	Alpha        float64 // Weight of the previous delta

	prev []*mat.Dense
}

// NewMomentum creates a momentum optimizer.
// With alpha = 0 it is plain gradient descent.
func NewMomentum(learningRate, alpha float64) *Momentum {
	return &Momentum{
		LearningRate: learningRate,
		Alpha:        alpha,
	}
}

// Reset zeroes the previous deltas, one per parameter.
func (m *Momentum) Reset(params ...*mat.Dense) {
	m.prev = make([]*mat.Dense, len(params))
	for i, p := range params {
		r, c := p.Dims()
		m.prev[i] = mat.NewDense(r, c, nil)
	}
}

// StepInPlace updates param in place and remembers this step's delta.
func (m *Momentum) StepInPlace(i int, param, grad *mat.Dense) {
	if i < 0 || i >= len(m.prev) {
		panic("Momentum: parameter index out of range, call Reset first")
	}

	var delta mat.Dense
	delta.Scale(m.LearningRate, grad)

	var update mat.Dense
	update.Scale(m.Alpha, m.prev[i])
	update.Add(&delta, &update)

	param.Sub(param, &update)
	m.prev[i].Copy(&delta)
}

// Previous returns the delta remembered for the i-th parameter.
func (m *Momentum) Previous(i int) *mat.Dense {
	return m.prev[i]
}

// LR returns the current learning rate.
func (m *Momentum) LR() float64 {
	return m.LearningRate
}

// SetLR replaces the current learning rate.
func (m *Momentum) SetLR(lr float64) {
	m.LearningRate = lr
}
