// Package activations provides the logistic activation used by both network layers.
package activations

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sigmoid is the logistic activation function.
type Sigmoid struct{}

// sigmoid computes 1 / (1 + exp(-x)) without overflowing exp for
// large-magnitude inputs.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	// exp(x) underflows to 0 instead of overflowing when x is very negative
	e := math.Exp(x)
	return e / (1 + e)
}

// Activate computes sigmoid(x)
func (s Sigmoid) Activate(x float64) float64 {
	return sigmoid(x)
}

// Derivative computes sigmoid(x) * (1 - sigmoid(x))
func (s Sigmoid) Derivative(x float64) float64 {
	sigma := sigmoid(x)
	return sigma * (1 - sigma)
}

// ActivateDense applies the sigmoid elementwise to z and returns a new matrix.
func (s Sigmoid) ActivateDense(z mat.Matrix) *mat.Dense {
	out := new(mat.Dense)
	out.Apply(func(_, _ int, v float64) float64 {
		return sigmoid(v)
	}, z)
	return out
}

// DerivativeDense applies the sigmoid derivative elementwise to z and returns a new matrix.
func (s Sigmoid) DerivativeDense(z mat.Matrix) *mat.Dense {
	out := new(mat.Dense)
	out.Apply(func(_, _ int, v float64) float64 {
		sigma := sigmoid(v)
		return sigma * (1 - sigma)
	}, z)
	return out
}
