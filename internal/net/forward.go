package net

import (
	"github.com/FlavioCFOliveira/neuralmlp/internal/activations"

	"gonum.org/v1/gonum/mat"
)

// Activations holds every intermediate value of one forward pass.
type Activations struct {
	A1 *mat.Dense // samples x (features+1), bias column first
	Z2 *mat.Dense // hidden x samples, hidden net input
	A2 *mat.Dense // (hidden+1) x samples, bias row first
	Z3 *mat.Dense // outputs x samples, output net input
	A3 *mat.Dense // outputs x samples, output activation
}

// Empty reports whether the pass was over zero samples.
func (a Activations) Empty() bool {
	return a.A3 == nil || a.A3.IsEmpty()
}

// Forward propagates X (samples x features) through w1 (hidden x features+1)
// and w2 (outputs x hidden+1). It does not modify its arguments. With zero
// samples every returned matrix is empty.
func Forward(X mat.Matrix, w1, w2 *mat.Dense) Activations {
	if n, _ := X.Dims(); n == 0 {
		return Activations{
			A1: &mat.Dense{},
			Z2: &mat.Dense{},
			A2: &mat.Dense{},
			Z3: &mat.Dense{},
			A3: &mat.Dense{},
		}
	}

	sigmoid := activations.Sigmoid{}

	a1 := AddBias(X, Column)

	z2 := new(mat.Dense)
	z2.Mul(w1, a1.T())

	a2 := AddBias(sigmoid.ActivateDense(z2), Row)

	z3 := new(mat.Dense)
	z3.Mul(w2, a2)

	a3 := sigmoid.ActivateDense(z3)

	return Activations{A1: a1, Z2: z2, A2: a2, Z3: z3, A3: a3}
}
