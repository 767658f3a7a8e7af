package net

import (
	"github.com/FlavioCFOliveira/neuralmlp/internal/activations"
	"github.com/FlavioCFOliveira/neuralmlp/internal/loss"

	"gonum.org/v1/gonum/mat"
)

// Backprop computes the cost gradients with respect to w1 and w2 from the
// activations of a forward pass over the samples encoded in yEnc
// (outputs x samples). The returned gradients have the shapes of w1 and w2.
//
// Regularization adds (l1+l2)*w to every non-bias gradient entry. This is the
// L2 gradient with the L1 strength folded in, not the L1 subgradient
// l1*sign(w).
func Backprop(act Activations, yEnc mat.Matrix, w1, w2 *mat.Dense, l1, l2 float64) (grad1, grad2 *mat.Dense) {
	r1, c1 := w1.Dims()
	r2, c2 := w2.Dims()

	if act.Empty() {
		grad1 = mat.NewDense(r1, c1, nil)
		grad2 = mat.NewDense(r2, c2, nil)
	} else {
		sigmoid := activations.Sigmoid{}

		var delta3 mat.Dense
		delta3.Sub(act.A3, yEnc)

		z2 := AddBias(act.Z2, Row)

		var delta2 mat.Dense
		delta2.Mul(w2.T(), &delta3)
		delta2.MulElem(&delta2, sigmoid.DerivativeDense(z2))

		// drop the bias unit
		rows, n := delta2.Dims()
		hidden := delta2.Slice(1, rows, 0, n)

		grad1 = new(mat.Dense)
		grad1.Mul(hidden, act.A1)

		grad2 = new(mat.Dense)
		grad2.Mul(&delta3, act.A2.T())
	}

	loss.AddPenaltyGradient(grad1, w1, l1+l2)
	loss.AddPenaltyGradient(grad2, w2, l1+l2)

	return grad1, grad2
}
