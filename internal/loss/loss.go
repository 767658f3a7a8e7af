// Package loss provides the classification cost and its weight penalties.
package loss

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BinaryCrossEntropy is the summed logistic loss over every output unit and sample.
type BinaryCrossEntropy struct {
	// Clip, when positive, clamps predictions into [Clip, 1-Clip] inside the
	// log terms. Zero evaluates the logs unguarded, so a saturated
	// prediction of exactly 0 or 1 yields +Inf or NaN.
	Clip float64
}

// Forward computes sum(-y*log(p) - (1-y)*log(1-p)).
// yPred and yTrue are (outputs x samples).
func (b BinaryCrossEntropy) Forward(yPred, yTrue mat.Matrix) float64 {
	r, c := yPred.Dims()
	tr, tc := yTrue.Dims()
	if r != tr || c != tc {
		panic("BinaryCrossEntropy: prediction and target must have same shape")
	}

	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			p := yPred.At(i, j)
			if b.Clip > 0 {
				p = math.Min(math.Max(p, b.Clip), 1-b.Clip)
			}
			y := yTrue.At(i, j)
			sum += -y*math.Log(p) - (1-y)*math.Log(1-p)
		}
	}
	return sum
}

// NonBias returns a view of w without its bias column (column 0).
// Writes through the view modify w.
func NonBias(w *mat.Dense) *mat.Dense {
	r, c := w.Dims()
	return w.Slice(0, r, 1, c).(*mat.Dense)
}

// L1 computes (lambda/2) * sum(|w[:,1:]|) over all given weight matrices.
func L1(lambda float64, weights ...*mat.Dense) float64 {
	var sum float64
	for _, w := range weights {
		nb := NonBias(w)
		r, _ := nb.Dims()
		for i := 0; i < r; i++ {
			sum += floats.Norm(nb.RawRowView(i), 1)
		}
	}
	return lambda / 2 * sum
}

// L2 computes (lambda/2) * sum(w[:,1:]^2) over all given weight matrices.
func L2(lambda float64, weights ...*mat.Dense) float64 {
	var sum float64
	for _, w := range weights {
		nb := NonBias(w)
		r, _ := nb.Dims()
		for i := 0; i < r; i++ {
			row := nb.RawRowView(i)
			sum += floats.Dot(row, row)
		}
	}
	return lambda / 2 * sum
}

// AddPenaltyGradient adds coef * w[:,1:] to grad[:,1:] in place.
// The bias column of grad is left untouched.
func AddPenaltyGradient(grad, w *mat.Dense, coef float64) {
	gr, gc := grad.Dims()
	wr, wc := w.Dims()
	if gr != wr || gc != wc {
		panic("AddPenaltyGradient: gradient and weights must have same shape")
	}
	if coef == 0 {
		return
	}

	g := NonBias(grad)
	var scaled mat.Dense
	scaled.Scale(coef, NonBias(w))
	g.Add(g, &scaled)
}
