// Package dataset loads and prepares labeled tabular data for classification.
package dataset

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrMalformed is returned for input that cannot be turned into a dataset.
var ErrMalformed = errors.New("malformed dataset")

// Dataset is a feature matrix with one integer class label per row.
type Dataset struct {
	X       *mat.Dense // samples x features
	Y       []int      // class index of every sample
	Classes []string   // original label of every class index, if known
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Y)
}

// Features returns the number of feature columns.
func (d *Dataset) Features() int {
	if d.X == nil || d.X.IsEmpty() {
		return 0
	}
	_, c := d.X.Dims()
	return c
}

// NumClasses returns the number of distinct classes: len(Classes) when the
// labels were encoded, otherwise one more than the largest label.
func (d *Dataset) NumClasses() int {
	if len(d.Classes) > 0 {
		return len(d.Classes)
	}
	k := 0
	for _, v := range d.Y {
		if v+1 > k {
			k = v + 1
		}
	}
	return k
}

// Shuffle permutes the samples in place.
func (d *Dataset) Shuffle(rng *rand.Rand) {
	n := d.Len()
	if n == 0 {
		return
	}
	perm := rng.Perm(n)
	_, c := d.X.Dims()
	x := mat.NewDense(n, c, nil)
	y := make([]int, n)
	for i, p := range perm {
		x.SetRow(i, d.X.RawRowView(p))
		y[i] = d.Y[p]
	}
	d.X, d.Y = x, y
}

// Split splits the dataset into two based on the given ratio (0.0 to 1.0).
// The first int(n*ratio) samples go to train, the rest to test.
// Both results own copies of their data.
func (d *Dataset) Split(ratio float64) (train, test *Dataset) {
	n := d.Len()
	idx := int(float64(n) * ratio)
	if idx < 0 {
		idx = 0
	}
	if idx > n {
		idx = n
	}
	return d.subset(0, idx), d.subset(idx, n)
}

func (d *Dataset) subset(start, end int) *Dataset {
	out := &Dataset{
		X:       &mat.Dense{},
		Y:       append([]int(nil), d.Y[start:end]...),
		Classes: d.Classes,
	}
	if end > start {
		_, c := d.X.Dims()
		out.X = mat.DenseCopyOf(d.X.Slice(start, end, 0, c))
	}
	return out
}

// Scaler holds per-column statistics for standardization.
type Scaler struct {
	Mean []float64
	Std  []float64
}

// FitScaler computes the mean and population standard deviation of every
// column of X.
func FitScaler(X mat.Matrix) Scaler {
	r, c := X.Dims()
	s := Scaler{Mean: make([]float64, c), Std: make([]float64, c)}
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		mean := stat.Mean(col, nil)
		s.Mean[j] = mean
		s.Std[j] = stat.PopStdDev(col, nil)
	}
	return s
}

// Transform standardizes X in place. Constant columns are centered only.
func (s Scaler) Transform(X *mat.Dense) error {
	r, c := X.Dims()
	if c != len(s.Mean) {
		return fmt.Errorf("%w: scaler has %d columns, matrix has %d", ErrMalformed, len(s.Mean), c)
	}
	for i := 0; i < r; i++ {
		row := X.RawRowView(i)
		for j := range row {
			row[j] -= s.Mean[j]
			if s.Std[j] > 0 {
				row[j] /= s.Std[j]
			}
		}
	}
	return nil
}

// Standardize rescales every feature to zero mean and unit variance and
// returns the scaler, so the same transform can be applied to held-out data.
func (d *Dataset) Standardize() Scaler {
	if d.Len() == 0 {
		return Scaler{}
	}
	s := FitScaler(d.X)
	s.Transform(d.X)
	return s
}
