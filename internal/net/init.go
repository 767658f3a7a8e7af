package net

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// newRand returns a generator seeded from seed, or from entropy when seed is nil.
func newRand(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}

// InitWeights returns a rows x cols weight matrix. With zero set every entry
// is 0; otherwise entries are drawn independently from N(0, 1) using rng.
func InitWeights(rows, cols int, zero bool, rng *rand.Rand) *mat.Dense {
	w := mat.NewDense(rows, cols, nil)
	if zero {
		return w
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	for i := 0; i < rows; i++ {
		row := w.RawRowView(i)
		for j := range row {
			row[j] = normal.Rand()
		}
	}
	return w
}
