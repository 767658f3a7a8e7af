package net

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// randomDataset returns n samples of f standard-normal features with labels
// cycling through k classes.
func randomDataset(seed uint64, n, f, k int) (*mat.Dense, []int) {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	X := mat.NewDense(n, f, nil)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < f; j++ {
			X.Set(i, j, rng.NormFloat64())
		}
		y[i] = i % k
	}
	return X, y
}

// separableDataset returns two well separated Gaussian clusters in 2D,
// class 0 around (-2, -2) and class 1 around (2, 2).
func separableDataset(seed uint64, perClass int) (*mat.Dense, []int) {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	n := 2 * perClass
	X := mat.NewDense(n, 2, nil)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		class := i % 2
		center := -2.0
		if class == 1 {
			center = 2.0
		}
		X.Set(i, 0, center+0.5*rng.NormFloat64())
		X.Set(i, 1, center+0.5*rng.NormFloat64())
		y[i] = class
	}
	return X, y
}

// randomWeights returns an r x c matrix of standard-normal entries.
func randomWeights(seed uint64, r, c int) *mat.Dense {
	rng := rand.New(rand.NewPCG(seed, seed+7))
	return InitWeights(r, c, false, rng)
}
