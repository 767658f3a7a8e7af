package dataset

import (
	"math/rand/v2"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Blobs returns isotropic Gaussian clusters, perClass samples around each
// center with standard deviation std. Samples of class i are drawn around
// centers[i] and rows are interleaved by class.
func Blobs(rng *rand.Rand, centers [][]float64, perClass int, std float64) *Dataset {
	k := len(centers)
	if k == 0 || perClass < 1 {
		return &Dataset{X: &mat.Dense{}}
	}
	f := len(centers[0])
	noise := distuv.Normal{Mu: 0, Sigma: std, Src: rng}

	n := k * perClass
	X := mat.NewDense(n, f, nil)
	y := make([]int, n)
	classes := make([]string, k)
	for c := range classes {
		classes[c] = strconv.Itoa(c)
	}

	for i := 0; i < n; i++ {
		c := i % k
		row := X.RawRowView(i)
		for j := range row {
			row[j] = centers[c][j] + noise.Rand()
		}
		y[i] = c
	}
	return &Dataset{X: X, Y: y, Classes: classes}
}

// XOR returns n points drawn uniformly from [-1, 1]^2, labeled 1 when exactly
// one coordinate is positive.
func XOR(rng *rand.Rand, n int) *Dataset {
	if n < 1 {
		return &Dataset{X: &mat.Dense{}}
	}
	u := distuv.Uniform{Min: -1, Max: 1, Src: rng}
	X := mat.NewDense(n, 2, nil)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		a, b := u.Rand(), u.Rand()
		X.Set(i, 0, a)
		X.Set(i, 1, b)
		if (a > 0) != (b > 0) {
			y[i] = 1
		}
	}
	return &Dataset{X: X, Y: y, Classes: []string{"0", "1"}}
}
