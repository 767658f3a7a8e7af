package net

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// OneHot encodes class indices as a (k x len(y)) matrix with a single 1 per column.
func OneHot(y []int, k int) (*mat.Dense, error) {
	if len(y) == 0 {
		return &mat.Dense{}, nil
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: one-hot needs at least one class (got %d)", ErrInvalidConfig, k)
	}

	onehot := mat.NewDense(k, len(y), nil)
	for idx, val := range y {
		if val < 0 || val >= k {
			return nil, fmt.Errorf("%w: y[%d] = %d, want [0, %d)", ErrInvalidLabel, idx, val, k)
		}
		onehot.Set(val, idx, 1)
	}
	return onehot, nil
}
