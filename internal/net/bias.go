package net

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Axis selects where AddBias inserts the bias unit.
type Axis int

const (
	// Column prepends a column of 1s (samples are rows).
	Column Axis = iota
	// Row prepends a row of 1s (samples are columns).
	Row
)

func (a Axis) String() string {
	switch a {
	case Column:
		return "column"
	case Row:
		return "row"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// AddBias returns a copy of m with a bias unit of 1s inserted at index 0
// along axis. m must be non-empty. Any axis other than Column or Row is a
// programming error and panics.
func AddBias(m mat.Matrix, axis Axis) *mat.Dense {
	r, c := m.Dims()
	switch axis {
	case Column:
		out := mat.NewDense(r, c+1, nil)
		for i := 0; i < r; i++ {
			out.Set(i, 0, 1)
		}
		out.Slice(0, r, 1, c+1).(*mat.Dense).Copy(m)
		return out
	case Row:
		out := mat.NewDense(r+1, c, nil)
		for j := 0; j < c; j++ {
			out.Set(0, j, 1)
		}
		out.Slice(1, r+1, 0, c).(*mat.Dense).Copy(m)
		return out
	default:
		panic(fmt.Sprintf("net: invalid bias axis %v, must be Column or Row", axis))
	}
}
