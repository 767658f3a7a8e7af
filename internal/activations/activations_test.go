// Package activations provides unit tests for the sigmoid activation.
package activations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestSigmoid tests Sigmoid activation.
func TestSigmoid(t *testing.T) {
	sigmoid := Sigmoid{}

	tests := []struct {
		input    float64
		expected float64
	}{
		{math.Inf(-1), 0.0}, // -inf -> 0
		{-2.0, 1 / (1 + math.Exp(2))},
		{-1.0, 1 / (1 + math.Exp(1))},
		{0.0, 0.5}, // Zero -> 0.5
		{1.0, 1 / (1 + math.Exp(-1))},
		{2.0, 1 / (1 + math.Exp(-2))},
		{math.Inf(1), 1.0}, // +inf -> 1
	}

	for _, tt := range tests {
		output := sigmoid.Activate(tt.input)
		if math.Abs(output-tt.expected) > 1e-12 {
			t.Errorf("Sigmoid(%v) = %v, want %v", tt.input, output, tt.expected)
		}
	}
}

// TestSigmoidNoOverflow tests that large negative inputs do not produce NaN or Inf.
func TestSigmoidNoOverflow(t *testing.T) {
	sigmoid := Sigmoid{}

	for _, x := range []float64{-710, -1000, -1e6, -math.MaxFloat64} {
		output := sigmoid.Activate(x)
		assert.False(t, math.IsNaN(output), "Sigmoid(%v) is NaN", x)
		assert.GreaterOrEqual(t, output, 0.0)
		assert.Less(t, output, 1e-300)
	}

	// Still strictly positive in the representable range
	assert.Greater(t, sigmoid.Activate(-700), 0.0)
}

// TestSigmoidSymmetry tests sigmoid(-x) = 1 - sigmoid(x).
func TestSigmoidSymmetry(t *testing.T) {
	sigmoid := Sigmoid{}

	for _, x := range []float64{0.1, 0.5, 1, 3, 7, 15} {
		assert.InDelta(t, 1-sigmoid.Activate(x), sigmoid.Activate(-x), 1e-12, "x=%v", x)
	}
}

// TestSigmoidDerivative tests Sigmoid derivative.
func TestSigmoidDerivative(t *testing.T) {
	sigmoid := Sigmoid{}

	// At zero: sigmoid(0) = 0.5, derivative = 0.25
	assert.InDelta(t, 0.25, sigmoid.Derivative(0.0), 1e-12)

	// At large positive: derivative approaches 0
	if output := sigmoid.Derivative(10.0); output > 1e-4 {
		t.Errorf("Sigmoid.Derivative(10) = %v, should be near 0", output)
	}

	// At large negative: derivative approaches 0
	if output := sigmoid.Derivative(-10.0); output > 1e-4 {
		t.Errorf("Sigmoid.Derivative(-10) = %v, should be near 0", output)
	}

	// Matches a central difference of Activate
	const h = 1e-6
	for _, x := range []float64{-3, -0.5, 0.7, 2} {
		numeric := (sigmoid.Activate(x+h) - sigmoid.Activate(x-h)) / (2 * h)
		assert.InDelta(t, numeric, sigmoid.Derivative(x), 1e-8, "x=%v", x)
	}
}

// TestSigmoidDense tests the whole-matrix forms.
func TestSigmoidDense(t *testing.T) {
	sigmoid := Sigmoid{}
	z := mat.NewDense(2, 3, []float64{-800, -1, 0, 1, 2, 800})

	a := sigmoid.ActivateDense(z)
	d := sigmoid.DerivativeDense(z)

	r, c := a.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.Equal(t, sigmoid.Activate(z.At(i, j)), a.At(i, j))
			assert.Equal(t, sigmoid.Derivative(z.At(i, j)), d.At(i, j))
			assert.False(t, math.IsNaN(a.At(i, j)))
		}
	}

	// Input is not modified
	assert.Equal(t, -800.0, z.At(0, 0))
}
