// Package opt provides unit tests for optimizers and schedulers.
package opt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestMomentumFirstStep tests that the first step after Reset is plain gradient descent.
func TestMomentumFirstStep(t *testing.T) {
	m := NewMomentum(0.1, 0.9)
	param := mat.NewDense(1, 3, []float64{1.0, 2.0, 3.0})
	grad := mat.NewDense(1, 3, []float64{0.1, 0.2, 0.3})
	m.Reset(param)

	m.StepInPlace(0, param, grad)

	// Expected: params - lr * gradients
	expected := mat.NewDense(1, 3, []float64{
		1.0 - 0.1*0.1, // 0.99
		2.0 - 0.1*0.2, // 1.98
		3.0 - 0.1*0.3, // 2.97
	})
	assert.True(t, mat.EqualApprox(expected, param, 1e-12))
}

// TestMomentumCarriesPreviousDelta tests w -= lr*g + alpha*prevDelta.
func TestMomentumCarriesPreviousDelta(t *testing.T) {
	m := NewMomentum(0.5, 0.25)
	param := mat.NewDense(1, 1, []float64{0})
	m.Reset(param)

	m.StepInPlace(0, param, mat.NewDense(1, 1, []float64{2})) // delta = 1
	assert.InDelta(t, -1.0, param.At(0, 0), 1e-12)

	m.StepInPlace(0, param, mat.NewDense(1, 1, []float64{4})) // delta = 2, carry = 0.25
	assert.InDelta(t, -1.0-2.0-0.25, param.At(0, 0), 1e-12)

	// Remembered delta excludes the momentum contribution
	assert.InDelta(t, 2.0, m.Previous(0).At(0, 0), 1e-12)
}

// TestMomentumZeroAlphaIsGradientDescent tests that alpha = 0 ignores history.
func TestMomentumZeroAlphaIsGradientDescent(t *testing.T) {
	m := NewMomentum(0.1, 0)
	param := mat.NewDense(2, 1, []float64{1, 1})
	grad := mat.NewDense(2, 1, []float64{1, -1})
	m.Reset(param)

	for i := 0; i < 3; i++ {
		m.StepInPlace(0, param, grad)
	}

	assert.InDelta(t, 0.7, param.At(0, 0), 1e-12)
	assert.InDelta(t, 1.3, param.At(1, 0), 1e-12)
}

// TestMomentumIndependentParams tests that each parameter keeps its own history.
func TestMomentumIndependentParams(t *testing.T) {
	m := NewMomentum(1, 1)
	a := mat.NewDense(1, 1, []float64{0})
	b := mat.NewDense(2, 2, nil)
	m.Reset(a, b)

	m.StepInPlace(0, a, mat.NewDense(1, 1, []float64{1}))
	m.StepInPlace(1, b, mat.NewDense(2, 2, []float64{0, 0, 0, 0}))

	assert.Equal(t, 1.0, m.Previous(0).At(0, 0))
	assert.Equal(t, 0.0, m.Previous(1).At(0, 0))
}

// TestMomentumResetClearsHistory tests that Reset zeroes previous deltas.
func TestMomentumResetClearsHistory(t *testing.T) {
	m := NewMomentum(1, 1)
	param := mat.NewDense(1, 1, []float64{0})
	m.Reset(param)
	m.StepInPlace(0, param, mat.NewDense(1, 1, []float64{3}))

	m.Reset(param)
	r, c := m.Previous(0).Dims()
	require.Equal(t, 1, r)
	require.Equal(t, 1, c)
	assert.Equal(t, 0.0, m.Previous(0).At(0, 0))
}

// TestMomentumStepBeforeReset tests that stepping an unknown parameter panics.
func TestMomentumStepBeforeReset(t *testing.T) {
	m := NewMomentum(1, 0)
	assert.Panics(t, func() {
		m.StepInPlace(0, mat.NewDense(1, 1, nil), mat.NewDense(1, 1, nil))
	})
}

// TestInverseDecayCompounds tests lr <- lr / (1 + decay*epoch) applied cumulatively.
func TestInverseDecayCompounds(t *testing.T) {
	m := NewMomentum(1.0, 0)
	s := NewInverseDecay(m, 0.5)

	want := 1.0
	for epoch := 0; epoch < 4; epoch++ {
		s.Step(epoch)
		want /= 1 + 0.5*float64(epoch)
		assert.InDelta(t, want, s.GetLR(), 1e-15, "epoch %d", epoch)
	}

	// 1 / (1 * 1.5 * 2 * 2.5)
	assert.InDelta(t, 1.0/7.5, m.LR(), 1e-15)

	// A second pass keeps shrinking from where the first stopped
	s.Step(1)
	assert.InDelta(t, 1.0/7.5/1.5, m.LR(), 1e-15)
}

// TestInverseDecayZero tests that a zero decay constant leaves the rate unchanged.
func TestInverseDecayZero(t *testing.T) {
	m := NewMomentum(0.01, 0)
	s := NewInverseDecay(m, 0)

	for epoch := 0; epoch < 100; epoch++ {
		s.Step(epoch)
	}
	if math.Abs(m.LR()-0.01) > 0 {
		t.Errorf("LR = %v, want 0.01", m.LR())
	}
}
