// Package net provides benchmarks for the MLP forward and backward passes.
package net

import (
	"testing"
)

// BenchmarkForward benchmarks a forward pass over a mini-batch.
func BenchmarkForward(b *testing.B) {
	X, _ := randomDataset(1, 128, 64, 10)
	w1 := randomWeights(2, 50, 65)
	w2 := randomWeights(3, 10, 51)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Forward(X, w1, w2)
	}
}

// BenchmarkBackprop benchmarks gradient computation over a mini-batch.
func BenchmarkBackprop(b *testing.B) {
	X, y := randomDataset(1, 128, 64, 10)
	w1 := randomWeights(2, 50, 65)
	w2 := randomWeights(3, 10, 51)
	yEnc, _ := OneHot(y, 10)
	act := Forward(X, w1, w2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Backprop(act, yEnc, w1, w2, 0.1, 0.1)
	}
}

// BenchmarkFitEpoch benchmarks one epoch of mini-batch training.
func BenchmarkFitEpoch(b *testing.B) {
	cfg := DefaultConfig(10, 64)
	cfg.NHidden = 50
	cfg.Epochs = 1
	cfg.Minibatches = 8
	cfg.Alpha = 0.5
	cfg.Seed = Seed(1)
	m, err := New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	X, y := randomDataset(1, 512, 64, 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Fit(X, y); err != nil {
			b.Fatal(err)
		}
	}
}
