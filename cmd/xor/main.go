package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/FlavioCFOliveira/neuralmlp/internal/dataset"
	"github.com/FlavioCFOliveira/neuralmlp/internal/net"
	"github.com/FlavioCFOliveira/neuralmlp/internal/report"

	"gonum.org/v1/gonum/mat"
)

func main() {
	plotPath := flag.String("plot", "", "Write the cost curve to this image file")
	flag.Parse()

	fmt.Println("=== XOR Training Example ===")

	// XOR is not linearly separable, so a single sigmoid layer cannot
	// solve it but one hidden layer can.
	in, hidden, out := 2, 8, 2

	fmt.Printf("Network architecture: %d-%d-%d\n", in, hidden, out)
	fmt.Println("Activation functions: Sigmoid (hidden), Sigmoid (output)")
	fmt.Println("Loss function: cross-entropy")
	fmt.Println("Optimizer: mini-batch gradient descent with momentum 0.5")

	rng := rand.New(rand.NewPCG(42, 42))
	data := dataset.XOR(rng, 400)
	train, test := data.Split(0.75)

	cfg := net.DefaultConfig(out, in)
	cfg.NHidden = hidden
	cfg.Epochs = 2000
	cfg.Eta = 0.01
	cfg.Alpha = 0.5
	cfg.Minibatches = 10
	cfg.Seed = net.Seed(42)

	costs := &net.CostRecorder{}
	model, err := net.New(cfg, costs)
	if err != nil {
		log.Fatalf("build model: %v", err)
	}
	if _, err := model.Fit(train.X, train.Y); err != nil {
		log.Fatalf("training failed: %v", err)
	}

	for epoch := 0; epoch < cfg.Epochs; epoch += 250 {
		fmt.Printf("Epoch %d, Cost: %.4f\n", epoch, costs.Costs[epoch])
	}

	acc, err := model.Score(test.X, test.Y)
	if err != nil {
		log.Fatalf("score: %v", err)
	}
	fmt.Printf("\nTest Accuracy: %.1f%%\n", acc*100)

	// Corners of the unit square
	corners := mat.NewDense(4, 2, []float64{
		-0.5, -0.5,
		-0.5, 0.5,
		0.5, -0.5,
		0.5, 0.5,
	})
	pred, err := model.Predict(corners)
	if err != nil {
		log.Fatalf("predict: %v", err)
	}
	fmt.Println("Results:")
	for i, p := range pred {
		fmt.Printf("  %v -> %d\n", corners.RawRowView(i), p)
	}

	if *plotPath != "" {
		if err := report.PlotCost(model.CostHistory(), cfg.Epochs, "XOR cost", *plotPath); err != nil {
			log.Fatalf("plot: %v", err)
		}
	}
}
