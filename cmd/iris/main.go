package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/FlavioCFOliveira/neuralmlp/internal/dataset"
	"github.com/FlavioCFOliveira/neuralmlp/internal/net"
	"github.com/FlavioCFOliveira/neuralmlp/internal/report"

	"gonum.org/v1/gonum/mat"
)

var species = []string{"setosa", "versicolor", "virginica"}

// Iris dataset: 3 classes (Setosa, Versicolor, Virginica)
// Each sample has 4 features (sepal length, sepal width, petal length, petal width)
func main() {
	fmt.Println("Training Iris classifier (4-10-3 sigmoid MLP)...")

	rng := rand.New(rand.NewPCG(42, 42))
	data := generateIrisData(rng)
	data.Shuffle(rng)
	train, test := data.Split(0.7)
	scaler := train.Standardize()
	if err := scaler.Transform(test.X); err != nil {
		log.Fatalf("standardize: %v", err)
	}

	cfg := net.DefaultConfig(len(species), 4)
	cfg.NHidden = 10
	cfg.L2 = 0.01
	cfg.Epochs = 300
	cfg.Eta = 0.005
	cfg.Alpha = 0.2
	cfg.DecreaseConst = 1e-5
	cfg.Minibatches = 7
	cfg.Seed = net.Seed(42)
	cfg.PrintProgress = 3

	model, err := net.New(cfg)
	if err != nil {
		log.Fatalf("build model: %v", err)
	}
	if _, err := model.Fit(train.X, train.Y); err != nil {
		log.Fatalf("training failed: %v", err)
	}

	epochCosts, err := report.EpochCosts(model.CostHistory(), cfg.Epochs)
	if err != nil {
		log.Fatalf("epoch costs: %v", err)
	}
	for epoch := 0; epoch < cfg.Epochs; epoch += 50 {
		fmt.Printf("Epoch %d, Cost: %.4f\n", epoch+1, epochCosts[epoch])
	}

	trainAcc, _ := model.Score(train.X, train.Y)
	testAcc, _ := model.Score(test.X, test.Y)
	fmt.Printf("\nTrain Accuracy: %.1f%%\n", trainAcc*100)
	fmt.Printf("Test Accuracy: %.1f%%\n", testAcc*100)

	proba, err := model.PredictProba(test.X)
	if err != nil {
		log.Fatalf("predict: %v", err)
	}
	pred, _ := model.Predict(test.X)

	fmt.Println("\nSample predictions:")
	for i := 0; i < 10 && i < test.Len(); i++ {
		fmt.Printf("Sample %d: Predicted=%-10s Actual=%-10s activations=%.3f\n",
			i, species[pred[i]], species[test.Y[i]], mat.Row(nil, i, proba))
	}
}

// generateIrisData draws 50 samples per species around the class means of
// the Iris dataset with uniform noise.
func generateIrisData(rng *rand.Rand) *dataset.Dataset {
	means := [][]float64{
		{5.0, 3.4, 1.5, 0.2}, // Setosa
		{5.9, 2.8, 4.3, 1.3}, // Versicolor
		{6.6, 3.0, 5.6, 2.0}, // Virginica
	}
	noise := []float64{0.2, 0.25, 0.25}

	const perClass = 50
	X := mat.NewDense(len(means)*perClass, 4, nil)
	y := make([]int, len(means)*perClass)
	for c, mean := range means {
		for i := 0; i < perClass; i++ {
			row := c*perClass + i
			for j, v := range mean {
				X.Set(row, j, v+(rng.Float64()*2-1)*noise[c])
			}
			y[row] = c
		}
	}
	return &dataset.Dataset{X: X, Y: y, Classes: species}
}
