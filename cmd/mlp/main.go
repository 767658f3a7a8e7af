package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/FlavioCFOliveira/neuralmlp/internal/config"
	"github.com/FlavioCFOliveira/neuralmlp/internal/dataset"
	"github.com/FlavioCFOliveira/neuralmlp/internal/net"
	"github.com/FlavioCFOliveira/neuralmlp/internal/report"

	"gonum.org/v1/gonum/mat"
)

// Trains a classifier on a labeled CSV file and reports its accuracy on a
// held-out split.
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	data := flag.String("data", "", "Override path to the CSV dataset")
	epochs := flag.Int("epochs", 0, "Override number of epochs")
	hidden := flag.Int("hidden", 0, "Override number of hidden units")
	eta := flag.Float64("eta", 0, "Override learning rate")
	minibatches := flag.Int("minibatches", 0, "Override mini-batches per epoch")
	seed := flag.Int64("seed", -1, "PRNG seed (negative draws from entropy)")
	progress := flag.Int("progress", 0, "Progress verbosity 1-3")
	plotPath := flag.String("plot", "", "Write the cost curve to this image file")
	csvLog := flag.String("csv-log", "", "Write per-epoch training log to this CSV file")
	gradCheck := flag.Float64("gradcheck", 0, "Run a gradient check with this epsilon before training")

	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}

	o := config.Overrides{
		DataPath:    *data,
		Epochs:      *epochs,
		NHidden:     *hidden,
		Eta:         *eta,
		Minibatches: *minibatches,
		Progress:    *progress,
		Plot:        *plotPath,
		CSVLog:      *csvLog,
	}
	if *seed >= 0 {
		o.Seed = net.Seed(uint64(*seed))
	}
	cfg.ApplyOverrides(o)
	if *gradCheck > 0 {
		cfg.Output.GradCheck = *gradCheck
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ds, err := dataset.LoadCSV(cfg.Data.Path, cfg.Data.LabelCol, cfg.Data.Header)
	if err != nil {
		log.Fatalf("load %s: %v", cfg.Data.Path, err)
	}
	log.Printf("data=%s samples=%d features=%d classes=%v", cfg.Data.Path, ds.Len(), ds.Features(), ds.Classes)

	if cfg.Data.Shuffle {
		ds.Shuffle(dataRand(cfg.Model.Seed))
	}
	train, test := ds.Split(cfg.Data.TrainRatio)
	if cfg.Data.Standardize {
		scaler := train.Standardize()
		if test.Len() > 0 {
			if err := scaler.Transform(test.X); err != nil {
				log.Fatalf("standardize test split: %v", err)
			}
		}
	}
	log.Printf("train=%d test=%d", train.Len(), test.Len())

	netCfg := cfg.Net(ds.NumClasses(), ds.Features())

	if cfg.Output.GradCheck > 0 {
		runGradientCheck(netCfg, train, cfg.Output.GradCheck)
	}

	var callbacks []net.Callback
	var csvLogger *net.CSVLogger
	if cfg.Output.CSVLog != "" {
		csvLogger = net.NewCSVLogger(cfg.Output.CSVLog, false)
		callbacks = append(callbacks, csvLogger)
	}

	model, err := net.New(netCfg, callbacks...)
	if err != nil {
		log.Fatalf("build model: %v", err)
	}
	if _, err := model.Fit(train.X, train.Y); err != nil {
		log.Fatalf("training failed: %v", err)
	}
	if csvLogger != nil && csvLogger.Err() != nil {
		log.Printf("csv log incomplete: %v", csvLogger.Err())
	}

	history := model.CostHistory()
	if s, err := report.Summarize(history); err == nil {
		log.Printf("cost %s", s)
	}

	evaluate("train", model, train)
	if test.Len() > 0 {
		evaluate("test", model, test)
	}

	if cfg.Output.Plot != "" {
		if err := report.PlotCost(history, netCfg.Epochs, "Training cost", cfg.Output.Plot); err != nil {
			log.Fatalf("plot: %v", err)
		}
		log.Printf("cost curve written to %s", cfg.Output.Plot)
	}
}

// dataRand returns the generator used to shuffle the dataset before splitting.
func dataRand(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, ^*seed))
}

// runGradientCheck compares analytic and numerical gradients on a copy of the
// model configuration, over at most 10 training samples.
func runGradientCheck(cfg net.Config, train *dataset.Dataset, epsilon float64) {
	cfg.Epochs = 1
	cfg.Minibatches = 1
	cfg.PrintProgress = 0

	sample, _ := train.Split(min(1, 10/float64(max(train.Len(), 1))))
	m, err := net.New(cfg)
	if err != nil {
		log.Fatalf("gradient check: %v", err)
	}
	dist, err := m.GradientCheck(sample.X, sample.Y, epsilon)
	if err != nil {
		log.Fatalf("gradient check: %v", err)
	}

	status := "OK"
	switch {
	case dist > 1e-4:
		status = "ERROR"
	case dist > 1e-7:
		status = "WARNING"
	}
	log.Printf("gradient check: distance=%.3g (%s)", dist, status)
}

func evaluate(name string, model *net.MLP, d *dataset.Dataset) {
	pred, err := model.Predict(d.X)
	if err != nil {
		log.Fatalf("%s predict: %v", name, err)
	}
	acc, err := report.Accuracy(pred, d.Y)
	if err != nil {
		log.Fatalf("%s accuracy: %v", name, err)
	}
	log.Printf("%s accuracy: %.2f%%", name, acc*100)

	cm, err := report.ConfusionMatrix(pred, d.Y, model.Config().NOutput)
	if err != nil {
		log.Fatalf("%s confusion: %v", name, err)
	}
	fmt.Fprintf(os.Stderr, "%s confusion (rows true, cols predicted):\n%v\n", name, mat.Formatted(cm, mat.Squeeze()))
}
