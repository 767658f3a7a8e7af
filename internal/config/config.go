// Package config loads the run configuration of the mlp command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/FlavioCFOliveira/neuralmlp/internal/net"

	"gopkg.in/yaml.v3"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Data   Data   `yaml:"data"`
	Model  Model  `yaml:"model"`
	Output Output `yaml:"output"`
}

// Data describes the input CSV and how to prepare it.
type Data struct {
	Path        string  `yaml:"path"`
	LabelCol    int     `yaml:"label_col"`
	Header      bool    `yaml:"header"`
	TrainRatio  float64 `yaml:"train_ratio"`
	Standardize bool    `yaml:"standardize"`
	Shuffle     bool    `yaml:"shuffle"`
}

// Model holds the classifier hyperparameters. The number of features and
// classes come from the data.
type Model struct {
	NHidden        int     `yaml:"n_hidden"`
	L1             float64 `yaml:"l1"`
	L2             float64 `yaml:"l2"`
	Epochs         int     `yaml:"epochs"`
	Eta            float64 `yaml:"eta"`
	Alpha          float64 `yaml:"alpha"`
	DecreaseConst  float64 `yaml:"decrease_const"`
	ShuffleInit    bool    `yaml:"shuffle_init"`
	ShuffleEpoch   bool    `yaml:"shuffle_epoch"`
	Minibatches    int     `yaml:"minibatches"`
	ZeroInitWeight bool    `yaml:"zero_init_weight"`
	Seed           *uint64 `yaml:"random_seed"`
	PrintProgress  int     `yaml:"print_progress"`
	ClipOutput     float64 `yaml:"clip_output"`
}

// Output lists optional artifacts of a run.
type Output struct {
	Plot      string  `yaml:"plot"`
	CSVLog    string  `yaml:"csv_log"`
	GradCheck float64 `yaml:"grad_check_epsilon"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	DataPath    string
	Epochs      int
	NHidden     int
	Eta         float64
	Minibatches int
	Seed        *uint64
	Progress    int
	Plot        string
	CSVLog      string
}

// Default returns a configuration with the classifier's default
// hyperparameters and a 70/30 shuffled, standardized split.
func Default() *Config {
	d := net.DefaultConfig(1, 1)
	return &Config{
		Data: Data{
			LabelCol:    -1,
			Header:      true,
			TrainRatio:  0.7,
			Standardize: true,
			Shuffle:     true,
		},
		Model: Model{
			NHidden:       d.NHidden,
			Epochs:        d.Epochs,
			Eta:           d.Eta,
			ShuffleInit:   d.ShuffleInit,
			ShuffleEpoch:  d.ShuffleEpoch,
			Minibatches:   d.Minibatches,
			DecreaseConst: d.DecreaseConst,
		},
	}
}

// Load reads and validates a Config from YAML. Keys missing from the file
// keep their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML on top of Default. Unknown keys are an error.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DataPath != "" {
		c.Data.Path = o.DataPath
	}
	if o.Epochs > 0 {
		c.Model.Epochs = o.Epochs
	}
	if o.NHidden > 0 {
		c.Model.NHidden = o.NHidden
	}
	if o.Eta > 0 {
		c.Model.Eta = o.Eta
	}
	if o.Minibatches > 0 {
		c.Model.Minibatches = o.Minibatches
	}
	if o.Seed != nil {
		seed := *o.Seed
		c.Model.Seed = &seed
	}
	if o.Progress > 0 {
		c.Model.PrintProgress = o.Progress
	}
	if o.Plot != "" {
		c.Output.Plot = o.Plot
	}
	if o.CSVLog != "" {
		c.Output.CSVLog = o.CSVLog
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Data.Path == "" {
		return errors.New("data.path must be set")
	}
	if c.Data.TrainRatio <= 0 || c.Data.TrainRatio > 1 {
		return fmt.Errorf("data.train_ratio must be in (0, 1] (got %g)", c.Data.TrainRatio)
	}
	if c.Output.GradCheck < 0 {
		return fmt.Errorf("output.grad_check_epsilon must be >= 0 (got %g)", c.Output.GradCheck)
	}
	// Problem size is not known yet; 1x1 stands in for it.
	if err := c.Net(1, 1).Validate(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	return nil
}

// Net converts the model section into classifier hyperparameters for a
// problem with nOutput classes and nFeatures features.
func (c *Config) Net(nOutput, nFeatures int) net.Config {
	m := c.Model
	return net.Config{
		NOutput:        nOutput,
		NFeatures:      nFeatures,
		NHidden:        m.NHidden,
		L1:             m.L1,
		L2:             m.L2,
		Epochs:         m.Epochs,
		Eta:            m.Eta,
		Alpha:          m.Alpha,
		DecreaseConst:  m.DecreaseConst,
		ShuffleInit:    m.ShuffleInit,
		ShuffleEpoch:   m.ShuffleEpoch,
		Minibatches:    m.Minibatches,
		ZeroInitWeight: m.ZeroInitWeight,
		Seed:           m.Seed,
		PrintProgress:  m.PrintProgress,
		ClipOutput:     m.ClipOutput,
	}
}
