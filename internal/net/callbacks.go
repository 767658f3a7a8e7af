package net

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Callback defines the interface for training callbacks.
type Callback interface {
	OnTrainBegin(m *MLP)
	OnTrainEnd(m *MLP)
	OnEpochBegin(epoch int, m *MLP)
	OnEpochEnd(epoch int, cost float64, m *MLP)
	OnBatchEnd(batch int, cost float64, m *MLP)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(m *MLP)                        {}
func (c BaseCallback) OnTrainEnd(m *MLP)                          {}
func (c BaseCallback) OnEpochBegin(epoch int, m *MLP)             {}
func (c BaseCallback) OnEpochEnd(epoch int, cost float64, m *MLP) {}
func (c BaseCallback) OnBatchEnd(batch int, cost float64, m *MLP) {}

// Progress rewrites a single status line after every epoch.
//
//	1: epochs elapsed and cost of the last mini-batch
//	2: 1 plus time elapsed
//	3: 2 plus estimated time until completion
type Progress struct {
	BaseCallback
	Level int

	w      io.Writer
	now    func() time.Time
	start  time.Time
	epochs int
}

// NewProgress creates a Progress callback writing to w.
func NewProgress(w io.Writer, level int) *Progress {
	return &Progress{
		Level: level,
		w:     w,
		now:   time.Now,
	}
}

func (p *Progress) OnTrainBegin(m *MLP) {
	p.start = p.now()
	p.epochs = m.Config().Epochs
}

func (p *Progress) OnEpochEnd(epoch int, cost float64, m *MLP) {
	if p.Level < 1 {
		return
	}

	done := epoch + 1
	var b strings.Builder
	fmt.Fprintf(&b, "\rEpoch: %d/%d | Cost %.2f", done, p.epochs, cost)

	if p.Level >= 2 {
		elapsed := p.now().Sub(p.start)
		fmt.Fprintf(&b, " | Elapsed: %s", hhmmss(elapsed))

		if p.Level >= 3 {
			remaining := elapsed / time.Duration(done) * time.Duration(p.epochs-done)
			fmt.Fprintf(&b, " | ETA: %s", hhmmss(remaining))
		}
	}

	io.WriteString(p.w, b.String())
}

func (p *Progress) OnTrainEnd(m *MLP) {
	if p.Level >= 1 {
		fmt.Fprintln(p.w)
	}
}

// hhmmss formats d as hours:minutes:seconds.
func hhmmss(d time.Duration) string {
	s := int64(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s%3600/60, s%60)
}

// CostRecorder keeps the cost of the last mini-batch of every epoch.
type CostRecorder struct {
	BaseCallback
	Costs []float64
}

func (c *CostRecorder) OnTrainBegin(m *MLP) {
	c.Costs = c.Costs[:0]
}

func (c *CostRecorder) OnEpochEnd(epoch int, cost float64, m *MLP) {
	c.Costs = append(c.Costs, cost)
}
