package net

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// CSVLogger logs training progress to a CSV file, one row per epoch.
type CSVLogger struct {
	BaseCallback
	Filename string
	Append   bool

	file   *os.File
	writer *csv.Writer
	start  time.Time
	err    error
}

// NewCSVLogger creates a new CSVLogger.
func NewCSVLogger(filename string, append bool) *CSVLogger {
	return &CSVLogger{
		Filename: filename,
		Append:   append,
	}
}

// Err returns the first error met while writing, if any.
func (c *CSVLogger) Err() error {
	return c.err
}

func (c *CSVLogger) fail(err error) {
	if c.err == nil {
		c.err = err
	}
	log.Printf("CSVLogger: %v", err)
}

func (c *CSVLogger) OnTrainBegin(m *MLP) {
	mode := os.O_CREATE | os.O_WRONLY
	if c.Append {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}

	file, err := os.OpenFile(c.Filename, mode, 0644)
	if err != nil {
		c.fail(fmt.Errorf("open %s: %w", c.Filename, err))
		return
	}
	c.file = file
	c.writer = csv.NewWriter(file)
	c.start = time.Now()

	// Write header if not appending or if file is empty
	info, err := file.Stat()
	if err == nil && (info.Size() == 0 || !c.Append) {
		c.writer.Write([]string{"epoch", "cost", "learning_rate", "time_seconds"})
		c.writer.Flush()
	}
}

func (c *CSVLogger) OnEpochEnd(epoch int, cost float64, m *MLP) {
	if c.writer == nil {
		return
	}

	elapsed := time.Since(c.start).Seconds()
	record := []string{
		strconv.Itoa(epoch + 1),
		strconv.FormatFloat(cost, 'f', 6, 64),
		strconv.FormatFloat(m.LearningRate(), 'g', -1, 64),
		fmt.Sprintf("%.2f", elapsed),
	}

	if err := c.writer.Write(record); err != nil {
		c.fail(fmt.Errorf("write record: %w", err))
	}
	c.writer.Flush()
}

func (c *CSVLogger) OnTrainEnd(m *MLP) {
	if c.file != nil {
		c.writer.Flush()
		if err := c.writer.Error(); err != nil {
			c.fail(fmt.Errorf("flush: %w", err))
		}
		if err := c.file.Close(); err != nil {
			c.fail(fmt.Errorf("close: %w", err))
		}
		c.file = nil
		c.writer = nil
	}
}
