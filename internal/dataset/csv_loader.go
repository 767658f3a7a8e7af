package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// LoadCSV loads a labeled dataset from a CSV file.
// labelCol is the index of the label column; negative values count from the
// end, so -1 is the last column. All other columns are parsed as float
// features. hasHeader skips the first line if true.
func LoadCSV(filename string, labelCol int, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file, labelCol, hasHeader)
}

// ReadCSV is LoadCSV over an arbitrary reader.
//
// Labels are kept as strings and encoded to class indices in sorted order,
// numerically when every label parses as a number, lexically otherwise.
// Dataset.Classes maps each index back to its label.
func ReadCSV(r io.Reader, labelCol int, hasHeader bool) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}
	if len(records) <= startRow {
		return nil, fmt.Errorf("%w: csv has no data rows", ErrMalformed)
	}

	numCols := len(records[startRow])
	if numCols < 2 {
		return nil, fmt.Errorf("%w: need at least one feature and one label column, got %d columns", ErrMalformed, numCols)
	}
	if labelCol < 0 {
		labelCol += numCols
	}
	if labelCol < 0 || labelCol >= numCols {
		return nil, fmt.Errorf("%w: label column %d out of range for %d columns", ErrMalformed, labelCol, numCols)
	}

	numSamples := len(records) - startRow
	X := mat.NewDense(numSamples, numCols-1, nil)
	raw := make([]string, numSamples)

	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols {
			return nil, fmt.Errorf("%w: inconsistent number of columns at row %d", ErrMalformed, i)
		}

		row := X.RawRowView(i - startRow)
		k := 0
		for j, valStr := range record {
			if j == labelCol {
				raw[i-startRow] = strings.TrimSpace(valStr)
				continue
			}
			val, err := strconv.ParseFloat(strings.TrimSpace(valStr), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, col %d: %v", ErrMalformed, i, j, err)
			}
			row[k] = val
			k++
		}
	}

	y, classes := EncodeLabels(raw)
	return &Dataset{X: X, Y: y, Classes: classes}, nil
}

// EncodeLabels maps string labels to class indices 0..k-1 and returns the
// sorted class list.
func EncodeLabels(labels []string) ([]int, []string) {
	seen := make(map[string]bool)
	var classes []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			classes = append(classes, l)
		}
	}

	if allNumeric(classes) {
		slices.SortFunc(classes, func(a, b string) int {
			fa, _ := strconv.ParseFloat(a, 64)
			fb, _ := strconv.ParseFloat(b, 64)
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return strings.Compare(a, b)
		})
	} else {
		slices.Sort(classes)
	}

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	y := make([]int, len(labels))
	for i, l := range labels {
		y[i] = index[l]
	}
	return y, classes
}

func allNumeric(values []string) bool {
	for _, v := range values {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
	}
	return true
}
