// Package dataset loads tabular CSV data and types its columns by
// inspection, exposing the numeric columns available for clustering.
package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	// ErrNoRows is returned when the input has a header but no data rows.
	ErrNoRows = errors.New("dataset has no data rows")
	// ErrTooFewNumeric is returned when fewer than two numeric columns are
	// available, which blocks feature selection.
	ErrTooFewNumeric = errors.New("dataset needs at least two numeric columns")
)

// Dataset is an immutable table parsed from a CSV upload. Columns whose
// values all parse as numbers are typed numeric and kept as parsed floats.
type Dataset struct {
	columns []string
	rows    int
	numeric map[string][]float64
	order   []string // numeric column names in original column order
}

// Load parses CSV from r. The first record is the header; every column is
// inspected and classified as numeric when all of its values parse as
// integers or floats. Malformed CSV propagates as an error.
func Load(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}

	header := records[0]
	body := records[1:]
	if len(body) == 0 {
		return nil, ErrNoRows
	}

	ds := &Dataset{
		columns: append([]string{}, header...),
		rows:    len(body),
		numeric: make(map[string][]float64),
	}

	for j, name := range header {
		vals := make([]float64, 0, len(body))
		isNumeric := true
		for _, rec := range body {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				isNumeric = false
				break
			}
			vals = append(vals, v)
		}
		if isNumeric {
			ds.numeric[name] = vals
			ds.order = append(ds.order, name)
		}
	}

	return ds, nil
}

// LoadFile opens path and loads it as a CSV dataset.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Columns returns all column names in original order.
func (d *Dataset) Columns() []string {
	return append([]string{}, d.columns...)
}

// NumericColumns returns the names of numeric columns, preserving the
// original column order.
func (d *Dataset) NumericColumns() []string {
	return append([]string{}, d.order...)
}

// Len returns the number of data rows.
func (d *Dataset) Len() int { return d.rows }

// Column returns the parsed values of a numeric column.
func (d *Dataset) Column(name string) ([]float64, bool) {
	v, ok := d.numeric[name]
	if !ok {
		return nil, false
	}
	return append([]float64{}, v...), true
}

// EnsureClusterable reports whether enough numeric columns exist to pick a
// feature pair.
func (d *Dataset) EnsureClusterable() error {
	if len(d.order) < 2 {
		return ErrTooFewNumeric
	}
	return nil
}

// Matrix extracts the N×2 matrix for the chosen feature pair in row order.
// The two names must differ and both must be numeric columns.
func (d *Dataset) Matrix(feature1, feature2 string) ([][]float64, error) {
	if feature1 == feature2 {
		return nil, fmt.Errorf("feature pair must be two distinct columns, got %q twice", feature1)
	}
	a, ok := d.numeric[feature1]
	if !ok {
		return nil, fmt.Errorf("column %q is not a numeric column", feature1)
	}
	b, ok := d.numeric[feature2]
	if !ok {
		return nil, fmt.Errorf("column %q is not a numeric column", feature2)
	}

	X := make([][]float64, d.rows)
	for i := 0; i < d.rows; i++ {
		X[i] = []float64{a[i], b[i]}
	}
	return X, nil
}
