// SPDX-License-Identifier: MIT

// Package csvio moves decision tables between CSV and the topsis core.
//
// Input layout: one header row, then one row per alternative. The first
// column is the alternative identifier, every further column a numeric
// criterion. Output layout: the input columns followed by "Topsis Score"
// and "Rank", rows in input order.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/katalvlaran/lvrank/topsis"
)

// minColumns is the identifier column plus at least two criteria.
const minColumns = 3

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	// ErrNotFound reports a missing input file.
	ErrNotFound = errors.New("csvio: input file not found")

	// ErrNoHeader reports an input without a header row.
	ErrNoHeader = errors.New("csvio: missing header row")

	// ErrTooFewColumns reports a header with fewer than three columns.
	ErrTooFewColumns = errors.New("csvio: input must contain three or more columns")

	// ErrMalformed reports CSV that the reader cannot tokenize.
	ErrMalformed = errors.New("csvio: malformed csv")
)

// Read parses a decision table. Criterion cells go through
// topsis.ParseValues, so non-numeric cells surface as *topsis.ValidationError
// with the offending row and column. Shape rules beyond the column minimum
// (row counts, ragged rows) are left to topsis.Validate.
func Read(r io.Reader) (topsis.DecisionMatrix, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return topsis.DecisionMatrix{}, fmt.Errorf("csvio: read: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return topsis.DecisionMatrix{}, ErrNoHeader
	}
	if err != nil {
		return topsis.DecisionMatrix{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(header) < minColumns {
		return topsis.DecisionMatrix{}, fmt.Errorf("%w: got %d", ErrTooFewColumns, len(header))
	}

	dm := topsis.DecisionMatrix{Columns: trimAll(header)}
	for i := 0; ; i++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return topsis.DecisionMatrix{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		vals, err := topsis.ParseValues(rec[1:], i)
		if err != nil {
			return topsis.DecisionMatrix{}, err
		}
		dm.Rows = append(dm.Rows, topsis.Row{ID: strings.TrimSpace(rec[0]), Values: vals})
	}

	return dm, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (topsis.DecisionMatrix, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return topsis.DecisionMatrix{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return topsis.DecisionMatrix{}, fmt.Errorf("csvio: open: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Write renders res as CSV: header, then one record per alternative in
// input order.
func Write(w io.Writer, res *topsis.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(res.Header()); err != nil {
		return fmt.Errorf("csvio: write: %w", err)
	}
	if err := cw.WriteAll(res.Records()); err != nil {
		return fmt.Errorf("csvio: write: %w", err)
	}

	return nil
}

// Encode returns the CSV rendering of res.
func Encode(res *topsis.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, res); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile writes res to path, replacing any existing file.
func WriteFile(path string, res *topsis.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: create: %w", err)
	}
	if err := Write(f, res); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func trimAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}

	return out
}
