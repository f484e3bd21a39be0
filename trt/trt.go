// Package trt post-processes the per-word reading time table: rows
// whose total reading time falls outside plausible bounds are removed
// before statistical modeling.
package trt

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	// Column is the reading time column the filter operates on.
	Column = "total_reading_time"

	// DefaultMin and DefaultMax bound plausible per-word total
	// reading times in ms.
	DefaultMin = 150
	DefaultMax = 4000
)

// Result reports what the filter did.
type Result struct {
	// Skipped is true when the input file does not exist or the
	// reading time column is missing. Both are no-op successes.
	Skipped bool

	Before  int
	After   int
	Removed int
}

// Filter reads the CSV table at path, keeps the rows whose reading
// time lies in [lo, hi] inclusive, and writes the table back to the
// same path.
//
// A missing file and a missing reading time column are no-op
// successes: downstream steps tolerate an unfiltered table better
// than a halted pipeline. Unreadable input and write failures are
// errors.
func Filter(path string, lo, hi float64) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Skipped: true}, nil
		}
		return Result{}, fmt.Errorf("could not read %s: %w", path, err)
	}

	records, err := readAll(data)
	if err != nil {
		return Result{}, fmt.Errorf("could not parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return Result{Skipped: true}, nil
	}

	col := -1
	for i, name := range records[0] {
		if name == Column {
			col = i
			break
		}
	}

	if col == -1 {
		return Result{Skipped: true}, nil
	}

	filtered := make([][]string, 0, len(records))
	filtered = append(filtered, records[0])
	for _, rec := range records[1:] {
		if col >= len(rec) {
			continue
		}

		v, err := strconv.ParseFloat(rec[col], 64)
		if err != nil {
			continue
		}

		if v >= lo && v <= hi {
			filtered = append(filtered, rec)
		}
	}

	if err := writeAll(path, filtered); err != nil {
		return Result{}, fmt.Errorf("could not write filtered data to %s: %w", path, err)
	}

	before := len(records) - 1
	after := len(filtered) - 1

	return Result{Before: before, After: after, Removed: before - after}, nil
}

func readAll(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func writeAll(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
