// Package export writes monthly series as two-column data files, generates
// gnuplot scripts over them and runs a chart renderer.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosolrad/internal/radiation"
)

// DataFileName is the file a series is written to inside the output directory
func DataFileName(id radiation.SeriesID) string {
	return fmt.Sprintf("data_%s.txt", id)
}

// WriteSeries writes one "<label> <value>" line per month, values to 2 decimals
func WriteSeries(w io.Writer, months []string, values []float64) error {
	if len(months) != len(values) {
		return &radiation.InvalidInputError{Field: "series", Msg: fmt.Sprintf("%d labels for %d values", len(months), len(values))}
	}

	bw := bufio.NewWriter(w)
	for i, m := range months {
		if _, err := fmt.Fprintf(bw, "%s %.2f\n", m, values[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ParseSeries reads back a file produced by WriteSeries
func ParseSeries(r io.Reader) ([]string, []float64, error) {
	var months []string
	var values []float64

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected 2 columns, got %d", line, len(fields))
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		months = append(months, fields[0])
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return months, values, nil
}

// WriteDataFiles writes every exportable series of calc into dir and returns
// the written paths in export order.
func WriteDataFiles(dir string, calc *radiation.Calculator) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	months := calc.Months()
	paths := make([]string, 0, len(radiation.ExportOrder))
	for _, id := range radiation.ExportOrder {
		values, err := calc.Series(id)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(dir, DataFileName(id))
		if err := writeFile(path, func(w io.Writer) error {
			return WriteSeries(w, months, values)
		}); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
