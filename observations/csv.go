// Package observations loads raw observation values into a sample.Builder.
package observations

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"

	"github.com/sartorproj/samplestats/sample"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "y")
	ValueIndex  int    // Column index for values when HasHeader is false
	IDColumn    string // Column name for series ID (optional, for filtering)
	IDFilter    string // Value to filter by ID column
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
	Strict      bool   // Abort on the first unparseable or non-finite value
}

// LoadStats describes the outcome of a load.
type LoadStats struct {
	Rows    int // data rows read, after ID filtering
	Added   int // observations added to the builder
	Skipped int // rows without a usable value

	// Warnings combines the errors of rows skipped for holding an
	// unparseable or non-finite value. Always nil in strict mode.
	Warnings error
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV adds the observations in a CSV file to b.
func LoadCSV(filename string, b *sample.Builder, opts *CSVOptions) (LoadStats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return LoadStats{}, errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()

	stats, err := LoadCSVFromReader(file, b, opts)
	if err != nil {
		return stats, errors.Wrapf(err, "loading %s", filename)
	}
	return stats, nil
}

// LoadCSVFromReader adds the observations read from r to b, in row order.
// Missing values ("", "NA", "NaN", "null") are skipped. Other bad values are
// skipped and reported in LoadStats.Warnings, or abort the load in strict
// mode. Observations added before an error stay in the builder.
func LoadCSVFromReader(r io.Reader, b *sample.Builder, opts *CSVOptions) (LoadStats, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	var stats LoadStats

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return stats, errors.Wrapf(err, "skipping row %d", i+1)
		}
	}

	valueIdx, idIdx := opts.ValueIndex, -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return stats, errors.Wrap(err, "reading header")
		}
		valueIdx, idIdx = headerIndices(header, opts)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, errors.Wrap(err, "reading CSV")
		}

		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			if unquote(record[idIdx]) != opts.IDFilter {
				continue
			}
		}
		stats.Rows++

		if valueIdx < 0 || valueIdx >= len(record) {
			stats.Skipped++
			continue
		}
		valStr := unquote(record[valueIdx])
		if isMissing(valStr) {
			stats.Skipped++
			continue
		}

		err = addValue(b, valStr)
		if err == nil {
			stats.Added++
			continue
		}
		line, _ := reader.FieldPos(valueIdx)
		err = errors.Wrapf(err, "line %d", line)
		if opts.Strict {
			return stats, err
		}
		stats.Skipped++
		stats.Warnings = multierr.Append(stats.Warnings, err)
	}

	return stats, nil
}

func addValue(b *sample.Builder, s string) error {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrapf(sample.ErrInvalidObservation, "cannot parse %q", s)
	}
	return b.AddObservation(val)
}

// headerIndices locates the value and ID columns. When the value column is
// not found, the last column is used.
func headerIndices(header []string, opts *CSVOptions) (valueIdx, idIdx int) {
	valueIdx, idIdx = -1, -1
	for i, h := range header {
		h = unquote(h)
		switch {
		case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")):
			valueIdx = i
		case opts.IDColumn != "" && h == opts.IDColumn:
			idIdx = i
		case h == "unique_id" || h == "id" || h == "ID":
			if idIdx == -1 && opts.IDColumn == "" {
				idIdx = i
			}
		}
	}
	if valueIdx == -1 {
		valueIdx = len(header) - 1
	}
	return valueIdx, idIdx
}

func unquote(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func isMissing(s string) bool {
	return s == "" || s == "NA" || s == "NaN" || s == "null"
}
