package observations

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/sartorproj/samplestats/sample"
)

func newBuilder(t *testing.T) *sample.Builder {
	t.Helper()
	cfg := sample.NewConfig()
	require.NoError(t, cfg.SetThreshold(sample.MinimumThreshold))
	b, err := sample.NewBuilder(sample.WithConfig(cfg))
	require.NoError(t, err)
	return b
}

// integersCSV returns a CSV with header "ds,y" and values 0..n-1.
func integersCSV(n int) string {
	var sb strings.Builder
	sb.WriteString("ds,y\n")
	for i := 0; i < n; i++ {
		sb.WriteString("2020-01-01,")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("\n")
	}
	return sb.String()
}

func values(t *testing.T, b *sample.Builder) []float64 {
	t.Helper()
	s, err := b.Build()
	require.NoError(t, err)
	return s.Values()
}

func TestLoadCSVFromReader(t *testing.T) {
	b := newBuilder(t)
	stats, err := LoadCSVFromReader(strings.NewReader(integersCSV(30)), b, DefaultCSVOptions())
	require.NoError(t, err)

	assert.Equal(t, 30, stats.Rows)
	assert.Equal(t, 30, stats.Added)
	assert.Equal(t, 0, stats.Skipped)
	assert.NoError(t, stats.Warnings)

	got := values(t, b)
	for i, v := range got {
		assert.Equal(t, float64(i), v)
	}
}

func TestLoadCSVWithFilter(t *testing.T) {
	csvData := `unique_id,ds,y
A,2020-01-01,100
B,2020-01-01,200
A,2020-01-02,101
B,2020-01-02,201
A,2020-01-03,102`

	b := newBuilder(t)
	opts := DefaultCSVOptions()
	opts.IDColumn = "unique_id"
	opts.IDFilter = "A"

	stats, err := LoadCSVFromReader(strings.NewReader(csvData), b, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 3, b.Count())
}

func TestLoadCSVWithNAValues(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,NA
2020-01-03,102
2020-01-04,NaN
2020-01-05,
2020-01-06,null
2020-01-07,104`

	b := newBuilder(t)
	stats, err := LoadCSVFromReader(strings.NewReader(csvData), b, DefaultCSVOptions())
	require.NoError(t, err)

	assert.Equal(t, 7, stats.Rows)
	assert.Equal(t, 3, stats.Added)
	assert.Equal(t, 4, stats.Skipped)
	assert.NoError(t, stats.Warnings, "missing values are not warnings")
}

func TestLoadCSVInvalidValues(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,abc
2020-01-03,Inf
2020-01-04,103`

	b := newBuilder(t)
	stats, err := LoadCSVFromReader(strings.NewReader(csvData), b, DefaultCSVOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Added)
	assert.Equal(t, 2, stats.Skipped)

	warnings := multierr.Errors(stats.Warnings)
	require.Len(t, warnings, 2)
	assert.True(t, errors.Is(warnings[0], sample.ErrInvalidObservation))
	assert.Contains(t, warnings[0].Error(), "line 3")
	assert.True(t, errors.Is(warnings[1], sample.ErrInvalidObservation))
	assert.Contains(t, warnings[1].Error(), "line 4")
}

func TestLoadCSVStrict(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,101
2020-01-03,+Inf
2020-01-04,103`

	b := newBuilder(t)
	opts := DefaultCSVOptions()
	opts.Strict = true

	stats, err := LoadCSVFromReader(strings.NewReader(csvData), b, opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sample.ErrInvalidObservation))
	assert.Equal(t, 2, stats.Added)
	assert.Equal(t, 2, b.Count(), "rows before the failure stay loaded")
	assert.NoError(t, stats.Warnings)
}

func TestLoadCSVMultipleColumns(t *testing.T) {
	csvData := `ds,Beer,Cement,Gas
2020-01-01,100,200,50
2020-01-02,110,210,55
2020-01-03,120,220,60`

	b := newBuilder(t)
	opts := DefaultCSVOptions()
	opts.ValueColumn = "Cement"

	stats, err := LoadCSVFromReader(strings.NewReader(csvData), b, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Added)

	// Unknown columns fall back to the last one.
	b = newBuilder(t)
	opts.ValueColumn = "Coal"
	_, err = LoadCSVFromReader(strings.NewReader(csvData), b, opts)
	require.NoError(t, err)
	require.NoError(t, b.AddObservations(make([]float64, 27)))
	assert.Equal(t, []float64{50, 55, 60}, values(t, b)[:3])
}

func TestLoadCSVQuotedFields(t *testing.T) {
	csvData := `"unique_id","ds","y"
"Australia","2020-01-01","1000000"
"Australia","2020-01-02","1000100"
"Australia","2020-01-03","1000200"`

	b := newBuilder(t)
	stats, err := LoadCSVFromReader(strings.NewReader(csvData), b, DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Added)
}

func TestLoadCSVWithoutHeader(t *testing.T) {
	csvData := "1.5\n2.5\n3.5\n"

	b := newBuilder(t)
	opts := &CSVOptions{ValueIndex: 0}
	stats, err := LoadCSVFromReader(strings.NewReader(csvData), b, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Added)

	b = newBuilder(t)
	opts = &CSVOptions{ValueIndex: 1, Delimiter: ';', SkipRows: 1}
	stats, err = LoadCSVFromReader(strings.NewReader("# comment;x\na;1\nb;2\n"), b, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Added)
}

func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(integersCSV(40)), 0o644))

	b := newBuilder(t)
	stats, err := LoadCSV(path, b, nil)
	require.NoError(t, err)
	assert.Equal(t, 40, stats.Added)

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), b, nil)
	assert.Error(t, err)
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()
	assert.Equal(t, "y", opts.ValueColumn)
	assert.True(t, opts.HasHeader)
	assert.Equal(t, ',', opts.Delimiter)
	assert.False(t, opts.Strict)
}
