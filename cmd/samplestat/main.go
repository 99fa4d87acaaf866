package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sartorproj/samplestats/observations"
	"github.com/sartorproj/samplestats/sample"
)

type options struct {
	configFile  string
	name        string
	unit        string
	column      string
	valueIndex  int
	noHeader    bool
	delimiter   string
	threshold   int
	precision   int
	summaryOnly bool
	strict      bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "samplestat [flags] [file]",
		Short: "print summary statistics for a column of observations",
		Long: `
Read observations from a CSV file (or standard input when the file is
omitted or "-"), build a sample and print every observation followed by its
summary statistics: count, sum, mean, population variance and standard
deviation.

The sample must hold at least --threshold observations (default 40, minimum 30).
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.configFile != "" {
				fc, err := loadFileConfig(opts.configFile)
				if err != nil {
					return err
				}
				opts.merge(cmd, fc)
			}
			return run(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "YAML file with threshold, precision, name, unit and column")
	f.StringVar(&opts.name, "name", "", "name of the sample")
	f.StringVar(&opts.unit, "unit", "", "unit of measurement of the observations")
	f.StringVar(&opts.column, "column", "y", "header of the value column")
	f.IntVar(&opts.valueIndex, "value-index", 0, "index of the value column when --no-header is set")
	f.BoolVar(&opts.noHeader, "no-header", false, "the input has no header row")
	f.StringVar(&opts.delimiter, "delimiter", ",", `field delimiter ("\t" for tab)`)
	f.IntVar(&opts.threshold, "threshold", sample.DefaultThreshold, "minimum number of observations")
	f.IntVar(&opts.precision, "precision", sample.DefaultPrecision, "digits after the decimal point in the summary")
	f.BoolVar(&opts.summaryOnly, "summary-only", false, "print only the summary, not every observation")
	f.BoolVar(&opts.strict, "strict", false, "fail on the first unparseable or non-finite value")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to standard error")

	return cmd
}

// merge copies values from the config file for flags that were not set.
func (o *options) merge(cmd *cobra.Command, fc *fileConfig) {
	changed := cmd.Flags().Changed
	if fc.Threshold != 0 && !changed("threshold") {
		o.threshold = fc.Threshold
	}
	if fc.Precision != 0 && !changed("precision") {
		o.precision = fc.Precision
	}
	if fc.Name != "" && !changed("name") {
		o.name = fc.Name
	}
	if fc.Unit != "" && !changed("unit") {
		o.unit = fc.Unit
	}
	if fc.Column != "" && !changed("column") {
		o.column = fc.Column
	}
}

func (o *options) csvOptions() (*observations.CSVOptions, error) {
	delim := o.delimiter
	if delim == `\t` {
		delim = "\t"
	}
	r, size := utf8.DecodeRuneInString(delim)
	if r == utf8.RuneError || size != len(delim) {
		return nil, errors.Wrapf(sample.ErrInvalidArgument, "delimiter must be a single character, got %q", o.delimiter)
	}
	return &observations.CSVOptions{
		ValueColumn: o.column,
		ValueIndex:  o.valueIndex,
		HasHeader:   !o.noHeader,
		Delimiter:   r,
		Strict:      o.strict,
	}, nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core)
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	defer func() { _ = logger.Sync() }()

	cfg := sample.NewConfig()
	if err := cfg.SetThreshold(opts.threshold); err != nil {
		return err
	}
	if err := cfg.SetPrecision(opts.precision); err != nil {
		return err
	}

	csvOpts, err := opts.csvOptions()
	if err != nil {
		return err
	}

	b, err := sample.NewBuilder(
		sample.WithName(opts.name),
		sample.WithUnit(opts.unit),
		sample.WithConfig(cfg),
		sample.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	var stats observations.LoadStats
	if source == "-" {
		stats, err = observations.LoadCSVFromReader(cmd.InOrStdin(), b, csvOpts)
	} else {
		stats, err = observations.LoadCSV(source, b, csvOpts)
	}
	if err != nil {
		return err
	}
	for _, w := range multierr.Errors(stats.Warnings) {
		logger.Warn("Skipped observation", zap.Error(w))
	}
	logger.Info("Loaded observations",
		zap.String("source", source),
		zap.String("rows", humanize.Comma(int64(stats.Rows))),
		zap.String("added", humanize.Comma(int64(stats.Added))),
		zap.String("skipped", humanize.Comma(int64(stats.Skipped))))

	s, err := b.Build()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.summaryOnly {
		_, err = fmt.Fprint(out, s.Summary())
	} else {
		_, err = fmt.Fprint(out, s)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "HINT: %s\n", hint)
	}
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
