// Package observations feeds raw measurements into a sample.Builder.
//
// # Loading from CSV
//
// Load one column of a CSV file:
//
//	b, _ := sample.NewBuilder(sample.WithName("Request latency"), sample.WithUnit("ms"))
//	opts := observations.DefaultCSVOptions()
//	opts.ValueColumn = "latency"
//	stats, err := observations.LoadCSV("latency.csv", b, opts)
//	if err != nil {
//	    return err
//	}
//	s, err := b.Build()
//
// Files without a header select the value column by index:
//
//	opts := &observations.CSVOptions{ValueIndex: 0, Delimiter: ','}
//	stats, err := observations.LoadCSVFromReader(os.Stdin, b, opts)
//
// # Filtering
//
// Rows may be filtered on an ID column:
//
//	opts.IDColumn = "host"
//	opts.IDFilter = "web-1"
//
// # Bad Values
//
// Missing values ("", "NA", "NaN", "null") are skipped silently. Values that
// cannot be parsed, or parse to an infinity, are skipped and collected in
// LoadStats.Warnings. With Strict set the load stops at the first such value
// instead; rows loaded before it remain in the builder.
package observations
