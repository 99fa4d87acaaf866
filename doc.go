// Package samplestats provides descriptive statistics over fixed samples of observations.
//
// A Sample is an immutable set of finite observations with count, sum,
// mean, population variance and standard deviation, plus an aligned text
// report. Samples are produced by a Builder that validates every
// observation and enforces a minimum sample size.
//
// # Quick Start
//
// Build a sample and print its summary:
//
//	b, _ := sample.NewBuilder(sample.WithName("Test sample"), sample.WithUnit("km"))
//	for i := 0; i < 50; i++ {
//	    b.AddObservation(float64(i))
//	}
//	s, err := b.Build()
//	fmt.Print(s.Summary())
//
// Load observations from a CSV file:
//
//	stats, err := observations.LoadCSV("data.csv", b, observations.DefaultCSVOptions())
//
// # Packages
//
// The library is organized into the following packages:
//
//   - sample: Sample, Builder, Summary and Config
//   - observations: CSV loading into a Builder
//
// The samplestat command under cmd/ prints the report for a CSV column.
package samplestats
