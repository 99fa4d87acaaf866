// Package sample provides an immutable Sample of observations and a Builder
// that collects and validates them.
//
// # Building a Sample
//
// Observations are added one at a time or in batches. Only finite values
// are accepted:
//
//	b, err := sample.NewBuilder(sample.WithName("Latency"), sample.WithUnit("ms"))
//	for _, d := range durations {
//	    if err := b.AddObservation(d); err != nil {
//	        return err
//	    }
//	}
//	s, err := b.Build()
//
// Build fails with ErrInsufficientSampleSize until at least Threshold
// observations were added (40 by default). A Builder keeps its observations
// after Build, so it can be built again once more data arrives.
//
// A batch added with AddObservations is not transactional: when a value is
// rejected, the values before it remain in the Builder.
//
// # Statistics
//
//	s.Count()    // number of observations
//	s.Sum()      // total
//	s.Mean()     // arithmetic mean
//	s.Variance() // population variance (divided by N)
//	s.StdDev()   // population standard deviation
//
// # Reports
//
// Summary returns an aligned report, rendered with the configured precision:
//
//	fmt.Print(s.Summary())
//
//	// Summary Statistics for Sample: Latency
//	//
//	// Count   :          50
//	// Sum     : 1225.000 ms
//	// Mean    :   24.500 ms
//	// Variance:  208.250 ms
//	// Std Dev :   14.431 ms
//
// The summary is built once; changing the precision afterwards does not
// alter it. String prints every observation before the summary.
//
// # Configuration
//
// Threshold and precision live in a Config. Package-level functions such as
// SetThreshold and SetPrecision change the process-wide DefaultConfig; pass
// WithConfig to isolate a Builder from it:
//
//	cfg := sample.NewConfig()
//	if err := cfg.SetPrecision(5); err != nil {
//	    return err
//	}
//	b, _ := sample.NewBuilder(sample.WithConfig(cfg))
package sample
