// Package sample computes descriptive statistics over a fixed set of observations.
package sample

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// Sample is an immutable set of observations together with its summary
// statistics. Statistics are computed on first use and cached; a Sample is
// safe for concurrent use.
//
// Variance and standard deviation are population statistics (divided by N,
// not N-1). The minimum sample size keeps the difference negligible.
type Sample struct {
	name   string
	unit   string
	values []float64
	cfg    *Config

	sumOnce sync.Once
	sum     float64

	sqDevOnce sync.Once
	sqDev     float64

	summaryOnce sync.Once
	summary     *Summary
}

// New creates a Sample from a copy of values. It fails with
// ErrInvalidArgument if values is nil or holds fewer observations than the
// threshold of cfg (the default Config when cfg is nil). Values are not
// checked for finiteness; use a Builder for validated input.
func New(name, unit string, values []float64, cfg *Config) (*Sample, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if values == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "no observations")
	}
	if threshold := cfg.Threshold(); len(values) < threshold {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"sample size is less than the threshold: %d < %d", len(values), threshold)
	}
	owned := make([]float64, len(values))
	copy(owned, values)
	return newSample(name, unit, owned, cfg), nil
}

// newSample takes ownership of values without validating them.
func newSample(name, unit string, values []float64, cfg *Config) *Sample {
	s := &Sample{
		name:   name,
		unit:   unit,
		values: values,
		cfg:    cfg,
	}
	if s.name == "" {
		s.name = fmt.Sprintf("Sample@%p", s)
	}
	return s
}

// Name returns the name of the sample.
func (s *Sample) Name() string {
	return s.name
}

// Unit returns the unit of measurement, or "" if none was given.
func (s *Sample) Unit() string {
	return s.unit
}

// Values returns a copy of the observations in insertion order.
func (s *Sample) Values() []float64 {
	values := make([]float64, len(s.values))
	copy(values, s.values)
	return values
}

// Count returns the number of observations.
func (s *Sample) Count() int {
	return len(s.values)
}

// Sum returns the total of all observations, accumulated in insertion order.
func (s *Sample) Sum() float64 {
	s.sumOnce.Do(func() {
		sum := 0.0
		for _, v := range s.values {
			sum += v
		}
		s.sum = sum
	})
	return s.sum
}

// Mean returns the arithmetic mean of the observations.
func (s *Sample) Mean() float64 {
	return s.Sum() / float64(s.Count())
}

// Variance returns the population variance: the mean of the squared
// deviations from the mean.
func (s *Sample) Variance() float64 {
	s.sqDevOnce.Do(func() {
		mean := s.Mean()
		acc := 0.0
		for _, v := range s.values {
			diff := v - mean
			acc += diff * diff
		}
		s.sqDev = acc
	})
	return s.sqDev / float64(s.Count())
}

// StdDev returns the population standard deviation.
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Summary returns the report of count, sum, mean, variance and standard
// deviation. It is built with the precision in effect on the first call and
// reused afterwards.
func (s *Sample) Summary() *Summary {
	s.summaryOnce.Do(func() {
		precision := s.cfg.Precision()
		sum := newSummary(s.name, s.unit)
		// Count is an integer and carries no unit.
		sum.addRaw(LabelCount, strconv.Itoa(s.Count()))
		sum.add(LabelSum, formatStatistic(s.Sum(), precision))
		sum.add(LabelMean, formatStatistic(s.Mean(), precision))
		sum.add(LabelVariance, formatStatistic(s.Variance(), precision))
		sum.add(LabelStdDev, formatStatistic(s.StdDev(), precision))
		s.summary = sum
	})
	return s.summary
}

// String lists every observation on its own line, followed by a blank line
// and the summary.
func (s *Sample) String() string {
	suffix := ""
	if s.unit != "" {
		suffix = " " + s.unit
	}

	var sb strings.Builder
	for _, v := range s.values {
		sb.WriteString(formatObservation(v))
		sb.WriteString(suffix)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	sb.WriteString(s.Summary().String())
	return sb.String()
}
