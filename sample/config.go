package sample

import (
	"sync"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultThreshold is the minimum sample size used when none is configured.
	DefaultThreshold = 40

	// MinimumThreshold is the lowest threshold that may be configured. The
	// formulas here do not correct for degrees of freedom, so smaller samples
	// would give biased results.
	MinimumThreshold = 30

	// DefaultPrecision is the number of digits after the decimal point in a Summary.
	DefaultPrecision = 3

	// MinimumPrecision and MaximumPrecision bound the configurable precision.
	MinimumPrecision = 1
	MaximumPrecision = 15
)

// Config holds the minimum sample size and the formatting precision shared
// by Builders and Samples. It is safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	threshold int
	precision int
}

// NewConfig returns a Config with default threshold and precision.
func NewConfig() *Config {
	return &Config{
		threshold: DefaultThreshold,
		precision: DefaultPrecision,
	}
}

// Threshold returns the current minimum sample size.
func (c *Config) Threshold() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.threshold
}

// SetThreshold updates the minimum sample size. The value must be at least
// MinimumThreshold; otherwise the current threshold is kept.
func (c *Config) SetThreshold(threshold int) error {
	if threshold < MinimumThreshold {
		return errors.WithHintf(
			errors.Wrapf(ErrInvalidArgument, "threshold %d is below the minimum of %d", threshold, MinimumThreshold),
			"use a threshold of %d or more", MinimumThreshold)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.threshold = threshold
	return nil
}

// Precision returns the number of digits printed after the decimal point.
func (c *Config) Precision() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.precision
}

// SetPrecision updates the formatting precision. Summaries that were
// already rendered keep their original precision.
func (c *Config) SetPrecision(precision int) error {
	if precision < MinimumPrecision || precision > MaximumPrecision {
		return errors.Wrapf(ErrInvalidArgument, "precision %d is outside [%d, %d]",
			precision, MinimumPrecision, MaximumPrecision)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.precision = precision
	return nil
}

// Reset restores the default threshold and precision.
func (c *Config) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.threshold = DefaultThreshold
	c.precision = DefaultPrecision
}

var defaultConfig = NewConfig()

// DefaultConfig returns the process-wide Config used by Builders and
// Samples that were not given one explicitly.
func DefaultConfig() *Config {
	return defaultConfig
}

// Threshold returns the process-wide minimum sample size.
func Threshold() int { return defaultConfig.Threshold() }

// SetThreshold updates the process-wide minimum sample size.
func SetThreshold(threshold int) error { return defaultConfig.SetThreshold(threshold) }

// Precision returns the process-wide formatting precision.
func Precision() int { return defaultConfig.Precision() }

// SetPrecision updates the process-wide formatting precision.
func SetPrecision(precision int) error { return defaultConfig.SetPrecision(precision) }

// ResetDefaults restores the process-wide configuration to its defaults.
func ResetDefaults() { defaultConfig.Reset() }
