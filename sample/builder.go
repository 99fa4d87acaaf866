package sample

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Builder accumulates validated observations and produces Samples from them.
//
// Building does not consume the observations: more may be added afterwards
// and a later Build includes both old and new ones. A Builder is not safe
// for concurrent use.
type Builder struct {
	values    []float64
	name      string
	unit      string
	threshold int // explicit threshold from WithCount, 0 if unset
	cfg       *Config
	logger    *zap.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	name   string
	unit   string
	count  *int
	cfg    *Config
	logger *zap.Logger
}

// WithName sets the name given to built Samples.
func WithName(name string) BuilderOption {
	return func(o *builderOptions) { o.name = name }
}

// WithUnit sets the unit of measurement of the observations.
func WithUnit(unit string) BuilderOption {
	return func(o *builderOptions) { o.unit = unit }
}

// WithCount sizes the Builder for count observations. The count must not be
// below the current threshold and becomes the threshold checked by Build.
// It is not a cap: more observations may be added.
func WithCount(count int) BuilderOption {
	return func(o *builderOptions) { o.count = &count }
}

// WithConfig makes the Builder and its Samples use cfg instead of the default Config.
func WithConfig(cfg *Config) BuilderOption {
	return func(o *builderOptions) { o.cfg = cfg }
}

// WithLogger sets the logger used to report rejected input and builds.
func WithLogger(logger *zap.Logger) BuilderOption {
	return func(o *builderOptions) { o.logger = logger }
}

// NewBuilder creates an empty Builder. It fails with ErrInvalidArgument if
// WithCount requests fewer observations than the threshold.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	o := builderOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg == nil {
		o.cfg = DefaultConfig()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	threshold := o.cfg.Threshold()
	capacity := threshold
	explicit := 0
	if o.count != nil {
		if *o.count < threshold {
			return nil, errors.Wrapf(ErrInvalidArgument,
				"count %d is lower than the threshold %d", *o.count, threshold)
		}
		capacity = *o.count
		explicit = *o.count
	}

	return &Builder{
		values:    make([]float64, 0, capacity),
		name:      o.name,
		unit:      o.unit,
		threshold: explicit,
		cfg:       o.cfg,
		logger:    o.logger,
	}, nil
}

// SetName sets the name given to the next built Sample.
func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

// SetUnit sets the unit of measurement. An empty unit means none.
func (b *Builder) SetUnit(unit string) *Builder {
	b.unit = unit
	return b
}

// AddObservation appends x. It fails with ErrInvalidObservation, leaving the
// Builder unchanged, if x is infinite or NaN.
func (b *Builder) AddObservation(x float64) error {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		b.logger.Debug("Rejected observation", zap.Float64("value", x), zap.Int("count", len(b.values)))
		return errors.Wrapf(ErrInvalidObservation, "observations must be finite, got %v", x)
	}
	b.values = append(b.values, x)
	return nil
}

// AddObservations appends xs in order. It stops at the first invalid value
// and returns its error; observations before it stay added. Use Count to
// find out how many were accepted.
func (b *Builder) AddObservations(xs []float64) error {
	for i, x := range xs {
		if err := b.AddObservation(x); err != nil {
			return errors.Wrapf(err, "observation %d of %d", i+1, len(xs))
		}
	}
	return nil
}

// Count returns the number of observations added so far.
func (b *Builder) Count() int {
	return len(b.values)
}

// Threshold returns the minimum number of observations Build requires.
func (b *Builder) Threshold() int {
	if b.threshold != 0 {
		return b.threshold
	}
	return b.cfg.Threshold()
}

// Reset discards all observations. Name and unit are kept.
func (b *Builder) Reset() {
	b.values = b.values[:0]
}

// Build returns a Sample holding a copy of the observations added so far.
// It fails with ErrInsufficientSampleSize if there are fewer than Threshold.
func (b *Builder) Build() (*Sample, error) {
	count := len(b.values)
	threshold := b.Threshold()
	if count < threshold {
		b.logger.Debug("Sample too small to build",
			zap.String("name", b.name), zap.Int("count", count), zap.Int("threshold", threshold))
		return nil, errors.WithHintf(
			errors.Wrapf(ErrInsufficientSampleSize, "the sample has %d observations, need %d", count, threshold),
			"add at least %d more observations", threshold-count)
	}

	values := make([]float64, count)
	copy(values, b.values)
	s := newSample(b.name, b.unit, values, b.cfg)
	b.logger.Debug("Built sample", zap.String("name", s.Name()), zap.Int("count", count))
	return s, nil
}
