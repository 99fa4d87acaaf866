package sample

import "github.com/cockroachdb/errors"

// Sentinel errors returned by this package. Use errors.Is to match them;
// returned errors carry additional context.
var (
	// ErrInvalidArgument reports malformed construction or configuration input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidObservation reports an infinite or NaN observation.
	ErrInvalidObservation = errors.New("invalid observation")

	// ErrInsufficientSampleSize reports a build with fewer observations than the threshold.
	ErrInsufficientSampleSize = errors.New("insufficient sample size")
)
