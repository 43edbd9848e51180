package lgp

import "github.com/pkg/errors"

// Sentinel errors returned by this package. Wrap with github.com/pkg/errors
// so callers can inspect the underlying cause via errors.Cause while still
// matching with errors.Is against these sentinels.
var (
	// ErrInvalidConfig is returned when a HyperParameters or generator
	// parameters value fails validation.
	ErrInvalidConfig = errors.New("lgp: invalid configuration")

	// ErrEmptyPopulation is returned by operations that require at least
	// one organism (Best, Worst, Median, PopWorst) when the population is
	// empty.
	ErrEmptyPopulation = errors.New("lgp: population is empty")

	// ErrNotAllEvaluated is a fatal assertion: every organism in the
	// population must carry a fitness score other than NotEvaluated
	// before ranking.
	ErrNotAllEvaluated = errors.New("lgp: not every organism was evaluated")
)
