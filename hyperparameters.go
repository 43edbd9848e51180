package lgp

import (
	"math"

	"github.com/pkg/errors"
)

// HyperParameters configures a Driver run: population shape,
// survival/variation rates, generation budget, and the domain-specific
// fitness and program parameters threaded through to organisms.
type HyperParameters[F any, G any] struct {
	PopulationSize   int
	Gap              float64
	MutationPercent  float64
	CrossoverPercent float64
	NGenerations     int
	FitnessParams    F
	ProgramParams    G
}

// Validate checks the invariants a HyperParameters value must satisfy
// before a run can start.
func (h HyperParameters[F, G]) Validate() error {
	if h.PopulationSize < 2 {
		return errors.Wrap(ErrInvalidConfig, "population_size must be >= 2")
	}
	if h.Gap < 0 || h.Gap > 1 {
		return errors.Wrap(ErrInvalidConfig, "gap must be in [0, 1]")
	}
	if h.MutationPercent < 0 || h.MutationPercent > 1 {
		return errors.Wrap(ErrInvalidConfig, "mutation_percent must be in [0, 1]")
	}
	if h.CrossoverPercent < 0 || h.CrossoverPercent > 1 {
		return errors.Wrap(ErrInvalidConfig, "crossover_percent must be in [0, 1]")
	}
	if h.MutationPercent+h.CrossoverPercent > 1 {
		return errors.Wrap(ErrInvalidConfig, "mutation_percent + crossover_percent must be <= 1")
	}
	if h.NGenerations < 0 {
		return errors.Wrap(ErrInvalidConfig, "n_generations must be >= 0")
	}
	return nil
}

// NToDrop returns how many members the survive phase must remove to honor
// Gap: Gap is the fraction of the population that is replaced each
// generation. Computed as len - floor((1-gap)*len), equivalently
// ceil(gap*len), so a fractional gap always rounds the drop count up.
func (h HyperParameters[F, G]) NToDrop() int {
	return h.PopulationSize - int(math.Floor((1-h.Gap)*float64(h.PopulationSize)))
}
