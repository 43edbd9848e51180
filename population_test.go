package lgp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lgp "github.com/urmzd/linear-gp-with-rl"
)

func scored(v float64) *lgp.Program {
	return &lgp.Program{FitnessScore: lgp.ValidScore(v)}
}

func TestPopulationSortAndRanks(t *testing.T) {
	pop := lgp.NewPopulation[*lgp.Program](3)
	pop.Push(scored(3))
	pop.Push(scored(1))
	pop.Push(scored(2))
	pop.Sort()

	worst, err := pop.Worst()
	require.NoError(t, err)
	best, err := pop.Best()
	require.NoError(t, err)
	median, err := pop.Median()
	require.NoError(t, err)

	v, _ := worst.Fitness().Value()
	assert.Equal(t, 1.0, v)
	v, _ = best.Fitness().Value()
	assert.Equal(t, 3.0, v)
	v, _ = median.Fitness().Value()
	assert.Equal(t, 2.0, v)
}

func TestPopulationEmptyAccessorsError(t *testing.T) {
	pop := lgp.NewPopulation[*lgp.Program](0)
	_, err := pop.Best()
	assert.ErrorIs(t, err, lgp.ErrEmptyPopulation)
	_, err = pop.Worst()
	assert.ErrorIs(t, err, lgp.ErrEmptyPopulation)
	_, err = pop.Median()
	assert.ErrorIs(t, err, lgp.ErrEmptyPopulation)
}

func TestPopulationAllEvaluated(t *testing.T) {
	pop := lgp.NewPopulation[*lgp.Program](2)
	pop.Push(scored(1))
	pop.Push(&lgp.Program{FitnessScore: lgp.NotEvaluatedScore()})
	assert.False(t, pop.AllEvaluated())
}

func TestPopulationCloneIsIndependent(t *testing.T) {
	pop := lgp.NewPopulation[*lgp.Program](2)
	pop.Push(scored(1))
	clone := pop.Clone()
	pop.Push(scored(2))
	assert.Equal(t, 1, clone.Len())
	assert.Equal(t, 2, pop.Len())
}
