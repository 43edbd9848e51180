package lgp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	lgp "github.com/urmzd/linear-gp-with-rl"
)

func TestStatsMerge(t *testing.T) {
	var a, b lgp.Stats
	for i := float64(0); i < 5; i++ {
		a = a.Insert(i)
	}
	for i := float64(5); i < 10; i++ {
		b = b.Insert(i)
	}
	stats := a.Merge(b)
	assert.Equal(t, 4.5, stats.Mean())
	assert.Equal(t, 8.25, stats.Variance())
	assert.Equal(t, 10, stats.Len())
}

func TestStatsSummary(t *testing.T) {
	s := sample()
	assert.Equal(t, float64(855), s.Max())
	assert.Equal(t, float64(760), s.Min())
	assert.Equal(t, float64(95), s.Range())
	assert.InDelta(t, 810.1388889, s.Mean(), 1e-6)
	assert.InDelta(t, 829.8418209, s.Variance(), 1e-6)
	assert.InDelta(t, 28.8069752, s.StdDeviation(), 1e-6)
	assert.Equal(t, 36, s.Len())
}

func TestStatsInsertScoreSkipsInvalidScores(t *testing.T) {
	var s lgp.Stats
	s = s.InsertScore(lgp.ValidScore(1))
	s = s.InsertScore(lgp.OutOfBoundsScore())
	s = s.InsertScore(lgp.NotEvaluatedScore())
	s = s.InsertScore(lgp.ValidScore(3))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2.0, s.Mean())
}

func sample() (s lgp.Stats) {
	values := []float64{
		810, 820, 820, 840, 840, 845, 785, 790, 785, 835, 835, 835,
		845, 855, 850, 760, 760, 770, 820, 820, 820, 820, 820, 825,
		775, 775, 775, 825, 825, 825, 815, 825, 825, 770, 760, 765,
	}
	for _, v := range values {
		s = s.Insert(v)
	}
	return s
}
