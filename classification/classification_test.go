package classification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lgp "github.com/urmzd/linear-gp-with-rl"
	"github.com/urmzd/linear-gp-with-rl/classification"
)

func hooks() lgp.EventHooks[*classification.Organism, classification.Parameters, lgp.ProgramGeneratorParameters] {
	return lgp.EventHooks[*classification.Organism, classification.Parameters, lgp.ProgramGeneratorParameters]{}
}

type sample struct {
	values []float64
	class  int
}

func (s sample) Flat() []float64 { return s.values }
func (s sample) Class() int      { return s.class }

func programParams() lgp.ProgramGeneratorParameters {
	return lgp.ProgramGeneratorParameters{
		MaxInstructions: 6,
		Instruction: lgp.InstructionGeneratorParameters{
			NActionRegisters: 2,
			NInputRegisters:  2,
			NExtraRegisters:  0,
		},
	}
}

func TestEvalFitnessScoresAccuracy(t *testing.T) {
	params := programParams()

	// A program that simply copies each input into the matching action
	// register should classify this separable dataset perfectly.
	program := &lgp.Program{
		Instructions: []lgp.Instruction{
			{Op: lgp.OpAdd, Mode: lgp.External, Source: 0, Target: 0},
			{Op: lgp.OpAdd, Mode: lgp.External, Source: 1, Target: 1},
		},
		Registers: lgp.NewRegisters(params.Instruction.N()),
	}
	org := classification.New(program)

	fp := &classification.Parameters{
		NActionRegisters: 2,
		Inputs: []classification.Input{
			sample{values: []float64{1, 0}, class: 0},
			sample{values: []float64{0, 1}, class: 1},
			sample{values: []float64{2, 0}, class: 0},
		},
	}

	org.EvalFitness(fp)
	v, ok := org.Fitness().Value()
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestEvalFitnessTieCountsAsMiss(t *testing.T) {
	params := programParams()
	program := &lgp.Program{
		// Leaves both action registers at zero: a tie every time.
		Instructions: []lgp.Instruction{
			{Op: lgp.OpSub, Mode: lgp.Internal, Source: 0, Target: 0},
		},
		Registers: lgp.NewRegisters(params.Instruction.N()),
	}
	org := classification.New(program)

	fp := &classification.Parameters{
		NActionRegisters: 2,
		Inputs: []classification.Input{
			sample{values: []float64{1, 0}, class: 0},
			sample{values: []float64{0, 1}, class: 1},
		},
	}

	org.EvalFitness(fp)
	v, _ := org.Fitness().Value()
	assert.Equal(t, 0.0, v)
}

func TestEvalFitnessOutOfBoundsPoisons(t *testing.T) {
	params := programParams()
	program := &lgp.Program{
		Instructions: []lgp.Instruction{
			{Op: lgp.OpMul, Mode: lgp.External, Source: 0, Target: 0},
		},
		Registers: lgp.NewRegisters(params.Instruction.N()),
	}
	program.Registers[0] = 1e308
	org := classification.New(program)

	fp := &classification.Parameters{
		NActionRegisters: 2,
		Inputs: []classification.Input{
			sample{values: []float64{1e308}, class: 0},
		},
	}

	org.EvalFitness(fp)
	assert.True(t, org.Fitness().IsInvalid())
}

func TestDriverConvergesOnSeparableDataset(t *testing.T) {
	fp := classification.Parameters{
		NActionRegisters: 2,
		Inputs: []classification.Input{
			sample{values: []float64{5, 0}, class: 0},
			sample{values: []float64{0, 5}, class: 1},
			sample{values: []float64{9, 0}, class: 0},
			sample{values: []float64{0, 9}, class: 1},
		},
	}

	hp := lgp.HyperParameters[classification.Parameters, lgp.ProgramGeneratorParameters]{
		PopulationSize:   40,
		Gap:              0.5,
		MutationPercent:  0.5,
		CrossoverPercent: 0.5,
		NGenerations:     30,
		FitnessParams:    fp,
		ProgramParams:    programParams(),
	}

	driver := lgp.NewDriver[*classification.Organism](classification.Generate, hooks(), 4, 42)
	it, err := driver.Iterator(hp)
	require.NoError(t, err)

	var best float64
	for {
		snapshot, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		b, err := snapshot.Best()
		require.NoError(t, err)
		if v, ok := b.Fitness().Value(); ok && v > best {
			best = v
		}
	}

	assert.Greater(t, best, 0.5, "expected the population's best accuracy to improve over a random baseline")
}
