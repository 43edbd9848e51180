// Package classification adapts the engine's register-machine Program to
// supervised classification: fitness is accuracy over a fixed set of
// labeled samples, scored by the argmax of the program's action window
// after executing each sample.
package classification

import (
	"math/rand"

	lgp "github.com/urmzd/linear-gp-with-rl"
)

// Input is one labeled sample. Flat supplies the values External-mode
// instructions read; Class is the ground-truth label, an index into the
// action window.
type Input interface {
	lgp.ValidInput
	Class() int
}

// Parameters configures classification fitness: the labeled dataset and
// the width of the action window argmax is computed over.
type Parameters struct {
	Inputs           []Input
	NActionRegisters int
}

// Organism wraps a *lgp.Program with classification fitness, implementing
// lgp.Organism[*Organism, Parameters, lgp.ProgramGeneratorParameters].
type Organism struct {
	Program *lgp.Program
}

// New wraps an existing program for classification.
func New(program *lgp.Program) *Organism {
	return &Organism{Program: program}
}

// Generate builds a fresh classification organism.
func Generate(rng *rand.Rand, params lgp.ProgramGeneratorParameters) *Organism {
	return New(lgp.GenerateProgram(rng, params))
}

func (o *Organism) Fitness() lgp.FitnessScore { return o.Program.Fitness() }

func (o *Organism) Reset() { o.Program.Reset() }

func (o *Organism) Mutate(rng *rand.Rand, params lgp.ProgramGeneratorParameters) *Organism {
	return New(o.Program.Mutate(rng, params))
}

func (o *Organism) TwoPointCrossover(rng *rand.Rand, mate *Organism) [2]*Organism {
	children := o.Program.TwoPointCrossover(rng, mate.Program)
	return [2]*Organism{New(children[0]), New(children[1])}
}

func (o *Organism) DuplicateNew() *Organism {
	return New(o.Program.DuplicateNew())
}

// EvalFitness runs the program against every input, resetting registers
// between samples, and scores accuracy as correct/total. A tie for the
// argmax counts as a miss, per the classification accuracy rule. Any
// non-finite register value during execution poisons the organism with
// OutOfBoundsScore and stops evaluation early.
func (o *Organism) EvalFitness(params *Parameters) {
	if len(params.Inputs) == 0 {
		o.Program.FitnessScore = lgp.ValidScore(0)
		return
	}

	correct := 0
	for _, in := range params.Inputs {
		if !o.Program.Exec(in) {
			o.Program.FitnessScore = lgp.OutOfBoundsScore()
			return
		}

		window := o.Program.Registers[:params.NActionRegisters]
		idx, ok := window.ArgMax()
		if ok && idx == in.Class() {
			correct++
		}
		o.Program.ResetRegisters()
	}

	o.Program.FitnessScore = lgp.ValidScore(float64(correct) / float64(len(params.Inputs)))
}
