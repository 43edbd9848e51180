package lgp

import "math/rand"

// Fit is satisfied by anything the population can rank: a single fitness
// accessor. Every Organism satisfies it, as does *Program.
type Fit interface {
	Fitness() FitnessScore
}

// Organism is the capability set a Driver needs from the thing it
// evolves. O is the organism's own concrete type (the interface is
// self-referential so Mutate/TwoPointCrossover/DuplicateNew can return
// more organisms of the same kind); F is the fitness evaluator's parameter
// type; G is the generator's parameter type.
//
// classification.Organism and qlearning.QProgram are the two
// implementations shipped by this module; both wrap a *Program and differ
// only in how EvalFitness scores it.
type Organism[O any, F any, G any] interface {
	Fit

	// Mutate returns a new organism derived from the receiver by one
	// structural edit.
	Mutate(rng *rand.Rand, params G) O

	// TwoPointCrossover returns two children produced by swapping
	// instruction chunks between the receiver and mate.
	TwoPointCrossover(rng *rand.Rand, mate O) [2]O

	// EvalFitness scores the organism in place, setting its FitnessScore.
	EvalFitness(params *F)

	// DuplicateNew returns a fresh clone: same program, new identity,
	// zeroed registers and fitness.
	DuplicateNew() O

	// Reset clears registers and fitness so the organism can be
	// re-evaluated, e.g. across Q-learning trials.
	Reset()
}
