// Package lgp implements a linear genetic programming engine: register
// machine programs evolved by a generational genetic algorithm.
//
// A Program is a straight-line sequence of Instructions operating over a
// fixed-length vector of float64 Registers. The package defines the
// representation (Registers, Instruction, Program), the population and
// driver machinery that evolves it (Population, HyperParameters,
// Driver, Iterator), and the FitnessScore type shared by every
// fitness adapter.
//
// Fitness is domain-specific and lives outside this package: see
// github.com/urmzd/linear-gp-with-rl/classification for supervised
// classification fitness and github.com/urmzd/linear-gp-with-rl/qlearning
// for fitness fused with tabular Q-learning. Both adapters implement the
// Organism interface defined here, so the driver in this package is
// agnostic to which one it is evolving.
package lgp

// TODO: keep this in sync with the README once one exists.
