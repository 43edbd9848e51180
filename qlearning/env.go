package qlearning

import lgp "github.com/urmzd/linear-gp-with-rl"

// Env is a reinforcement-learning environment fused with a program's
// register machine via a shared QTable. A single Env instance is shared
// across every organism's evaluation within a generation, so fitness
// evaluation for this package must run single-threaded (Driver.Workers ==
// 1): see the concurrency note on lgp.evalFitness.
type Env interface {
	lgp.ValidInput

	// Init prepares the environment before a batch of trials begins.
	Init()

	// Finish tears the environment down after a batch of trials ends.
	Finish()

	// UpdateState resets the environment to a particular initial state,
	// one of Parameters.States.
	UpdateState(state any)

	// Sim applies action and returns the reward for the step and whether
	// the episode has reached a terminal state.
	Sim(action int) (reward float64, terminal bool)

	// Reset clears any per-trial state so the next trial starts clean.
	Reset()
}
