package qlearning

import (
	"math/rand"

	lgp "github.com/urmzd/linear-gp-with-rl"
)

// Consts bundles the learning-rate, discount, and exploration parameters
// of tabular Q-learning, defaulting to the same values as
// original_source's QConsts::default.
type Consts struct {
	Alpha   float64
	Gamma   float64
	Epsilon float64
}

// DefaultConsts returns the reference hyperparameters used by the original
// implementation.
func DefaultConsts() Consts {
	return Consts{Alpha: 0.25, Gamma: 0.125, Epsilon: 0.05}
}

// ActionRegisterPair names the action/register chosen by a policy step.
type ActionRegisterPair struct {
	Action   int
	Register int
}

// Table is an n_registers x n_actions Q-value table.
type Table struct {
	Values   [][]float64
	NActions int
	Consts   Consts
}

// NewTable allocates a zeroed Q-table.
func NewTable(nRegisters, nActions int, consts Consts) Table {
	values := make([][]float64, nRegisters)
	for i := range values {
		values[i] = make([]float64, nActions)
	}
	return Table{Values: values, NActions: nActions, Consts: consts}
}

// DuplicateNew returns a fresh zeroed table with the same shape and
// consts, used when QProgram.DuplicateNew mints a new individual.
func (t Table) DuplicateNew() Table {
	return NewTable(len(t.Values), t.NActions, t.Consts)
}

// Clone returns an independent deep copy, used to give each trial its own
// table to update during fitness evaluation.
func (t Table) Clone() Table {
	values := make([][]float64, len(t.Values))
	for i, row := range t.Values {
		values[i] = append([]float64(nil), row...)
	}
	return Table{Values: values, NActions: t.NActions, Consts: t.Consts}
}

// actionArgmax returns the index of the largest Q-value in the row for
// register. Ties resolve to the first maximal index, since an action must
// always be chosen to keep a trial progressing.
func (t Table) actionArgmax(register int) int {
	row := t.Values[register]
	best := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[best] {
			best = i
		}
	}
	return best
}

// Eval implements epsilon-greedy action selection: it finds the winning
// register via AllArgMax over the full register vector (ties broken
// uniformly at random), then with probability Epsilon picks a uniformly
// random action instead of the table's best action for that register. ok
// is false when registers is empty, meaning there is no winning register.
func (t Table) Eval(rng *rand.Rand, registers lgp.Registers) (pair ActionRegisterPair, ok bool) {
	winners := registers.AllArgMax()
	if len(winners) == 0 {
		return ActionRegisterPair{}, false
	}
	register := winners[rng.Intn(len(winners))]

	var action int
	if rng.Float64() < t.Consts.Epsilon {
		action = rng.Intn(t.NActions)
	} else {
		action = t.actionArgmax(register)
	}
	return ActionRegisterPair{Action: action, Register: register}, true
}

// Update applies the canonical single TD update to the Q-value for
// current, using the best action value available from next's register:
//
//	Q[r,a] += alpha * (reward + gamma*max_a' Q[r',a'] - Q[r,a])
func (t Table) Update(current, next ActionRegisterPair, reward float64) {
	currentValue := t.Values[current.Register][current.Action]
	nextValue := t.Values[next.Register][t.actionArgmax(next.Register)]
	t.Values[current.Register][current.Action] += t.Consts.Alpha * (reward + t.Consts.Gamma*nextValue - currentValue)
}
