package qlearning

import (
	"math/rand"
	"sort"

	lgp "github.com/urmzd/linear-gp-with-rl"
)

// Parameters configures Q-learning fitness: the shared environment, the
// set of initial states each trial starts from, the step budget for a
// single trial, and the generator epsilon-greedy action selection samples
// from. Rand is owned by the caller (typically the same seed that drives
// the rest of a run) rather than created fresh per evaluation, so that a
// run seeded once is reproducible end to end.
type Parameters struct {
	Environment      Env
	States           []any
	MaxEpisodeLength int
	Rand             *rand.Rand
}

// GeneratorParameters configures how fresh QPrograms are built: the
// underlying program's shape, the action count (the QTable's column
// count), and the learning consts every fresh table starts with.
type GeneratorParameters struct {
	Program  lgp.ProgramGeneratorParameters
	NActions int
	Consts   Consts
}

// QProgram fuses a register-machine Program with a QTable: the program
// picks a winning register each step, and the table turns that register
// into an action via epsilon-greedy selection.
type QProgram struct {
	Program *lgp.Program
	Table   Table
}

// Generate builds a fresh QProgram: a fresh Program plus a zeroed QTable
// sized to the program's register count and params.NActions.
func Generate(rng *rand.Rand, params GeneratorParameters) *QProgram {
	program := lgp.GenerateProgram(rng, params.Program)
	table := NewTable(len(program.Registers), params.NActions, params.Consts)
	return &QProgram{Program: program, Table: table}
}

func (q *QProgram) Fitness() lgp.FitnessScore { return q.Program.Fitness() }

func (q *QProgram) Reset() { q.Program.Reset() }

func (q *QProgram) Mutate(rng *rand.Rand, params GeneratorParameters) *QProgram {
	return &QProgram{
		Program: q.Program.Mutate(rng, params.Program),
		Table:   q.Table.DuplicateNew(),
	}
}

func (q *QProgram) TwoPointCrossover(rng *rand.Rand, mate *QProgram) [2]*QProgram {
	children := q.Program.TwoPointCrossover(rng, mate.Program)
	return [2]*QProgram{
		{Program: children[0], Table: q.Table.DuplicateNew()},
		{Program: children[1], Table: mate.Table.DuplicateNew()},
	}
}

func (q *QProgram) DuplicateNew() *QProgram {
	return &QProgram{
		Program: q.Program.DuplicateNew(),
		Table:   q.Table.DuplicateNew(),
	}
}

// trialResult pairs a trial's accumulated score with the table it produced,
// so the median-scoring trial's table can be selected afterward.
type trialResult struct {
	score float64
	table Table
}

// EvalFitness runs one trial per initial state in params.States, each
// against its own clone of q.Table, and keeps the median-scoring trial's
// table as q.Table afterward -- matching original_source's QProgram
// fitness evaluation. A step's Q-value is only updated when the winning
// register changes between steps, since an unchanged register has no new
// information about which action it would pick next.
func (q *QProgram) EvalFitness(params *Parameters) {
	if len(params.States) == 0 {
		q.Program.FitnessScore = lgp.ValidScore(0)
		return
	}

	rng := params.Rand
	params.Environment.Init()
	defer params.Environment.Finish()

	results := make([]trialResult, 0, len(params.States))
	outOfBounds := false

	for _, state := range params.States {
		params.Environment.UpdateState(state)
		table := q.Table.Clone()

		score, ok := q.runTrial(rng, params, &table)
		if !ok {
			outOfBounds = true
			break
		}
		results = append(results, trialResult{score: score, table: table})

		q.Program.ResetRegisters()
		params.Environment.Reset()
	}

	if outOfBounds {
		q.Program.FitnessScore = lgp.OutOfBoundsScore()
		return
	}

	sort.Slice(results, func(i, j int) bool { return results[i].score < results[j].score })
	median := results[len(results)/2]

	q.Program.FitnessScore = lgp.ValidScore(median.score)
	q.Table = median.table
}

// runTrial runs one episode starting from the environment's current state,
// updating table in place. It returns the accumulated score and false if
// the program's registers ever went non-finite.
func (q *QProgram) runTrial(rng *rand.Rand, params *Parameters, table *Table) (score float64, ok bool) {
	current, hasCurrent, finite := q.getActionState(rng, *table, params.Environment)
	if !finite {
		return 0, false
	}
	if !hasCurrent {
		return 0, true
	}

	for step := 0; step < params.MaxEpisodeLength; step++ {
		reward, terminal := params.Environment.Sim(current.Action)
		score += reward
		if terminal {
			break
		}

		next, hasNext, finite := q.getActionState(rng, *table, params.Environment)
		if !finite {
			return score, false
		}
		if !hasNext {
			break
		}

		if current.Register != next.Register {
			table.Update(current, next, reward)
		}
		current = next
	}

	return score, true
}

// getActionState executes the program against the environment's current
// observation and turns the resulting winning register into an
// ActionRegisterPair via the table's epsilon-greedy policy. finite is
// false if the execution produced a non-finite register value.
func (q *QProgram) getActionState(rng *rand.Rand, table Table, env Env) (pair ActionRegisterPair, hasWinner bool, finite bool) {
	finite = q.Program.Exec(env)
	pair, hasWinner = table.Eval(rng, q.Program.Registers)
	return pair, hasWinner, finite
}
