package lgp

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/urmzd/linear-gp-with-rl/xover"
)

// Program is a straight-line register machine: an ordered instruction
// sequence operating over a fixed-length register vector, plus the
// bookkeeping a Driver needs to track and select it.
type Program struct {
	ID           uuid.UUID
	Instructions []Instruction
	Registers    Registers
	FitnessScore FitnessScore
}

// GenerateProgram builds a new Program with a uniformly random instruction
// count in [1, MaxInstructions] and freshly generated registers, id, and an
// unevaluated fitness score.
func GenerateProgram(rng *rand.Rand, params ProgramGeneratorParameters) *Program {
	n := 1 + rng.Intn(params.MaxInstructions)
	instructions := make([]Instruction, n)
	for i := range instructions {
		instructions[i] = params.Instruction.random(rng)
	}
	return &Program{
		ID:           uuid.New(),
		Instructions: instructions,
		Registers:    NewRegisters(params.Instruction.N()),
		FitnessScore: NotEvaluatedScore(),
	}
}

// Exec runs every instruction against p's registers in order, reading
// External operands from input.Flat(). It returns false if any instruction
// produced a non-finite register value; execution still runs to completion
// so the registers reflect the full program, but the caller should treat a
// false result as grounds to poison the program's fitness with
// OutOfBoundsScore.
func (p *Program) Exec(input ValidInput) bool {
	flat := input.Flat()
	ok := true
	for _, instr := range p.Instructions {
		if !instr.Execute(p.Registers, flat) {
			ok = false
		}
	}
	return ok
}

// Fitness implements the Fit / Organism accessor.
func (p *Program) Fitness() FitnessScore { return p.FitnessScore }

// ResetRegisters zeroes the register vector, e.g. between classification
// samples or between Q-learning trials.
func (p *Program) ResetRegisters() { p.Registers.Reset() }

// Reset clears both registers and fitness score, readying p for
// re-evaluation.
func (p *Program) Reset() {
	p.Registers.Reset()
	p.FitnessScore = NotEvaluatedScore()
}

// Mutate returns a new Program derived from p by exactly one structural
// edit, chosen with equal probability among the edits that are legal given
// p's current length and params.MaxInstructions:
//
//   - replace: overwrite one randomly chosen instruction
//   - insert: splice in one new instruction at a random position (requires
//     len(p.Instructions) < params.MaxInstructions)
//   - delete: drop one randomly chosen instruction (requires at least two
//     instructions, since a program may never go empty)
func (p *Program) Mutate(rng *rand.Rand, params ProgramGeneratorParameters) *Program {
	n := len(p.Instructions)
	type edit int
	const (
		editReplace edit = iota
		editInsert
		editDelete
	)
	choices := []edit{editReplace}
	if n < params.MaxInstructions {
		choices = append(choices, editInsert)
	}
	if n > 1 {
		choices = append(choices, editDelete)
	}
	chosen := choices[rng.Intn(len(choices))]

	instructions := make([]Instruction, n)
	copy(instructions, p.Instructions)

	switch chosen {
	case editReplace:
		instructions[rng.Intn(n)] = params.Instruction.random(rng)
	case editInsert:
		at := rng.Intn(n + 1)
		instructions = append(instructions[:at:at], append([]Instruction{params.Instruction.random(rng)}, instructions[at:]...)...)
	case editDelete:
		at := rng.Intn(n)
		instructions = append(instructions[:at:at], instructions[at+1:]...)
	}

	return &Program{
		ID:           uuid.New(),
		Instructions: instructions,
		Registers:    NewRegisters(len(p.Registers)),
		FitnessScore: NotEvaluatedScore(),
	}
}

// TwoPointCrossover produces two children by swapping independently sampled
// instruction chunks between p and mate, delegating to xover.TwoPoint.
// Children receive fresh ids and zeroed registers: the first child's sized
// like p's, the second child's sized like mate's.
func (p *Program) TwoPointCrossover(rng *rand.Rand, mate *Program) [2]*Program {
	childAInstr, childBInstr := xover.TwoPoint(rng, p.Instructions, mate.Instructions)
	return [2]*Program{
		{
			ID:           uuid.New(),
			Instructions: childAInstr,
			Registers:    NewRegisters(len(p.Registers)),
			FitnessScore: NotEvaluatedScore(),
		},
		{
			ID:           uuid.New(),
			Instructions: childBInstr,
			Registers:    NewRegisters(len(mate.Registers)),
			FitnessScore: NotEvaluatedScore(),
		},
	}
}

// DuplicateNew returns a fresh clone of p: same instructions, a new id, and
// zeroed registers and fitness. Used to fill surviving population slots that
// variation doesn't otherwise replenish.
func (p *Program) DuplicateNew() *Program {
	instructions := make([]Instruction, len(p.Instructions))
	copy(instructions, p.Instructions)
	return &Program{
		ID:           uuid.New(),
		Instructions: instructions,
		Registers:    NewRegisters(len(p.Registers)),
		FitnessScore: NotEvaluatedScore(),
	}
}
