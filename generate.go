package lgp

import (
	"math/rand"

	"github.com/pkg/errors"
)

// InstructionGeneratorParameters describes the register layout an
// Instruction generator must respect. N is the total register count;
// NInputRegisters also doubles as the length of the flat input vector that
// External-mode instructions address.
type InstructionGeneratorParameters struct {
	NActionRegisters int
	NInputRegisters  int
	NExtraRegisters  int
}

// N returns the total register count: action + input + extra.
func (p InstructionGeneratorParameters) N() int {
	return p.NActionRegisters + p.NInputRegisters + p.NExtraRegisters
}

// Validate checks that the layout can produce at least one legal
// instruction.
func (p InstructionGeneratorParameters) Validate() error {
	if p.N() <= 0 {
		return errors.Wrap(ErrInvalidConfig, "instruction layout has zero registers")
	}
	return nil
}

func (p InstructionGeneratorParameters) random(rng *rand.Rand) Instruction {
	n := p.N()
	mode := Internal
	if p.NInputRegisters > 0 && rng.Intn(2) == 1 {
		mode = External
	}
	var source uint
	if mode == External {
		source = uint(rng.Intn(p.NInputRegisters))
	} else {
		source = uint(rng.Intn(n))
	}
	return Instruction{
		Op:     Ops[rng.Intn(len(Ops))],
		Mode:   mode,
		Source: source,
		Target: uint(rng.Intn(n)),
	}
}

// ProgramGeneratorParameters bounds the shape of generated Programs.
type ProgramGeneratorParameters struct {
	MaxInstructions int
	Instruction     InstructionGeneratorParameters
}

// Validate checks that a program of at least one instruction is possible.
func (p ProgramGeneratorParameters) Validate() error {
	if p.MaxInstructions < 1 {
		return errors.Wrap(ErrInvalidConfig, "max instructions must be >= 1")
	}
	return p.Instruction.Validate()
}
