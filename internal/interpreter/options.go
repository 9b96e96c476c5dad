package interpreter

import (
	"math/rand/v2"

	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/instruction"
)

// ShiftSource selects the register that the shift instructions 8xy6 and 8xyE read.
type ShiftSource int

const (
	// ShiftVx shifts Vx in place and ignores Vy (CHIP-48 and SUPER-CHIP).
	ShiftVx ShiftSource = iota
	// ShiftVy stores Vy shifted by one in Vx (COSMAC VIP).
	ShiftVy
)

func (s ShiftSource) String() string {
	switch s {
	case ShiftVx:
		return "vx"
	case ShiftVy:
		return "vy"
	default:
		return "unknown"
	}
}

// Quirks holds the behaviors that differ between CHIP-8 dialects.
type Quirks struct {
	ShiftSource ShiftSource
	Edge        display.EdgeMode
	// IncrementIndex leaves I pointing after the last register that
	// Fx55 and Fx65 stored or loaded.
	IncrementIndex bool
}

// Event describes an executed instruction.
type Event struct {
	Address     uint16 // address the instruction was fetched from
	Instruction instruction.Instruction
	Result      Result
}

// Options configures an interpreter.
type Options struct {
	Quirks Quirks

	// Random returns uniformly distributed bytes for Cxkk. A nil function
	// uses the process wide source of math/rand/v2.
	Random func() uint8

	// Trace is called after every executed instruction, it must not
	// modify the interpreter.
	Trace func(Event)
}

func defaultRandom() uint8 {
	return uint8(rand.UintN(256))
}
