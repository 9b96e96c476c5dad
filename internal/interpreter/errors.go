package interpreter

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

var (
	// ErrUnrecognized is matched by errors for words that are not an instruction.
	ErrUnrecognized = errors.New("unrecognized instruction")
	// ErrStackFault is matched by stack overflow and underflow errors.
	ErrStackFault = errors.New("stack fault")
	// ErrStackOverflow is matched by errors of calls exceeding the stack depth.
	ErrStackOverflow = chip8.ErrStackOverflow
	// ErrStackUnderflow is matched by errors of returns with an empty stack.
	ErrStackUnderflow = chip8.ErrStackUnderflow
)

// UnrecognizedError is returned when executing an unrecognized instruction word.
type UnrecognizedError struct {
	Address uint16 // address the word was read from
	Word    uint16
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("%s $%04X at $%03X", ErrUnrecognized, e.Word, e.Address)
}

// Is reports whether target is ErrUnrecognized.
func (e *UnrecognizedError) Is(target error) bool {
	return target == ErrUnrecognized
}

// StackFaultError is returned when a call or return violates the stack bounds.
type StackFaultError struct {
	Address  uint16 // address of the faulting instruction
	Overflow bool   // overflow on call if set, underflow on return otherwise
}

func (e *StackFaultError) Error() string {
	return fmt.Sprintf("%s at $%03X", e.kind(), e.Address)
}

// Is reports whether target is ErrStackFault or the matching overflow or underflow error.
func (e *StackFaultError) Is(target error) bool {
	return target == ErrStackFault || target == e.kind()
}

func (e *StackFaultError) kind() error {
	if e.Overflow {
		return ErrStackOverflow
	}
	return ErrStackUnderflow
}
