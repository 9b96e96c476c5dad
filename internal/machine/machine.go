// Package machine drives an interpreter: it runs the fetch, decode and
// execute cycle, handles breakpoints and paces the emulation.
package machine

import (
	"errors"
	"fmt"

	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/chip8vm/internal/instruction"
	"github.com/retroenv/chip8vm/internal/interpreter"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// ErrBreakpoint is returned by Step when the program counter reaches a breakpoint.
var ErrBreakpoint = errors.New("breakpoint")

// BreakpointError is returned when execution stops at a breakpoint address.
// Stepping again continues execution at the same address.
type BreakpointError struct {
	Address uint16
}

func (e *BreakpointError) Error() string {
	return fmt.Sprintf("breakpoint at $%03X", e.Address)
}

// Is reports whether target is ErrBreakpoint.
func (e *BreakpointError) Is(target error) bool {
	return target == ErrBreakpoint
}

// Options of the machine.
type Options struct {
	Breakpoints set.Set[uint16] // program counter values that stop execution
}

// Machine executes the program of an interpreter.
type Machine struct {
	logger *log.Logger
	cpu    *interpreter.Interpreter

	breakpoints set.Set[uint16]
	breakHit    bool // breakpoint at the current program counter was reported

	waiting instruction.Instruction // key wait instruction to execute again
	cycles  uint64
}

// New returns a machine driving the given interpreter.
func New(logger *log.Logger, cpu *interpreter.Interpreter, opts Options) *Machine {
	breakpoints := opts.Breakpoints
	if breakpoints == nil {
		breakpoints = set.New[uint16]()
	}

	return &Machine{
		logger:      logger,
		cpu:         cpu,
		breakpoints: breakpoints,
	}
}

// Interpreter returns the driven interpreter.
func (m *Machine) Interpreter() *interpreter.Interpreter {
	return m.cpu
}

// Cycles returns the number of executed steps.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// Step executes a single instruction. An instruction that waits for a key is
// executed again by every Step until a key is pressed, without fetching.
// Unrecognized instruction words halt the machine before any state change.
func (m *Machine) Step() (interpreter.Result, error) {
	if m.waiting != nil && m.cpu.AwaitingKey() {
		res, err := m.cpu.Execute(m.waiting)
		if err != nil {
			return interpreter.Result{}, fmt.Errorf("executing key wait: %w", err)
		}
		if !res.AwaitingKey {
			m.waiting = nil
		}
		m.cycles++
		return res, nil
	}

	pc := m.cpu.PC()
	if m.breakpoints.Contains(pc) && !m.breakHit {
		m.breakHit = true
		return interpreter.Result{}, &BreakpointError{Address: pc}
	}
	m.breakHit = false

	word, err := m.cpu.Peek()
	if err != nil {
		return interpreter.Result{}, fmt.Errorf("stepping at $%03X: %w", pc, err)
	}

	ins := instruction.Decode(word)
	if u, ok := ins.(instruction.Unrecognized); ok {
		return interpreter.Result{}, &interpreter.UnrecognizedError{
			Address: pc,
			Word:    u.Word,
		}
	}

	if _, err := m.cpu.Fetch(); err != nil {
		return interpreter.Result{}, fmt.Errorf("stepping at $%03X: %w", pc, err)
	}

	res, err := m.cpu.Execute(ins)
	if err != nil {
		return interpreter.Result{}, fmt.Errorf("executing '%s' at $%03X: %w", disasm.Format(ins), pc, err)
	}
	if res.AwaitingKey {
		m.waiting = ins
	}

	m.cycles++
	return res, nil
}

// LogState logs all registers, the key latch and the call stack of the interpreter.
func (m *Machine) LogState() {
	state := m.cpu.State()

	m.logger.Info("Machine state",
		log.Hex("pc", state.PC),
		log.Hex("i", state.I),
		log.Int("sp", state.SP),
		log.Uint8("dt", state.DT),
		log.Uint8("st", state.ST),
		log.Int("lit", m.cpu.Screen().Lit()),
	)

	if key, pressed := m.cpu.Key(); pressed {
		m.logger.Info("Key pressed", log.Hex("key", key))
	}
	if b, err := m.cpu.Byte(state.I); err == nil {
		m.logger.Info("Memory at I", log.Hex("value", b))
	}

	if word, err := m.cpu.Peek(); err == nil {
		m.logger.Info("Next instruction",
			log.Hex("word", word),
			log.String("asm", disasm.Word(word)),
		)
	}

	for x := range state.V {
		m.logger.Info("Register",
			log.String("name", fmt.Sprintf("V%X", x)),
			log.Hex("value", state.V[x]),
		)
	}
	for i := range state.SP {
		m.logger.Info("Stack",
			log.Int("level", i),
			log.Hex("return", state.Stack[i]),
		)
	}
}

// TraceHook returns an interpreter trace function that logs every executed
// instruction at debug level.
func TraceHook(logger *log.Logger) func(interpreter.Event) {
	return func(event interpreter.Event) {
		logger.Debug("Executed",
			log.Hex("address", event.Address),
			log.String("asm", disasm.Format(event.Instruction)),
		)
	}
}
