// Package interpreter implements the CHIP-8 virtual machine state and the
// execution of decoded instructions.
//
// The interpreter is single threaded and does no pacing of its own. Callers
// fetch a word, decode it with the instruction package and pass the result to
// Execute. The delay and sound timers are only decremented by TickTimers,
// which the caller invokes at 60 Hz independently of the instruction rate.
package interpreter

import (
	"fmt"

	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/memory"
)

const (
	// RegisterCount is the number of general purpose registers.
	RegisterCount = 16

	// StackDepth is the maximum number of nested calls.
	StackDepth = 16

	// flag is the index of the flag register VF.
	flag = 0xF
)

// Result describes the effect of an executed instruction on its callers.
type Result struct {
	// Redraw is set if the pixel buffer was modified.
	Redraw bool
	// AwaitingKey is set if the instruction waits for a key press and has
	// to be executed again once a key is pressed.
	AwaitingKey bool
}

// State is a snapshot of the registers of an interpreter.
type State struct {
	PC    uint16
	I     uint16
	SP    int
	V     [RegisterCount]uint8
	Stack [StackDepth]uint16
	DT    uint8
	ST    uint8
}

// Interpreter holds the complete state of one virtual machine.
type Interpreter struct {
	memory *memory.Memory
	screen display.Buffer

	v  [RegisterCount]uint8
	i  uint16
	pc uint16

	stack [StackDepth]uint16
	sp    int // number of stack entries in use

	dt uint8 // delay timer
	st uint8 // sound timer

	key        uint8
	keyPressed bool

	awaitingKey bool
	lastAddress uint16 // address of the last fetched word

	quirks Quirks
	random func() uint8
	trace  func(Event)
}

// New returns an interpreter with the font and the given ROM loaded and the
// program counter at the start of the program space.
func New(rom []byte, opts Options) (*Interpreter, error) {
	mem := memory.New()
	mem.LoadFont()
	if err := mem.LoadROM(rom); err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	random := opts.Random
	if random == nil {
		random = defaultRandom
	}

	return &Interpreter{
		memory:      mem,
		pc:          memory.ProgramStart,
		lastAddress: memory.ProgramStart,
		quirks:      opts.Quirks,
		random:      random,
		trace:       opts.Trace,
	}, nil
}

// Fetch returns the instruction word at the program counter and advances
// the program counter to the next instruction.
func (c *Interpreter) Fetch() (uint16, error) {
	word, err := c.memory.FetchWord(c.pc)
	if err != nil {
		return 0, fmt.Errorf("fetching instruction: %w", err)
	}
	c.lastAddress = c.pc
	c.pc += 2
	return word, nil
}

// Peek returns the instruction word at the program counter without
// advancing it.
func (c *Interpreter) Peek() (uint16, error) {
	word, err := c.memory.FetchWord(c.pc)
	if err != nil {
		return 0, fmt.Errorf("fetching instruction: %w", err)
	}
	return word, nil
}

// TickTimers decrements the delay and sound timers if they are not zero.
func (c *Interpreter) TickTimers() {
	if c.dt > 0 {
		c.dt--
	}
	if c.st > 0 {
		c.st--
	}
}

// SetKey latches the currently pressed key, only the low nibble is used.
func (c *Interpreter) SetKey(key uint8) {
	c.key = key & 0x0F
	c.keyPressed = true
}

// ReleaseKey clears the key latch.
func (c *Interpreter) ReleaseKey() {
	c.keyPressed = false
}

// Key returns the latched key and whether a key is pressed.
func (c *Interpreter) Key() (uint8, bool) {
	return c.key, c.keyPressed
}

// PC returns the program counter.
func (c *Interpreter) PC() uint16 {
	return c.pc
}

// I returns the address register.
func (c *Interpreter) I() uint16 {
	return c.i
}

// SP returns the number of entries on the call stack.
func (c *Interpreter) SP() int {
	return c.sp
}

// V returns the value of register Vx.
func (c *Interpreter) V(x uint8) uint8 {
	return c.v[x&0x0F]
}

// DelayTimer returns the delay timer.
func (c *Interpreter) DelayTimer() uint8 {
	return c.dt
}

// SoundTimer returns the sound timer.
func (c *Interpreter) SoundTimer() uint8 {
	return c.st
}

// AwaitingKey returns whether the last executed instruction waits for a key.
func (c *Interpreter) AwaitingKey() bool {
	return c.awaitingKey
}

// Screen returns a copy of the pixel buffer.
func (c *Interpreter) Screen() display.Buffer {
	return c.screen
}

// Byte returns the memory byte at the given address.
func (c *Interpreter) Byte(address uint16) (byte, error) {
	return c.memory.Byte(address)
}

// State returns a snapshot of all registers.
func (c *Interpreter) State() State {
	return State{
		PC:    c.pc,
		I:     c.i,
		SP:    c.sp,
		V:     c.v,
		Stack: c.stack,
		DT:    c.dt,
		ST:    c.st,
	}
}
