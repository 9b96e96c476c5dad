// Package instruction defines the decoded CHIP-8 instruction set.
//
// Every instruction word decodes to exactly one of the types in this package.
// Words that do not match any known instruction decode to Unrecognized, so
// Decode is defined for all 65536 inputs. All types are comparable, decoding
// the same word twice yields equal values.
package instruction

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction is a decoded instruction. The set of implementations is closed,
// consumers switch over the concrete types.
type Instruction interface {
	// Name returns the assembler mnemonic of the instruction.
	Name() string

	instruction()
}

// Cls clears the display (00E0).
type Cls struct{}

// Ret returns from a subroutine (00EE).
type Ret struct{}

// Jmp jumps to Address (1nnn).
type Jmp struct {
	Address uint16
}

// Call calls the subroutine at Address (2nnn).
type Call struct {
	Address uint16
}

// SeByte skips the next instruction if Vx == Value (3xkk).
type SeByte struct {
	X     uint8
	Value uint8
}

// SneByte skips the next instruction if Vx != Value (4xkk).
type SneByte struct {
	X     uint8
	Value uint8
}

// SeReg skips the next instruction if Vx == Vy (5xy0).
type SeReg struct {
	X, Y uint8
}

// LdVx sets Vx = Value (6xkk).
type LdVx struct {
	X     uint8
	Value uint8
}

// AddVx sets Vx = Vx + Value without carry (7xkk).
type AddVx struct {
	X     uint8
	Value uint8
}

// Mov sets Vx = Vy (8xy0).
type Mov struct {
	X, Y uint8
}

// Or sets Vx = Vx | Vy (8xy1).
type Or struct {
	X, Y uint8
}

// And sets Vx = Vx & Vy (8xy2).
type And struct {
	X, Y uint8
}

// Xor sets Vx = Vx ^ Vy (8xy3).
type Xor struct {
	X, Y uint8
}

// AddReg sets Vx = Vx + Vy, VF = carry (8xy4).
type AddReg struct {
	X, Y uint8
}

// Sub sets Vx = Vx - Vy, VF = not borrow (8xy5).
type Sub struct {
	X, Y uint8
}

// Shr shifts right by one, VF = dropped bit (8xy6).
type Shr struct {
	X, Y uint8
}

// Subn sets Vx = Vy - Vx, VF = not borrow (8xy7).
type Subn struct {
	X, Y uint8
}

// Shl shifts left by one, VF = dropped bit (8xyE).
type Shl struct {
	X, Y uint8
}

// SneReg skips the next instruction if Vx != Vy (9xy0).
type SneReg struct {
	X, Y uint8
}

// LdI sets I = Address (Annn).
type LdI struct {
	Address uint16
}

// JmpV0 jumps to Address + V0 (Bnnn).
type JmpV0 struct {
	Address uint16
}

// Rnd sets Vx = random byte & Mask (Cxkk).
type Rnd struct {
	X    uint8
	Mask uint8
}

// Drw draws an N byte sprite from memory at I to (Vx, Vy), VF = collision (Dxyn).
type Drw struct {
	X, Y uint8
	N    uint8
}

// Skp skips the next instruction if the key with the value of Vx is pressed (Ex9E).
type Skp struct {
	X uint8
}

// Sknp skips the next instruction if the key with the value of Vx is not pressed (ExA1).
type Sknp struct {
	X uint8
}

// LdVxDT sets Vx = delay timer (Fx07).
type LdVxDT struct {
	X uint8
}

// LdVxKey waits for a key press and stores the key in Vx (Fx0A).
type LdVxKey struct {
	X uint8
}

// LdDTVx sets delay timer = Vx (Fx15).
type LdDTVx struct {
	X uint8
}

// LdSTVx sets sound timer = Vx (Fx18).
type LdSTVx struct {
	X uint8
}

// AddI sets I = I + Vx (Fx1E).
type AddI struct {
	X uint8
}

// LdFont sets I to the font glyph of the digit in Vx (Fx29).
type LdFont struct {
	X uint8
}

// LdBCD stores the decimal digits of Vx at I, I+1 and I+2 (Fx33).
type LdBCD struct {
	X uint8
}

// StoreRegs stores V0..Vx to memory starting at I (Fx55).
type StoreRegs struct {
	X uint8
}

// LoadRegs loads V0..Vx from memory starting at I (Fx65).
type LoadRegs struct {
	X uint8
}

// Unrecognized is a word that does not encode a known instruction.
type Unrecognized struct {
	Word uint16
}

func (Cls) Name() string          { return chip8.ClsName }
func (Ret) Name() string          { return chip8.RetName }
func (Jmp) Name() string          { return chip8.JpName }
func (Call) Name() string         { return chip8.CallName }
func (SeByte) Name() string       { return chip8.SeName }
func (SneByte) Name() string      { return chip8.SneName }
func (SeReg) Name() string        { return chip8.SeName }
func (LdVx) Name() string         { return chip8.LdName }
func (AddVx) Name() string        { return chip8.AddName }
func (Mov) Name() string          { return chip8.LdName }
func (Or) Name() string           { return chip8.OrName }
func (And) Name() string          { return chip8.AndName }
func (Xor) Name() string          { return chip8.XorName }
func (AddReg) Name() string       { return chip8.AddName }
func (Sub) Name() string          { return chip8.SubName }
func (Shr) Name() string          { return chip8.ShrName }
func (Subn) Name() string         { return chip8.SubnName }
func (Shl) Name() string          { return chip8.ShlName }
func (SneReg) Name() string       { return chip8.SneName }
func (LdI) Name() string          { return chip8.LdName }
func (JmpV0) Name() string        { return chip8.JpName }
func (Rnd) Name() string          { return chip8.RndName }
func (Drw) Name() string          { return chip8.DrwName }
func (Skp) Name() string          { return chip8.SkpName }
func (Sknp) Name() string         { return chip8.SknpName }
func (LdVxDT) Name() string       { return chip8.LdName }
func (LdVxKey) Name() string      { return chip8.LdName }
func (LdDTVx) Name() string       { return chip8.LdName }
func (LdSTVx) Name() string       { return chip8.LdName }
func (AddI) Name() string         { return chip8.AddName }
func (LdFont) Name() string       { return chip8.LdName }
func (LdBCD) Name() string        { return chip8.LdName }
func (StoreRegs) Name() string    { return chip8.LdName }
func (LoadRegs) Name() string     { return chip8.LdName }
func (Unrecognized) Name() string { return "" }

func (Cls) instruction()          {}
func (Ret) instruction()          {}
func (Jmp) instruction()          {}
func (Call) instruction()         {}
func (SeByte) instruction()       {}
func (SneByte) instruction()      {}
func (SeReg) instruction()        {}
func (LdVx) instruction()         {}
func (AddVx) instruction()        {}
func (Mov) instruction()          {}
func (Or) instruction()           {}
func (And) instruction()          {}
func (Xor) instruction()          {}
func (AddReg) instruction()       {}
func (Sub) instruction()          {}
func (Shr) instruction()          {}
func (Subn) instruction()         {}
func (Shl) instruction()          {}
func (SneReg) instruction()       {}
func (LdI) instruction()          {}
func (JmpV0) instruction()        {}
func (Rnd) instruction()          {}
func (Drw) instruction()          {}
func (Skp) instruction()          {}
func (Sknp) instruction()         {}
func (LdVxDT) instruction()       {}
func (LdVxKey) instruction()      {}
func (LdDTVx) instruction()       {}
func (LdSTVx) instruction()       {}
func (AddI) instruction()         {}
func (LdFont) instruction()       {}
func (LdBCD) instruction()        {}
func (StoreRegs) instruction()    {}
func (LoadRegs) instruction()     {}
func (Unrecognized) instruction() {}
