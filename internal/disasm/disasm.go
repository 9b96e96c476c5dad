// Package disasm formats decoded CHIP-8 instructions as assembly code.
package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/chip8vm/internal/instruction"
)

// Format returns the assembly representation of the instruction, the
// mnemonic followed by its parameters.
func Format(ins instruction.Instruction) string {
	if u, ok := ins.(instruction.Unrecognized); ok {
		return fmt.Sprintf(".word $%04X", u.Word)
	}

	name := ins.Name()
	if params := formatParams(ins); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// Word decodes and formats a single instruction word.
func Word(word uint16) string {
	return Format(instruction.Decode(word))
}

// Listing writes one line per instruction word of the ROM, prefixed by the
// memory address the word is loaded to and the raw word.
func Listing(w io.Writer, rom []byte, base uint16) error {
	for offset := 0; offset < len(rom); offset += 2 {
		address := int(base) + offset

		if offset+1 >= len(rom) {
			// odd sized ROM, the last byte can not be an instruction
			if _, err := fmt.Fprintf(w, "%03X  %02X    .byte $%02X\n", address, rom[offset], rom[offset]); err != nil {
				return fmt.Errorf("writing listing: %w", err)
			}
			break
		}

		word := uint16(rom[offset])<<8 | uint16(rom[offset+1])
		if _, err := fmt.Fprintf(w, "%03X  %04X  %s\n", address, word, Word(word)); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}

//nolint:cyclop,funlen // one case per instruction type
func formatParams(ins instruction.Instruction) string {
	switch ins := ins.(type) {
	case instruction.Cls, instruction.Ret:
		return "" // No parameters
	case instruction.Jmp:
		return formatAddress(ins.Address)
	case instruction.Call:
		return formatAddress(ins.Address)
	case instruction.JmpV0:
		return "V0, " + formatAddress(ins.Address)
	case instruction.SeByte:
		return formatRegisterByte(ins.X, ins.Value)
	case instruction.SneByte:
		return formatRegisterByte(ins.X, ins.Value)
	case instruction.LdVx:
		return formatRegisterByte(ins.X, ins.Value)
	case instruction.AddVx:
		return formatRegisterByte(ins.X, ins.Value)
	case instruction.Rnd:
		return formatRegisterByte(ins.X, ins.Mask)
	case instruction.SeReg:
		return formatRegisters(ins.X, ins.Y)
	case instruction.SneReg:
		return formatRegisters(ins.X, ins.Y)
	case instruction.Mov:
		return formatRegisters(ins.X, ins.Y)
	case instruction.Or:
		return formatRegisters(ins.X, ins.Y)
	case instruction.And:
		return formatRegisters(ins.X, ins.Y)
	case instruction.Xor:
		return formatRegisters(ins.X, ins.Y)
	case instruction.AddReg:
		return formatRegisters(ins.X, ins.Y)
	case instruction.Sub:
		return formatRegisters(ins.X, ins.Y)
	case instruction.Subn:
		return formatRegisters(ins.X, ins.Y)
	case instruction.Shr:
		return formatShift(ins.X, ins.Y)
	case instruction.Shl:
		return formatShift(ins.X, ins.Y)
	case instruction.LdI:
		return "I, " + formatAddress(ins.Address)
	case instruction.Drw:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	case instruction.Skp:
		return formatRegister(ins.X)
	case instruction.Sknp:
		return formatRegister(ins.X)
	case instruction.LdVxDT:
		return formatRegister(ins.X) + ", DT"
	case instruction.LdVxKey:
		return formatRegister(ins.X) + ", K"
	case instruction.LdDTVx:
		return "DT, " + formatRegister(ins.X)
	case instruction.LdSTVx:
		return "ST, " + formatRegister(ins.X)
	case instruction.AddI:
		return "I, " + formatRegister(ins.X)
	case instruction.LdFont:
		return "F, " + formatRegister(ins.X)
	case instruction.LdBCD:
		return "B, " + formatRegister(ins.X)
	case instruction.StoreRegs:
		return "[I], " + formatRegister(ins.X)
	case instruction.LoadRegs:
		return formatRegister(ins.X) + ", [I]"
	}
	return ""
}

func formatAddress(address uint16) string {
	return fmt.Sprintf("$%03X", address)
}

func formatRegister(x uint8) string {
	return fmt.Sprintf("V%X", x)
}

func formatRegisterByte(x, value uint8) string {
	return fmt.Sprintf("V%X, $%02X", x, value)
}

func formatRegisters(x, y uint8) string {
	return fmt.Sprintf("V%X, V%X", x, y)
}

// formatShift omits Vy when it equals Vx, the common form for ROMs that
// target interpreters that shift Vx in place.
func formatShift(x, y uint8) string {
	if x == y {
		return formatRegister(x)
	}
	return formatRegisters(x, y)
}
