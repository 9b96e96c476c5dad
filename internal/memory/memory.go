// Package memory implements the CHIP-8 address space.
//
// The address space is 4KB (0x000-0xFFF):
//
//	0x000-0x1FF: reserved interpreter area, holds the font glyphs at FontAddress
//	0x200-0xFFF: program space, ROMs are loaded at ProgramStart
package memory

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

const (
	// Size is the size of the address space in bytes.
	Size = 0x1000

	// MaxAddress is the highest valid address.
	MaxAddress = Size - 1

	// ProgramStart is the address where ROMs are loaded and execution begins.
	ProgramStart = 0x200

	// ProgramCapacity is the maximum ROM size that fits into the program space.
	ProgramCapacity = Size - ProgramStart
)

var (
	// ErrOutOfBounds is matched by all errors caused by accesses outside the address space.
	ErrOutOfBounds = chip8.ErrMemoryOutOfBounds
	// ErrROMTooLarge is matched by errors returned for ROMs that do not fit the program space.
	ErrROMTooLarge = errors.New("rom too large")
)

// OutOfBoundsError is returned for an access of Length bytes starting at Address
// that does not fit into the address space.
type OutOfBoundsError struct {
	Address int
	Length  int
}

func (e *OutOfBoundsError) Error() string {
	if e.Length > 1 {
		return fmt.Sprintf("%s: $%04X+%d", ErrOutOfBounds, e.Address, e.Length)
	}
	return fmt.Sprintf("%s: $%04X", ErrOutOfBounds, e.Address)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// ROMTooLargeError is returned when a ROM exceeds ProgramCapacity.
type ROMTooLargeError struct {
	Size     int
	Capacity int
}

func (e *ROMTooLargeError) Error() string {
	return fmt.Sprintf("%s: %d bytes, capacity %d bytes", ErrROMTooLarge, e.Size, e.Capacity)
}

// Is reports whether target is ErrROMTooLarge.
func (e *ROMTooLargeError) Is(target error) bool {
	return target == ErrROMTooLarge
}

// Memory is the addressable byte array of a machine.
type Memory struct {
	data [Size]byte
}

// New returns a zeroed address space.
func New() *Memory {
	return &Memory{}
}

// LoadROM copies the ROM into the program space. Memory is not modified
// if the ROM does not fit.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > ProgramCapacity {
		return &ROMTooLargeError{
			Size:     len(rom),
			Capacity: ProgramCapacity,
		}
	}
	copy(m.data[ProgramStart:], rom)
	return nil
}

// FetchWord reads the big endian 16-bit word at the given address.
func (m *Memory) FetchWord(address uint16) (uint16, error) {
	if err := checkRange(address, 2); err != nil {
		return 0, err
	}
	return uint16(m.data[address])<<8 | uint16(m.data[address+1]), nil
}

// Byte returns the byte at the given address.
func (m *Memory) Byte(address uint16) (byte, error) {
	if err := checkRange(address, 1); err != nil {
		return 0, err
	}
	return m.data[address], nil
}

// SetByte sets the byte at the given address.
func (m *Memory) SetByte(address uint16, value byte) error {
	if err := checkRange(address, 1); err != nil {
		return err
	}
	m.data[address] = value
	return nil
}

// Read returns a copy of length bytes starting at the given address.
// The whole range has to be inside the address space.
func (m *Memory) Read(address uint16, length int) ([]byte, error) {
	if err := checkRange(address, length); err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	copy(buf, m.data[address:])
	return buf, nil
}

// Write copies data into memory starting at the given address. Nothing is
// written unless the whole range is inside the address space.
func (m *Memory) Write(address uint16, data []byte) error {
	if err := checkRange(address, len(data)); err != nil {
		return err
	}
	copy(m.data[address:], data)
	return nil
}

func checkRange(address uint16, length int) error {
	if length < 0 || int(address)+length > Size {
		return &OutOfBoundsError{
			Address: int(address),
			Length:  length,
		}
	}
	return nil
}
