package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoadFont(t *testing.T) {
	m := New()
	m.LoadFont()
	first := m.data

	m.LoadFont()
	assert.Equal(t, first, m.data)

	b, err := m.Byte(FontAddress)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xF0), b)

	// glyph F starts at the last 5 bytes of the table
	glyph, err := m.Read(FontGlyphAddress(0xF), GlyphSize)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xF0, 0x80, 0xF0, 0x80, 0x80}, glyph)
}

func TestFontGlyphAddress(t *testing.T) {
	tests := []struct {
		name     string
		digit    uint8
		expected uint16
	}{
		{"digit 0", 0x0, FontAddress},
		{"digit 1", 0x1, FontAddress + 5},
		{"digit F", 0xF, FontAddress + 75},
		{"high nibble ignored", 0x2A, FontAddress + 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FontGlyphAddress(tt.digit))
		})
	}
}

func TestLoadROM(t *testing.T) {
	t.Run("rom is placed at program start", func(t *testing.T) {
		m := New()
		assert.NoError(t, m.LoadROM([]byte{0x12, 0x34, 0x56}))

		word, err := m.FetchWord(ProgramStart)
		assert.NoError(t, err)
		assert.Equal(t, uint16(0x1234), word)

		b, err := m.Byte(ProgramStart + 2)
		assert.NoError(t, err)
		assert.Equal(t, byte(0x56), b)
	})

	t.Run("rom filling the whole program space", func(t *testing.T) {
		m := New()
		rom := make([]byte, ProgramCapacity)
		rom[len(rom)-1] = 0xAA
		assert.NoError(t, m.LoadROM(rom))

		b, err := m.Byte(MaxAddress)
		assert.NoError(t, err)
		assert.Equal(t, byte(0xAA), b)
	})

	t.Run("too large rom leaves memory unmodified", func(t *testing.T) {
		m := New()
		m.LoadFont()
		before := m.data

		rom := make([]byte, ProgramCapacity+1)
		for i := range rom {
			rom[i] = 0xFF
		}
		err := m.LoadROM(rom)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrROMTooLarge))

		var tooLarge *ROMTooLargeError
		assert.True(t, errors.As(err, &tooLarge))
		assert.Equal(t, ProgramCapacity+1, tooLarge.Size)
		assert.Equal(t, before, m.data)
	})
}

func TestFetchWord(t *testing.T) {
	m := New()
	assert.NoError(t, m.SetByte(0xFFE, 0xAB))
	assert.NoError(t, m.SetByte(0xFFF, 0xCD))

	word, err := m.FetchWord(0xFFE)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xABCD), word)

	_, err = m.FetchWord(0xFFF)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	assert.True(t, errors.Is(err, chip8.ErrMemoryOutOfBounds))

	var oob *OutOfBoundsError
	assert.True(t, errors.As(err, &oob))
	assert.Equal(t, 0xFFF, oob.Address)
}

func TestByteAccessBounds(t *testing.T) {
	tests := []struct {
		name    string
		address uint16
		wantErr bool
	}{
		{"first address", 0x000, false},
		{"last address", MaxAddress, false},
		{"past the end", Size, true},
		{"highest 16-bit address", 0xFFFF, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			err := m.SetByte(tt.address, 0x42)
			_, readErr := m.Byte(tt.address)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrOutOfBounds))
				assert.True(t, errors.Is(readErr, ErrOutOfBounds))
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, readErr)
		})
	}
}

func TestRangeAccess(t *testing.T) {
	m := New()
	assert.NoError(t, m.Write(0x300, []byte{1, 2, 3}))

	data, err := m.Read(0x300, 3)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	// a range crossing the end is rejected without a partial write
	err = m.Write(0xFFE, []byte{9, 9, 9})
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	b, err := m.Byte(0xFFE)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)

	_, err = m.Read(0xFFD, 4)
	assert.ErrorContains(t, err, "out of bounds")
}
