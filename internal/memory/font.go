package memory

const (
	// FontAddress is the address of the first font glyph.
	FontAddress = 0x050

	// GlyphSize is the size of a single font glyph in bytes.
	GlyphSize = 5
)

// font contains the 4x5 pixel sprites of the hex digits 0-F.
var font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// LoadFont writes the font glyphs to FontAddress.
func (m *Memory) LoadFont() {
	copy(m.data[FontAddress:], font[:])
}

// FontGlyphAddress returns the address of the glyph for the low nibble of digit.
func FontGlyphAddress(digit uint8) uint16 {
	return FontAddress + uint16(digit&0x0F)*GlyphSize
}
