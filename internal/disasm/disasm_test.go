package disasm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestWord(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected string
	}{
		{"CLS", 0x00E0, "cls"},
		{"RET", 0x00EE, "ret"},
		{"JP addr", 0x1234, "jp $234"},
		{"CALL addr", 0x2300, "call $300"},
		{"JP V0, addr", 0xB200, "jp V0, $200"},
		{"SE Vx, byte", 0x3234, "se V2, $34"},
		{"SNE Vx, Vy", 0x9120, "sne V1, V2"},
		{"LD Vx, byte", 0x61AB, "ld V1, $AB"},
		{"LD I, addr", 0xA123, "ld I, $123"},
		{"ADD Vx, Vy", 0x8AB4, "add VA, VB"},
		{"SUBN", 0x8127, "subn V1, V2"},
		{"SHR Vx", 0x8336, "shr V3"},
		{"SHL Vx, Vy", 0x834E, "shl V3, V4"},
		{"RND", 0xC0FF, "rnd V0, $FF"},
		{"DRW", 0xDAB5, "drw VA, VB, $5"},
		{"SKP", 0xE19E, "skp V1"},
		{"SKNP", 0xE2A1, "sknp V2"},
		{"LD Vx, DT", 0xF307, "ld V3, DT"},
		{"LD Vx, K", 0xF40A, "ld V4, K"},
		{"LD DT, Vx", 0xF515, "ld DT, V5"},
		{"LD ST, Vx", 0xF618, "ld ST, V6"},
		{"ADD I, Vx", 0xF71E, "add I, V7"},
		{"LD F, Vx", 0xF829, "ld F, V8"},
		{"LD B, Vx", 0xF933, "ld B, V9"},
		{"LD [I], Vx", 0xFA55, "ld [I], VA"},
		{"LD Vx, [I]", 0xFB65, "ld VB, [I]"},
		{"unrecognized", 0x0000, ".word $0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Word(tt.word))
		})
	}
}

func TestListing(t *testing.T) {
	var buf bytes.Buffer
	rom := []byte{0x00, 0xE0, 0x12, 0x00, 0xFF}

	err := Listing(&buf, rom, 0x200)
	assert.NoError(t, err)

	expected := "200  00E0  cls\n" +
		"202  1200  jp $200\n" +
		"204  FF    .byte $FF\n"
	assert.Equal(t, expected, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestListing_WriteError(t *testing.T) {
	err := Listing(failingWriter{}, []byte{0x00, 0xE0}, 0x200)
	assert.ErrorContains(t, err, "disk full")
}
