// Package display implements the monochrome CHIP-8 pixel buffer.
package display

const (
	// Width is the number of pixel columns.
	Width = 64
	// Height is the number of pixel rows.
	Height = 32
)

// EdgeMode defines how sprite pixels beyond the right or bottom edge are handled.
type EdgeMode int

const (
	// Clip drops pixels that fall outside the buffer.
	Clip EdgeMode = iota
	// Wrap draws pixels that fall outside the buffer at the opposite edge.
	Wrap
)

func (m EdgeMode) String() string {
	switch m {
	case Clip:
		return "clip"
	case Wrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// Buffer is the pixel buffer, indexed [row][column] with the origin at the top left.
type Buffer [Height][Width]bool

// Clear turns off all pixels.
func (b *Buffer) Clear() {
	*b = Buffer{}
}

// Draw XORs the sprite onto the buffer with its top left corner at (x, y).
// Every sprite byte is one row of 8 pixels, most significant bit first.
// The anchor coordinates are wrapped into the buffer once, pixels that then
// extend past an edge are handled according to the edge mode.
// It returns whether any lit pixel was turned off.
func (b *Buffer) Draw(x, y uint8, sprite []byte, edge EdgeMode) bool {
	originX := int(x) % Width
	originY := int(y) % Height
	collision := false

	for row, bits := range sprite {
		py := originY + row
		if py >= Height {
			if edge != Wrap {
				break
			}
			py %= Height
		}

		for col := range 8 {
			if bits&(0x80>>col) == 0 {
				continue
			}

			px := originX + col
			if px >= Width {
				if edge != Wrap {
					break
				}
				px %= Width
			}

			if b[py][px] {
				collision = true
			}
			b[py][px] = !b[py][px]
		}
	}

	return collision
}

// Pixel returns whether the pixel at column x and row y is lit.
// Coordinates outside the buffer are reported as unlit.
func (b Buffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return b[y][x]
}

// Lit returns the number of lit pixels.
func (b Buffer) Lit() int {
	var count int
	for _, row := range b {
		for _, px := range row {
			if px {
				count++
			}
		}
	}
	return count
}
