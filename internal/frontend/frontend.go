// Package frontend defines the interface between the virtual machine run loop
// and the presentation layer that shows the pixel buffer and reads keys.
package frontend

import "github.com/retroenv/chip8vm/internal/display"

// Input is the keyboard state reported by a frontend poll.
type Input struct {
	Key     uint8 // hex keypad key 0x0-0xF, valid if Pressed is set
	Pressed bool
	Quit    bool // the user asked to end the emulation
}

// Frontend renders the pixel buffer and reports keypad input.
type Frontend interface {
	// Poll processes pending window events and returns the keypad state.
	Poll() Input
	// Render presents the pixel buffer.
	Render(screen display.Buffer) error
	// Close releases all resources of the frontend.
	Close() error
}
