// Package terminal implements a frontend that draws the pixel buffer into a
// terminal using termbox and reads the hex keypad from the keyboard.
//
// Two pixel rows share one character cell, so the 64x32 display needs a
// terminal of 64x16 cells. Keys 0-9 and a-f map to the keypad, q or escape
// ends the emulation.
package terminal

import (
	"fmt"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/frontend"
)

// KeyHold is the time a key stays pressed after its last key event.
// Terminals only report key presses, releases are emulated.
const KeyHold = 100 * time.Millisecond

const eventBuffer = 64

// screen is the subset of termbox that the frontend draws with.
type screen interface {
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Flush() error
	Close()
}

type termboxScreen struct{}

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxScreen) Flush() error {
	return termbox.Flush()
}

func (termboxScreen) Close() {
	termbox.Close()
}

// Frontend is a termbox based terminal frontend.
type Frontend struct {
	screen screen
	events chan termbox.Event
	done   chan struct{} // closed when the event reader exits, nil if none runs
	now    func() time.Time

	key       uint8
	pressed   bool
	pressedAt time.Time
}

// New initializes the terminal and starts reading keyboard events.
func New() (*Frontend, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	termbox.HideCursor()

	f := newFrontend(termboxScreen{})
	f.done = make(chan struct{})
	go f.pollEvents()
	return f, nil
}

func newFrontend(scr screen) *Frontend {
	return &Frontend{
		screen: scr,
		events: make(chan termbox.Event, eventBuffer),
		now:    time.Now,
	}
}

// pollEvents forwards termbox events until the event loop is interrupted.
// Events are dropped while the queue is full.
func (f *Frontend) pollEvents() {
	defer close(f.done)

	for {
		event := termbox.PollEvent()
		if event.Type == termbox.EventInterrupt || event.Type == termbox.EventError {
			return
		}

		select {
		case f.events <- event:
		default:
		}
	}
}

// Poll processes all queued keyboard events and returns the keypad state.
func (f *Frontend) Poll() frontend.Input {
	for {
		select {
		case event := <-f.events:
			if event.Type != termbox.EventKey {
				continue
			}
			if isQuit(event) {
				return frontend.Input{Quit: true}
			}
			if key, ok := keypadKey(event); ok {
				f.key = key
				f.pressed = true
				f.pressedAt = f.now()
			}

		default:
			if f.pressed && f.now().Sub(f.pressedAt) > KeyHold {
				f.pressed = false
			}
			return frontend.Input{
				Key:     f.key,
				Pressed: f.pressed,
			}
		}
	}
}

// Render draws the pixel buffer using half block characters.
func (f *Frontend) Render(buf display.Buffer) error {
	for y := 0; y < display.Height; y += 2 {
		for x := range display.Width {
			ch := block(buf.Pixel(x, y), buf.Pixel(x, y+1))
			f.screen.SetCell(x, y/2, ch, termbox.ColorWhite, termbox.ColorDefault)
		}
	}

	if err := f.screen.Flush(); err != nil {
		return fmt.Errorf("flushing terminal: %w", err)
	}
	return nil
}

// Close stops the event reader and restores the terminal.
func (f *Frontend) Close() error {
	if f.done != nil {
		select {
		case <-f.done:
		default:
			termbox.Interrupt()
			<-f.done
		}
	}
	f.screen.Close()
	return nil
}

func isQuit(event termbox.Event) bool {
	return event.Ch == 'q' || event.Key == termbox.KeyEsc || event.Key == termbox.KeyCtrlC
}

// keypadKey maps the characters 0-9 and a-f to the keypad.
func keypadKey(event termbox.Event) (uint8, bool) {
	switch ch := event.Ch; {
	case ch >= '0' && ch <= '9':
		return uint8(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return uint8(ch-'a') + 0xA, true
	case ch >= 'A' && ch <= 'F':
		return uint8(ch-'A') + 0xA, true
	default:
		return 0, false
	}
}

// block returns the character showing an upper and a lower pixel.
func block(upper, lower bool) rune {
	switch {
	case upper && lower:
		return '█'
	case upper:
		return '▀'
	case lower:
		return '▄'
	default:
		return ' '
	}
}
