// Package sdl implements a window frontend based on SDL2.
package sdl

import (
	"fmt"
	"runtime"

	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/frontend"
	"github.com/veandco/go-sdl2/sdl"
)

// keyMap maps the left side of a modern keyboard to the hex keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  =>  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var keyMap = map[sdl.Keycode]uint8{
	sdl.K_1: 0x1,
	sdl.K_2: 0x2,
	sdl.K_3: 0x3,
	sdl.K_4: 0xC,
	sdl.K_q: 0x4,
	sdl.K_w: 0x5,
	sdl.K_e: 0x6,
	sdl.K_r: 0xD,
	sdl.K_a: 0x7,
	sdl.K_s: 0x8,
	sdl.K_d: 0x9,
	sdl.K_f: 0xE,
	sdl.K_z: 0xA,
	sdl.K_x: 0x0,
	sdl.K_c: 0xB,
	sdl.K_v: 0xF,
}

// Frontend renders into a SDL window. All methods have to be called from
// the goroutine that called New.
type Frontend struct {
	scale    int32
	window   *sdl.Window
	renderer *sdl.Renderer

	input frontend.Input
}

var _ frontend.Frontend = (*Frontend)(nil)

// New initializes SDL and opens a window that shows every pixel as a
// square of scale x scale window pixels.
func New(scale int, title string) (*Frontend, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", scale)
	}

	// SDL requires all calls to happen on the same OS thread.
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing sdl: %w", err)
	}

	f := &Frontend{
		scale: int32(scale),
	}

	var err error
	f.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		display.Width*f.scale, display.Height*f.scale, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	f.renderer, err = sdl.CreateRenderer(f.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = f.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return f, nil
}

// Poll processes all pending SDL events. The last pressed mapped key stays
// reported until it is released.
func (f *Frontend) Poll() frontend.Input {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event := event.(type) {
		case *sdl.QuitEvent:
			f.input.Quit = true

		case *sdl.KeyboardEvent:
			f.handleKey(event)
		}
	}
	return f.input
}

func (f *Frontend) handleKey(event *sdl.KeyboardEvent) {
	if event.Keysym.Sym == sdl.K_ESCAPE {
		f.input.Quit = true
		return
	}

	key, ok := keyMap[event.Keysym.Sym]
	if !ok {
		return
	}

	switch event.Type {
	case sdl.KEYDOWN:
		f.input.Key = key
		f.input.Pressed = true
	case sdl.KEYUP:
		if f.input.Key == key {
			f.input.Pressed = false
		}
	}
}

// Render draws all lit pixels as filled rectangles.
func (f *Frontend) Render(screen display.Buffer) error {
	if err := f.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}
	if err := f.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := f.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}

	for y, row := range screen {
		for x, lit := range row {
			if !lit {
				continue
			}
			rect := &sdl.Rect{
				X: int32(x) * f.scale,
				Y: int32(y) * f.scale,
				W: f.scale,
				H: f.scale,
			}
			if err := f.renderer.FillRect(rect); err != nil {
				return fmt.Errorf("drawing pixel: %w", err)
			}
		}
	}

	f.renderer.Present()
	return nil
}

// Close destroys the window and shuts down SDL.
func (f *Frontend) Close() error {
	defer sdl.Quit()

	if err := f.renderer.Destroy(); err != nil {
		return fmt.Errorf("destroying renderer: %w", err)
	}
	if err := f.window.Destroy(); err != nil {
		return fmt.Errorf("destroying window: %w", err)
	}
	return nil
}
