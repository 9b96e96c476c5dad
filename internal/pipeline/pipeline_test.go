package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/frontend"
	"github.com/retroenv/chip8vm/internal/interpreter"
	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type testFrontend struct {
	renders int
	closed  bool
	screen  display.Buffer
}

func (f *testFrontend) Poll() frontend.Input {
	return frontend.Input{}
}

func (f *testFrontend) Render(screen display.Buffer) error {
	f.renders++
	f.screen = screen
	return nil
}

func (f *testFrontend) Close() error {
	f.closed = true
	return nil
}

// drawROM draws the glyph of digit 8 and loops forever.
var drawROM = []byte{
	0x60, 0x08, // ld V0, $08
	0xF0, 0x29, // ld F, V0
	0x61, 0x00, // ld V1, $00
	0xD1, 0x15, // drw V1, V1, 5
	0x12, 0x08, // jp $208
}

func testOptions(input string) options.Program {
	return options.Program{
		Parameters: options.Parameters{Input: input},
		Flags: options.Flags{
			Frontend: options.FrontendTerminal,
			Speed:    10000,
			Cycles:   20,
			Quiet:    true,
		},
	}
}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
	assert.NotNil(t, p.newFrontend)
}

//nolint:funlen // test functions can be long
func TestExecute(t *testing.T) {
	logger := log.NewTestLogger(t)
	tmpFile := createTempFile(t, drawROM)

	t.Run("execute pipeline successfully", func(t *testing.T) {
		p := New(logger)
		fe := &testFrontend{}
		p.newFrontend = func(options.Program) (frontend.Frontend, error) { return fe, nil }

		err := p.Execute(context.Background(), testOptions(tmpFile))
		assert.NoError(t, err)
		assert.True(t, fe.closed)
		assert.True(t, fe.renders > 0)
		assert.Equal(t, 16, fe.screen.Lit()) // glyph 8
	})

	t.Run("execute with non-existent file", func(t *testing.T) {
		p := New(logger)
		p.newFrontend = func(options.Program) (frontend.Frontend, error) { return &testFrontend{}, nil }

		err := p.Execute(context.Background(), testOptions("/nonexistent/file.ch8"))
		assert.Error(t, err)
	})

	t.Run("execute with failing frontend", func(t *testing.T) {
		p := New(logger)
		p.newFrontend = func(options.Program) (frontend.Frontend, error) { return nil, errors.New("no display") }

		err := p.Execute(context.Background(), testOptions(tmpFile))
		assert.ErrorContains(t, err, "no display")
	})

	t.Run("execute with too large ROM", func(t *testing.T) {
		p := New(logger)
		p.newFrontend = func(options.Program) (frontend.Frontend, error) { return &testFrontend{}, nil }
		largeFile := createTempFile(t, make([]byte, memory.ProgramCapacity+1))

		err := p.Execute(context.Background(), testOptions(largeFile))
		assert.True(t, errors.Is(err, memory.ErrROMTooLarge))
	})
}

func TestExecuteWithROM(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	t.Run("breakpoints continue execution", func(t *testing.T) {
		opts := testOptions("")
		opts.Breakpoints = []uint16{0x206, 0x208}
		opts.Trace = true
		opts.Seed = 1
		fe := &testFrontend{}

		err := p.ExecuteWithROM(context.Background(), drawROM, opts, interpreter.Quirks{}, fe)
		assert.NoError(t, err)
		assert.Equal(t, 16, fe.screen.Lit())
	})

	t.Run("unrecognized instruction stops execution", func(t *testing.T) {
		fe := &testFrontend{}

		err := p.ExecuteWithROM(context.Background(), []byte{0x60, 0x01, 0x00, 0x00}, testOptions(""), interpreter.Quirks{}, fe)
		assert.True(t, errors.Is(err, interpreter.ErrUnrecognized))
		assert.ErrorContains(t, err, "running ROM")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := p.ExecuteWithROM(ctx, drawROM, testOptions(""), interpreter.Quirks{}, &testFrontend{})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestCreateFrontend(t *testing.T) {
	_, err := createFrontend(options.Program{Flags: options.Flags{Frontend: "opengl"}})
	assert.ErrorContains(t, err, "unsupported frontend 'opengl'")
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
