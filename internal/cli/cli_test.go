package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func setArgs(t *testing.T, args []string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = args
}

//nolint:funlen // test functions can be long
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags: options.Flags{
					Frontend: options.FrontendSDL,
					Speed:    machine.DefaultSpeed,
					Scale:    10,
				},
			},
		},
		{
			name: "terminal frontend with cycle limit",
			args: []string{"prog", "-f", "Terminal", "-cycles", "500", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags: options.Flags{
					Frontend: options.FrontendTerminal,
					Speed:    machine.DefaultSpeed,
					Scale:    10,
					Cycles:   500,
				},
			},
		},
		{
			name: "quirks and breakpoints",
			args: []string{"prog", "-quirks", "VIP", "-wrap", "-break", "200, 0x2A4,$3f0", "-seed", "7", "game.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.ch8"},
				Flags: options.Flags{
					Frontend:    options.FrontendSDL,
					Profile:     "vip",
					Wrap:        true,
					Speed:       machine.DefaultSpeed,
					Scale:       10,
					Breakpoints: []uint16{0x200, 0x2A4, 0x3F0},
					Seed:        7,
				},
			},
		},
		{
			name: "sdl frontend without ROM file",
			args: []string{"prog", "-speed", "1000", "-scale", "4"},
			want: options.Program{
				Flags: options.Flags{
					Frontend: options.FrontendSDL,
					Speed:    1000,
					Scale:    4,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args)

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		usageError  bool
		errContains string
	}{
		{
			name:       "terminal frontend without ROM file",
			args:       []string{"prog", "-f", "terminal"},
			usageError: true,
		},
		{
			name:        "flag after ROM file",
			args:        []string{"prog", "pong.ch8", "-q"},
			usageError:  true,
			errContains: "found after ROM file",
		},
		{
			name:        "unsupported frontend",
			args:        []string{"prog", "-f", "opengl", "pong.ch8"},
			errContains: "unsupported frontend: opengl",
		},
		{
			name:        "unsupported profile",
			args:        []string{"prog", "-quirks", "cosmac", "pong.ch8"},
			errContains: "unsupported quirk profile",
		},
		{
			name:        "invalid speed",
			args:        []string{"prog", "-speed", "0", "pong.ch8"},
			errContains: "invalid speed 0",
		},
		{
			name:       "invalid breakpoint",
			args:       []string{"prog", "-break", "1000", "pong.ch8"},
			usageError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args)

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
			if tt.errContains != "" {
				assert.ErrorContains(t, err, tt.errContains)
			}
		})
	}
}

func TestParseBreakpoints(t *testing.T) {
	addresses, err := parseBreakpoints("")
	assert.NoError(t, err)
	assert.Len(t, addresses, 0)

	addresses, err = parseBreakpoints("fff,,0")
	assert.NoError(t, err)
	assert.Equal(t, []uint16{0xFFF, 0}, addresses)

	_, err = parseBreakpoints("xyz")
	assert.ErrorContains(t, err, "invalid breakpoint address 'xyz'")
}
