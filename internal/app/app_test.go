package app

import (
	"testing"

	"github.com/retroenv/chip8vm/internal/detector"
	"github.com/retroenv/chip8vm/internal/interpreter"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

func TestPrintBanner(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		date   string
		quiet  bool
	}{
		{name: "release", commit: "0123456789abcdef", date: "2026-10-18"},
		{name: "development build", date: "unknown"},
		{name: "quiet mode - no output", quiet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := log.NewTestLogger(t)
			opts := options.Program{Flags: options.Flags{Quiet: tt.quiet}}

			// should not panic
			PrintBanner(logger, opts, "dev", tt.commit, tt.date)
		})
	}
}

func TestPrintInfo(t *testing.T) {
	tests := []struct {
		name string
		opts options.Program
	}{
		{
			name: "ROM without breakpoints",
			opts: options.Program{Parameters: options.Parameters{Input: "pong.ch8"}},
		},
		{
			name: "ROM with breakpoints",
			opts: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Breakpoints: []uint16{0x200, 0x2A4}},
			},
		},
		{
			name: "quiet mode - no output",
			opts: options.Program{Flags: options.Flags{Quiet: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := log.NewTestLogger(t)
			quirks := interpreter.Quirks{ShiftSource: interpreter.ShiftVy}

			// should not panic
			PrintInfo(logger, tt.opts, []byte{0x00, 0xE0}, detector.VIP, quirks)
		})
	}
}
