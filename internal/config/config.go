// Package config handles application configuration and setup
package config

import (
	"math/rand/v2"

	"github.com/retroenv/chip8vm/internal/detector"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/interpreter"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateQuirks returns the interpreter quirks of the profile. The wrap
// option forces sprites to wrap around the screen edges.
func CreateQuirks(profile detector.Profile, wrap bool) interpreter.Quirks {
	var quirks interpreter.Quirks

	switch profile {
	case detector.VIP:
		quirks.ShiftSource = interpreter.ShiftVy
		quirks.IncrementIndex = true

	case detector.XOCHIP:
		quirks.ShiftSource = interpreter.ShiftVy
		quirks.IncrementIndex = true
		quirks.Edge = display.Wrap

	case detector.CHIP48, detector.SCHIP:
		// shift in place, index register unchanged by register load and store
	}

	if wrap {
		quirks.Edge = display.Wrap
	}
	return quirks
}

// CreateRandom returns a deterministic random byte source for a non zero
// seed. A zero seed returns nil, which selects the default random source.
func CreateRandom(seed uint64) func() uint8 {
	if seed == 0 {
		return nil
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	return func() uint8 {
		return uint8(rng.UintN(256))
	}
}
