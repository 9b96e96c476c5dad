// Package app provides the main application helpers for the emulator.
package app

import (
	"fmt"
	"strings"

	"github.com/retroenv/chip8vm/internal/detector"
	"github.com/retroenv/chip8vm/internal/interpreter"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Name of the program.
const Name = "chip8vm"

// PrintBanner logs the program name and version.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	if len(commit) > 7 {
		commit = commit[:7]
	}
	logger.Info(Name, log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// PrintInfo prints the information about the ROM and the used quirks.
func PrintInfo(logger *log.Logger, opts options.Program, rom []byte, profile detector.Profile, quirks interpreter.Quirks) {
	if opts.Quiet {
		return
	}

	logger.Info("Running ROM",
		log.Stringer("system", arch.CHIP8System),
		log.String("file", opts.Input),
		log.Int("size", len(rom)),
		log.String("frontend", opts.Frontend),
	)
	logger.Info("Quirks",
		log.Stringer("profile", profile),
		log.Stringer("shift", quirks.ShiftSource),
		log.Stringer("edge", quirks.Edge),
		log.String("index", fmt.Sprintf("increment=%t", quirks.IncrementIndex)),
	)

	if len(opts.Breakpoints) > 0 {
		addresses := make([]string, 0, len(opts.Breakpoints))
		for _, address := range opts.Breakpoints {
			addresses = append(addresses, fmt.Sprintf("$%03X", address))
		}
		logger.Info("Breakpoints", log.String("addresses", strings.Join(addresses, ",")))
	}
}
