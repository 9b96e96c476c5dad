// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/chip8vm/internal/detector"
	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/chip8vm/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	switch {
	case len(args) > 0:
		opts.Input = args[0]
	case opts.Frontend != options.FrontendSDL:
		// only the window frontend can ask for a file
		return opts, &UsageError{flags: flags}
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8vm [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	switch opts.Frontend {
	case options.FrontendSDL, options.FrontendTerminal:
	default:
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s, %s",
			opts.Frontend, options.FrontendSDL, options.FrontendTerminal)
	}

	if opts.Profile != "" {
		profile, err := detector.ProfileFromString(opts.Profile)
		if err != nil {
			return err
		}
		opts.Profile = profile.String()
	}

	if opts.Speed < 1 {
		return fmt.Errorf("invalid speed %d, must be at least 1 instruction per second", opts.Speed)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d, must be at least 1", opts.Scale)
	}
	return nil
}

// parseBreakpoints parses a comma separated list of hex addresses.
func parseBreakpoints(s string) ([]uint16, error) {
	var addresses []uint16
	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(field), "0x"), "$")
		address, err := strconv.ParseUint(trimmed, 16, 16)
		if err != nil || address > memory.MaxAddress {
			return nil, fmt.Errorf("invalid breakpoint address '%s'", field)
		}
		addresses = append(addresses, uint16(address))
	}
	return addresses, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	profiles := make([]string, 0, len(detector.Profiles))
	for _, profile := range detector.Profiles {
		profiles = append(profiles, profile.String())
	}

	flags.StringVar(&opts.Frontend, "f", options.FrontendSDL, "frontend to use (sdl/terminal)")
	flags.StringVar(&opts.Profile, "quirks", "", fmt.Sprintf("quirk profile (%s) - if not auto-detected from file extension", strings.Join(profiles, "/")))
	flags.BoolVar(&opts.Wrap, "wrap", false, "wrap sprites around the screen edges instead of clipping them")
	flags.IntVar(&opts.Speed, "speed", machine.DefaultSpeed, "instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", 10, "window pixels per screen pixel")
	flags.Uint64Var(&opts.Cycles, "cycles", 0, "stop after the given number of instructions, 0 runs until quit")
	flags.Func("break", "comma separated hex addresses to log the machine state at, for example 200,2a4", func(s string) error {
		addresses, err := parseBreakpoints(s)
		if err != nil {
			return err
		}
		opts.Breakpoints = append(opts.Breakpoints, addresses...)
		return nil
	})
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number generator, 0 uses a random seed")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
