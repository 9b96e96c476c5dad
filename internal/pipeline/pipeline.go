// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/retroenv/chip8vm/internal/app"
	"github.com/retroenv/chip8vm/internal/config"
	"github.com/retroenv/chip8vm/internal/detector"
	"github.com/retroenv/chip8vm/internal/frontend"
	"github.com/retroenv/chip8vm/internal/frontend/sdl"
	"github.com/retroenv/chip8vm/internal/frontend/terminal"
	"github.com/retroenv/chip8vm/internal/interpreter"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// FrontendConstructor creates the frontend selected in the options.
type FrontendConstructor func(opts options.Program) (frontend.Frontend, error)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger      *log.Logger
	detector    *detector.Detector
	loader      *loader.Loader
	newFrontend FrontendConstructor
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:      logger,
		detector:    detector.New(logger),
		loader:      loader.New(),
		newFrontend: createFrontend,
	}
}

// Execute loads the ROM, selects the quirks, opens the frontend and runs the
// machine until it stops.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	rom, err := p.loader.Load(&opts)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	profile := p.detector.Detect(opts)
	quirks := config.CreateQuirks(profile, opts.Wrap)
	app.PrintInfo(p.logger, opts, rom, profile, quirks)

	fe, err := p.newFrontend(opts)
	if err != nil {
		return fmt.Errorf("creating frontend: %w", err)
	}
	defer func() {
		if err := fe.Close(); err != nil {
			p.logger.Error("Closing frontend failed", log.Err(err))
		}
	}()

	return p.ExecuteWithROM(ctx, rom, opts, quirks, fe)
}

// ExecuteWithROM runs a pre-loaded ROM on the given frontend.
// This is useful for testing and programmatic usage where the ROM is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program,
	quirks interpreter.Quirks, fe frontend.Frontend) error {

	m, err := p.createMachine(rom, opts, quirks)
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}

	cfg := machine.RunConfig{
		Speed:  opts.Speed,
		Cycles: opts.Cycles,
	}

	for {
		err := m.Run(ctx, fe, cfg)

		var bp *machine.BreakpointError
		switch {
		case err == nil:
			p.logger.Debug("Emulation stopped", log.Int("cycles", int(m.Cycles())))
			return nil

		case errors.As(err, &bp):
			p.logger.Info("Breakpoint reached", log.Hex("address", bp.Address))
			m.LogState()

		case errors.Is(err, context.Canceled):
			return err

		default:
			m.LogState()
			return fmt.Errorf("running ROM: %w", err)
		}
	}
}

// createMachine creates the interpreter and the machine driving it.
func (p *Pipeline) createMachine(rom []byte, opts options.Program, quirks interpreter.Quirks) (*machine.Machine, error) {
	interpreterOpts := interpreter.Options{
		Quirks: quirks,
		Random: config.CreateRandom(opts.Seed),
	}
	if opts.Trace {
		interpreterOpts.Trace = machine.TraceHook(p.logger)
	}

	cpu, err := interpreter.New(rom, interpreterOpts)
	if err != nil {
		return nil, fmt.Errorf("creating interpreter: %w", err)
	}

	breakpoints := set.New[uint16]()
	for _, address := range opts.Breakpoints {
		breakpoints.Add(address)
	}

	return machine.New(p.logger, cpu, machine.Options{
		Breakpoints: breakpoints,
	}), nil
}

// createFrontend creates the frontend selected in the options.
func createFrontend(opts options.Program) (frontend.Frontend, error) {
	switch opts.Frontend {
	case options.FrontendSDL:
		title := fmt.Sprintf("%s - %s", app.Name, filepath.Base(opts.Input))
		fe, err := sdl.New(opts.Scale, title)
		if err != nil {
			return nil, fmt.Errorf("creating sdl frontend: %w", err)
		}
		return fe, nil

	case options.FrontendTerminal:
		fe, err := terminal.New()
		if err != nil {
			return nil, fmt.Errorf("creating terminal frontend: %w", err)
		}
		return fe, nil

	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}
