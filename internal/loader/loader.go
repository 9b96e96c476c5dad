// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/sqweek/dialog"
)

// ErrNoROM is returned if no ROM file was given and the file dialog was cancelled.
var ErrNoROM = errors.New("no ROM file selected")

// Loader handles loading ROM files from disk.
type Loader struct {
	pick func() (string, error) // asks the user for a file name
}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{
		pick: pickFile,
	}
}

// Load reads the ROM file set in the options. If no file is set, a file
// dialog asks for it and the options are updated with the chosen file.
func (l *Loader) Load(opts *options.Program) ([]byte, error) {
	if opts.Input == "" {
		file, err := l.pick()
		if err != nil {
			if errors.Is(err, dialog.ErrCancelled) {
				return nil, ErrNoROM
			}
			return nil, fmt.Errorf("selecting ROM file: %w", err)
		}
		opts.Input = file
	}

	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	return LoadFromReader(file)
}

// LoadFromReader reads a ROM. ROMs that do not fit into the program space
// return a memory.ErrROMTooLarge error.
func LoadFromReader(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}
	if len(data) > memory.ProgramCapacity {
		return nil, &memory.ROMTooLargeError{
			Size:     len(data),
			Capacity: memory.ProgramCapacity,
		}
	}
	return data, nil
}

func pickFile() (string, error) {
	file, err := dialog.File().
		Filter("CHIP-8 ROM", "ch8", "c8", "sc8", "xo8").
		Title("Open CHIP-8 ROM").
		Load()
	if err != nil {
		return "", fmt.Errorf("opening file dialog: %w", err)
	}
	return file, nil
}
