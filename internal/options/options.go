// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendSDL      = "sdl"
	FrontendTerminal = "terminal"
)

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file, a file dialog asks for it if empty
}

// Flags contains behavior options.
type Flags struct {
	Frontend    string   // sdl or terminal
	Profile     string   // quirk profile name, detected from the file name if empty
	Wrap        bool     // wrap sprites at the screen edges regardless of the profile
	Speed       int      // instructions per second
	Scale       int      // window pixels per screen pixel
	Cycles      uint64   // stop after this many instructions, 0 for no limit
	Breakpoints []uint16 // addresses at which the machine state is logged
	Seed        uint64   // seed of the random number generator, 0 for a random seed
	Trace       bool     // log every executed instruction
	Debug       bool
	Quiet       bool
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}
