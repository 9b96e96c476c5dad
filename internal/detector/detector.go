// Package detector handles quirk profile detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Profile names a set of interpreter quirks of a CHIP-8 implementation.
type Profile string

// Supported profiles.
const (
	CHIP48 Profile = "chip48"
	SCHIP  Profile = "schip"
	VIP    Profile = "vip"
	XOCHIP Profile = "xochip"
)

// Profiles lists all supported profiles.
var Profiles = []Profile{CHIP48, SCHIP, VIP, XOCHIP}

func (p Profile) String() string {
	return string(p)
}

// ProfileFromString returns the profile for the given case insensitive name.
func ProfileFromString(name string) (Profile, error) {
	name = strings.ToLower(name)
	for _, profile := range Profiles {
		if string(profile) == name {
			return profile, nil
		}
	}
	return "", fmt.Errorf("unsupported quirk profile '%s'", name)
}

// Detector handles quirk profile detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new profile detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the quirk profile from options or file auto-detection.
// It first checks if a profile is explicitly specified in options, otherwise
// attempts to detect the profile from the input filename extension.
func (d *Detector) Detect(opts options.Program) Profile {
	profile, err := ProfileFromString(opts.Profile)
	if opts.Profile == "" || err != nil {
		profile = d.detectFromFile(opts.Input)
		d.logger.Debug("Auto-detected quirk profile",
			log.Stringer("profile", profile),
			log.String("file", opts.Input))
	}
	return profile
}

// detectFromFile determines the profile based on file extension.
func (d *Detector) detectFromFile(filename string) Profile {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".sc8":
		return SCHIP
	case ".xo8":
		return XOCHIP
	default:
		return CHIP48
	}
}
