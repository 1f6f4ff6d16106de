package cli

import "specsplit/internal/config"

// Flags holds command-line flags before config resolution.
type Flags struct {
	ConfigFile string
	Root       string
	SpecDir    string
	Timings    string
	Weights    bool
	Verbose    bool
	Progress   bool
}

// ToConfigFlags converts CLI flags to config flags.
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile: f.ConfigFile,
		Root:       f.Root,
		SpecDir:    f.SpecDir,
		Timings:    f.Timings,
		Weights:    f.Weights,
		Verbose:    f.Verbose,
		Progress:   f.Progress,
	}
}
