package builder

import (
	"fmt"

	"github.com/nxswift/nxswift/internal/projectcfg"
	"github.com/spf13/pflag"
)

// Options carries the user-facing build flags shared by build and run.
type Options struct {
	Verbose       bool
	Jobs          int
	Configuration string
	Xcc           []string
	Xlinker       []string
	Xswiftc       []string
}

// AddBuildFlags registers the shared build flag set on a command.
func AddBuildFlags(fs *pflag.FlagSet, o *Options) {
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "Echo commands before running them")
	fs.IntVarP(&o.Jobs, "jobs", "j", 0, "Number of parallel build jobs")
	fs.StringVarP(&o.Configuration, "configuration", "c", "", "Build configuration: debug or release")
	fs.StringArrayVar(&o.Xcc, "Xcc", nil, "Pass flag through to the C compiler (repeatable)")
	fs.StringArrayVar(&o.Xlinker, "Xlinker", nil, "Pass flag through to the linker (repeatable)")
	fs.StringArrayVar(&o.Xswiftc, "Xswiftc", nil, "Pass flag through to the Swift compiler (repeatable)")
}

// Validate rejects flag values the build tool would choke on.
func (o Options) Validate() error {
	if o.Configuration != "" && o.Configuration != "debug" && o.Configuration != "release" {
		return fmt.Errorf("invalid configuration %q: must be debug or release", o.Configuration)
	}
	if o.Jobs < 0 {
		return fmt.Errorf("invalid jobs %d: must not be negative", o.Jobs)
	}
	return nil
}

// Merge fills unset flags from project config defaults. An explicitly
// provided flag always wins; changed reports whether the named flag was set
// on the command line.
func (o *Options) Merge(cfg projectcfg.Config, changed func(name string) bool) {
	if !changed("verbose") && cfg.Verbose {
		o.Verbose = true
	}
	if !changed("jobs") && cfg.Jobs > 0 {
		o.Jobs = cfg.Jobs
	}
	if !changed("configuration") && cfg.Configuration != "" {
		o.Configuration = cfg.Configuration
	}
}
