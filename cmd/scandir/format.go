package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	// formatText is the default human-readable output format.
	formatText = "text"
	// formatYAML emits entry records as a YAML document.
	formatYAML = "yaml"
)

// formatFlags stores command line output formatting flags and provides for
// their registration and handling.
type formatFlags struct {
	// format stores the value of the --format flag.
	format string
	// noColor stores the value of the --no-color flag.
	noColor bool
}

// register registers the flags into the specified flag set.
func (f *formatFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.format, "format", formatText, "Specify the output format (text|yaml)")
	flags.BoolVar(&f.noColor, "no-color", false, "Disable colorized output")
}

// validate verifies that the flag values are sane and applies the resulting
// color preference: colorization is used only for text output on a terminal
// and can be force-disabled with --no-color.
func (f *formatFlags) validate() error {
	// Verify the output format.
	if f.format != formatText && f.format != formatYAML {
		return errors.Errorf("unknown output format: %s", f.format)
	}

	// Apply the color preference.
	if f.noColor || f.format != formatText || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	// Success.
	return nil
}
