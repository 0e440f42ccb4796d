package commands

import (
	"flag"

	"github.com/fatih/color"

	"taskbartoggle/internal/ui"
)

type commonFlags struct {
	noColor bool
	noEmoji bool
}

func addCommonFlags(fs *flag.FlagSet, c *commonFlags) {
	fs.BoolVar(&c.noColor, "no-color", false, "disable ANSI colors")
	fs.BoolVar(&c.noEmoji, "no-emoji", false, "disable emoji in output")
}

func applyCommonFlags(c commonFlags) ui.Theme {
	if c.noColor {
		color.NoColor = true
	}
	return ui.Theme{NoColor: c.noColor, NoEmoji: c.noEmoji}
}
