package options

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ApplyColor sets the global color switch for mode, one of auto, always or
// never. auto colors only when out is a terminal.
func ApplyColor(mode string, out *os.File) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		fd := out.Fd()
		color.NoColor = os.Getenv("TERM") == "dumb" ||
			(!isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd))
	}
}
