package printers

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var (
	hpLow, _  = colorful.Hex("#ef4444")
	hpHigh, _ = colorful.Hex("#22c55e")
)

// HPColor blends from red at 0 to green at 100.
func HPColor(percent float64) colorful.Color {
	return hpLow.BlendHcl(hpHigh, percent/100).Clamped()
}

// HPBar draws a bar of cells cells filled to percent, which must already be
// clamped to [0, 100].
func HPBar(profile termenv.Profile, percent float64, cells int) string {
	filled := int(math.Round(percent / 100 * float64(cells)))
	if filled < 0 {
		filled = 0
	}
	if filled > cells {
		filled = cells
	}
	full := strings.Repeat("█", filled)
	empty := strings.Repeat("░", cells-filled)

	if profile == termenv.Ascii {
		return full + empty
	}
	bar := profile.String(full).Foreground(profile.Color(HPColor(percent).Hex()))
	rest := profile.String(empty).Faint()
	return bar.String() + rest.String()
}
