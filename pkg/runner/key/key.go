// Package key provides CLI helpers to display the quest log legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/questlog/pkg/highlight"
)

// Key prints the symbols used by the month table and the outcome phrases
// that are emphasised in the timeline.
type Key struct {
	Out io.Writer
}

// Do renders the month symbols and outcome phrases.
func (k *Key) Do(_ context.Context) error {
	w := k.out()
	bold := color.New(color.Bold)
	emph := color.New(color.Bold, color.FgGreen)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Symbol"), bold.Sprint("Meaning"))
	tbl.AddRow("✓", "Month has recorded events")
	tbl.AddRow("-", "Month has no events and cannot be selected")
	tbl.AddRow("●", "Selected month")
	tbl.AddRow("TODAY", "Entry dated the current quest date")
	tbl.AddRow("✨", "Active modifier")
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, "")

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Outcome"), bold.Sprint("Example"))
	for _, ex := range []string{"Success", "Victory", "Result 12", "Partial Success"} {
		markup := highlight.Highlight("a " + ex + " here")
		tbl.AddRow(ex, markup.Render(func(s string) string { return emph.Sprint(s) }))
	}
	_, _ = fmt.Fprintln(w, tbl)
	return nil
}

func (k *Key) out() io.Writer {
	if k.Out == nil {
		return color.Output
	}
	return k.Out
}
