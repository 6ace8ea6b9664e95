// Package banner prints the start-up banner of the interactive commands.
package banner

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

const (
	figureText = "QADASH"
	figureFont = "doom"
)

// Print writes the banner and a subtitle to w. Colors follow the fatih/color global switch.
func Print(w io.Writer, subtitle string) {
	fig := figure.NewFigure(figureText, figureFont, true)
	for _, line := range fig.Slicify() {
		_, _ = color.New(color.FgCyan).Fprintln(w, line)
	}

	rule := color.New(color.FgBlue)
	_, _ = rule.Fprintln(w, "════════════════════════════════════════════════")
	_, _ = color.New(color.FgGreen).Fprintln(w, "    "+subtitle)
	_, _ = rule.Fprintln(w, "════════════════════════════════════════════════")
	fmt.Fprintln(w)
}
