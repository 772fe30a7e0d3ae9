package goargs

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/napalu/goargs/types"
	"github.com/napalu/goargs/util"
)

const (
	helpIndent    = "  "
	helpColumnGap = 3
	minDescWidth  = 20
)

// PrintHelp writes an aligned rendering of every option to the configured stdout writer:
//
//	Usage: prog [options]
//
//	Options:
//	  -d --double   This is a double. (default: 1.5)
//	  -gz --gzip    This is a boolean toggle.
//
// Descriptions are wrapped to the width of the terminal stdout is attached to.
func (r *Registry) PrintHelp() {
	r.PrintHelpWidth(r.stdout, util.TerminalWidth(r.stdout))
}

// PrintHelpWidth writes the help rendering to w, wrapping descriptions so lines fit width columns
func (r *Registry) PrintHelpWidth(w io.Writer, width int) {
	usage := r.usage
	if usage == "" {
		usage = r.programName + " [options]"
	}
	fmt.Fprintln(w, r.bundle.T(types.HelpUsageKey, usage))

	options := r.Options()
	if len(options) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, r.bundle.T(types.HelpOptionsKey))

	names := make([]string, len(options))
	column := 0
	for i, h := range options {
		names[i] = flagNames(h)
		column = util.Max(column, utf8.RuneCountInString(names[i]))
	}
	column += helpColumnGap

	descWidth := util.Max(width-len(helpIndent)-column, minDescWidth)
	padding := strings.Repeat(" ", len(helpIndent)+column)

	for i, h := range options {
		lines := util.WrapText(r.describe(h), descWidth)
		fmt.Fprintf(w, "%s%s%s%s\n", helpIndent, names[i],
			strings.Repeat(" ", column-utf8.RuneCountInString(names[i])), lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(w, "%s%s\n", padding, line)
		}
	}
}

func (r *Registry) describe(h Handle) string {
	desc := h.Description()
	if def, ok := h.Default(); ok {
		desc = strings.TrimSpace(desc + " " + r.bundle.T(types.MsgDefaultsToKey, def))
	}

	return desc
}

func flagNames(h Handle) string {
	if h.Short() == "" {
		return "--" + h.Long()
	}

	return "-" + h.Short() + " --" + h.Long()
}
