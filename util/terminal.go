package util

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultTerminalWidth is used when the output is not attached to a terminal
const DefaultTerminalWidth = 80

// TerminalWidth returns the column count of the terminal w writes to, or DefaultTerminalWidth when w is
// not a terminal.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultTerminalWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}

	return width
}

// WrapText breaks text into lines no longer than width runes, splitting on white space only. Words longer than
// width are kept on a line of their own.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var (
		lines   []string
		current []rune
	)
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		if len(current) > 0 && len(current)+1+len(w) > width {
			lines = append(lines, string(current))
			current = current[:0]
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, w...)
	}
	if len(current) > 0 || len(lines) == 0 {
		lines = append(lines, string(current))
	}

	return lines
}
