package segtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DumpConfig controls terminal output of Tree.Dump.
type DumpConfig struct {
	LineWidth int  // maximum characters per line, 0 = unlimited
	Colors    bool // colorize aggregates and padding
}

// ConfigFromTerminal creates a dump configuration from the current
// terminal's properties (if stdout is interactive).
func ConfigFromTerminal() *DumpConfig {
	config := &DumpConfig{}
	if term.IsTerminal(0) {
		config.Colors = true
		w, _, err := term.GetSize(0)
		if err == nil && w > 0 {
			config.LineWidth = w
		}
	}
	return config
}

var (
	aggregateColor = color.New(color.FgBlue)
	paddingColor   = color.New(color.FgHiBlack)
)

// Dump writes a level-by-level rendering of the tree to w, one tree level
// per line, root first (for debugging purposes). format renders element
// values; if nil, values are printed with %v. A nil config dumps plain
// unbounded lines; use ConfigFromTerminal for interactive output.
func (t *Tree[S]) Dump(w io.Writer, format func(S) string, config *DumpConfig) {
	if format == nil {
		format = func(v S) string { return fmt.Sprintf("%v", v) }
	}
	if config == nil {
		config = &DumpConfig{}
	}
	n := t.Cap()
	for first, count := 0, 1; first < 2*n-1; first, count = 2*first+1, 2*count {
		var line strings.Builder
		for i := first; i < first+count; i++ {
			if i > first {
				line.WriteString("  ")
			}
			cell := format(t.storage[i])
			switch {
			case config.Colors && i < n-1:
				cell = aggregateColor.Sprint(cell)
			case config.Colors && i-(n-1) >= t.length:
				cell = paddingColor.Sprint(cell)
			}
			line.WriteString(cell)
		}
		s := line.String()
		if config.LineWidth > 0 && len(s) > config.LineWidth {
			s = s[:config.LineWidth]
		}
		fmt.Fprintln(w, s)
	}
}
