/*
Package textsum provides a summary monoid over text fragments.

A Summary aggregates byte count, word count, newline count and monospace
display width of a piece of text. Summaries add componentwise, with the
empty summary as the neutral element, so they can be used as segment tree
elements: a tree with one leaf per text fragment answers "how many words in
fragments [l, r)" in logarithmic time.

Display width is measured in terminal character cells, respecting grapheme
cluster boundaries and East Asian width. Note that summaries are computed
per fragment; fragments should not split grapheme clusters or words, or
widths and word counts of adjacent fragments will not add up exactly.
*/
package textsum

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Summary aggregates text-fragment metrics.
type Summary struct {
	Bytes uint64 // length in bytes
	Words uint64 // whitespace-separated words
	Lines uint64 // newline characters
	Width uint64 // monospace display width in character cells
}

// Monoid adds summaries componentwise for segment tree aggregation.
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() Summary { return Summary{} }

// Add combines two summaries.
func (Monoid) Add(left, right Summary) Summary {
	return Summary{
		Bytes: left.Bytes + right.Bytes,
		Words: left.Words + right.Words,
		Lines: left.Lines + right.Lines,
		Width: left.Width + right.Width,
	}
}

var setupClasses sync.Once

// Summarize measures a text fragment. Display width is calculated for a
// Latin script context; use SummarizeInContext for other environments.
func Summarize(frag string) Summary {
	return SummarizeInContext(frag, uax11.LatinContext)
}

// SummarizeInContext measures a text fragment with display width resolved
// for a given UAX#11 context.
func SummarizeInContext(frag string, context *uax11.Context) Summary {
	setupClasses.Do(func() {
		grapheme.SetupGraphemeClasses()
	})
	gstr := grapheme.StringFromString(frag)
	return Summary{
		Bytes: uint64(len(frag)),
		Words: countWords(frag),
		Lines: countLines(frag),
		Width: uint64(uax11.StringWidth(gstr, context)),
	}
}

func countLines(s string) uint64 {
	var lines uint64
	for _, r := range s {
		if r == '\n' {
			lines++
		}
	}
	return lines
}

// countWords counts maximal runs of non-space runes.
func countWords(s string) uint64 {
	b := []byte(s)
	var words uint64
	for pos := 0; pos < len(b); {
		r, width := utf8.DecodeRune(b[pos:])
		if r == utf8.RuneError && width == 1 {
			width = 1
		}
		if unicode.IsSpace(r) {
			pos += width
			continue
		}
		words++
		pos += width
		for pos < len(b) {
			r, width = utf8.DecodeRune(b[pos:])
			if r == utf8.RuneError && width == 1 {
				width = 1
			}
			if unicode.IsSpace(r) {
				break
			}
			pos += width
		}
	}
	return words
}
