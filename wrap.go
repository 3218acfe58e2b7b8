package blockdiag

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// minWrapWidth is the narrowest wrap width, in characters.
const minWrapWidth = 12

// charsPerUnit is how many label characters fit in one canvas unit of box
// width.
const charsPerUnit = 6

// WrapWidth returns the maximum line length, in characters, for a label
// inside a box w canvas units wide: max(12, w*6).
func WrapWidth(w float64) int {
	return max(minWrapWidth, int(w*charsPerUnit))
}

// Wrap breaks label into lines of at most width characters.
//
// All white space, newlines included, separates words: the label is
// reflowed as a single paragraph. Words are packed greedily and separated
// by a single space. A word longer than width is split into width-sized
// pieces. The label is NFC-normalized first so that a composed character
// counts once.
func Wrap(label string, width int) []string {
	width = max(width, 1)
	return wrapParagraph(nil, strings.Fields(norm.NFC.String(label)), width)
}

// WrapLines is like Wrap but keeps explicit line breaks: each line of the
// label is wrapped on its own and blank lines are dropped.
func WrapLines(label string, width int) []string {
	width = max(width, 1)
	var lines []string
	for _, para := range strings.Split(norm.NFC.String(label), "\n") {
		lines = wrapParagraph(lines, strings.Fields(para), width)
	}
	return lines
}

// wrapParagraph appends the wrapped lines of words to lines.
func wrapParagraph(lines, words []string, width int) []string {
	var (
		line strings.Builder
		n    int
	)
	flush := func() {
		if n > 0 {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
	}

	for _, word := range words {
		for utf8.RuneCountInString(word) > width {
			flush()
			head, tail := splitRunes(word, width)
			lines = append(lines, head)
			word = tail
		}
		wn := utf8.RuneCountInString(word)
		if wn == 0 {
			continue
		}
		if n > 0 && n+1+wn > width {
			flush()
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += wn
	}
	flush()
	return lines
}

// splitRunes splits s after its first n runes.
func splitRunes(s string, n int) (head, tail string) {
	i := 0
	for j := range s {
		if i == n {
			return s[:j], s[j:]
		}
		i++
	}
	return s, ""
}
