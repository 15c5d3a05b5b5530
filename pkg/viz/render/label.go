package render

import (
	"strings"
	"unicode/utf8"

	"github.com/blockscope/blockscope/pkg/viz/layout"
)

// Label metrics. The usable label width is the node width minus padding on
// both sides; character width is estimated from the font size the way the
// sinks draw it.
const (
	labelPadding   = 8.0
	labelFontSize  = 12.0
	labelCharRatio = 0.55
	labelMaxLines  = 2
)

var labelColor = mustHex("#2b2f36")

// labelCharWidth is the estimated width of one label character.
var labelCharWidth = labelFontSize * labelCharRatio

// labelMaxChars is the per-line character budget derived from the usable
// width and the estimated character width.
var labelMaxChars = int((layout.NodeWidth - 2*labelPadding) / labelCharWidth)

// WrapLabel splits a node name into at most two centered label lines,
// breaking on spaces where possible. Widths count runes, not bytes.
// Overflow past the second line is truncated with an ellipsis.
func WrapLabel(name string) []string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if runeLen(current)+1+runeLen(w) <= labelMaxChars {
			current += " " + w
			continue
		}
		lines = append(lines, current)
		current = w
		if len(lines) == labelMaxLines {
			break
		}
	}
	lines = append(lines, current)

	if len(lines) > labelMaxLines {
		lines = lines[:labelMaxLines]
	}
	for i, l := range lines {
		if runeLen(l) > labelMaxChars {
			lines[i] = truncateRunes(l, labelMaxChars-2) + ".."
		}
	}
	// A truncated word list still needs the ellipsis marker on the last line.
	if full := strings.Join(words, " "); joinedLen(lines) < runeLen(full) {
		last := lines[len(lines)-1]
		if !strings.HasSuffix(last, "..") {
			lines[len(lines)-1] = truncateRunes(last, labelMaxChars-2) + ".."
		}
	}
	return lines
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// truncateRunes cuts s to at most n runes, always on a rune boundary.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func joinedLen(lines []string) int {
	n := 0
	for i, l := range lines {
		if i > 0 {
			n++
		}
		n += runeLen(l)
	}
	return n
}
