package grid

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// fold normalises s to NFC and lower-cases it rune by rune, so indexes into
// the result line up with the runes of norm.NFC.String(s).
func fold(s string) []rune {
	runes := []rune(norm.NFC.String(s))
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

// Contains reports whether needle occurs in haystack, ignoring case.
// An empty needle matches everything.
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(string(fold(haystack)), string(fold(needle)))
}

// Segment is a run of cell text, marked when it matched the search text.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text into plain and matched runs. Every non-overlapping,
// case-insensitive occurrence of term is marked, scanning left to right.
// term is literal text, not a pattern.
func Highlight(text, term string) []Segment {
	if text == "" {
		return nil
	}
	if term == "" {
		return []Segment{{Text: text}}
	}

	orig := []rune(norm.NFC.String(text))
	lower := fold(text)
	needle := fold(term)
	if len(needle) > len(lower) {
		return []Segment{{Text: string(orig)}}
	}

	var segs []Segment
	plainStart := 0
	for i := 0; i+len(needle) <= len(lower); {
		if !runesEqual(lower[i:i+len(needle)], needle) {
			i++
			continue
		}
		if i > plainStart {
			segs = append(segs, Segment{Text: string(orig[plainStart:i])})
		}
		segs = append(segs, Segment{Text: string(orig[i : i+len(needle)]), Match: true})
		i += len(needle)
		plainStart = i
	}
	if plainStart < len(orig) {
		segs = append(segs, Segment{Text: string(orig[plainStart:])})
	}
	return segs
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SearchState records the most recently committed search, used only to
// drive highlighting.
type SearchState struct {
	Text   string
	Column ColumnKey
}

// Segments highlights text when it belongs to the searched column.
func (s SearchState) Segments(col ColumnKey, text string) []Segment {
	if s.Text == "" || s.Column != col {
		if text == "" {
			return nil
		}
		return []Segment{{Text: text}}
	}
	return Highlight(text, s.Text)
}
