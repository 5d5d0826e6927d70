package parser

import "strings"

// Delimiter is a pair of markers enclosing a span of text.
type Delimiter struct {
	Start, End string
}

// Same returns a delimiter that opens and closes with s
func Same(s string) Delimiter {
	return Delimiter{Start: s, End: s}
}

// Pair returns a delimiter with distinct start and end markers
func Pair(start, end string) Delimiter {
	return Delimiter{Start: start, End: end}
}

// ExtractBetween returns the text between the first start marker and its
// matching end marker. Distinct markers are balanced, so nested pairs stay
// inside the result: "![some [text]!]" gives "some [text]!". When start and
// end are the same, the span runs to the last occurrence of the marker.
func ExtractBetween(text string, d Delimiter) (string, bool) {
	beg, end := between(text, d)
	if beg < 0 {
		return "", false
	}
	return text[beg:end], true
}

// between returns the bounds of the enclosed text, or -1, -1 if there is none.
// text[end:] starts with the closing marker.
func between(text string, d Delimiter) (beg, end int) {
	if d.Start == "" || d.End == "" {
		return -1, -1
	}
	open := strings.Index(text, d.Start)
	if open < 0 {
		return -1, -1
	}
	beg = open + len(d.Start)

	if d.Start == d.End {
		last := strings.LastIndex(text[beg:], d.End)
		if last < 0 {
			return -1, -1
		}
		return beg, beg + last
	}

	// opens and closes seen so far, the first open is already counted
	opens, closes := 1, 0
	for i := beg; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], d.End):
			closes++
			if closes == opens {
				return beg, i
			}
			i += len(d.End)
		case strings.HasPrefix(text[i:], d.Start):
			opens++
			i += len(d.Start)
		default:
			i++
		}
	}
	return -1, -1
}
