package parser

import "strings"

// FenceMarker opens and closes a fenced code block.
const FenceMarker = "```"

// maximum indentation of an opening fence
const maxFenceIndent = 3

// ContainsCodeBlock reports whether text has both an opening and a closing fence marker.
// Parse does not need it: a lone opening fence still starts a block.
func ContainsCodeBlock(text string) bool {
	return strings.Count(text, FenceMarker) >= 2
}

// ParseCodeBlock parses the fenced code block that starts at the first fence
// marker of text:
//
//	```go
//	func fact(n int) int {
//	    return n * fact(n-1)
//	}
//	```
//
// The text after the opening marker is the language tag, unless that line
// also ends with the marker: then the block has no tag and the text between
// the two markers is its code. Otherwise lines are collected
// verbatim until a line that ends with the marker; anything before the
// closing marker on that line is part of the code. end is the offset in text
// right after the consumed block, including the newline of the closing line.
// If the block is never closed, it extends to the end of text and closed is false.
// block is nil if text has no fence marker.
func ParseCodeBlock(text string) (block *CodeBlock, end int, closed bool) {
	start := strings.Index(text, FenceMarker)
	if start < 0 {
		return nil, 0, false
	}

	info, i := nextLine(text, start+len(FenceMarker))

	// ```code``` opens and closes the block on the same line
	if inner := strings.TrimRight(info, " \t"); strings.HasSuffix(inner, FenceMarker) {
		block = &CodeBlock{}
		block.Content = []InlineRun{{Text: strings.TrimSuffix(inner, FenceMarker)}}
		return block, i, true
	}

	var lines []string
	for i < len(text) {
		var line string
		line, i = nextLine(text, i)

		trimmed := strings.TrimRight(line, " \t")
		if strings.HasSuffix(trimmed, FenceMarker) {
			if code := strings.TrimSuffix(trimmed, FenceMarker); strings.TrimSpace(code) != "" {
				lines = append(lines, code)
			}
			closed = true
			break
		}
		lines = append(lines, line)
	}

	block = &CodeBlock{Language: strings.TrimSpace(info)}
	block.Content = []InlineRun{{Text: strings.Join(lines, "\n")}}
	return block, i, closed
}

// nextLine returns the line that starts at data[i] without its newline,
// and the offset of the following line.
func nextLine(data string, i int) (string, int) {
	nl := strings.IndexByte(data[i:], '\n')
	if nl < 0 {
		return data[i:], len(data)
	}
	return data[i : i+nl], i + nl + 1
}

// isFenceLine checks if the line starting at data[i] opens a fenced code block.
func isFenceLine(data string, i int) bool {
	i = skipCharN(data, i, ' ', maxFenceIndent)
	return strings.HasPrefix(data[i:], FenceMarker)
}

// nextFence returns the offset of the first line at or after data[i] that
// opens a fenced code block, or -1. i must be at the beginning of a line.
func nextFence(data string, i int) int {
	for i < len(data) {
		if isFenceLine(data, i) {
			return i
		}
		_, i = nextLine(data, i)
	}
	return -1
}
