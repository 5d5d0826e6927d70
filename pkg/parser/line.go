package parser

import (
	"regexp"
	"strings"
)

const maxHeadingLevel = 6

var orderedItemRegexp = regexp.MustCompile(`^[0-9]\. `)

// ParseLine classifies a single line and builds the matching block node.
// The first matching rule wins:
//
//	"# " .. "###### "   heading (longest prefix first)
//	"```"               ErrUnsupportedAtLineLevel
//	"- "                unordered list item
//	"N. "               ordered list item
//	"===" "***" "___"   horizontal rule
//	"!["                image
//	"> "                block quote
//	anything else       paragraph
func ParseLine(line string) (Node, error) {
	if level := headingLevel(line); level > 0 {
		h := &Heading{Level: level}
		h.Content = Inline(line[level+1:])
		return h, nil
	}

	switch {
	case strings.HasPrefix(line, FenceMarker):
		return nil, ErrUnsupportedAtLineLevel

	case strings.HasPrefix(line, "- "):
		item := &UnorderedListItem{}
		item.Content = Inline(line[2:])
		return item, nil

	case orderedItemRegexp.MatchString(line):
		item := &OrderedListItem{Number: int(line[0] - '0')}
		item.Content = Inline(line[3:])
		return item, nil

	case strings.HasPrefix(line, "==="),
		strings.HasPrefix(line, "***"),
		strings.HasPrefix(line, "___"):
		return &HorizontalRule{}, nil

	case strings.HasPrefix(line, "!["):
		return ParseImage(line)

	case strings.HasPrefix(line, "> "):
		quote := &BlockQuote{}
		quote.Content = Inline(line[2:])
		return quote, nil
	}

	para := &Paragraph{}
	para.Content = Inline(line)
	return para, nil
}

// headingLevel returns the number of leading '#' if they are followed by
// a space, or 0 if line isn't a heading.
func headingLevel(line string) int {
	level := skipChar(line, 0, '#')
	if level == 0 || level > maxHeadingLevel {
		return 0
	}
	if level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

// skipChar advances i as long as data[i] == c
func skipChar(data string, i int, c byte) int {
	n := len(data)
	for i < n && data[i] == c {
		i++
	}
	return i
}

// like skipChar but only skips up to max characters
func skipCharN(data string, i int, c byte, max int) int {
	n := len(data)
	for i < n && max > 0 && data[i] == c {
		i++
		max--
	}
	return i
}
