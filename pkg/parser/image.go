package parser

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseImage parses image syntax at the beginning of line:
//
//	![display text](href "optional title")
func ParseImage(line string) (*Image, error) {
	txtB, txtE := between(line, Pair("[", "]"))
	if txtB < 0 {
		return nil, fmt.Errorf("%w: no display text in %q", ErrMalformedImage, line)
	}
	displayText := line[txtB:txtE]
	if displayText == "" {
		return nil, fmt.Errorf("%w: empty display text in %q", ErrMalformedImage, line)
	}

	// skip any amount of whitespace between the brackets and the parentheses
	rest := strings.TrimLeftFunc(line[txtE+1:], unicode.IsSpace)
	if !strings.HasPrefix(rest, "(") {
		return nil, fmt.Errorf("%w: no destination in %q", ErrMalformedImage, line)
	}
	raw, ok := ExtractBetween(rest, Pair("(", ")"))
	if !ok {
		return nil, fmt.Errorf("%w: unclosed destination in %q", ErrMalformedImage, line)
	}

	href, title := splitDestination(raw)
	if href == "" {
		return nil, fmt.Errorf("%w: empty destination in %q", ErrMalformedImage, line)
	}

	return &Image{
		Href:        href,
		DisplayText: displayText,
		Title:       title,
	}, nil
}

// splitDestination splits raw on its first run of whitespace into the link
// and the title, with the title's quotes removed.
func splitDestination(raw string) (href, title string) {
	raw = strings.TrimSpace(raw)
	i := strings.IndexFunc(raw, unicode.IsSpace)
	if i < 0 {
		return raw, ""
	}
	return raw[:i], unquote(strings.TrimSpace(raw[i:]))
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if ((first == '"' || first == '\'') && last == first) || (first == '(' && last == ')') {
		return s[1 : len(s)-1]
	}
	return s
}
