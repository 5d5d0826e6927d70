package parser

import "strings"

// Parsing of inline elements

// Inline splits the text of a line into plain and attributed runs.
// Emphasis is not nested, and delimiters without a closing
// counterpart are kept as plain text.
func Inline(text string) []InlineRun {
	var (
		runs  []InlineRun
		plain strings.Builder
	)

	flush := func() {
		if plain.Len() > 0 {
			runs = append(runs, InlineRun{Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		delim := delimiterAt(text, i)
		if delim == "" {
			plain.WriteByte(text[i])
			i++
			continue
		}

		var (
			content  string
			consumed int
		)
		if delim == "`" {
			content, consumed = codeSpan(text[i:])
		} else {
			content, consumed = emphasis(text[i:], delim)
		}

		// dangling delimiter
		if consumed == 0 {
			plain.WriteString(delim)
			i += len(delim)
			continue
		}

		flush()
		runs = append(runs, InlineRun{Attribute: attributeOf(delim), Text: content})
		i += consumed
	}
	flush()

	return runs
}

// delimiterAt returns the inline delimiter starting at data[i], longest first.
func delimiterAt(data string, i int) string {
	switch {
	case strings.HasPrefix(data[i:], "***"):
		return "***"
	case strings.HasPrefix(data[i:], "**"):
		return "**"
	case data[i] == '*':
		return "*"
	case data[i] == '`':
		return "`"
	}
	return ""
}

func attributeOf(delim string) Attribute {
	switch delim {
	case "***":
		return BoldItalic
	case "**":
		return Bold
	case "*":
		return Italic
	case "`":
		return Code
	}
	return Plain
}

// emphasis captures the text up to the next occurrence of delim.
// data starts with delim. Returns the number of consumed bytes, including
// both delimiters, or 0 if the delimiter is never closed.
func emphasis(data string, delim string) (string, int) {
	rest := data[len(delim):]
	end := strings.Index(rest, delim)
	if end < 0 {
		return "", 0
	}
	return rest[:end], len(delim) + end + len(delim)
}

// codeSpan captures the text between the opening backtick and the last
// backtick of data, so the span may itself contain backticks:
// "`a `b` c`" is a single span "a `b` c".
func codeSpan(data string) (string, int) {
	last := strings.LastIndexByte(data, '`')
	if last <= 0 {
		return "", 0
	}
	return data[1:last], last + 1
}

// PlainText concatenates the text of runs, dropping the attributes.
func PlainText(runs []InlineRun) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
