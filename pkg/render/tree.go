package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/flytaly/mdnodes/pkg/parser"
	"github.com/gookit/color"
)

var attrStyle = map[parser.Attribute]color.Color{
	parser.Bold:       color.OpBold,
	parser.Italic:     color.OpItalic,
	parser.BoldItalic: color.Magenta,
	parser.Code:       color.Green,
}

// Tree prints every node on its own line followed by its inline runs.
//
//	HeadingTwo
//	  "Hello "
//	  Bold "world"
func Tree(w io.Writer, nodes []parser.Node) error {
	for _, n := range nodes {
		if _, err := fmt.Fprintln(w, color.Cyan.Sprint(TypeName(n))+nodeDetails(n)); err != nil {
			return err
		}
		c, ok := n.(parser.Container)
		if !ok {
			continue
		}
		for _, run := range c.GetContent() {
			if _, err := fmt.Fprintln(w, "  "+runLine(run)); err != nil {
				return err
			}
		}
	}
	return nil
}

func nodeDetails(n parser.Node) string {
	switch n := n.(type) {
	case *parser.OrderedListItem:
		return fmt.Sprintf(" %d.", n.Number)
	case *parser.CodeBlock:
		if n.Language != "" {
			return " " + color.FgDarkGray.Sprint(n.Language)
		}
	case *parser.Image:
		details := fmt.Sprintf(" href=%q alt=%q", n.Href, n.DisplayText)
		if n.Title != "" {
			details += fmt.Sprintf(" title=%q", n.Title)
		}
		return details
	}
	return ""
}

func runLine(run parser.InlineRun) string {
	text := fmt.Sprintf("%q", run.Text)
	if strings.Contains(run.Text, "\n") {
		// keep code blocks readable
		text = "|\n    " + strings.ReplaceAll(run.Text, "\n", "\n    ")
	}
	style, ok := attrStyle[run.Attribute]
	if !ok {
		return text
	}
	return style.Sprint(run.Attribute.String()) + " " + text
}
