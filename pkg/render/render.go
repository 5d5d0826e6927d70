// Package render writes parsed markdown nodes in a human or machine readable form.
package render

import (
	"fmt"
	"io"

	"github.com/flytaly/mdnodes/pkg/parser"
)

// Format selects the output syntax.
type Format string

const (
	FormatTree Format = "tree"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

var formats = []Format{FormatTree, FormatYAML, FormatHTML}

// ParseFormat validates a format name given on the command line.
func ParseFormat(name string) (Format, error) {
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q, expected one of %v", name, formats)
}

// Write renders nodes to w using format.
func Write(w io.Writer, format Format, nodes []parser.Node) error {
	switch format {
	case FormatTree:
		return Tree(w, nodes)
	case FormatYAML:
		return YAML(w, nodes)
	case FormatHTML:
		return HTML(w, nodes)
	}
	return fmt.Errorf("unknown format %q", format)
}

var headingNames = [...]string{
	1: "HeadingOne",
	2: "HeadingTwo",
	3: "HeadingThree",
	4: "HeadingFour",
	5: "HeadingFive",
	6: "HeadingSix",
}

// TypeName returns the name of the node type, headings are named by level.
func TypeName(n parser.Node) string {
	if h, ok := n.(*parser.Heading); ok && h.Level >= 1 && h.Level < len(headingNames) {
		return headingNames[h.Level]
	}
	return n.Kind().String()
}
