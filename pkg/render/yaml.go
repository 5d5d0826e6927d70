package render

import (
	"io"

	"github.com/flytaly/mdnodes/pkg/parser"
	"gopkg.in/yaml.v3"
)

type yamlRun struct {
	Attribute string `yaml:"attribute,omitempty"`
	Text      string `yaml:"text"`
}

type yamlNode struct {
	Type        string    `yaml:"type"`
	Number      *int      `yaml:"number,omitempty"` // nil for nodes other than ordered items
	Language    string    `yaml:"language,omitempty"`
	Href        string    `yaml:"href,omitempty"`
	DisplayText string    `yaml:"displayText,omitempty"`
	Title       string    `yaml:"title,omitempty"`
	Data        []yamlRun `yaml:"data,omitempty"`
}

// YAML writes nodes as a YAML sequence of maps keyed by "type".
func YAML(w io.Writer, nodes []parser.Node) error {
	records := make([]yamlNode, 0, len(nodes))
	for _, n := range nodes {
		records = append(records, toYAML(n))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

func toYAML(n parser.Node) yamlNode {
	rec := yamlNode{Type: TypeName(n)}
	switch n := n.(type) {
	case *parser.OrderedListItem:
		number := n.Number
		rec.Number = &number
	case *parser.CodeBlock:
		rec.Language = n.Language
	case *parser.Image:
		rec.Href = n.Href
		rec.DisplayText = n.DisplayText
		rec.Title = n.Title
	}
	if c, ok := n.(parser.Container); ok {
		for _, run := range c.GetContent() {
			r := yamlRun{Text: run.Text}
			if run.Attribute != parser.Plain {
				r.Attribute = run.Attribute.String()
			}
			rec.Data = append(rec.Data, r)
		}
	}
	return rec
}
