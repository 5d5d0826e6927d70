package render

import (
	"io"
	"strconv"

	"github.com/flytaly/mdnodes/pkg/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders nodes as a sequence of HTML elements, one per line.
// Consecutive list items are wrapped into a single ul or ol.
func HTML(w io.Writer, nodes []parser.Node) error {
	for _, node := range htmlNodes(nodes) {
		if err := html.Render(w, node); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func htmlNodes(nodes []parser.Node) []*html.Node {
	result := make([]*html.Node, 0, len(nodes))
	var list *html.Node // currently open list

	for _, n := range nodes {
		var listAtom atom.Atom
		switch n.Kind() {
		case parser.KindUnorderedListItem:
			listAtom = atom.Ul
		case parser.KindOrderedListItem:
			listAtom = atom.Ol
		}

		if listAtom == 0 {
			list = nil
			if el := htmlElement(n); el != nil {
				result = append(result, el)
			}
			continue
		}

		if list == nil || list.DataAtom != listAtom {
			list = element(listAtom)
			if item, ok := n.(*parser.OrderedListItem); ok && item.Number != 1 {
				list.Attr = append(list.Attr, html.Attribute{Key: "start", Val: strconv.Itoa(item.Number)})
			}
			result = append(result, list)
		}
		li := element(atom.Li)
		appendRuns(li, n.(parser.Container).GetContent())
		list.AppendChild(li)
	}
	return result
}

func htmlElement(n parser.Node) *html.Node {
	switch n := n.(type) {
	case *parser.Heading:
		level := min(max(n.Level, 1), len(headingAtoms)-1)
		h := element(headingAtoms[level])
		appendRuns(h, n.Content)
		return h
	case *parser.Paragraph:
		if len(n.Content) == 0 {
			return nil
		}
		p := element(atom.P)
		appendRuns(p, n.Content)
		return p
	case *parser.BlockQuote:
		q := element(atom.Blockquote)
		appendRuns(q, n.Content)
		return q
	case *parser.HorizontalRule:
		return element(atom.Hr)
	case *parser.Image:
		img := element(atom.Img)
		img.Attr = append(img.Attr,
			html.Attribute{Key: "src", Val: n.Href},
			html.Attribute{Key: "alt", Val: n.DisplayText},
		)
		if n.Title != "" {
			img.Attr = append(img.Attr, html.Attribute{Key: "title", Val: n.Title})
		}
		return img
	case *parser.CodeBlock:
		pre := element(atom.Pre)
		code := element(atom.Code)
		if n.Language != "" {
			code.Attr = append(code.Attr, html.Attribute{Key: "class", Val: "language-" + n.Language})
		}
		code.AppendChild(text(n.Code()))
		pre.AppendChild(code)
		return pre
	}
	return nil
}

var headingAtoms = [...]atom.Atom{atom.H1, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

func appendRuns(parent *html.Node, runs []parser.InlineRun) {
	for _, run := range runs {
		var child *html.Node
		switch run.Attribute {
		case parser.Bold:
			child = element(atom.Strong)
			child.AppendChild(text(run.Text))
		case parser.Italic:
			child = element(atom.Em)
			child.AppendChild(text(run.Text))
		case parser.BoldItalic:
			child = element(atom.Strong)
			em := element(atom.Em)
			em.AppendChild(text(run.Text))
			child.AppendChild(em)
		case parser.Code:
			child = element(atom.Code)
			child.AppendChild(text(run.Text))
		default:
			child = text(run.Text)
		}
		parent.AppendChild(child)
	}
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
