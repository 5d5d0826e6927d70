/*
Package parser implements parser for markdown text that generates a flat
list of block nodes with inline runs.
*/
package parser

import (
	"strings"

	"github.com/flytaly/mdnodes/pkg/log"
)

type Parser struct {
	log        log.Logger
	skipBlanks bool

	Nodes []Node
}

// New creates a markdown parser
func New(options ...func(*Parser)) *Parser {
	p := &Parser{
		log:   log.NewEmptyLog(),
		Nodes: make([]Node, 0),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// WithLogger sets the logger that receives parse warnings and statistics.
func WithLogger(logger log.Logger) func(*Parser) {
	return func(p *Parser) {
		if logger != nil {
			p.log = logger
		}
	}
}

// SkipBlankLines drops the empty paragraphs produced by blank lines.
func SkipBlankLines(p *Parser) {
	p.skipBlanks = true
}

func (p *Parser) AppendNode(n Node) {
	p.Nodes = append(p.Nodes, n)
}

// Parse parses input into a list of nodes appended to p.Nodes.
// A failure on any line aborts the whole document: p.Nodes is left as it
// was before the call and the error is a *ParseError.
func (p *Parser) Parse(input []byte) error {
	// the code only works with Unix LF newlines so to make life easy for
	// callers normalize newlines
	text := string(NormalizeNewlines(input))

	before := len(p.Nodes)
	if err := p.document(text); err != nil {
		p.Nodes = p.Nodes[:before]
		return err
	}

	blocks := 0
	for _, n := range p.Nodes[before:] {
		if n.Kind() == KindCodeBlock {
			blocks++
		}
	}
	p.log.Info("parsed %d nodes, %d code blocks", len(p.Nodes)-before, blocks)
	return nil
}

// document walks text with a cursor, alternating between runs of ordinary
// lines and fenced code blocks.
func (p *Parser) document(text string) error {
	line := 1 // number of the line at pos
	for pos := 0; pos < len(text); {
		fence := nextFence(text, pos)
		end := fence
		if fence < 0 {
			end = len(text)
		}

		if err := p.lines(text[pos:end], line); err != nil {
			return err
		}
		line += strings.Count(text[pos:end], "\n")

		if fence < 0 {
			break
		}

		block, n, closed := ParseCodeBlock(text[fence:])
		if !closed {
			p.log.Warning("line %d: code fence is never closed, the rest of the document is code", line)
		}
		p.AppendNode(block)
		line += strings.Count(text[fence:fence+n], "\n")
		pos = fence + n
	}
	return nil
}

// lines classifies each line of data. first is the document line number of data's first line.
func (p *Parser) lines(data string, first int) error {
	for i, num := 0, first; i < len(data); num++ {
		var line string
		line, i = nextLine(data, i)

		if p.skipBlanks && strings.TrimSpace(line) == "" {
			continue
		}

		node, err := ParseLine(line)
		if err != nil {
			return &ParseError{Line: num, Err: err}
		}
		p.AppendNode(node)
	}
	return nil
}

// Parse parses a whole markdown document.
func Parse(text string) ([]Node, error) {
	p := New()
	if err := p.Parse([]byte(text)); err != nil {
		return nil, err
	}
	return p.Nodes, nil
}

func NormalizeNewlines(d []byte) []byte {
	out := make([]byte, 0, len(d))
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c != '\r' {
			out = append(out, c)
			continue
		}
		// replace CR (mac / win) with LF (unix)
		out = append(out, '\n')
		if i+1 < len(d) && d[i+1] == '\n' {
			// this was CRLF, so skip the LF
			i++
		}
	}
	return out
}
