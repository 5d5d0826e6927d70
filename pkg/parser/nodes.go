package parser

// Attribute is the formatting applied to an inline run.
type Attribute int

const (
	Plain Attribute = iota // no formatting
	Bold
	Italic
	BoldItalic
	Code
)

func (a Attribute) String() string {
	switch a {
	case Plain:
		return "Plain"
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case BoldItalic:
		return "BoldItalic"
	case Code:
		return "Code"
	}
	return "?"
}

// InlineRun is a span of text sharing one attribute.
type InlineRun struct {
	Attribute Attribute
	Text      string
}

// Kind identifies the concrete type of a Node.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindUnorderedListItem
	KindOrderedListItem
	KindBlockQuote
	KindHorizontalRule
	KindImage
	KindCodeBlock
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "Heading"
	case KindParagraph:
		return "Paragraph"
	case KindUnorderedListItem:
		return "UnorderedListItem"
	case KindOrderedListItem:
		return "OrderedListItem"
	case KindBlockQuote:
		return "BlockQuote"
	case KindHorizontalRule:
		return "HorizontalRule"
	case KindImage:
		return "Image"
	case KindCodeBlock:
		return "CodeBlock"
	}
	return "?"
}

// Node is a block-level element of a document. The set of implementations
// is closed: only the types in this file satisfy it.
type Node interface {
	Kind() Kind
	node()
}

// Container is a node that holds inline content
type Container interface {
	Node
	GetContent() []InlineRun
}

// Leaf carries the inline runs of a text block.
type Leaf struct {
	Content []InlineRun
}

func (l Leaf) GetContent() []InlineRun {
	return l.Content
}

// Heading is an ATX heading, Level is the number of leading '#'.
type Heading struct {
	Leaf
	Level int
}

func (*Heading) Kind() Kind { return KindHeading }
func (*Heading) node() {}

type Paragraph struct {
	Leaf
}

func (*Paragraph) Kind() Kind { return KindParagraph }
func (*Paragraph) node() {}

type UnorderedListItem struct {
	Leaf
}

func (*UnorderedListItem) Kind() Kind { return KindUnorderedListItem }
func (*UnorderedListItem) node() {}

// OrderedListItem is a "N. " item, Number holds the digit N.
type OrderedListItem struct {
	Leaf
	Number int
}

func (*OrderedListItem) Kind() Kind { return KindOrderedListItem }
func (*OrderedListItem) node() {}

type BlockQuote struct {
	Leaf
}

func (*BlockQuote) Kind() Kind { return KindBlockQuote }
func (*BlockQuote) node() {}

// CodeBlock is a fenced code block. Content always holds a single plain run
// with the code lines joined by '\n'.
type CodeBlock struct {
	Leaf
	Language string // empty if the opening fence has no tag
}

func (*CodeBlock) Kind() Kind { return KindCodeBlock }
func (*CodeBlock) node() {}

// Code returns the raw code text of the block
func (c *CodeBlock) Code() string {
	if len(c.Content) == 0 {
		return ""
	}
	return c.Content[0].Text
}

type HorizontalRule struct{}

func (*HorizontalRule) Kind() Kind { return KindHorizontalRule }
func (*HorizontalRule) node() {}

// Image represents markdown image node
type Image struct {
	Href        string // Href is what goes into a src
	DisplayText string // DisplayText is the alternate text between the brackets
	Title       string // Title is the tooltip thing, empty if absent
}

func (*Image) Kind() Kind { return KindImage }
func (*Image) node() {}
