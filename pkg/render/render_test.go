package render

import (
	"bytes"
	"testing"

	"github.com/flytaly/mdnodes/pkg/parser"
	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	color.Enable = false
}

const doc = "## Hello **world**\n" +
	"1. one\n" +
	"2. two\n" +
	"- dash\n" +
	"![Alt](/x.jpg \"Title\")\n" +
	"```go\n" +
	"a < b\n" +
	"```\n" +
	"***"

func mustParse(t *testing.T, text string) []parser.Node {
	t.Helper()
	nodes, err := parser.Parse(text)
	require.NoError(t, err)
	return nodes
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"tree", "yaml", "html"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}
	_, err := ParseFormat("json")
	assert.Error(t, err)
}

func TestTypeName(t *testing.T) {
	nodes := mustParse(t, "# a\n###### b\nc\n---")
	names := []string{}
	for _, n := range nodes {
		names = append(names, TypeName(n))
	}
	assert.Equal(t, []string{"HeadingOne", "HeadingSix", "Paragraph", "Paragraph"}, names)
}

func TestTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTree, mustParse(t, doc)))

	want := `HeadingTwo
  "Hello "
  Bold "world"
OrderedListItem 1.
  "one"
OrderedListItem 2.
  "two"
UnorderedListItem
  "dash"
Image href="/x.jpg" alt="Alt" title="Title"
CodeBlock go
  "a < b"
HorizontalRule
`
	assert.Equal(t, want, buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, mustParse(t, doc)))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 7)

	assert.Equal(t, "HeadingTwo", got[0]["type"])
	assert.Equal(t, []any{
		map[string]any{"text": "Hello "},
		map[string]any{"attribute": "Bold", "text": "world"},
	}, got[0]["data"])
	assert.Equal(t, 2, got[2]["number"])
	assert.Equal(t, map[string]any{
		"type":        "Image",
		"href":        "/x.jpg",
		"displayText": "Alt",
		"title":       "Title",
	}, got[4])
	assert.Equal(t, "go", got[5]["language"])
	assert.Equal(t, map[string]any{"type": "HorizontalRule"}, got[6])
}

func TestYAMLZeroNumber(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, mustParse(t, "0. zero\nplain")))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0]["number"])
	assert.NotContains(t, got[1], "number")
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatHTML, mustParse(t, doc)))

	want := `<h2>Hello <strong>world</strong></h2>
<ol><li>one</li><li>two</li></ol>
<ul><li>dash</li></ul>
<img src="/x.jpg" alt="Alt" title="Title"/>
<pre><code class="language-go">a &lt; b</code></pre>
<hr/>
`
	assert.Equal(t, want, buf.String())
}

func TestHTMLInline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, mustParse(t, "> *it* ***both*** `x`\n\n3. three")))

	want := `<blockquote><em>it</em> <strong><em>both</em></strong> <code>x</code></blockquote>
<ol start="3"><li>three</li></ol>
`
	assert.Equal(t, want, buf.String())
}
