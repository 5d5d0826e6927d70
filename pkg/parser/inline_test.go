package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBetween(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		delim Delimiter
		want  string
	}{
		{"brackets", "![some text!]", Pair("[", "]"), "some text!"},
		{"brackets followed by link", "![some text!](https://foo-bar.com/something.jpg)", Pair("[", "]"), "some text!"},
		{"nested brackets", "![some [text]!]", Pair("[", "]"), "some [text]!"},
		{"same delimiter spans to the last one", "!|some |text|!|", Same("|"), "some |text|!"},
		{"same delimiter with trailing text", "!|some |text|! wow!|", Same("|"), "some |text|! wow!"},
		{"single pair", "!|some text!|", Same("|"), "some text!"},
		{"single pair and text after", "!|some text!| wow!", Same("|"), "some text!"},
		{"code", "some `code` text", Same("`"), "code"},
		{"italic", "some *italic* text", Same("*"), "italic"},
		{"bold", "some **bold** text", Same("**"), "bold"},
		{"bold italic", "some ***bold italic*** text", Same("***"), "bold italic"},
		{"parentheses", "(a (b) c) d", Pair("(", ")"), "a (b) c"},
		{"empty", "[]", Pair("[", "]"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBetween(tt.text, tt.delim)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("no match", func(t *testing.T) {
		for _, tt := range []struct {
			text  string
			delim Delimiter
		}{
			{"no delimiters", Pair("[", "]")},
			{"only [ open", Pair("[", "]")},
			{"[unbalanced [pair]", Pair("[", "]")},
			{"one | only", Same("|")},
			{"anything", Same("")},
		} {
			_, ok := ExtractBetween(tt.text, tt.delim)
			assert.False(t, ok, tt.text)
		}
	})
}

func TestInline(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []InlineRun
	}{
		{
			"plain",
			"this is some text!",
			[]InlineRun{{Text: "this is some text!"}},
		},
		{
			"italic",
			"some normal text, some *italic* text.",
			[]InlineRun{
				{Text: "some normal text, some "},
				{Attribute: Italic, Text: "italic"},
				{Text: " text."},
			},
		},
		{
			"bold",
			"some normal text, some **bold** text.",
			[]InlineRun{
				{Text: "some normal text, some "},
				{Attribute: Bold, Text: "bold"},
				{Text: " text."},
			},
		},
		{
			"bold italic",
			"some normal text, some ***bold italic*** text.",
			[]InlineRun{
				{Text: "some normal text, some "},
				{Attribute: BoldItalic, Text: "bold italic"},
				{Text: " text."},
			},
		},
		{
			"code with backticks inside",
			"here's some code: `const sayHello = (name: string) => `Hello ${name}!`;`. Isn't that cool?",
			[]InlineRun{
				{Text: "here's some code: "},
				{Attribute: Code, Text: "const sayHello = (name: string) => `Hello ${name}!`;"},
				{Text: ". Isn't that cool?"},
			},
		},
		{
			"all attributes",
			"a *i* b **bd** c `co` d ***bi*** e",
			[]InlineRun{
				{Text: "a "},
				{Attribute: Italic, Text: "i"},
				{Text: " b "},
				{Attribute: Bold, Text: "bd"},
				{Text: " c "},
				{Attribute: Code, Text: "co"},
				{Text: " d "},
				{Attribute: BoldItalic, Text: "bi"},
				{Text: " e"},
			},
		},
		{
			"outermost code span",
			"`a `b` c`",
			[]InlineRun{{Attribute: Code, Text: "a `b` c"}},
		},
		{
			"double backticks",
			"``some code``",
			[]InlineRun{{Attribute: Code, Text: "`some code`"}},
		},
		{
			"starts with emphasis",
			"**bold** start",
			[]InlineRun{
				{Attribute: Bold, Text: "bold"},
				{Text: " start"},
			},
		},
		{
			"dangling asterisk",
			"2 * 3 = 6",
			[]InlineRun{{Text: "2 * 3 = 6"}},
		},
		{
			"dangling bold",
			"**not closed",
			[]InlineRun{{Text: "**not closed"}},
		},
		{
			"single backtick",
			"it`s",
			[]InlineRun{{Text: "it`s"}},
		},
		{
			"no nesting",
			"**bold *and* more**",
			[]InlineRun{{Attribute: Bold, Text: "bold *and* more"}},
		},
		{
			"unicode",
			"привет *мир*",
			[]InlineRun{
				{Text: "привет "},
				{Attribute: Italic, Text: "мир"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Inline(tt.text))
		})
	}

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Inline(""))
	})
}

func TestInlineKeepsVisibleText(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{
			text: "some normal text, some *italic* text, some **bold** text, some `code` text, and some ***bold italic*** text.",
			want: "some normal text, some italic text, some bold text, some code text, and some bold italic text.",
		},
		{text: "nothing special", want: "nothing special"},
		{text: "dangling * and `", want: "dangling * and `"},
		{text: "*a* **b** `c`", want: "a b c"},
		{text: "`x` and `y`", want: "x` and `y"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			runs := Inline(tt.text)
			for _, r := range runs {
				assert.NotEmpty(t, r.Text)
			}
			assert.Equal(t, tt.want, PlainText(runs))
		})
	}
}
