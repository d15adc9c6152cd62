package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/3-lines-studio/syntax/internal/core"
)

func newConverter(t *testing.T) *Converter {
	t.Helper()
	c, err := New("")
	require.NoError(t, err)
	return c
}

func TestConvertFrontMatterAndHeadings(t *testing.T) {
	src := `---
title: Installation
description: Install the pipeline toolkit.
---

Intro paragraph.

## Requirements

Some text.

### Operating systems

## Next steps
`
	doc, err := newConverter(t).Convert([]byte(src), core.NewSequence("t"))
	require.NoError(t, err)

	assert.Equal(t, "Installation", doc.Title)
	assert.Equal(t, "Install the pipeline toolkit.", doc.Description)
	assert.Equal(t, []Heading{
		{Level: 2, ID: "requirements", Text: "Requirements"},
		{Level: 3, ID: "operating-systems", Text: "Operating systems"},
		{Level: 2, ID: "next-steps", Text: "Next steps"},
	}, doc.Headings)
	assert.Contains(t, doc.HTML, `<h2 id="requirements">Requirements</h2>`)
	assert.NotContains(t, doc.HTML, "title: Installation")
}

func TestConvertTitleFallsBackToFirstHeading(t *testing.T) {
	doc, err := newConverter(t).Convert([]byte("# Data Models\n\nBody.\n"), core.NewSequence("t"))
	require.NoError(t, err)
	assert.Equal(t, "Data Models", doc.Title)
	assert.Empty(t, doc.Headings)
}

func TestConvertCallout(t *testing.T) {
	src := `# Page

{% callout title="Be careful" type="warning" %}
This action is **destructive**.
{% /callout %}

After.
`
	doc, err := newConverter(t).Convert([]byte(src), core.NewSequence("page"))
	require.NoError(t, err)

	assert.Contains(t, doc.HTML, `<div class="my-8 flex rounded-3xl p-6 bg-amber-50`)
	assert.Contains(t, doc.HTML, `text-amber-900 dark:text-amber-500">Be careful</p>`)
	assert.Contains(t, doc.HTML, "<p>This action is <strong>destructive</strong>.</p>")
	assert.Contains(t, doc.HTML, `id="page-1-gradient"`)
	assert.Contains(t, doc.HTML, "<p>After.</p>")
	assert.NotContains(t, doc.HTML, "{%")
}

func TestConvertCalloutDefaultsToNote(t *testing.T) {
	src := "{% callout title=\"Heads up\" %}\nRemember this.\n{% /callout %}\n"
	doc, err := newConverter(t).Convert([]byte(src), core.NewSequence("n"))
	require.NoError(t, err)

	assert.Contains(t, doc.HTML, "bg-sky-50")
	assert.Contains(t, doc.HTML, "--icon-foreground:var(--color-slate-900)")
}

func TestConvertCalloutsGetDistinctIdentities(t *testing.T) {
	src := strings.Repeat("{% callout title=\"A\" type=\"tip\" %}\nx\n{% /callout %}\n\n", 3)
	doc, err := newConverter(t).Convert([]byte(src), core.NewSequence("p"))
	require.NoError(t, err)

	for _, id := range []string{"p-1", "p-2", "p-3"} {
		assert.Contains(t, doc.HTML, `id="`+id+`-gradient"`)
	}
}

func TestConvertRejectsUnknownCalloutType(t *testing.T) {
	src := "{% callout title=\"Oops\" type=\"danger\" %}\nx\n{% /callout %}\n"
	_, err := newConverter(t).Convert([]byte(src), core.NewSequence("x"))
	assert.ErrorIs(t, err, ErrInvalidCallout)
	assert.ErrorContains(t, err, "danger")

	src = "{% callout tone=\"loud\" %}\nx\n{% /callout %}\n"
	_, err = newConverter(t).Convert([]byte(src), core.NewSequence("x"))
	assert.ErrorIs(t, err, ErrInvalidCallout)
}

func parse(t *testing.T, src string) ast.Node {
	t.Helper()
	pc := parser.NewContext()
	pc.Set(idSourceKey, core.NewSequence("t"))
	return newConverter(t).md.Parser().Parse(text.NewReader([]byte(src)), parser.WithContext(pc))
}

func TestConvertNestedCallouts(t *testing.T) {
	src := "{% callout title=\"a\" %}\n" +
		"{% callout title=\"b\" type=\"tip\" %}\n" +
		"inner\n" +
		"{% /callout %}\n" +
		"outer\n" +
		"{% /callout %}\n" +
		"\nafter\n"

	root := parse(t, src)
	outer, ok := root.FirstChild().(*Callout)
	require.True(t, ok, "first block is %T", root.FirstChild())
	assert.Equal(t, "a", outer.Title)
	assert.NoError(t, outer.Err)

	inner, ok := outer.FirstChild().(*Callout)
	require.True(t, ok, "first child is %T", outer.FirstChild())
	assert.Equal(t, "b", inner.Title)
	assert.Equal(t, core.VariantTip, inner.Variant)
	assert.NoError(t, inner.Err)
	assert.Equal(t, 1, inner.ChildCount())

	require.Equal(t, 2, outer.ChildCount())
	assert.Equal(t, "outer", nodeText(outer.LastChild(), []byte(src)))
	assert.Equal(t, 2, root.ChildCount())

	doc, err := newConverter(t).Convert([]byte(src), core.NewSequence("n"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(doc.HTML, "rounded-3xl"))
	assert.Contains(t, doc.HTML, "<p>outer</p>")
	assert.Contains(t, doc.HTML, "<p>after</p>")
	assert.NotContains(t, doc.HTML, "{%")
}

func TestConvertCloseTagInsideFencedCode(t *testing.T) {
	src := "{% callout %}\n```\n{% /callout %}\n```\n{% /callout %}\n\nafter\n"

	root := parse(t, src)
	box, ok := root.FirstChild().(*Callout)
	require.True(t, ok, "first block is %T", root.FirstChild())
	assert.NoError(t, box.Err)
	require.Equal(t, 1, box.ChildCount())

	code, ok := box.FirstChild().(*ast.FencedCodeBlock)
	require.True(t, ok, "callout child is %T", box.FirstChild())
	require.Equal(t, 1, code.Lines().Len())
	line := code.Lines().At(0)
	assert.Equal(t, "{% /callout %}\n", string(line.Value([]byte(src))))

	_, ok = root.LastChild().(*ast.Paragraph)
	assert.True(t, ok, "last block is %T", root.LastChild())
	assert.Equal(t, 2, root.ChildCount())

	doc, err := newConverter(t).Convert([]byte(src), core.NewSequence("f"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(doc.HTML, "<pre"))
	assert.Contains(t, doc.HTML, "<p>after</p>")
}

func TestConvertRejectsUnterminatedCallout(t *testing.T) {
	src := "{% callout title=\"x\" %}\nbody\n\n## Later heading\n\ntext\n"
	_, err := newConverter(t).Convert([]byte(src), core.NewSequence("u"))
	assert.ErrorIs(t, err, ErrInvalidCallout)
	assert.ErrorContains(t, err, "unterminated")

	src = "{% callout title=\"a\" %}\n{% callout title=\"b\" %}\ninner\n{% /callout %}\n"
	_, err = newConverter(t).Convert([]byte(src), core.NewSequence("u"))
	assert.ErrorIs(t, err, ErrInvalidCallout)
}

func TestConvertHighlightsCode(t *testing.T) {
	src := "```go\nfunc main() {}\n```\n"
	doc, err := newConverter(t).Convert([]byte(src), core.NewSequence("c"))
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, `class="chroma"`)
}

func TestHighlightCSS(t *testing.T) {
	css, err := newConverter(t).HighlightCSS()
	require.NoError(t, err)
	assert.Contains(t, string(css), ".chroma")
}

func TestNewRejectsUnknownStyle(t *testing.T) {
	_, err := New("no-such-style")
	assert.Error(t, err)

	c, err := New("monokai")
	require.NoError(t, err)
	assert.Equal(t, "monokai", c.Style())
}
