// Package markdown converts documentation pages to HTML. Pages may start with
// YAML front matter and may embed callouts with the {% callout %} tag.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"

	"github.com/3-lines-studio/syntax/internal/core"
)

const DefaultHighlightStyle = "dracula"

type Heading struct {
	Level int
	ID    string
	Text  string
}

type Document struct {
	Title       string
	Description string
	HTML        string
	Headings    []Heading
	Meta        map[string]any
}

type Converter struct {
	md    goldmark.Markdown
	style string
}

func New(highlightStyle string) (*Converter, error) {
	if highlightStyle == "" {
		highlightStyle = DefaultHighlightStyle
	}
	if _, ok := styles.Registry[highlightStyle]; !ok {
		return nil, fmt.Errorf("unknown highlight style %q", highlightStyle)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			meta.Meta,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
			CalloutExtension,
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	return &Converter{md: md, style: highlightStyle}, nil
}

// Convert renders src. Callout icons take their identity tokens from ids, so
// a page that contains several callouts gets distinct gradient ids.
func (c *Converter) Convert(src []byte, ids core.IDSource) (Document, error) {
	pc := parser.NewContext()
	pc.Set(idSourceKey, ids)

	root := c.md.Parser().Parse(text.NewReader(src), parser.WithContext(pc))

	frontMatter, err := meta.TryGet(pc)
	if err != nil {
		return Document{}, fmt.Errorf("front matter: %w", err)
	}

	doc := Document{Meta: frontMatter}
	doc.Title, _ = frontMatter["title"].(string)
	doc.Description, _ = frontMatter["description"].(string)

	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *Callout:
			if n.Err != nil {
				return ast.WalkStop, n.Err
			}
		case *ast.Heading:
			heading := Heading{Level: n.Level, Text: nodeText(n, src)}
			if id, ok := n.AttributeString("id"); ok {
				if b, ok := id.([]byte); ok {
					heading.ID = string(b)
				}
			}
			if n.Level == 1 && doc.Title == "" {
				doc.Title = heading.Text
			}
			if n.Level == 2 || n.Level == 3 {
				doc.Headings = append(doc.Headings, heading)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return Document{}, err
	}

	var buf bytes.Buffer
	if err := c.md.Renderer().Render(&buf, src, root); err != nil {
		return Document{}, fmt.Errorf("render: %w", err)
	}
	doc.HTML = buf.String()

	return doc, nil
}

// HighlightCSS is the stylesheet for the classes emitted on code blocks.
func (c *Converter) HighlightCSS() ([]byte, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(c.style)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Converter) Style() string {
	return c.style
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
