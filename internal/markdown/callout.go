package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	g "maragu.dev/gomponents"

	"github.com/3-lines-studio/syntax/internal/core"
	"github.com/3-lines-studio/syntax/internal/ui/callout"
)

var ErrInvalidCallout = errors.New("invalid callout tag")

var KindCallout = ast.NewNodeKind("Callout")

// Callout is the AST node for a {% callout %} ... {% /callout %} block.
type Callout struct {
	ast.BaseBlock
	Variant core.Variant
	Title   string
	Err     error

	ids    core.IDSource
	closed bool
}

func (n *Callout) Kind() ast.NodeKind {
	return KindCallout
}

func (n *Callout) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Variant": n.Variant.String(),
		"Title":   n.Title,
	}, nil)
}

var (
	openTag  = regexp.MustCompile(`^\s*\{%\s*callout((?:\s+[a-z]+="[^"]*")*)\s*%\}\s*$`)
	closeTag = regexp.MustCompile(`^\s*\{%\s*/callout\s*%\}\s*$`)
	tagAttr  = regexp.MustCompile(`([a-z]+)="([^"]*)"`)
)

var idSourceKey = parser.NewContextKey()

type calloutParser struct{}

func (p *calloutParser) Trigger() []byte {
	return []byte{'{'}
}

func (p *calloutParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	m := openTag.FindSubmatch(line)
	if m == nil {
		return nil, parser.NoChildren
	}

	node := &Callout{}
	for _, attr := range tagAttr.FindAllSubmatch(m[1], -1) {
		name, value := string(attr[1]), string(attr[2])
		switch name {
		case "title":
			node.Title = value
		case "type":
			v, err := core.ParseVariant(value)
			if err != nil {
				node.Err = fmt.Errorf("%w: %v", ErrInvalidCallout, err)
			}
			node.Variant = v
		default:
			node.Err = fmt.Errorf("%w: unknown attribute %q", ErrInvalidCallout, name)
		}
	}

	if ids, ok := pc.Get(idSourceKey).(core.IDSource); ok {
		node.ids = ids
	}

	reader.Advance(lineLength(line, segment))
	return node, parser.HasChildren
}

func (p *calloutParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	if innerBlockOpen(node, pc) {
		return parser.Continue | parser.HasChildren
	}
	line, segment := reader.PeekLine()
	if closeTag.Match(line) {
		reader.Advance(lineLength(line, segment))
		node.(*Callout).closed = true
		return parser.Close
	}
	return parser.Continue | parser.HasChildren
}

func (p *calloutParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
	n := node.(*Callout)
	if !n.closed && n.Err == nil {
		n.Err = fmt.Errorf("%w: unterminated callout %q", ErrInvalidCallout, n.Title)
	}
}

// innerBlockOpen reports whether a fenced code block or another callout is open
// inside node. Such a block owns the next line, close tag or not.
func innerBlockOpen(node ast.Node, pc parser.Context) bool {
	inside := false
	for _, b := range pc.OpenedBlocks() {
		if b.Node == node {
			inside = true
			continue
		}
		if !inside {
			continue
		}
		switch b.Node.(type) {
		case *Callout, *ast.FencedCodeBlock:
			return true
		}
	}
	return false
}

func (p *calloutParser) CanInterruptParagraph() bool {
	return true
}

func (p *calloutParser) CanAcceptIndentedLine() bool {
	return false
}

// lineLength is the length of the line without its trailing newline.
func lineLength(line []byte, segment text.Segment) int {
	n := segment.Len()
	if len(line) > 0 && line[len(line)-1] == '\n' {
		n--
	}
	return n
}

type calloutRenderer struct {
	md goldmark.Markdown
}

func (r *calloutRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindCallout, r.renderCallout)
}

func (r *calloutRenderer) renderCallout(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*Callout)

	var body bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := r.md.Renderer().Render(&body, source, c); err != nil {
			return ast.WalkStop, err
		}
	}

	ids := n.ids
	if ids == nil {
		ids = core.NewSession()
	}

	box := callout.Compose(n.Variant, n.Title, g.Raw(body.String()))
	if err := box.Render(ids).Render(w); err != nil {
		return ast.WalkStop, err
	}
	_, _ = w.WriteString("\n")

	return ast.WalkSkipChildren, nil
}

type calloutExtension struct{}

// CalloutExtension adds {% callout title="..." type="..." %} blocks.
var CalloutExtension goldmark.Extender = &calloutExtension{}

func (e *calloutExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(&calloutParser{}, 150),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&calloutRenderer{md: m}, 500),
	))
}
