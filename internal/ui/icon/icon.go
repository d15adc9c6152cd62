// Package icon renders the site's SVG icons. Every drawable is a fixed shape
// routine parameterised by an identity token and a color; the color's
// foreground and background are exposed to the shape as CSS custom
// properties on the wrapping <svg>.
package icon

import (
	"fmt"
	"html"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/syntax/internal/core"
)

// Shape draws the paths of one drawable. id scopes the gradients it defines.
type Shape func(id string, color core.Color) g.Node

// Stop is one stop of an icon gradient.
type Stop struct {
	Color  string
	Offset string
}

// Palette is the style a color key resolves to.
type Palette struct {
	Foreground string
	Background string
	Stops      []Stop
}

func (p Palette) StyleVars() string {
	return "--icon-foreground:" + p.Foreground + ";--icon-background:" + p.Background
}

var palettes = core.MustRegistry("icon colors", core.Colors(), map[core.Color]Palette{
	core.ColorBlue: {
		Foreground: "var(--color-slate-900)",
		Background: "var(--color-white)",
		Stops: []Stop{
			{Color: "#0EA5E9"},
			{Color: "#22D3EE", Offset: ".527"},
			{Color: "#818CF8", Offset: "1"},
		},
	},
	core.ColorAmber: {
		Foreground: "var(--color-amber-900)",
		Background: "var(--color-amber-100)",
		Stops: []Stop{
			{Color: "#FDE68A", Offset: ".08"},
			{Color: "#F59E0B", Offset: ".837"},
		},
	},
})

var shapes = core.MustRegistry("drawables", core.Drawables(), map[core.Drawable]Shape{
	core.DrawableInstallation: installation,
	core.DrawablePresets:      presets,
	core.DrawablePlugins:      plugins,
	core.DrawableTheming:      theming,
	core.DrawableLightbulb:    lightbulb,
	core.DrawableWarning:      warning,
})

func PaletteOf(color core.Color) Palette {
	return palettes.Lookup(color)
}

func ShapeOf(d core.Drawable) Shape {
	return shapes.Lookup(d)
}

// Render draws d in color. id must be unique among the icons of one page;
// attrs are appended to the <svg> unchanged, except that a style attribute
// is folded into the one carrying the palette.
func Render(d core.Drawable, color core.Color, id string, attrs ...g.Node) g.Node {
	styles, rest := splitStyle(attrs)
	return h.SVG(
		h.Aria("hidden", "true"),
		g.Attr("viewBox", "0 0 32 32"),
		g.Attr("fill", "none"),
		h.Style(strings.Join(append([]string{PaletteOf(color).StyleVars()}, styles...), ";")),
		g.Group(rest),
		ShapeOf(d)(id, color),
	)
}

const styleAttrPrefix = ` style="`

// splitStyle separates the declarations of style attributes from the other
// nodes in attrs.
func splitStyle(attrs []g.Node) (styles []string, rest []g.Node) {
	for _, a := range attrs {
		if decl, ok := styleDecl(a); ok {
			if decl != "" {
				styles = append(styles, decl)
			}
			continue
		}
		rest = append(rest, a)
	}
	return styles, rest
}

func styleDecl(n g.Node) (string, bool) {
	typed, ok := n.(interface{ Type() g.NodeType })
	if !ok || typed.Type() != g.AttributeType {
		return "", false
	}
	s, ok := n.(fmt.Stringer)
	if !ok {
		return "", false
	}
	out := s.String()
	if !strings.HasPrefix(out, styleAttrPrefix) || !strings.HasSuffix(out, `"`) {
		return "", false
	}
	decl := html.UnescapeString(out[len(styleAttrPrefix) : len(out)-1])
	return strings.Trim(strings.TrimSpace(decl), ";"), true
}

// RenderDefault is Render in the default color.
func RenderDefault(d core.Drawable, id string, attrs ...g.Node) g.Node {
	return Render(d, core.ColorBlue, id, attrs...)
}

// Spec is a resolved drawable/color pair waiting for an identity token.
type Spec struct {
	Drawable core.Drawable
	Color    core.Color
}

func (s Spec) Render(id string, attrs ...g.Node) g.Node {
	return Render(s.Drawable, s.Color, id, attrs...)
}
