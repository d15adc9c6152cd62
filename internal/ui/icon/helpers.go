package icon

import (
	g "maragu.dev/gomponents"

	"github.com/3-lines-studio/syntax/internal/core"
)

// Gradient defines the radial gradient for color under id.
func Gradient(id string, color core.Color, transform string) g.Node {
	return g.El("radialGradient",
		g.Attr("id", id),
		g.Attr("cx", "0"),
		g.Attr("cy", "0"),
		g.Attr("r", "1"),
		g.Attr("gradientUnits", "userSpaceOnUse"),
		g.Attr("gradientTransform", transform),
		g.Map(PaletteOf(color).Stops, func(s Stop) g.Node {
			return g.El("stop",
				g.Attr("stop-color", s.Color),
				g.If(s.Offset != "", g.Attr("offset", s.Offset)),
			)
		}),
	)
}

func LightMode(children ...g.Node) g.Node {
	return g.El("g", g.Attr("class", "dark:hidden"), g.Group(children))
}

func DarkMode(children ...g.Node) g.Node {
	return g.El("g", g.Attr("class", "hidden dark:inline"), g.Group(children))
}

func gradientRef(id string) string {
	return "url(#" + id + ")"
}

// themed fills and strokes a path with the palette variables of the
// enclosing <svg>.
func themed() g.Node {
	return g.Attr("style", "fill:var(--icon-background);stroke:var(--icon-foreground)")
}

func path(d string, attrs ...g.Node) g.Node {
	return g.El("path", g.Attr("d", d), g.Group(attrs))
}

func outline() g.Node {
	return g.Group{
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
	}
}

func halfOpacity() g.Node {
	return g.Attr("fill-opacity", "0.5")
}

func circle(cx, cy, r, fill string) g.Node {
	return g.El("circle",
		g.Attr("cx", cx),
		g.Attr("cy", cy),
		g.Attr("r", r),
		g.Attr("fill", fill),
	)
}

func defs(children ...g.Node) g.Node {
	return g.El("defs", g.Group(children))
}
