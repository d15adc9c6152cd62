package hero

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	Wordmark = "LUCIDO TECHNOLOGY CONSULTING"
	Tagline  = "DRIVING DIGITAL CLARITY"
)

const (
	sunPath  = "M12 3v1m0 16v1m9-9h-1M4 12H3m15.364 6.364l-.707-.707M6.343 6.343l-.707-.707m12.728 0l-.707.707M6.343 17.657l-.707.707M16 12a4 4 0 11-8 0 4 4 0 018 0z"
	basePath = "M9 21h6"
	fontKit  = "system-ui, -apple-system, sans-serif"
)

func logomarkPaths() g.Node {
	return g.El("g",
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("stroke-width", "1.5"),
		g.El("path", g.Attr("d", sunPath)),
		g.El("path", g.Attr("d", basePath), g.Attr("stroke-linecap", "round")),
	)
}

func Logomark(attrs ...g.Node) g.Node {
	return h.SVG(
		h.Aria("hidden", "true"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Group(attrs),
		logomarkPaths(),
	)
}

func Logo(attrs ...g.Node) g.Node {
	return h.SVG(
		h.Aria("hidden", "true"),
		g.Attr("viewBox", "0 0 280 36"),
		g.Attr("fill", "none"),
		g.Group(attrs),
		g.El("g", g.Attr("transform", "translate(0, 6)"), logomarkPaths()),
		wordmarkText("14", "10", "700", "0.5", "", Wordmark),
		wordmarkText("26", "7", "400", "1", "0.7", Tagline),
	)
}

func wordmarkText(y, size, weight, spacing, opacity, text string) g.Node {
	return g.El("text",
		g.Attr("x", "32"),
		g.Attr("y", y),
		g.Attr("font-family", fontKit),
		g.Attr("font-size", size),
		g.Attr("font-weight", weight),
		g.Attr("letter-spacing", spacing),
		g.Attr("fill", "currentColor"),
		g.If(opacity != "", g.Attr("opacity", opacity)),
		g.Text(text),
	)
}

// brandBlock is the large logo shown at the top of the hero.
func brandBlock() g.Node {
	return h.Div(
		h.Class("flex items-center gap-4 mb-8"),
		h.Div(
			h.Class("flex-shrink-0 w-16 h-16 bg-black rounded-lg flex items-center justify-center"),
			h.SVG(
				g.Attr("viewBox", "0 0 24 24"),
				g.Attr("fill", "none"),
				g.Attr("stroke", "white"),
				g.Attr("stroke-width", "1.5"),
				h.Class("w-10 h-10"),
				g.El("path", g.Attr("d", sunPath)),
				g.El("path", g.Attr("d", basePath), g.Attr("stroke-linecap", "round")),
			),
		),
		h.Div(
			h.Class("text-white"),
			h.Div(h.Class("text-xl font-bold tracking-tight"), g.Text(Wordmark)),
			h.Div(h.Class("text-sm tracking-wider mt-1 text-slate-300"), g.Text(Tagline)),
		),
	)
}
