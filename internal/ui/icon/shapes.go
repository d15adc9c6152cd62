package icon

import (
	g "maragu.dev/gomponents"

	"github.com/3-lines-studio/syntax/internal/core"
)

func installation(id string, color core.Color) g.Node {
	return g.Group{
		defs(
			Gradient(id+"-gradient", color, "matrix(0 21 -21 0 12 3)"),
			Gradient(id+"-gradient-dark", color, "matrix(0 21 -21 0 16 7)"),
		),
		LightMode(
			circle("12", "12", "12", gradientRef(id+"-gradient")),
			path("m8 8 9 21 2-10 10-2L8 8Z", halfOpacity(), themed(), outline()),
		),
		DarkMode(
			path("m4 4 10.286 24 2.285-11.429L28 14.286 4 4Z",
				g.Attr("fill", gradientRef(id+"-gradient-dark")),
				g.Attr("stroke", gradientRef(id+"-gradient-dark")),
				outline(),
			),
		),
	}
}

func presets(id string, color core.Color) g.Node {
	return g.Group{
		defs(
			Gradient(id+"-gradient", color, "matrix(0 21 -21 0 16 7)"),
			Gradient(id+"-gradient-dark", color, "matrix(0 22.75 -22.75 0 16 6.25)"),
		),
		LightMode(
			circle("20", "20", "12", gradientRef(id+"-gradient")),
			path("M3 5a2 2 0 0 1 2-2h4a2 2 0 0 1 2 2v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V5Z", halfOpacity(), themed(), outline()),
			path("M3 17a2 2 0 0 1 2-2h4a2 2 0 0 1 2 2v10a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V17Z", halfOpacity(), themed(), outline()),
			path("M15 5a2 2 0 0 1 2-2h10a2 2 0 0 1 2 2v4a2 2 0 0 1-2 2H17a2 2 0 0 1-2-2V5Z", halfOpacity(), themed(), outline()),
			path("M15 17a2 2 0 0 1 2-2h10a2 2 0 0 1 2 2v10a2 2 0 0 1-2 2H17a2 2 0 0 1-2-2V17Z", themed(), outline()),
		),
		DarkMode(
			path("M2 5a3 3 0 0 1 3-3h4a3 3 0 0 1 3 3v4a3 3 0 0 1-3 3H5a3 3 0 0 1-3-3V5Zm0 12a3 3 0 0 1 3-3h4a3 3 0 0 1 3 3v10a3 3 0 0 1-3 3H5a3 3 0 0 1-3-3V17Zm12-12a3 3 0 0 1 3-3h10a3 3 0 0 1 3 3v4a3 3 0 0 1-3 3H17a3 3 0 0 1-3-3V5Zm0 12a3 3 0 0 1 3-3h10a3 3 0 0 1 3 3v10a3 3 0 0 1-3 3H17a3 3 0 0 1-3-3V17Z",
				g.Attr("fill-rule", "evenodd"),
				g.Attr("clip-rule", "evenodd"),
				g.Attr("fill", gradientRef(id+"-gradient-dark")),
			),
		),
	}
}

func plugins(id string, color core.Color) g.Node {
	return g.Group{
		defs(
			Gradient(id+"-gradient", color, "matrix(0 21 -21 0 20 11)"),
			Gradient(id+"-gradient-dark", color, "matrix(0 22.75 -22.75 0 16 6.25)"),
		),
		LightMode(
			circle("20", "20", "12", gradientRef(id+"-gradient")),
			path("M3 9v14l12 6V15L3 9Z", halfOpacity(), themed(), outline()),
			path("M27 9v14l-12 6V15l12-6Z", themed(), outline()),
			path("M11 4h8v2l6 3-10 6L5 9l6-3V4Z", halfOpacity(), themed(), outline()),
		),
		DarkMode(
			path("M3 9v14l12 6V15L3 9Zm24 0v14l-12 6V15l12-6ZM11 4h8v2l6 3-10 6L5 9l6-3V4Z",
				g.Attr("fill", gradientRef(id+"-gradient-dark")),
				g.Attr("stroke", gradientRef(id+"-gradient-dark")),
				outline(),
			),
		),
	}
}

func theming(id string, color core.Color) g.Node {
	return g.Group{
		defs(
			Gradient(id+"-gradient", color, "matrix(0 21 -21 0 12 11)"),
			Gradient(id+"-gradient-dark", color, "matrix(0 24.5 -24.5 0 16 5.5)"),
		),
		LightMode(
			circle("12", "20", "12", gradientRef(id+"-gradient")),
			path("M27 12.13 19.87 5 13 11.87v14.26l14-14Z", themed(), halfOpacity(), outline()),
			path("M3 3h10v22a4 4 0 0 1-4 4H7a4 4 0 0 1-4-4V3Z", themed(), outline()),
			path("M3 9v16a4 4 0 0 0 4 4h2a4 4 0 0 0 4-4V9h-4m-6 0h6m-6 6h6m-6 6h6m-3 4h.01", themed(), outline()),
		),
		DarkMode(
			path("M3 2a1 1 0 0 0-1 1v21a6 6 0 0 0 12 0V3a1 1 0 0 0-1-1H3Zm16.752 3.293a1 1 0 0 0-1.593.244l-1.045 2A1 1 0 0 0 17 8v13a1 1 0 0 0 1.71.705l7.999-8.045a1 1 0 0 0-.002-1.412l-6.955-6.955ZM26 18a1 1 0 0 0-.707.293l-10 10A1 1 0 0 0 16 30h13a1 1 0 0 0 1-1V19a1 1 0 0 0-1-1h-3ZM5 18a1 1 0 1 0 0 2h.01a1 1 0 1 0 0-2H5Zm-1-5a1 1 0 0 1 1-1h.01a1 1 0 1 1 0 2H5a1 1 0 0 1-1-1Zm1-7a1 1 0 0 0 0 2h.01a1 1 0 0 0 0-2H5Z",
				g.Attr("fill-rule", "evenodd"),
				g.Attr("clip-rule", "evenodd"),
				g.Attr("fill", gradientRef(id+"-gradient-dark")),
			),
		),
	}
}

func lightbulb(id string, color core.Color) g.Node {
	return g.Group{
		defs(
			Gradient(id+"-gradient", color, "matrix(0 21 -21 0 20 11)"),
			Gradient(id+"-gradient-dark", color, "matrix(0 24.5001 -19.2498 0 16 5.5)"),
		),
		LightMode(
			circle("20", "20", "12", gradientRef(id+"-gradient")),
			path("M20 24.995c0-1.855 1.094-3.501 2.427-4.792C24.61 18.087 26 15.07 26 12.231 26 7.133 21.523 3 16 3S6 7.133 6 12.23c0 2.84 1.389 5.857 3.573 7.973C10.906 21.494 12 23.14 12 24.995V27a2 2 0 0 0 2 2h4a2 2 0 0 0 2-2v-2.005Z",
				g.Attr("fill-rule", "evenodd"),
				g.Attr("clip-rule", "evenodd"),
				halfOpacity(),
				themed(),
				outline(),
			),
			path("M12 25h8", themed(), outline()),
		),
		DarkMode(
			path("M16 2C10.477 2 6 6.168 6 11.31c0 3.16 1.692 5.61 4.097 7.6.979.81 1.903 2.07 1.903 3.34V27a3 3 0 0 0 3 3h2a3 3 0 0 0 3-3v-4.75c0-1.27.924-2.53 1.903-3.34C24.308 16.92 26 14.47 26 11.31 26 6.168 21.523 2 16 2Zm-3 22a1 1 0 1 0 0 2h6a1 1 0 1 0 0-2h-6Z",
				g.Attr("fill-rule", "evenodd"),
				g.Attr("clip-rule", "evenodd"),
				g.Attr("fill", gradientRef(id+"-gradient-dark")),
			),
		),
	}
}

func warning(id string, color core.Color) g.Node {
	return g.Group{
		defs(
			Gradient(id+"-gradient", color, "rotate(65.924 1.519 20.92) scale(25.7391)"),
			Gradient(id+"-gradient-dark", color, "matrix(0 24.5 -24.5 0 16 5.5)"),
		),
		LightMode(
			circle("20", "20", "12", gradientRef(id+"-gradient")),
			path("M3 16c0 7.18 5.82 13 13 13s13-5.82 13-13S23.18 3 16 3 3 8.82 3 16Z", halfOpacity(), themed(), outline()),
			path("m15.408 16.509-1.04-5.543a1.66 1.66 0 1 1 3.263 0l-1.039 5.543a.602.602 0 0 1-1.184 0Z", themed(), outline()),
			path("M16 23a1 1 0 1 0 0-2 1 1 0 0 0 0 2Z", halfOpacity(), g.Attr("stroke", "currentColor"), themed(), outline()),
		),
		DarkMode(
			path("M2 16C2 8.268 8.268 2 16 2s14 6.268 14 14-6.268 14-14 14S2 23.732 2 16Zm11.386-4.85a2.66 2.66 0 1 1 5.228 0l-1.039 5.543a1.602 1.602 0 0 1-3.15 0l-1.04-5.543ZM16 20a2 2 0 1 0 0 4 2 2 0 0 0 0-4Z",
				g.Attr("fill-rule", "evenodd"),
				g.Attr("clip-rule", "evenodd"),
				g.Attr("fill", gradientRef(id+"-gradient-dark")),
			),
		),
	}
}
