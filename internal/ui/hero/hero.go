// Package hero renders the branded landing section and the site logo.
package hero

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type Benefit struct {
	Title       string
	Description string
}

type Action struct {
	Label   string
	Href    string
	Variant ButtonVariant
}

// Content is the copy shown in the hero.
type Content struct {
	BackgroundSrc string
	BackgroundAlt string
	Headline      string
	Highlight     string
	Subheadline   string
	Benefits      []Benefit
	Actions       []Action
}

func DefaultContent() Content {
	return Content{
		BackgroundSrc: "https://cdn.prod.website-files.com/660099f38ca92e548d501ee2/6620355751b14c5ddf8ac633_kids%20schoolwork%20with%20tablet.webp",
		BackgroundAlt: "Students working with technology",
		Headline:      "Empowering educational institutions with",
		Highlight:     "enterprise-grade data pipelines",
		Subheadline:   "Transform your student information systems into actionable insights with seamless data access solutions.",
		Benefits: []Benefit{
			{
				Title:       "Data Pipeline Architecture",
				Description: "End-to-end ETL/ELT solutions that move data from source systems to your analytics platforms",
			},
			{
				Title:       "Secure API Development",
				Description: "RESTful APIs with enterprise-grade authentication and rate limiting",
			},
			{
				Title:       "Type-Safe Implementations",
				Description: "Production-ready solutions built with modern languages like Rust for performance and reliability",
			},
		},
		Actions: []Action{
			{Label: "Get Started", Href: "/docs/getting-started/installation", Variant: ButtonPrimary},
			{Label: "View Documentation", Href: "/docs/api", Variant: ButtonSecondary},
		},
	}
}

func Hero(c Content) g.Node {
	return h.Div(
		h.Class("relative overflow-hidden bg-slate-900 dark:-mt-19 dark:-mb-32 dark:pt-19 dark:pb-32"),
		h.Div(
			h.Class("absolute inset-0"),
			h.Img(
				h.Src(c.BackgroundSrc),
				h.Alt(c.BackgroundAlt),
				h.Class("w-full h-full object-cover"),
			),
			h.Div(h.Class("absolute inset-0 bg-gradient-to-r from-slate-900/95 via-slate-900/90 to-slate-900/80")),
		),
		h.Div(
			h.Class("relative z-10 py-20 sm:py-24 lg:py-32"),
			h.Div(
				h.Class("mx-auto max-w-7xl px-4 sm:px-6 lg:px-8"),
				h.Div(
					h.Class("max-w-3xl"),
					brandBlock(),
					h.H1(
						h.Class("font-display text-4xl font-bold tracking-tight text-white sm:text-5xl lg:text-6xl"),
						g.Text(c.Headline+" "),
						h.Span(
							h.Class("bg-gradient-to-r from-cyan-400 via-blue-400 to-indigo-400 bg-clip-text text-transparent"),
							g.Text(c.Highlight),
						),
					),
					h.P(h.Class("mt-6 text-xl leading-8 text-slate-300"), g.Text(c.Subheadline)),
					h.Div(
						h.Class("mt-8 space-y-3 text-slate-200"),
						g.Map(c.Benefits, benefit),
					),
					h.Div(
						h.Class("mt-10 flex gap-4"),
						g.Map(c.Actions, func(a Action) g.Node {
							return Button(a.Variant, a.Href, a.Label)
						}),
					),
				),
			),
		),
	)
}

func benefit(b Benefit) g.Node {
	return h.Div(
		h.Class("flex items-start gap-3"),
		h.SVG(
			h.Class("w-6 h-6 text-cyan-400 flex-shrink-0 mt-0.5"),
			g.Attr("fill", "none"),
			g.Attr("viewBox", "0 0 24 24"),
			g.Attr("stroke", "currentColor"),
			g.El("path",
				g.Attr("stroke-linecap", "round"),
				g.Attr("stroke-linejoin", "round"),
				g.Attr("stroke-width", "2"),
				g.Attr("d", "M5 13l4 4L19 7"),
			),
		),
		h.Span(
			h.Strong(h.Class("text-white"), g.Text(b.Title)),
			g.Text(" - "+b.Description),
		),
	)
}
