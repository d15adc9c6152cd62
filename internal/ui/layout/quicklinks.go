package layout

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/syntax/internal/core"
	"github.com/3-lines-studio/syntax/internal/ui/icon"
)

// QuickLink is a card on the landing page pointing into the docs.
type QuickLink struct {
	Title       string
	Description string
	Href        string
	Icon        core.Drawable
}

func DefaultQuickLinks() []QuickLink {
	return []QuickLink{
		{
			Title:       "Installation",
			Description: "Install the client and connect it to your tenant.",
			Href:        "/docs/getting-started/installation",
			Icon:        core.DrawableInstallation,
		},
		{
			Title:       "Data models",
			Description: "The records every endpoint returns.",
			Href:        "/docs/reference/models",
			Icon:        core.DrawablePresets,
		},
		{
			Title:       "API reference",
			Description: "Every endpoint with request and response shapes.",
			Href:        "/docs/api/endpoints",
			Icon:        core.DrawablePlugins,
		},
		{
			Title:       "Configuration",
			Description: "Tenants, credentials and sync schedules.",
			Href:        "/docs/getting-started/configuration",
			Icon:        core.DrawableTheming,
		},
	}
}

func quickLinks(links []QuickLink, ids core.IDSource) g.Node {
	if len(links) == 0 {
		return nil
	}

	return h.Div(h.Class("not-prose my-12 grid grid-cols-1 gap-6 sm:grid-cols-2"),
		g.Map(links, func(l QuickLink) g.Node {
			return h.Div(h.Class("group relative rounded-xl border border-slate-200 dark:border-slate-800"),
				h.Div(h.Class("relative overflow-hidden rounded-xl p-6"),
					icon.RenderDefault(l.Icon, ids.Next(), h.Class("h-8 w-8")),
					h.H2(h.Class("mt-4 font-display text-base text-slate-900 dark:text-white"),
						h.A(h.Href(l.Href), g.Text(l.Title)),
					),
					h.P(h.Class("mt-1 text-sm text-slate-700 dark:text-slate-400"), g.Text(l.Description)),
				),
			)
		}),
	)
}
