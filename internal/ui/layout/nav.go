package layout

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/syntax/internal/markdown"
	"github.com/3-lines-studio/syntax/internal/navigation"
)

func sidebar(nav navigation.Tree, path string) g.Node {
	return h.Nav(h.Class("sticky top-19 -ml-0.5 h-[calc(100vh-4.75rem)] w-64 overflow-x-hidden overflow-y-auto py-16 pr-8 pl-0.5 xl:w-72 xl:pr-16"),
		h.Ul(h.Role("list"), h.Class("space-y-9"),
			g.Map(nav, func(s navigation.Section) g.Node {
				return h.Li(
					h.H2(h.Class("font-display font-medium text-slate-900 dark:text-white"), g.Text(s.Title)),
					h.Ul(h.Role("list"), h.Class("mt-2 space-y-2 border-l-2 border-slate-100 lg:mt-4 lg:space-y-4 lg:border-slate-200 dark:border-slate-800"),
						g.Map(s.Links, func(l navigation.Link) g.Node {
							return sidebarLink(l, l.Href == path)
						}),
					),
				)
			}),
		),
	)
}

func sidebarLink(l navigation.Link, active bool) g.Node {
	return h.Li(h.Class("relative"),
		h.A(h.Href(l.Href),
			g.If(active, h.Aria("current", "page")),
			c.Classes{
				"block w-full pl-3.5 before:pointer-events-none before:absolute before:top-1/2 before:-left-1 before:h-1.5 before:w-1.5 before:-translate-y-1/2 before:rounded-full": true,
				"font-semibold text-sky-500 before:bg-sky-500": active,
				"text-slate-500 before:hidden before:bg-slate-300 hover:text-slate-600 hover:before:block dark:text-slate-400": !active,
			},
			g.Text(l.Title),
		),
	)
}

func toc(headings []markdown.Heading) g.Node {
	if len(headings) == 0 {
		return nil
	}

	return h.Div(h.Class("hidden xl:sticky xl:top-19 xl:-mr-6 xl:block xl:h-[calc(100vh-4.75rem)] xl:flex-none xl:overflow-y-auto xl:py-16 xl:pr-6"),
		h.Nav(h.Aria("labelledby", "on-this-page-title"), h.Class("w-56"),
			h.H2(h.ID("on-this-page-title"), h.Class("font-display text-sm font-medium text-slate-900 dark:text-white"), g.Text("On this page")),
			h.Ol(h.Role("list"), h.Class("mt-4 space-y-3 text-sm"),
				g.Map(headings, func(hd markdown.Heading) g.Node {
					return h.Li(
						g.If(hd.Level > 2, h.Class("pl-5")),
						h.A(h.Href("#"+hd.ID), h.Class("text-slate-500 hover:text-slate-600 dark:text-slate-400"), g.Text(hd.Text)),
					)
				}),
			),
		),
	)
}

func pager(nav navigation.Tree, path string) g.Node {
	prev, next := nav.Adjacent(path)
	if prev == nil && next == nil {
		return nil
	}

	return h.Dl(h.Class("mt-12 flex border-t border-slate-200 pt-6 dark:border-slate-800"),
		g.If(prev != nil, pagerLink("Previous", prev, false)),
		g.If(next != nil, pagerLink("Next", next, true)),
	)
}

func pagerLink(label string, l *navigation.Link, next bool) g.Node {
	if l == nil {
		return nil
	}

	title := "← " + l.Title
	if next {
		title = l.Title + " →"
	}

	return h.Div(
		g.If(next, h.Class("ml-auto text-right")),
		h.Dt(h.Class("font-display text-sm font-medium text-slate-900 dark:text-white"), g.Text(label)),
		h.Dd(h.Class("mt-1"),
			h.A(h.Href(l.Href), h.Class("text-base font-semibold text-slate-500 hover:text-slate-600 dark:text-slate-400"), g.Text(title)),
		),
	)
}
