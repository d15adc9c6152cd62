// Package layout renders the full HTML document around a docs page.
package layout

import (
	_ "embed"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/syntax/internal/core"
	"github.com/3-lines-studio/syntax/internal/markdown"
	"github.com/3-lines-studio/syntax/internal/navigation"
	"github.com/3-lines-studio/syntax/internal/ui/hero"
)

const (
	SiteCSSPath      = "/dist/site.css"
	HighlightCSSPath = "/dist/highlight.css"
)

//go:embed site.css
var SiteCSS []byte

// Page is everything needed to draw one documentation page.
type Page struct {
	SiteTitle   string
	Path        string
	Title       string
	Description string
	Body        g.Node
	Headings    []markdown.Heading
	Nav         navigation.Tree
	Hero        *hero.Content
	QuickLinks  []QuickLink
}

func (p Page) documentTitle() string {
	switch {
	case p.Title == "":
		return p.SiteTitle
	case p.SiteTitle == "" || p.Title == p.SiteTitle:
		return p.Title
	default:
		return p.Title + " - " + p.SiteTitle
	}
}

// Render draws the page. Identity tokens for every icon on the page come
// from ids.
func Render(p Page, ids core.IDSource) g.Node {
	path := core.NormalizePath(p.Path)

	return document(p.documentTitle(), p.Description,
		header(p.SiteTitle),
		g.Iff(p.Hero != nil, func() g.Node { return hero.Hero(*p.Hero) }),
		h.Div(h.Class("relative mx-auto flex w-full max-w-8xl flex-auto justify-center sm:px-2 lg:px-8 xl:px-12"),
			h.Div(h.Class("hidden lg:relative lg:block lg:flex-none"),
				sidebar(p.Nav, path),
			),
			h.Main(h.Class("max-w-2xl min-w-0 flex-auto px-4 py-16 lg:max-w-none lg:pr-0 lg:pl-8 xl:px-16"),
				h.Article(
					pageHeader(p.Nav, path, p.Title),
					quickLinks(p.QuickLinks, ids),
					h.Div(h.Class("prose max-w-none"), p.Body),
				),
				pager(p.Nav, path),
			),
			toc(p.Headings),
		),
	)
}

func document(title, description string, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       title,
		Description: description,
		Language:    "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href(SiteCSSPath)),
			h.Link(h.Rel("stylesheet"), h.Href(HighlightCSSPath)),
		},
		Body: body,
	})
}

func header(siteTitle string) g.Node {
	return h.Header(h.Class("sticky top-0 z-50 flex flex-none flex-wrap items-center justify-between bg-white px-4 py-5 shadow-md sm:px-6 lg:px-8 dark:bg-slate-900"),
		h.A(h.Href("/"), h.Aria("label", siteTitle),
			hero.Logo(h.Class("h-9 w-auto")),
		),
	)
}

func pageHeader(nav navigation.Tree, path, title string) g.Node {
	section, ok := nav.SectionOf(path)
	if !ok && title == "" {
		return nil
	}

	return h.Header(h.Class("mb-9 space-y-1"),
		g.If(ok, h.P(h.Class("font-display text-sm font-medium text-sky-500"), g.Text(section.Title))),
		g.If(title != "", h.H1(h.Class("font-display text-3xl tracking-tight text-slate-900 dark:text-white"), g.Text(title))),
	)
}
