package usecase

import (
	"context"
	"fmt"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/3-lines-studio/syntax/internal/core"
	"github.com/3-lines-studio/syntax/internal/navigation"
	"github.com/3-lines-studio/syntax/internal/ui/hero"
	"github.com/3-lines-studio/syntax/internal/ui/layout"
)

type ServePageInput struct {
	RequestPath string
}

type ServePageOutput struct {
	Action core.PageAction
	Route  string
	HTML   string
	Error  error
}

type PageService struct {
	library   *Library
	converter Converter
	nav       navigation.Tree
	siteTitle string
	hero      hero.Content
}

func NewPageService(library *Library, converter Converter, nav navigation.Tree, siteTitle string) *PageService {
	return &PageService{
		library:   library,
		converter: converter,
		nav:       nav,
		siteTitle: siteTitle,
		hero:      hero.DefaultContent(),
	}
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	if err := ctx.Err(); err != nil {
		return ServePageOutput{Action: core.ActionRender, Error: err}
	}

	page, ok := s.library.Page(input.RequestPath)
	if !ok {
		return ServePageOutput{Action: core.ActionNotFound}
	}

	html, err := s.render(page)
	return ServePageOutput{
		Action: core.ActionRender,
		Route:  page.Route,
		HTML:   html,
		Error:  err,
	}
}

func (s *PageService) render(page Page) (string, error) {
	ids := core.NewSession()

	doc, err := s.converter.Convert(page.Source, ids)
	if err != nil {
		return "", fmt.Errorf("failed to convert %s: %w", page.Name, err)
	}

	p := layout.Page{
		SiteTitle:   s.siteTitle,
		Path:        page.Route,
		Title:       doc.Title,
		Description: doc.Description,
		Body:        g.Raw(doc.HTML),
		Headings:    doc.Headings,
		Nav:         s.nav,
	}
	if page.Hero {
		content := s.hero
		p.Hero = &content
		p.QuickLinks = layout.DefaultQuickLinks()
	}

	var b strings.Builder
	if err := layout.Render(p, ids).Render(&b); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", page.Route, err)
	}
	return b.String(), nil
}
