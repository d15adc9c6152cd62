// Package syntax serves and exports the documentation site: markdown pages
// with callouts and icons, laid out with the navigation sidebar.
package syntax

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/rs/zerolog"

	adapters "github.com/3-lines-studio/syntax/internal/adapters/http"
	"github.com/3-lines-studio/syntax/internal/content"
	"github.com/3-lines-studio/syntax/internal/core"
	"github.com/3-lines-studio/syntax/internal/markdown"
	"github.com/3-lines-studio/syntax/internal/navigation"
	"github.com/3-lines-studio/syntax/internal/ui/layout"
	"github.com/3-lines-studio/syntax/internal/usecase"
)

type Variant = core.Variant

const (
	VariantNote    = core.VariantNote
	VariantWarning = core.VariantWarning
	VariantInfo    = core.VariantInfo
	VariantSuccess = core.VariantSuccess
	VariantTip     = core.VariantTip
)

var ErrUnknownVariant = core.ErrUnknownVariant

func ParseVariant(s string) (Variant, error) {
	return core.ParseVariant(s)
}

type options struct {
	content        fs.FS
	siteTitle      string
	highlightStyle string
	isDev          bool
	logger         zerolog.Logger
}

type Option func(*options)

// WithContent replaces the embedded pages with another markdown tree.
func WithContent(fsys fs.FS) Option {
	return func(o *options) { o.content = fsys }
}

func WithSiteTitle(title string) Option {
	return func(o *options) { o.siteTitle = title }
}

func WithHighlightStyle(style string) Option {
	return func(o *options) { o.highlightStyle = style }
}

// WithDev shows error details on error pages and disables asset caching.
func WithDev(isDev bool) Option {
	return func(o *options) { o.isDev = isDev }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

type Site struct {
	converter *markdown.Converter
	library   *usecase.Library
	pages     *usecase.PageService
	isDev     bool
	logger    zerolog.Logger
}

// New loads and converts every page up front; a broken page fails here
// rather than on first request.
func New(opts ...Option) (*Site, error) {
	o := options{
		siteTitle:      "Lucido Technology Consulting",
		highlightStyle: markdown.DefaultHighlightStyle,
		logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.content == nil {
		docs, err := content.Docs()
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded content: %w", err)
		}
		o.content = docs
	}

	converter, err := markdown.New(o.highlightStyle)
	if err != nil {
		return nil, err
	}

	library, err := usecase.LoadLibrary(o.content, converter)
	if err != nil {
		return nil, err
	}

	o.logger.Debug().Int("pages", library.Len()).Str("highlight_style", converter.Style()).Msg("content loaded")

	return &Site{
		converter: converter,
		library:   library,
		pages:     usecase.NewPageService(library, converter, navigation.Default(), o.siteTitle),
		isDev:     o.isDev,
		logger:    o.logger,
	}, nil
}

func (s *Site) Routes() []string {
	return s.library.Routes()
}

// Handler serves every page plus the stylesheets under /dist.
func (s *Site) Handler() (http.Handler, error) {
	assets, err := s.assets()
	if err != nil {
		return nil, err
	}

	return adapters.NewRouter(
		adapters.NewPageHandler(s.pages, s.isDev, s.logger),
		adapters.NewAssetHandler(assets, s.isDev),
		s.logger,
	), nil
}

func (s *Site) assets() (map[string][]byte, error) {
	highlight, err := s.converter.HighlightCSS()
	if err != nil {
		return nil, fmt.Errorf("failed to build highlight stylesheet: %w", err)
	}
	return map[string][]byte{
		layout.SiteCSSPath:      layout.SiteCSS,
		layout.HighlightCSSPath: highlight,
	}, nil
}
