package usecase

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/3-lines-studio/syntax/internal/content"
	"github.com/3-lines-studio/syntax/internal/core"
)

var ErrNoPages = errors.New("content tree has no pages")

// Page is one loaded markdown source. Its HTML is produced per render so
// every render gets its own identity session.
type Page struct {
	Route       string
	Name        string
	Title       string
	Description string
	Hero        bool
	Source      []byte
}

// Library is the set of pages the site serves, keyed by route.
type Library struct {
	pages  map[string]Page
	routes []string
}

// LoadLibrary reads every markdown file in fsys and converts it once. Any
// file that fails to convert stops the load.
func LoadLibrary(fsys fs.FS, conv Converter) (*Library, error) {
	sources, err := content.Sources(fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	if len(sources) == 0 {
		return nil, ErrNoPages
	}

	lib := &Library{
		pages:  make(map[string]Page, len(sources)),
		routes: make([]string, 0, len(sources)),
	}

	for _, src := range sources {
		data, err := fs.ReadFile(fsys, src.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", src.Name, err)
		}

		doc, err := conv.Convert(data, core.NewSession())
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s: %w", src.Name, err)
		}

		hero, _ := doc.Meta["hero"].(bool)
		lib.pages[src.Route] = Page{
			Route:       src.Route,
			Name:        src.Name,
			Title:       doc.Title,
			Description: doc.Description,
			Hero:        hero,
			Source:      data,
		}
		lib.routes = append(lib.routes, src.Route)
	}

	return lib, nil
}

func (l *Library) Page(path string) (Page, bool) {
	p, ok := l.pages[core.NormalizePath(path)]
	return p, ok
}

// Routes returns every route in sorted order.
func (l *Library) Routes() []string {
	return append([]string(nil), l.routes...)
}

func (l *Library) Len() int {
	return len(l.pages)
}
