// Package content holds the markdown pages the site is built from.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/3-lines-studio/syntax/internal/core"
)

//go:embed all:docs
var docsFS embed.FS

var ErrDuplicateRoute = errors.New("two content files map to the same route")

// Source is one markdown file and the route it is served at.
type Source struct {
	Name  string
	Route string
}

// Docs returns the embedded pages rooted so that docs/index.md is "index.md".
func Docs() (fs.FS, error) {
	return fs.Sub(docsFS, "docs")
}

// Sources lists every markdown file in fsys, sorted by route. Files that are
// not markdown are skipped.
func Sources(fsys fs.FS) ([]Source, error) {
	var sources []Source
	byRoute := map[string]string{}

	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		route, ok := core.RouteForContentFile(name)
		if !ok {
			return nil
		}
		if prev, dup := byRoute[route]; dup {
			return fmt.Errorf("%w: %s and %s -> %s", ErrDuplicateRoute, prev, name, route)
		}
		byRoute[route] = name

		sources = append(sources, Source{Name: name, Route: route})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Route < sources[j].Route
	})

	return sources, nil
}
