package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/3-lines-studio/syntax/internal/core"
	"github.com/3-lines-studio/syntax/internal/ui/layout"
)

// ErrNotExportDir is returned when Clean targets an existing directory that
// does not look like a previous export.
var ErrNotExportDir = errors.New("refusing to clean a directory without index.html")

type ExportInput struct {
	OutDir string
	Clean  bool
}

type ExportOutput struct {
	Pages []string
	Files []string
	Error error
}

type ExportService struct {
	pages   *PageService
	library *Library
	fs      FileSystem
	output  CLIOutput
}

func NewExportService(pages *PageService, library *Library, fs FileSystem, output CLIOutput) *ExportService {
	return &ExportService{
		pages:   pages,
		library: library,
		fs:      fs,
		output:  output,
	}
}

// ExportStatic writes every page to <out>/<route>/index.html together with
// the stylesheets and a 404 page.
func (s *ExportService) ExportStatic(ctx context.Context, input ExportInput) ExportOutput {
	if strings.TrimSpace(input.OutDir) == "" {
		return ExportOutput{Error: fmt.Errorf("export directory is required")}
	}

	if input.Clean {
		if s.fs.FileExists(input.OutDir) && !s.fs.FileExists(filepath.Join(input.OutDir, "index.html")) {
			return ExportOutput{Error: fmt.Errorf("%w: %s", ErrNotExportDir, input.OutDir)}
		}
		if err := s.fs.RemoveAll(input.OutDir); err != nil {
			return ExportOutput{Error: fmt.Errorf("failed to clean %s: %w", input.OutDir, err)}
		}
	}

	var out ExportOutput

	for _, route := range s.library.Routes() {
		res := s.pages.ServePage(ctx, ServePageInput{RequestPath: route})
		if res.Error != nil {
			out.Error = res.Error
			return out
		}
		if res.Action != core.ActionRender {
			out.Error = fmt.Errorf("page %s disappeared during export", route)
			return out
		}

		file, err := s.write(input.OutDir, core.OutputFileForRoute(route), []byte(res.HTML))
		if err != nil {
			out.Error = err
			return out
		}
		out.Pages = append(out.Pages, route)
		out.Files = append(out.Files, file)
		s.step("Rendered %s", route)
	}

	assets, err := s.assets()
	if err != nil {
		out.Error = err
		return out
	}
	for _, a := range assets {
		file, err := s.write(input.OutDir, a.name, a.data)
		if err != nil {
			out.Error = err
			return out
		}
		out.Files = append(out.Files, file)
	}

	return out
}

type exportAsset struct {
	name string
	data []byte
}

func (s *ExportService) assets() ([]exportAsset, error) {
	highlight, err := s.pages.converter.HighlightCSS()
	if err != nil {
		return nil, fmt.Errorf("failed to build highlight stylesheet: %w", err)
	}

	var notFound strings.Builder
	if err := layout.ErrorPage(http.StatusNotFound, "", false).Render(&notFound); err != nil {
		return nil, fmt.Errorf("failed to render 404 page: %w", err)
	}

	return []exportAsset{
		{name: strings.TrimPrefix(layout.SiteCSSPath, "/"), data: layout.SiteCSS},
		{name: strings.TrimPrefix(layout.HighlightCSSPath, "/"), data: highlight},
		{name: "404.html", data: []byte(notFound.String())},
	}, nil
}

func (s *ExportService) write(outDir, name string, data []byte) (string, error) {
	path := filepath.Join(outDir, filepath.FromSlash(name))
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := s.fs.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func (s *ExportService) step(msg string, args ...any) {
	if s.output != nil {
		s.output.PrintStep("", msg, args...)
	}
}
