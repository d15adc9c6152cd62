package syntax

import (
	"context"

	"github.com/3-lines-studio/syntax/internal/adapters/fs"
	"github.com/3-lines-studio/syntax/internal/usecase"
)

type ExportResult struct {
	Pages []string
	Files []string
}

// Export renders the whole site into dir. When clean is set a previous export
// in dir is removed first; a non-empty dir without index.html is left alone
// and reported as usecase.ErrNotExportDir.
func (s *Site) Export(ctx context.Context, dir string, clean bool, output usecase.CLIOutput) (ExportResult, error) {
	return s.export(ctx, fs.NewOSFileSystem(), dir, clean, output)
}

func (s *Site) export(ctx context.Context, fsys usecase.FileSystem, dir string, clean bool, output usecase.CLIOutput) (ExportResult, error) {
	svc := usecase.NewExportService(s.pages, s.library, fsys, output)
	out := svc.ExportStatic(ctx, usecase.ExportInput{OutDir: dir, Clean: clean})

	s.logger.Debug().Int("pages", len(out.Pages)).Str("dir", dir).Err(out.Error).Msg("export finished")

	return ExportResult{Pages: out.Pages, Files: out.Files}, out.Error
}
