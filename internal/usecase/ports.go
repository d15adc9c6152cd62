package usecase

import (
	"github.com/3-lines-studio/syntax/internal/adapters/fs"
	"github.com/3-lines-studio/syntax/internal/core"
	"github.com/3-lines-studio/syntax/internal/markdown"
)

// Converter turns a markdown page into HTML. Every identity token in the
// output is drawn from ids.
type Converter interface {
	Convert(src []byte, ids core.IDSource) (markdown.Document, error)
	HighlightCSS() ([]byte, error)
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

type FileSystem = fs.FileSystem
