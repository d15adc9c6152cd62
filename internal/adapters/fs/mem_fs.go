package fs

import (
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// MemFileSystem keeps written files in memory. Directories are implicit.
type MemFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemFileSystem() *MemFileSystem {
	return &MemFileSystem{files: map[string][]byte{}}
}

func (fs *MemFileSystem) ReadFile(path string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	data, ok := fs.files[filepath.Clean(path)]
	if !ok {
		return nil, &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// FileExists reports whether path is a file or a directory holding files.
func (fs *MemFileSystem) FileExists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	root := filepath.Clean(path)
	if _, ok := fs.files[root]; ok {
		return true
	}
	for name := range fs.files {
		if strings.HasPrefix(name, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (fs *MemFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.files[filepath.Clean(path)] = append([]byte(nil), data...)
	return nil
}

func (fs *MemFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	return nil
}

func (fs *MemFileSystem) RemoveAll(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	root := filepath.Clean(path)
	for name := range fs.files {
		if name == root || strings.HasPrefix(name, root+string(filepath.Separator)) {
			delete(fs.files, name)
		}
	}
	return nil
}

// Paths lists every stored file, sorted.
func (fs *MemFileSystem) Paths() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	paths := make([]string, 0, len(fs.files))
	for name := range fs.files {
		paths = append(paths, name)
	}
	sort.Strings(paths)
	return paths
}
