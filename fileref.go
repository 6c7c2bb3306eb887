package desktopactions

import (
	"os"
	"path/filepath"
)

// FileRef is a reference to a filesystem entry. Existence and type are
// checked against the filesystem on every use, never cached, so a ref stays
// valid across external changes to the entry.
type FileRef struct {
	Path string
}

// NewFileRef creates a reference to the given path.
func NewFileRef(path string) *FileRef {
	return &FileRef{Path: path}
}

// Exists reports whether the referenced entry currently exists.
func (f *FileRef) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}

// IsDir reports whether the referenced entry currently exists and is a
// directory.
func (f *FileRef) IsDir() bool {
	info, err := os.Stat(f.Path)
	return err == nil && info.IsDir()
}

// Abs returns the absolute form of the referenced path. The path itself is
// returned when it cannot be resolved.
func (f *FileRef) Abs() string {
	abs, err := filepath.Abs(f.Path)
	if err != nil {
		return f.Path
	}
	return abs
}

// Parent returns a reference to the directory containing the entry.
func (f *FileRef) Parent() *FileRef {
	return &FileRef{Path: filepath.Dir(f.Abs())}
}
