// Package hostfs resolves command-line paths against a working directory
// and opens them through a billy filesystem.
package hostfs

import (
	"fmt"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Host pairs a filesystem with the directory relative paths are resolved
// against.
type Host struct {
	FS      billy.Filesystem
	WorkDir string
}

// New returns a Host backed by the real filesystem and the process
// working directory.
func New() (*Host, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working dir: %w", err)
	}
	return NewOS(wd), nil
}

// NewOS returns a Host backed by the real filesystem. The chroot base is
// empty: billy joins it with every path, and joining with "" only cleans
// the path, so absolute paths keep their volume (C:\ on Windows).
func NewOS(wd string) *Host {
	return &Host{FS: osfs.New(""), WorkDir: wd}
}

// Abs makes p absolute against the working directory and cleans it.
// Symlinks are not resolved.
func (h *Host) Abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(h.WorkDir, p)
}

// Open opens p for reading.
func (h *Host) Open(p string) (billy.File, error) {
	return h.FS.Open(h.Abs(p))
}

// Create creates or truncates p for writing.
func (h *Host) Create(p string) (billy.File, error) {
	return h.FS.Create(h.Abs(p))
}
