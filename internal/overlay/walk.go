package overlay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	billy "github.com/go-git/go-billy/v5"

	"github.com/agentic-research/buildaux/api"
)

// ErrNotDir is returned when a walk root exists but is not a directory.
var ErrNotDir = errors.New("not a directory")

// Walk traverses the tree under root top-down and calls fn once for every
// directory that directly contains at least one file. Directories holding
// only subdirectories are descended into but not reported. Entries are
// visited in name order.
//
// root should be absolute; it is cleaned but not resolved. A symlink to a
// directory counts as a subdirectory and is not followed. Any other
// non-directory entry counts as a file.
func Walk(fsys billy.Filesystem, root string, fn func(api.Directory) error) error {
	root = filepath.Clean(root)
	info, err := fsys.Stat(root)
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("walk %s: %w", root, ErrNotDir)
	}
	return walkDir(fsys, root, fn)
}

func walkDir(fsys billy.Filesystem, dir string, fn func(api.Directory) error) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}
	slices.SortFunc(entries, func(a, b os.FileInfo) int {
		return strings.Compare(a.Name(), b.Name())
	})

	var files, subdirs []string
	for _, e := range entries {
		if isDir(fsys, dir, e) {
			if e.Mode()&os.ModeSymlink == 0 {
				subdirs = append(subdirs, e.Name())
			}
			continue
		}
		files = append(files, e.Name())
	}

	if len(files) > 0 {
		rec := api.Directory{
			Name:     dir,
			Type:     api.TypeDirectory,
			Contents: make([]api.File, 0, len(files)),
		}
		for _, name := range files {
			rec.Contents = append(rec.Contents, api.File{
				Name:             name,
				Type:             api.TypeFile,
				ExternalContents: filepath.Join(dir, name),
			})
		}
		if err := fn(rec); err != nil {
			return err
		}
	}

	for _, name := range subdirs {
		if err := walkDir(fsys, filepath.Join(dir, name), fn); err != nil {
			return err
		}
	}
	return nil
}

// isDir reports whether e names a directory, following symlinks.
// Dangling links are files.
func isDir(fsys billy.Filesystem, dir string, e os.FileInfo) bool {
	if e.IsDir() {
		return true
	}
	if e.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := fsys.Stat(filepath.Join(dir, e.Name()))
	return err == nil && target.IsDir()
}
