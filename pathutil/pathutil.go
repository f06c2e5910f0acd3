// Package pathutil provides helpers for decomposing and rewriting file
// paths, and for computing the size of files and directory trees.
package pathutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Parent returns the parent directory of the given path.
func Parent(path string) string {
	return filepath.Dir(path)
}

// Filename returns the final element of the given path.
func Filename(path string) string {
	return filepath.Base(path)
}

// ParentBasename returns the name of the directory containing the file.
func ParentBasename(path string) string {
	return filepath.Base(filepath.Dir(path))
}

// Parents returns the parent directory of every path in the list.
func Parents(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, Parent(p))
	}
	return out
}

// ParentBasenames is like Parents but returns directory base names.
func ParentBasenames(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, ParentBasename(p))
	}
	return out
}

// Filenames returns the final element of every path in the list.
func Filenames(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, Filename(p))
	}
	return out
}

// MakeNewName rewrites a file path, replacing the directory and/or the
// extension. An empty newDir or newExt leaves that part of the path
// unchanged, so MakeNewName(p, "", "") returns p as-is.
func MakeNewName(path, newDir, newExt string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	dir, name := filepath.Split(stem)
	if newDir != "" {
		dir = newDir
	}
	if newExt != "" {
		ext = newExt
	}
	return filepath.Join(dir, name+ext)
}

// WithNewExtension returns the path with its extension replaced.
func WithNewExtension(path, newExt string) string {
	return MakeNewName(path, "", newExt)
}

// WithNewParent returns the path with its parent directory replaced.
func WithNewParent(path, newDir string) string {
	return MakeNewName(path, newDir, "")
}

// IgnoreFunc reports whether a file should be skipped during size
// computation. It receives the full path of the candidate file.
type IgnoreFunc func(path string) bool

// Size returns the size of the file at path in bytes. For a directory it
// walks the tree and sums the sizes of all regular files, skipping any file
// for which ignore returns true. A nil ignore keeps every file. Missing
// paths propagate the underlying I/O error.
func Size(path string, ignore IgnoreFunc) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}

	var total int64
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ignore != nil && ignore(p) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		if fi.Mode().IsRegular() {
			total += fi.Size()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
