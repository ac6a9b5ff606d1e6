// paths.go locates the data directory and the two data files inside it.
//
// Design: The data directory is resolved relative to the binary, not the
// working directory, so running datalint from anywhere inside a checkout
// validates the same files. A binary built into the repository root or a
// bin/ directory finds data/ beside or above itself. When the binary lives
// elsewhere (go run, go install) discovery falls back to walking up from the
// working directory, the same way git finds .git.

package data

import (
	"os"
	"path/filepath"
)

const (
	// DirName is the conventional name of the data directory.
	DirName = "data"
	// CategoriesFile holds the category list.
	CategoriesFile = "categories.json"
	// LinksFile holds the link list.
	LinksFile = "links.json"
)

// Paths holds the resolved locations of both data files.
type Paths struct {
	Dir        string
	Categories string
	Links      string
}

// ForDir returns the data file paths inside dir.
func ForDir(dir string) Paths {
	return Paths{
		Dir:        dir,
		Categories: filepath.Join(dir, CategoriesFile),
		Links:      filepath.Join(dir, LinksFile),
	}
}

// All returns both file paths in validation order.
func (p Paths) All() []string {
	return []string{p.Categories, p.Links}
}

// Missing returns the data files that do not exist (or are not regular
// files), in validation order. Both files are checked so callers can report
// every missing file at once.
func (p Paths) Missing() []string {
	var missing []string
	for _, f := range p.All() {
		info, err := os.Stat(f)
		if err != nil || info.IsDir() {
			missing = append(missing, f)
		}
	}
	return missing
}

// executable returns the running binary's path. Tests override it.
var executable = os.Executable

// Discover finds the data directory.
//
// Search order:
//  1. data/ beside the executable, then data/ one level above it
//  2. data/ in the working directory or any of its parents
//  3. ./data, so missing-file errors still name a sensible location
//
// A directory only matches if it holds at least one of the data files.
func Discover() string {
	if exe, err := executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		base := filepath.Dir(exe)
		for _, c := range []string{
			filepath.Join(base, DirName),
			filepath.Join(filepath.Dir(base), DirName),
		} {
			if hasData(c) {
				return c
			}
		}
	}

	if dir, err := os.Getwd(); err == nil {
		for {
			c := filepath.Join(dir, DirName)
			if hasData(c) {
				return c
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	return DirName
}

// hasData reports whether dir is a directory containing either data file.
func hasData(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	return len(ForDir(dir).Missing()) < 2
}
