// Package lookpath locates commands on a search path.
//
// Resolution is done by listing the search path directories rather than
// probing each candidate so a single directory scan answers a lookup. Results
// are memoized per command name. The memo is dropped when the search path
// itself changes, but files added to or removed from a search path directory
// after a lookup are not observed until then.
package lookpath

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is the error resulting if a path search failed to find a file.
var ErrNotFound = exec.ErrNotFound

// Search looks for name in each directory of the list, in order, and returns
// the path of the first match. Directories that can't be listed are skipped.
func Search(fsys afero.Fs, pathList, name string) (string, error) {
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		if containsName(fsys, dir, name) {
			return filepath.Join(dir, name), nil
		}
	}
	return "", ErrNotFound
}

func containsName(fsys afero.Fs, dir, name string) bool {
	d, err := fsys.Open(dir)
	if err != nil {
		return false
	}
	defer d.Close()

	names, err := d.Readdirnames(-1)
	if err != nil {
		return false
	}
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

type result struct {
	path string
	err  error
}

// Resolver resolves command names against a search path.
type Resolver struct {
	fs      afero.Fs
	getPath func() string

	disableCache bool
	cachedPath   string
	cache        map[string]result
}

// New creates a resolver that lists directories in fsys and reads the search
// path from getPath on every lookup.
func New(fsys afero.Fs, getPath func() string) *Resolver {
	return &Resolver{
		fs:      fsys,
		getPath: getPath,
	}
}

// DisableCache turns off memoization, every lookup rescans the search path.
func (r *Resolver) DisableCache() {
	r.disableCache = true
	r.cache = nil
}

// Resolve returns the path of the command called name.
//
// If name contains a path separator it is checked directly and the search
// path isn't consulted. Otherwise the first search path directory containing
// name wins. ErrNotFound is returned if nothing matched.
func (r *Resolver) Resolve(name string) (string, error) {
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return r.resolveFile(name)
	}

	pathList := r.getPath()
	if r.disableCache {
		return Search(r.fs, pathList, name)
	}

	if r.cache == nil || r.cachedPath != pathList {
		r.cache = make(map[string]result)
		r.cachedPath = pathList
	}

	if res, ok := r.cache[name]; ok {
		return res.path, res.err
	}

	path, err := Search(r.fs, pathList, name)
	r.cache[name] = result{path: path, err: err}
	return path, err
}

func (r *Resolver) resolveFile(name string) (string, error) {
	info, err := r.fs.Stat(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", ErrNotFound
	case err != nil:
		return "", err
	case info.IsDir():
		return "", fs.ErrPermission
	}
	return name, nil
}
