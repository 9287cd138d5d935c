package spritetool

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/akeil/spritetool/internal/logging"
)

type discoverOptions struct {
	all    bool
	hidden bool
}

// DiscoverOption changes which files Discover accepts.
type DiscoverOption func(*discoverOptions)

// IncludeAll accepts every regular file, not only known image formats.
// Files that are no images will then fail in Layout.
func IncludeAll() DiscoverOption {
	return func(o *discoverOptions) {
		o.all = true
	}
}

// IncludeHidden also descends into dot-directories and accepts dot-files.
func IncludeHidden() DiscoverOption {
	return func(o *discoverOptions) {
		o.hidden = true
	}
}

// Discover walks the directory tree under root and returns the paths of
// all icon files, sorted lexicographically by full path.
// Paths are compared element by element, so "a/y.png" sorts before
// "a-b/x.png" as it does in a directory listing.
//
// The order is what determines the grid position of each icon,
// so the result is stable for a given directory content.
//
// An empty result is not an error.
func Discover(root string, opts ...DiscoverOption) ([]string, error) {
	var o discoverOptions
	for _, opt := range opts {
		opt(&o)
	}

	paths := make([]string, 0)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if p != root && !o.hidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if !o.all && !IsImageFile(p) {
			logging.Debug("Skip non-image file %q", p)
			return nil
		}

		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return nil, &IOError{Op: "walk", Path: root, Err: err}
	}

	sort.Slice(paths, func(i, j int) bool {
		return comparePaths(paths[i], paths[j]) < 0
	})
	logging.Info("Found %d icon files in %q", len(paths), root)

	return paths, nil
}

// comparePaths orders two paths by their elements.
func comparePaths(a, b string) int {
	ea := strings.Split(filepath.ToSlash(a), "/")
	eb := strings.Split(filepath.ToSlash(b), "/")
	for i := 0; i < len(ea) && i < len(eb); i++ {
		c := strings.Compare(ea[i], eb[i])
		if c != 0 {
			return c
		}
	}
	return len(ea) - len(eb)
}
