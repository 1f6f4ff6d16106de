package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner locates spec files under a project tree.
type Scanner struct {
	specDir string
	suffix  string
}

// NewScanner creates a Scanner for the given spec subdirectory and file suffix.
func NewScanner(specDir, suffix string) *Scanner {
	return &Scanner{specDir: specDir, suffix: suffix}
}

// Scan finds all spec files under <root>/<specDir> and returns their paths
// relative to root, slash-separated and sorted lexicographically. The sorted
// order is what makes independent invocations agree on the same partition.
// A missing spec directory yields an empty result, not an error.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	specRoot := filepath.Join(root, s.specDir)

	info, err := os.Stat(specRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat spec directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("spec path is not a directory: %s", specRoot)
	}

	var specFiles []string
	err = filepath.WalkDir(specRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// Skip hidden directories (starting with .)
			name := d.Name()
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), s.suffix) {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			specFiles = append(specFiles, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(specFiles)
	return specFiles, nil
}
