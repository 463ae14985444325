package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/leapstack-labs/fplint/pkg/parser"
)

// FileSet selects source files with include and exclude glob patterns.
// Patterns are matched against slash-separated paths relative to each
// searched directory.
type FileSet struct {
	Include []string
	Exclude []string
}

// Discover expands paths into a sorted, de-duplicated list of files.
// Directories are searched with the include patterns; files named
// explicitly are kept when they have a supported extension, even if no
// include pattern matches them. Exclude patterns apply to both.
func (s FileSet) Discover(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("cannot lint %s: %w", root, err)
		}

		if !info.IsDir() {
			if !parser.IsSourceFile(root) {
				return nil, fmt.Errorf("cannot lint %s: unsupported file type", root)
			}
			if !s.excluded(filepath.ToSlash(filepath.Clean(root))) {
				add(root)
			}
			continue
		}

		matches, err := s.walk(root)
		if err != nil {
			return nil, err
		}
		for _, rel := range matches {
			add(filepath.Join(root, filepath.FromSlash(rel)))
		}
	}

	sort.Strings(files)
	return files, nil
}

func (s FileSet) walk(root string) ([]string, error) {
	fsys := os.DirFS(root)
	var out []string
	for _, pattern := range s.Include {
		err := doublestar.GlobWalk(fsys, pattern, func(rel string, d fs.DirEntry) error {
			if d.IsDir() || s.excluded(rel) {
				return nil
			}
			out = append(out, rel)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("searching %s for %s: %w", root, pattern, err)
		}
	}
	return out, nil
}

func (s FileSet) excluded(rel string) bool {
	for _, pattern := range s.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
