// Package fsutil wraps the filesystem operations a build-configuration
// pass needs: recursive globbing with include/exclude patterns and
// deletion that tolerates missing targets.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// RecursiveGlob walks every root and returns files and directories
// whose base name matches one of the include patterns. An entry is
// dropped when any exclude pattern matches either its path relative to
// the root's parent or its base name. Patterns use doublestar syntax
// (fnmatch plus "**").
func RecursiveGlob(roots, patterns, exclude []string) ([]string, error) {
	var matches []string
	for _, pattern := range patterns {
		for _, root := range roots {
			err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				// The root is where the search starts, not a candidate.
				if path == root {
					return nil
				}
				ok, merr := doublestar.Match(pattern, d.Name())
				if merr != nil {
					return merr
				}
				if !ok {
					return nil
				}
				excluded, merr := matchesAny(exclude, path, d.Name())
				if merr != nil {
					return merr
				}
				if !excluded {
					matches = append(matches, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	}
	return matches, nil
}

func matchesAny(patterns []string, path, name string) (bool, error) {
	for _, p := range patterns {
		ok, err := doublestar.Match(p, filepath.ToSlash(path))
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		ok, err = doublestar.Match(p, name)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// GlobDirs returns the directories matching pattern.
func GlobDirs(pattern string) ([]string, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			dirs = append(dirs, p)
		}
	}
	return dirs, nil
}
