package builder

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandGlob returns the regular files under baseDir matching pattern, as
// paths relative to baseDir. Patterns support ** for any number of
// directories; a directory or a pattern matching one expands to every file
// beneath it.
func ExpandGlob(baseDir, pattern string) ([]string, error) {
	var results []string

	if strings.Contains(pattern, "**") {
		prefix, suffix, _ := strings.Cut(pattern, "**")
		prefix = strings.TrimSuffix(prefix, "/")
		suffix = strings.TrimPrefix(suffix, "/")

		startDir := baseDir
		if prefix != "" {
			startDir = filepath.Join(baseDir, filepath.FromSlash(prefix))
		}

		err := walkFiles(startDir, func(path string) {
			if suffix != "" && !matchSuffix(startDir, path, suffix) {
				return
			}
			if rel, err := filepath.Rel(baseDir, path); err == nil {
				results = append(results, rel)
			}
		})
		if err != nil {
			return nil, err
		}
		return results, nil
	}

	matches, err := filepath.Glob(filepath.Join(baseDir, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, err
	}

	for _, match := range matches {
		err := walkFiles(match, func(path string) {
			if rel, err := filepath.Rel(baseDir, path); err == nil {
				results = append(results, rel)
			}
		})
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// walkFiles calls fn for root if it is a file, or for every file beneath it
// if it is a directory. Unreadable entries are skipped.
func walkFiles(root string, fn func(path string)) error {
	info, err := os.Stat(root)
	if err != nil {
		return nil
	}
	if !info.IsDir() {
		fn(root)
		return nil
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			fn(path)
		}
		return nil
	})
}

// matchSuffix matches the part of a pattern after ** against either the
// file name or the path relative to the ** point.
func matchSuffix(startDir, path, suffix string) bool {
	if matched, _ := filepath.Match(suffix, filepath.Base(path)); matched {
		return true
	}
	rel, err := filepath.Rel(startDir, path)
	if err != nil {
		return false
	}
	matched, _ := filepath.Match(suffix, filepath.ToSlash(rel))
	return matched
}

// containsGlobChars checks if a pattern contains glob special characters
func containsGlobChars(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// IsExcluded checks if a path matches any of the exclude patterns
func IsExcluded(path string, excludes []string) bool {
	for _, pattern := range excludes {
		if matchPattern(path, pattern) {
			return true
		}
	}
	return false
}

// matchPattern checks if a path matches a pattern (supports * and **)
func matchPattern(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if !strings.Contains(pattern, "**") {
		if matched, _ := filepath.Match(pattern, path); matched {
			return true
		}
		// Directory patterns exclude everything beneath them
		if !containsGlobChars(pattern) && strings.HasPrefix(path, strings.TrimSuffix(pattern, "/")+"/") {
			return true
		}
		matched, _ := filepath.Match(pattern, filepath.Base(path))
		return matched
	}

	prefix, suffix, _ := strings.Cut(pattern, "**")
	prefix = strings.TrimSuffix(prefix, "/")
	suffix = strings.TrimPrefix(suffix, "/")

	if prefix != "" && !strings.HasPrefix(path, prefix+"/") {
		if matched, _ := filepath.Match(prefix+"/*", path); !matched {
			return false
		}
	}

	if suffix == "" {
		return true
	}
	if matched, _ := filepath.Match(suffix, filepath.Base(path)); matched {
		return true
	}
	return strings.HasSuffix(path, "/"+suffix)
}

// ExpandIncludes expands all include patterns and returns unique, sorted
// file paths that are not excluded.
func ExpandIncludes(baseDir string, includes []string, excludes []string) ([]string, error) {
	seen := make(map[string]bool)
	var results []string

	for _, pattern := range includes {
		expanded, err := ExpandGlob(baseDir, pattern)
		if err != nil {
			return nil, err
		}

		for _, path := range expanded {
			if seen[path] || IsExcluded(path, excludes) {
				continue
			}
			seen[path] = true
			results = append(results, path)
		}
	}

	sort.Strings(results)
	return results, nil
}
