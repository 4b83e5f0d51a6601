package builder

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func createFiles(t *testing.T, dir string, files []string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

var globFiles = []string{
	"main.lua",
	"util.lua",
	"conf.txt",
	"src/app.lua",
	"src/util.lua",
	"src/lib/helper.lua",
	"vendor/json.lua",
}

func TestExpandGlob(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "glob_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	createFiles(t, tmpDir, globFiles)

	tests := []struct {
		name     string
		pattern  string
		expected int
	}{
		{"single wildcard lua", "*.lua", 2},
		{"single wildcard txt", "*.txt", 1},
		{"directory", "src", 3},
		{"recursive lua", "**/*.lua", 6},
		{"recursive under prefix", "src/**/*.lua", 3},
		{"specific file", "main.lua", 1},
		{"subdirectory wildcard", "src/*.lua", 2},
		{"missing file", "missing.lua", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := ExpandGlob(tmpDir, tt.pattern)
			if err != nil {
				t.Errorf("ExpandGlob(%q) error = %v", tt.pattern, err)
				return
			}
			if len(results) != tt.expected {
				t.Errorf("ExpandGlob(%q) = %d files, want %d. Got: %v", tt.pattern, len(results), tt.expected, results)
			}
		})
	}
}

func TestContainsGlobChars(t *testing.T) {
	tests := []struct {
		pattern  string
		expected bool
	}{
		{"*.lua", true},
		{"file?.lua", true},
		{"[abc].lua", true},
		{"file.lua", false},
		{"src/file.lua", false},
		{"**/*.lua", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			result := containsGlobChars(tt.pattern)
			if result != tt.expected {
				t.Errorf("containsGlobChars(%q) = %v, want %v", tt.pattern, result, tt.expected)
			}
		})
	}
}

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		excludes []string
		expected bool
	}{
		{"no excludes", "file.lua", []string{}, false},
		{"exact match", "file.lua", []string{"file.lua"}, true},
		{"wildcard match", "file.lua", []string{"*.lua"}, true},
		{"no match", "file.lua", []string{"*.js"}, false},
		{"directory glob", "build/file.lua", []string{"build/*"}, true},
		{"directory name", "vendor/a/b.lua", []string{"vendor"}, true},
		{"similar directory name", "vendorx/a.lua", []string{"vendor"}, false},
		{"recursive exclude", "src/lib/file.lua", []string{"**/*.lua"}, true},
		{"multiple excludes match", "file.lua", []string{"*.js", "*.lua"}, true},
		{"multiple excludes no match", "file.txt", []string{"*.js", "*.lua"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsExcluded(tt.path, tt.excludes)
			if result != tt.expected {
				t.Errorf("IsExcluded(%q, %v) = %v, want %v", tt.path, tt.excludes, result, tt.expected)
			}
		})
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		pattern  string
		expected bool
	}{
		{"exact match", "file.lua", "file.lua", true},
		{"wildcard extension", "file.lua", "*.lua", true},
		{"wildcard name", "file.lua", "file.*", true},
		{"no match", "file.lua", "*.js", false},
		{"recursive pattern", "src/lib/file.lua", "**/*.lua", true},
		{"recursive with prefix", "src/lib/file.lua", "src/**/*.lua", true},
		{"recursive wrong prefix", "lib/file.lua", "src/**", false},
		{"path with directory", "src/file.lua", "src/*.lua", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matchPattern(tt.path, tt.pattern)
			if result != tt.expected {
				t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.path, tt.pattern, result, tt.expected)
			}
		})
	}
}

func TestExpandIncludes(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "expand_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	createFiles(t, tmpDir, globFiles)

	tests := []struct {
		name     string
		includes []string
		excludes []string
		expected int
	}{
		{"all lua", []string{"**/*.lua"}, []string{}, 6},
		{"all lua exclude vendor", []string{"**/*.lua"}, []string{"vendor"}, 5},
		{"multiple patterns", []string{"*.lua", "*.txt"}, []string{}, 3},
		{"overlapping patterns", []string{"*.lua", "**/*.lua"}, []string{}, 6},
		{"with exclusion", []string{"*.lua", "*.txt"}, []string{"*.txt"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := ExpandIncludes(tmpDir, tt.includes, tt.excludes)
			if err != nil {
				t.Errorf("ExpandIncludes() error = %v", err)
				return
			}
			if len(results) != tt.expected {
				t.Errorf("ExpandIncludes() = %d files, want %d. Got: %v", len(results), tt.expected, results)
			}
			if !sort.StringsAreSorted(results) {
				t.Errorf("ExpandIncludes() = %v, want sorted paths", results)
			}
		})
	}
}
