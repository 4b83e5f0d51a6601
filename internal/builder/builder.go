package builder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"luamin/internal/minifier"
	"luamin/internal/ui"
)

// Builder minifies Lua files on disk
type Builder struct {
	Minifier *minifier.Minifier
	Quiet    bool
}

// New creates a new Builder
func New(opts minifier.Options) *Builder {
	return &Builder{
		Minifier: minifier.New(opts),
	}
}

// BuildFile minifies input and writes the result to output, creating the
// output directory if needed.
func (b *Builder) BuildFile(input, output string) (*Report, error) {
	content, err := ReadSource(input)
	if err != nil {
		return nil, err
	}

	minified := b.Minifier.Minify(content)

	if err := WriteOutput(output, minified); err != nil {
		return nil, err
	}

	return &Report{
		Files:        1,
		OriginalSize: len(content),
		FinalSize:    len(minified),
	}, nil
}

// BuildDir minifies every file under srcDir matching includes and not
// excludes, mirroring relative paths under outDir.
func (b *Builder) BuildDir(srcDir, outDir string, includes, excludes []string) (*Report, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, srcDir)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, srcDir)
	}

	// Never pick up our own output when it lives inside the source tree
	if rel, err := filepath.Rel(srcDir, outDir); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
		excludes = append(excludes[:len(excludes):len(excludes)], filepath.ToSlash(rel))
	}

	files, err := ExpandIncludes(srcDir, includes, excludes)
	if err != nil {
		return nil, fmt.Errorf("failed to expand include patterns: %w", err)
	}

	total := &Report{}
	for _, rel := range files {
		report, err := b.BuildFile(filepath.Join(srcDir, rel), filepath.Join(outDir, rel))
		if err != nil {
			return total, err
		}
		if !b.Quiet {
			ui.PrintInfo("%s: %s → %s", rel, ui.FormatBytes(report.OriginalSize), ui.FormatBytes(report.FinalSize))
		}
		total.Add(report)
	}

	return total, nil
}

// ReadSource reads a whole file as UTF-8 text
func ReadSource(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: %s", ErrEncoding, path)
	}

	return string(content), nil
}

// WriteOutput writes content to path, creating parent directories
func WriteOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	return nil
}
