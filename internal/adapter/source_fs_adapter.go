// Package adapter contains the file system, document and export adapters of
// svgflat.
package adapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "svgflat.dev/pkg/svgflat/internal/model"
)

const (
	recursiveSuffix = "..."
	svgExtension    = ".svg"
)

// SourceFSAdapter is the file system seen by the workflow: it finds input
// documents and writes the exported files.
type SourceFSAdapter interface {
	// Get resolves path arguments to the sorted list of SVG files they name.
	// A directory is scanned without descending; "dir/..." is scanned
	// recursively. Files matching any exclude regex are skipped.
	Get(ctx context.Context, paths []m.FilePath, exclude ...string) ([]m.FilePath, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.FilePath, recursive bool, fn FilepathWalkFunc) error

	// Open opens a file for reading.
	Open(path m.FilePath) (io.ReadCloser, error)

	// Create creates or truncates a file, creating parent directories.
	Create(path m.FilePath) (io.WriteCloser, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.FilePath
}

// FilepathWalkFunc is called for every entry visited by Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter returns a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get resolves path arguments to SVG files.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.FilePath, exclude ...string) ([]m.FilePath, error) {
	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.FilePath{"."}
	}

	seen := map[m.FilePath]bool{}

	var files []m.FilePath

	collect := func(path string) {
		if isExcluded(path, patterns) {
			slog.Debug("Excluded file", "path", path)
			return
		}

		fp := m.FilePath(filepath.Clean(path))
		if !seen[fp] {
			seen[fp] = true
			files = append(files, fp)
		}
	}

	for _, arg := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		root, recursive := splitRecursive(string(arg))

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("path %s: %w", arg, err)
		}

		if !info.IsDir() {
			collect(root)
			continue
		}

		err = a.Walk(m.FilePath(root), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || !strings.EqualFold(filepath.Ext(path), svgExtension) {
				return nil
			}

			collect(path)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// splitRecursive strips a trailing "/..." and reports whether it was present.
func splitRecursive(arg string) (string, bool) {
	if !strings.HasSuffix(arg, recursiveSuffix) {
		return arg, false
	}

	root := strings.TrimSuffix(arg, recursiveSuffix)
	root = strings.TrimSuffix(root, string(filepath.Separator))
	root = strings.TrimSuffix(root, "/")

	if root == "" {
		root = "."
	}

	return root, true
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func isExcluded(path string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(path) || re.MatchString(filepath.Base(path)) {
			return true
		}
	}

	return false
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.FilePath, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// Open opens a file for reading.
func (a *LocalSourceFSAdapter) Open(path m.FilePath) (io.ReadCloser, error) {
	// #nosec G304 - reading user supplied documents is the purpose of the tool
	return os.Open(string(path))
}

// Create creates or truncates the file at path.
func (a *LocalSourceFSAdapter) Create(path m.FilePath) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return nil, err
	}

	// #nosec G304 - path is derived from the configured output directory
	return os.Create(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.FilePath {
	return m.FilePath(filepath.Join(elem...))
}
