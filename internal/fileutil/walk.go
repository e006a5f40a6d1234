package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/todos/internal/models"
)

// DefaultExtensions is the allow-list used when WalkOptions.Extensions is empty.
var DefaultExtensions = []string{"ts", "js", "tsx", "jsx", "vue", "html", "scss"}

// PathMatcher reports whether a path string is excluded from traversal.
type PathMatcher interface {
	Contains(path string) bool
}

// WalkOptions configures candidate selection during traversal
type WalkOptions struct {
	// Extensions lists the allowed file extensions, with or without the leading
	// dot. Matching is case-sensitive. Empty means DefaultExtensions.
	Extensions []string
	// Ignore excludes entries whose path or parent directory path it contains
	Ignore PathMatcher
}

// Entry is a candidate file produced by Walk
type Entry struct {
	// Path is the root joined with the entry's relative location
	Path string
	// Name is the base name of the entry
	Name string
}

// errStopWalk aborts filepath.WalkDir when the consumer stops iterating.
var errStopWalk = errors.New("walk stopped")

// ValidateRoot checks that root exists and is a directory.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: directory not found: %s", models.ErrInvalidPath, root)
		}
		return fmt.Errorf("%w: failed to access directory %s: %w", models.ErrInvalidPath, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: path is not a directory: %s", models.ErrInvalidPath, root)
	}
	return nil
}

// Walk returns a lazy, single-use sequence of candidate files under root in
// lexical order. Every visited entry, the root and filtered entries included,
// increments *visited before filters run. The ignore check is applied per
// entry only: an ignored directory is still descended into.
//
// An error accessing an entry is yielded once, wrapped in models.ErrIO, and
// ends the sequence.
func Walk(root string, opts WalkOptions, visited *int) iter.Seq2[Entry, error] {
	allowed := extensionSet(opts.Extensions)

	return func(yield func(Entry, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("%w: error accessing %s: %w", models.ErrIO, path, err)
			}

			if visited != nil {
				*visited++
			}

			if isIgnored(opts.Ignore, path) {
				return nil
			}

			// Directories are traversed, never yielded
			if d.IsDir() {
				return nil
			}

			if !hasAllowedExtension(d.Name(), allowed) {
				return nil
			}

			if !yield(Entry{Path: path, Name: d.Name()}, nil) {
				return errStopWalk
			}
			return nil
		})

		if err != nil && !errors.Is(err, errStopWalk) {
			yield(Entry{}, err)
		}
	}
}

func isIgnored(m PathMatcher, path string) bool {
	if m == nil {
		return false
	}
	return m.Contains(path) || m.Contains(filepath.Dir(path))
}

func extensionSet(exts []string) map[string]bool {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			set[ext] = true
		}
	}
	return set
}

// hasAllowedExtension treats a name without an extension as not eligible.
func hasAllowedExtension(name string, allowed map[string]bool) bool {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return false
	}
	return allowed[ext[1:]]
}
