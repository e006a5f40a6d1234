// Package ignore loads the flat list of paths excluded from a scan.
//
// Entries are compared as exact strings against traversal paths and their
// parent directories. There is no glob or gitignore pattern support.
package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/harrison/todos/internal/models"
)

// DefaultFile is the ignore file read when none is configured.
const DefaultFile = ".gitignore"

// List is an ordered set of excluded path strings. It is not modified after
// Load or Parse returns.
type List struct {
	paths []string
	set   map[string]struct{}
}

// Load reads the ignore file at path. Any read failure, a missing file
// included, is wrapped in models.ErrIO.
func Load(path string) (*List, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read ignore file %s: %w", models.ErrIO, path, err)
	}
	defer file.Close()

	list, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read ignore file %s: %w", models.ErrIO, path, err)
	}
	return list, nil
}

// LoadOptional is Load, except that a missing file yields an empty list.
func LoadOptional(path string) (*List, error) {
	list, err := Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return &List{set: make(map[string]struct{})}, nil
	}
	return list, err
}

// Parse builds a List from r, one path per line. Lines are trimmed; blank
// lines and lines starting with '#' are dropped.
func Parse(r io.Reader) (*List, error) {
	list := &List{set: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, dup := list.set[line]; dup {
			continue
		}
		list.set[line] = struct{}{}
		list.paths = append(list.paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// Contains reports whether path is in the list. A nil List contains nothing.
func (l *List) Contains(path string) bool {
	if l == nil {
		return false
	}
	_, ok := l.set[path]
	return ok
}

// Paths returns the entries in file order.
func (l *List) Paths() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.paths))
	copy(out, l.paths)
	return out
}

// Len returns the number of entries.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.paths)
}
