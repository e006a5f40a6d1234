// Package scanner runs the scan pipeline: walk the root, read every
// candidate file, extract its annotations and accumulate the summary.
//
// A scan is single-threaded and synchronous. All counters and results are
// owned by the Scan call that produces them, so a Scanner can be reused.
package scanner

import (
	"fmt"
	"os"

	"github.com/harrison/todos/internal/fileutil"
	"github.com/harrison/todos/internal/logger"
	"github.com/harrison/todos/internal/models"
	"github.com/harrison/todos/internal/parser"
)

// Logger receives scan progress. A nil Logger in Options discards it.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogWarn(message string)
}

// Options configures a Scanner
type Options struct {
	// Walk selects candidate files
	Walk fileutil.WalkOptions
	// Parser extracts annotations; nil means parser.NewDefault()
	Parser *parser.Parser
	// Needle, when non-empty, keeps only marker lines containing it
	Needle string
	// ContinueOnError skips unreadable files instead of aborting the scan
	ContinueOnError bool
	// Logger receives progress messages (optional)
	Logger Logger
}

// Scanner ties traversal and extraction together.
type Scanner struct {
	opts   Options
	parser *parser.Parser
}

// New creates a Scanner.
func New(opts Options) *Scanner {
	p := opts.Parser
	if p == nil {
		p = parser.NewDefault()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNoOpLogger()
	}
	return &Scanner{opts: opts, parser: p}
}

// Scan walks root and returns every annotation in traversal order together
// with the summary counters. An invalid root fails with models.ErrInvalidPath
// before anything is read. A read failure fails the whole scan with
// models.ErrIO unless ContinueOnError is set; no partial result is returned.
func (s *Scanner) Scan(root string) (*models.ScanResult, error) {
	if err := fileutil.ValidateRoot(root); err != nil {
		return nil, err
	}

	result := &models.ScanResult{
		Root:        root,
		Annotations: make([]models.Annotation, 0),
	}

	for entry, err := range fileutil.Walk(root, s.opts.Walk, &result.Summary.FilesScanned) {
		if err != nil {
			return nil, err
		}

		content, err := os.ReadFile(entry.Path)
		if err != nil {
			if s.opts.ContinueOnError {
				s.opts.Logger.LogWarn(fmt.Sprintf("Skipping unreadable file %s: %v", entry.Path, err))
				result.Skipped = append(result.Skipped, entry.Path)
				continue
			}
			return nil, fmt.Errorf("%w: failed to read %s: %w", models.ErrIO, entry.Path, err)
		}

		fileResult := s.parser.Extract(string(content), entry.Path, s.opts.Needle)
		if fileResult.Matched == 0 {
			result.Summary.OKFiles++
			s.opts.Logger.LogTrace(fmt.Sprintf("OK %s", entry.Path))
			continue
		}

		result.Summary.Filtered += fileResult.Filtered
		result.Annotations = append(result.Annotations, fileResult.Annotations...)
		s.opts.Logger.LogDebug(fmt.Sprintf("%s: %d annotation(s), %d filtered", entry.Path, len(fileResult.Annotations), fileResult.Filtered))
	}

	s.opts.Logger.LogDebug(fmt.Sprintf("Scanned %d entries under %s", result.Summary.FilesScanned, root))
	return result, nil
}
