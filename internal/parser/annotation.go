package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/harrison/todos/internal/models"
)

// Default comment tokens recognized in front of a marker.
var (
	DefaultCommentTokens = []string{"//", "<!--"}
	DefaultCloseToken    = "-->"
)

// Options configures the comment syntax the parser probes for.
type Options struct {
	// CommentTokens open a line comment or block comment. Empty means
	// DefaultCommentTokens.
	CommentTokens []string
	// CloseToken is stripped from the end of a message. Empty means
	// DefaultCloseToken.
	CloseToken string
}

// Parser detects annotation markers line by line. It holds no per-scan state
// and can be reused across files.
type Parser struct {
	openers []string // longest first
	closer  string
}

// FileResult is the outcome of extracting annotations from one file.
type FileResult struct {
	Annotations []models.Annotation
	Matched     int // marker lines found, before the needle filter
	Filtered    int // marker lines dropped by the needle filter
}

// New creates a Parser for the given comment syntax.
func New(opts Options) *Parser {
	tokens := opts.CommentTokens
	if len(tokens) == 0 {
		tokens = DefaultCommentTokens
	}

	openers := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			openers = append(openers, tok)
		}
	}
	sort.SliceStable(openers, func(i, j int) bool {
		return len(openers[i]) > len(openers[j])
	})

	closer := opts.CloseToken
	if closer == "" {
		closer = DefaultCloseToken
	}

	return &Parser{openers: openers, closer: closer}
}

// NewDefault creates a Parser for "//" and "<!-- -->" comments.
func NewDefault() *Parser {
	return New(Options{})
}

// HasComments reports whether content contains any comment-open token. A file
// without one cannot hold an annotation.
func (p *Parser) HasComments(content string) bool {
	for _, tok := range p.openers {
		if strings.Contains(content, tok) {
			return true
		}
	}
	return false
}

// Extract returns the annotations found in content, in line order. When
// needle is non-empty, a marker line that does not contain it literally is
// counted in Filtered and dropped.
func (p *Parser) Extract(content, path, needle string) FileResult {
	if !p.HasComments(content) {
		return FileResult{}
	}
	return p.scanLines(content, path, needle)
}

func (p *Parser) scanLines(content, path, needle string) FileResult {
	var result FileResult

	index := 0
	for line := range strings.Lines(content) {
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		annotation, ok := p.ParseLine(line, index, path)
		index++
		if !ok {
			continue
		}

		result.Matched++
		if needle != "" && !strings.Contains(line, needle) {
			result.Filtered++
			continue
		}
		result.Annotations = append(result.Annotations, annotation)
	}

	return result
}

// ParseLine probes a single line for a marker. index is the 0-based line
// index; the returned annotation carries index+1. The probe never fails: any
// line that does not have the shape
//
//	<spaces><comment token>[ ]<TODO|FIX|WARNING|NOTE><non-letters><message>
//
// yields false.
//
// Column is the 1-based column of the marker token, counted in characters.
func (p *Parser) ParseLine(line string, index int, path string) (models.Annotation, bool) {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	column := utf8.RuneCountInString(line[:len(line)-len(rest)])

	opener, ok := p.matchOpener(rest)
	if !ok {
		return models.Annotation{}, false
	}
	rest = rest[len(opener):]
	column += utf8.RuneCountInString(opener)

	if strings.HasPrefix(rest, " ") {
		rest = rest[1:]
		column++
	}

	kind, token, ok := matchKind(rest)
	if !ok {
		return models.Annotation{}, false
	}
	rest = rest[len(token):]

	// At least one separator must follow the token, so FIXME or NOTES do
	// not count, and there must be a message after it.
	start := strings.IndexFunc(rest, unicode.IsLetter)
	if start <= 0 {
		return models.Annotation{}, false
	}

	return models.Annotation{
		FilePath: path,
		Line:     index + 1,
		Column:   column + 1,
		Message:  p.cleanMessage(rest[start:]),
		Kind:     kind,
	}, true
}

func (p *Parser) matchOpener(s string) (string, bool) {
	for _, tok := range p.openers {
		if strings.HasPrefix(s, tok) {
			return tok, true
		}
	}
	return "", false
}

// matchKind tries the marker tokens in order; the first prefix match wins.
func matchKind(s string) (models.AnnotationKind, string, bool) {
	for _, kind := range models.AnnotationKinds {
		token := kind.String()
		if strings.HasPrefix(s, token) {
			return kind, token, true
		}
	}
	return 0, "", false
}

func (p *Parser) cleanMessage(raw string) string {
	msg := strings.TrimSpace(raw)
	msg = strings.TrimSuffix(msg, p.closer)
	return strings.TrimSpace(msg)
}
