package models

import "fmt"

// AnnotationKind identifies which marker an annotation was written with.
type AnnotationKind int

// Annotation kinds, in the order they are probed for.
const (
	KindTodo AnnotationKind = iota
	KindFix
	KindWarning
	KindNote
)

// AnnotationKinds lists every recognized kind in probe order.
var AnnotationKinds = []AnnotationKind{KindTodo, KindFix, KindWarning, KindNote}

// String returns the literal marker token for the kind.
func (k AnnotationKind) String() string {
	switch k {
	case KindTodo:
		return "TODO"
	case KindFix:
		return "FIX"
	case KindWarning:
		return "WARNING"
	case KindNote:
		return "NOTE"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the kind as its marker token.
func (k AnnotationKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid annotation kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a marker token produced by MarshalText.
func (k *AnnotationKind) UnmarshalText(text []byte) error {
	kind, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown annotation kind %q", text)
	}
	*k = kind
	return nil
}

// Valid reports whether k is one of the four recognized kinds.
func (k AnnotationKind) Valid() bool {
	return k >= KindTodo && k <= KindNote
}

// ParseKind matches token exactly (case-sensitive) against the marker tokens.
// Anything else yields false.
func ParseKind(token string) (AnnotationKind, bool) {
	switch token {
	case "TODO":
		return KindTodo, true
	case "FIX":
		return KindFix, true
	case "WARNING":
		return KindWarning, true
	case "NOTE":
		return KindNote, true
	default:
		return 0, false
	}
}

// Annotation is a single marker occurrence found in a scanned file.
type Annotation struct {
	FilePath string         `json:"file_path"` // Path as produced by traversal
	Line     int            `json:"line"`      // 1-based line number
	Column   int            `json:"column"`    // 1-based column of the marker token
	Message  string         `json:"message"`   // Trimmed text after the marker
	Kind     AnnotationKind `json:"kind"`
}

// Location formats the annotation position as path:line:column.
func (a Annotation) Location() string {
	return fmt.Sprintf("%s:%d:%d", a.FilePath, a.Line, a.Column)
}
