package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/harrison/todos/internal/models"
)

func TestParseLine_CommentStyles(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantKind   models.AnnotationKind
		wantColumn int
	}{
		{"line comment", "// TODO: x", models.KindTodo, 4},
		{"line comment without space", "//TODO: x", models.KindTodo, 3},
		{"html comment", "<!-- TODO: x -->", models.KindTodo, 6},
		{"html comment without spaces", "<!--TODO: x-->", models.KindTodo, 5},
		{"fix", "// FIX: x", models.KindFix, 4},
		{"warning", "// WARNING: x", models.KindWarning, 4},
		{"note", "<!-- NOTE: x -->", models.KindNote, 6},
		{"tab indented", "\t\t// NOTE: x", models.KindNote, 6},
	}

	p := NewDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ParseLine(tt.line, 0, "test.ts")
			if !ok {
				t.Fatalf("ParseLine(%q) found no annotation", tt.line)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Message != "x" {
				t.Errorf("Message = %q, want %q", got.Message, "x")
			}
			if got.Line != 1 {
				t.Errorf("Line = %d, want 1", got.Line)
			}
			if got.Column != tt.wantColumn {
				t.Errorf("Column = %d, want %d", got.Column, tt.wantColumn)
			}
			if got.FilePath != "test.ts" {
				t.Errorf("FilePath = %q, want %q", got.FilePath, "test.ts")
			}
		})
	}
}

func TestParseLine_Examples(t *testing.T) {
	tests := []struct {
		name string
		line string
		idx  int
		want models.Annotation
	}{
		{
			name: "indented line comment",
			line: "  // TODO: This is a todo",
			want: models.Annotation{Line: 1, Column: 6, Message: "This is a todo", Kind: models.KindTodo},
		},
		{
			name: "arrow separator",
			line: "  // TODO -> This is a todo",
			want: models.Annotation{Line: 1, Column: 6, Message: "This is a todo", Kind: models.KindTodo},
		},
		{
			name: "no space after comment token",
			line: "//TODO: This is a todo",
			want: models.Annotation{Line: 1, Column: 3, Message: "This is a todo", Kind: models.KindTodo},
		},
		{
			name: "closing tag removed",
			line: "<!-- TODO: This is a todo -->",
			want: models.Annotation{Line: 1, Column: 6, Message: "This is a todo", Kind: models.KindTodo},
		},
		{
			name: "line index is reported 1-based",
			line: "    // FIX: off by one",
			idx:  41,
			want: models.Annotation{Line: 42, Column: 8, Message: "off by one", Kind: models.KindFix},
		},
		{
			name: "separator skips digits and punctuation",
			line: "// NOTE: 42 items max",
			want: models.Annotation{Line: 1, Column: 4, Message: "items max", Kind: models.KindNote},
		},
		{
			name: "message keeps inner text",
			line: "// WARNING: don't use `eval` here // really",
			want: models.Annotation{Line: 1, Column: 4, Message: "don't use `eval` here // really", Kind: models.KindWarning},
		},
		{
			name: "column counts characters not bytes",
			line: "\u00a0// TODO: nbsp indent",
			want: models.Annotation{Line: 1, Column: 5, Message: "nbsp indent", Kind: models.KindTodo},
		},
	}

	p := NewDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ParseLine(tt.line, tt.idx, "")
			if !ok {
				t.Fatalf("ParseLine(%q) found no annotation", tt.line)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLine_NoMatch(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"const x = 1",
		"TODO: not a comment",
		"// HACK: something",
		"// todo: lowercase",
		"// FIXME: longer token",
		"// NOTES: plural",
		"// TODO",
		"// TODO:",
		"// TODO: 123",
		"//  TODO: two spaces",
		"/// TODO: triple slash",
		"# TODO: hash comment",
		"/* TODO: block comment */",
		"const x = 1 // TODO: trailing comment",
		"<!-- -->",
		"//",
	}

	p := NewDefault()
	for _, line := range lines {
		if got, ok := p.ParseLine(line, 0, "test.ts"); ok {
			t.Errorf("ParseLine(%q) = %+v, want no annotation", line, got)
		}
	}
}

func TestNew_CustomTokens(t *testing.T) {
	p := New(Options{CommentTokens: []string{"#", "--", " "}, CloseToken: "*/"})

	got, ok := p.ParseLine("  # TODO: shell style */", 0, "run.sh")
	if !ok {
		t.Fatal("ParseLine() found no annotation with custom token")
	}
	if got.Column != 5 || got.Message != "shell style" {
		t.Errorf("ParseLine() = %+v", got)
	}

	if _, ok := p.ParseLine("// TODO: default token", 0, "x"); ok {
		t.Error("ParseLine() matched a token that was not configured")
	}
}

func TestNew_PrefersLongestToken(t *testing.T) {
	p := New(Options{CommentTokens: []string{"/", "//"}})

	got, ok := p.ParseLine("// TODO: slash", 0, "")
	if !ok {
		t.Fatal("ParseLine() found no annotation")
	}
	if got.Column != 4 {
		t.Errorf("Column = %d, want 4", got.Column)
	}
}

func TestHasComments(t *testing.T) {
	p := NewDefault()

	tests := []struct {
		content string
		want    bool
	}{
		{"const a = 1;\n", false},
		{"", false},
		{"/* block only */", false},
		{"a // b", true},
		{"<div><!-- c --></div>", true},
		{"http://example.com", true},
	}

	for _, tt := range tests {
		if got := p.HasComments(tt.content); got != tt.want {
			t.Errorf("HasComments(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestExtract(t *testing.T) {
	content := strings.Join([]string{
		"import x from 'y'",
		"// TODO: first",
		"  // HACK: ignored",
		"function f() { // FIX: trailing comments are not probed",
		"\t// FIX: second",
		"<!-- NOTE: third -->",
		"",
	}, "\r\n")

	p := NewDefault()
	got := p.Extract(content, "src/a.vue", "")

	want := []models.Annotation{
		{FilePath: "src/a.vue", Line: 2, Column: 4, Message: "first", Kind: models.KindTodo},
		{FilePath: "src/a.vue", Line: 5, Column: 5, Message: "second", Kind: models.KindFix},
		{FilePath: "src/a.vue", Line: 6, Column: 6, Message: "third", Kind: models.KindNote},
	}
	if !reflect.DeepEqual(got.Annotations, want) {
		t.Errorf("Extract() annotations = %+v, want %+v", got.Annotations, want)
	}
	if got.Matched != 3 || got.Filtered != 0 {
		t.Errorf("Extract() matched = %d filtered = %d, want 3 and 0", got.Matched, got.Filtered)
	}
}

func TestExtract_Needle(t *testing.T) {
	content := "// TODO: refactor parser\n// TODO: add tests\n// NOTE: parser is slow\n"

	p := NewDefault()
	got := p.Extract(content, "a.ts", "parser")

	if len(got.Annotations) != 2 {
		t.Fatalf("Extract() returned %d annotations, want 2", len(got.Annotations))
	}
	if got.Annotations[0].Message != "refactor parser" || got.Annotations[1].Message != "parser is slow" {
		t.Errorf("Extract() = %+v", got.Annotations)
	}
	if got.Matched != 3 {
		t.Errorf("Matched = %d, want 3", got.Matched)
	}
	if got.Filtered != 1 {
		t.Errorf("Filtered = %d, want 1", got.Filtered)
	}

	// The needle is a case-sensitive literal
	got = p.Extract(content, "a.ts", "Parser")
	if len(got.Annotations) != 0 || got.Filtered != 3 {
		t.Errorf("Extract() with case-mismatched needle = %+v", got)
	}

	// The needle matches against the raw line, marker included
	got = p.Extract(content, "a.ts", "NOTE:")
	if len(got.Annotations) != 1 || got.Annotations[0].Kind != models.KindNote {
		t.Errorf("Extract() with marker needle = %+v", got.Annotations)
	}
}

func TestExtract_FastPathAgreesWithFullScan(t *testing.T) {
	inputs := []string{
		"",
		"plain text\nno comments here\n",
		"TODO: bare marker\nFIX: another\n",
		"/* TODO: block */\n# NOTE: hash\n",
		"<template>\n  <div>TODO: not a comment</div>\n</template>\n",
	}

	p := NewDefault()
	for _, content := range inputs {
		if p.HasComments(content) {
			t.Fatalf("HasComments(%q) = true, test input must not contain comment tokens", content)
		}

		fast := p.Extract(content, "f.html", "")
		full := p.scanLines(content, "f.html", "")
		if !reflect.DeepEqual(fast, full) {
			t.Errorf("fast path %+v != full scan %+v for %q", fast, full, content)
		}
		if len(full.Annotations) != 0 || full.Matched != 0 {
			t.Errorf("full scan found annotations in %q: %+v", content, full)
		}
	}
}

func TestExtract_MarkerAtLastLineWithoutNewline(t *testing.T) {
	got := NewDefault().Extract("a\nb\n// WARNING: eof", "x.js", "")
	if len(got.Annotations) != 1 || got.Annotations[0].Line != 3 {
		t.Errorf("Extract() = %+v", got.Annotations)
	}
}
