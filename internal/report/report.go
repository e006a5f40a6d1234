// Package report renders a scan result in the export formats (text, JSON,
// Markdown and HTML) and writes it to disk.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/harrison/todos/internal/config"
	"github.com/harrison/todos/internal/display"
	"github.com/harrison/todos/internal/models"
)

// Report is the exported view of one scan.
type Report struct {
	RunID       string              `json:"run_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Root        string              `json:"root"`
	Needle      string              `json:"needle,omitempty"`
	Summary     models.ScanSummary  `json:"summary"`
	Counts      map[string]int      `json:"counts"`
	Annotations []models.Annotation `json:"annotations"`
}

// New builds a Report for result with a fresh run ID.
func New(result *models.ScanResult, needle string) *Report {
	counts := make(map[string]int, len(models.AnnotationKinds))
	for _, kind := range models.AnnotationKinds {
		counts[kind.String()] = 0
	}
	for kind, n := range result.CountByKind() {
		counts[kind.String()] = n
	}

	annotations := result.Annotations
	if annotations == nil {
		annotations = []models.Annotation{}
	}

	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Root:        result.Root,
		Needle:      needle,
		Summary:     result.Summary,
		Counts:      counts,
		Annotations: annotations,
	}
}

// Render encodes the report in the given format.
func (r *Report) Render(format string) ([]byte, error) {
	switch format {
	case config.FormatText, "":
		return r.Text(), nil
	case config.FormatJSON:
		return r.JSON()
	case config.FormatMarkdown:
		return r.Markdown(), nil
	case config.FormatHTML:
		return r.HTML()
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// Text renders the same listing the terminal shows, without colors.
func (r *Report) Text() []byte {
	var buf bytes.Buffer
	p := display.NewPrinter(&buf, false)
	p.PrintAnnotations(r.Annotations, false)
	p.PrintSummary(&models.ScanResult{Annotations: r.Annotations, Summary: r.Summary})
	return buf.Bytes()
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return append(data, '\n'), nil
}

// Markdown renders a heading, a table of annotations and the summary.
func (r *Report) Markdown() []byte {
	var sb strings.Builder

	sb.WriteString("# Annotations\n\n")
	fmt.Fprintf(&sb, "- Root: `%s`\n", r.Root)
	if r.Needle != "" {
		fmt.Fprintf(&sb, "- Filter: `%s`\n", r.Needle)
	}
	fmt.Fprintf(&sb, "- Run: `%s`\n", r.RunID)
	fmt.Fprintf(&sb, "- Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339))

	if len(r.Annotations) == 0 {
		sb.WriteString("No annotations found.\n\n")
	} else {
		sb.WriteString("| Kind | Message | Location |\n")
		sb.WriteString("|------|---------|----------|\n")
		for _, a := range r.Annotations {
			fmt.Fprintf(&sb, "| %s | %s | `%s` |\n", a.Kind, escapeCell(a.Message), a.Location())
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Summary\n\n")
	for _, kind := range models.AnnotationKinds {
		fmt.Fprintf(&sb, "- %s: %d\n", kind, r.Counts[kind.String()])
	}
	fmt.Fprintf(&sb, "\n**Todos:** %d, **Files:** %d scanned / %d OK / %d filtered\n",
		len(r.Annotations), r.Summary.FilesScanned, r.Summary.OKFiles, r.Summary.Filtered)

	return []byte(sb.String())
}

// HTML converts the Markdown rendering into a standalone HTML page.
func (r *Report) HTML() ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert(r.Markdown(), &body); err != nil {
		return nil, fmt.Errorf("failed to render html report: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Annotations</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// escapeCell keeps a message inside its table cell and shows markup literally.
func escapeCell(s string) string {
	r := strings.NewReplacer("|", `\|`, "<", "&lt;", ">", "&gt;", "`", "\\`")
	return r.Replace(s)
}
