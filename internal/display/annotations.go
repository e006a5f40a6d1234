package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harrison/todos/internal/models"
)

// Printer writes annotations and summaries to a writer. Colors are used only
// when colorOutput is set, regardless of what fatih/color detects for the
// process, so output written to files stays plain.
type Printer struct {
	out         io.Writer
	colorOutput bool
}

// NewPrinter creates a Printer.
func NewPrinter(out io.Writer, colorOutput bool) *Printer {
	return &Printer{out: out, colorOutput: colorOutput}
}

// badgeColors follows the marker severity: blue for TODO, red for FIX,
// yellow for WARNING, green for NOTE.
var badgeColors = map[models.AnnotationKind][]color.Attribute{
	models.KindTodo:    {color.BgHiBlue, color.FgBlack},
	models.KindFix:     {color.BgHiRed, color.FgBlack},
	models.KindWarning: {color.BgHiYellow, color.FgBlack},
	models.KindNote:    {color.BgHiGreen, color.FgBlack},
}

func (p *Printer) paint(s string, attrs ...color.Attribute) string {
	if !p.colorOutput {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

// Badge renders the kind padded with one space on each side.
func (p *Printer) Badge(kind models.AnnotationKind) string {
	return p.paint(" "+kind.String()+" ", badgeColors[kind]...)
}

// FormatAnnotation renders "<badge> <message> [path:line:column]".
func (p *Printer) FormatAnnotation(a models.Annotation) string {
	location := p.paint("["+a.Location()+"]", color.FgHiBlack)
	return fmt.Sprintf("%s %s %s", p.Badge(a.Kind), a.Message, location)
}

// PrintAnnotations writes one line per annotation, prefixed with its 0-based
// index when indexed is set.
func (p *Printer) PrintAnnotations(annotations []models.Annotation, indexed bool) {
	for i, a := range annotations {
		if indexed {
			fmt.Fprintf(p.out, "%s %s\n", p.paint(fmt.Sprint(i), color.Bold), p.FormatAnnotation(a))
			continue
		}
		fmt.Fprintln(p.out, p.FormatAnnotation(a))
	}
}

// PrintSummary writes the totals block:
//
//	Todos: 3
//	Files: 12 scanned / 4 OK / 1 filtered
func (p *Printer) PrintSummary(result *models.ScanResult) {
	sep := p.paint("/", color.FgHiBlack)
	fmt.Fprintf(p.out, "\n%s %s\n%s %s scanned %s %s OK %s %s filtered\n",
		p.paint("Todos:", color.Bold),
		p.paint(fmt.Sprint(len(result.Annotations)), color.FgBlue),
		p.paint("Files:", color.Bold),
		p.paint(fmt.Sprint(result.Summary.FilesScanned), color.FgYellow),
		sep,
		p.paint(fmt.Sprint(result.Summary.OKFiles), color.FgGreen),
		sep,
		p.paint(fmt.Sprint(result.Summary.Filtered), color.FgRed),
	)
}
