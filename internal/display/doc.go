// Package display renders scan results for the terminal.
//
// # Annotations
//
// Each annotation is one line: a colored kind badge, the message and a dim
// location that editors and terminals can follow, for example the TODO badge
// followed by "wire up router [src/app.ts:2:4]".
//
// In open mode every line is prefixed with its index so it can be picked
// from the selection prompt:
//
//	p := display.NewPrinter(os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
//	p.PrintAnnotations(result.Annotations, true)
//	p.PrintSummary(result)
//
// # Warnings
//
// Warnings carry an optional message, related files and a suggestion:
//
//	warning := display.Warning{
//	    Title:      "No annotations to open",
//	    Suggestion: "Drop --filter or scan another directory",
//	}
//	warning.Display(os.Stderr, true)
//
// # Selection
//
// PromptSelection reads an annotation index from a MenuReader, which tests
// replace with a strings.Reader wrapped in bufio.
package display
