package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for todos
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos",
		Short: "Find TODO, FIX, WARNING and NOTE comments in a source tree",
		Long: `todos walks a source tree and lists every annotated comment
(TODO, FIX, WARNING, NOTE) with its file, line and column.

Entries named in the ignore file are skipped, results can be narrowed
with a substring filter, and any annotation can be opened in your editor
with the cursor on the marker.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewFindCommand())

	return cmd
}
