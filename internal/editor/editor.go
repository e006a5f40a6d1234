// Package editor opens a file at an annotation's line and column in the
// user's editor.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/harrison/todos/internal/models"
)

// EnvEditor names the environment variable consulted for the editor.
const EnvEditor = "EDITOR"

// DefaultEditor is used when neither config nor $EDITOR name one.
const DefaultEditor = "vim"

// CommandRunner runs an editor process (injectable for tests)
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string) error
}

// execRunner runs the editor attached to the current terminal.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Launcher opens annotations in an editor.
type Launcher struct {
	// Command is the editor command line, e.g. "nvim" or "code -r"
	Command string
	// Runner executes the editor (optional, uses os/exec if nil)
	Runner CommandRunner
}

// Resolve picks the editor command: the configured one, then $EDITOR, then
// DefaultEditor.
func Resolve(configured string) string {
	if c := strings.TrimSpace(configured); c != "" {
		return c
	}
	if env := strings.TrimSpace(os.Getenv(EnvEditor)); env != "" {
		return env
	}
	return DefaultEditor
}

// NewLauncher creates a Launcher for the resolved editor command.
func NewLauncher(configured string) *Launcher {
	return &Launcher{Command: Resolve(configured)}
}

// Args builds the arguments that place the cursor on the annotation. The
// second return is false when the editor has no known jump syntax; the
// arguments then only open the file.
func Args(editorName string, a models.Annotation) ([]string, bool) {
	switch filepath.Base(editorName) {
	case "vim", "nvim", "vi", "gvim", "mvim":
		return []string{a.FilePath, fmt.Sprintf("+call cursor(%d, %d)", a.Line, a.Column)}, true
	case "code", "code-insiders", "codium", "cursor":
		return []string{"--goto", fmt.Sprintf("%s:%d:%d", relativeTarget(a.FilePath), a.Line, a.Column)}, true
	case "subl", "zed", "hx":
		return []string{fmt.Sprintf("%s:%d:%d", a.FilePath, a.Line, a.Column)}, true
	case "emacs", "emacsclient":
		return []string{fmt.Sprintf("+%d:%d", a.Line, a.Column), a.FilePath}, true
	case "nano":
		return []string{fmt.Sprintf("+%d,%d", a.Line, a.Column), a.FilePath}, true
	default:
		return []string{a.FilePath}, false
	}
}

// relativeTarget makes relative paths explicit for editors that would
// otherwise read "src/a.ts:1:2" as a URI.
func relativeTarget(path string) string {
	if filepath.IsAbs(path) || strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") {
		return path
	}
	return "./" + path
}

// Open launches the editor on the annotation. It returns whether the editor
// supports jumping to the location; an unsupported editor still opens the
// file.
func (l *Launcher) Open(ctx context.Context, a models.Annotation) (bool, error) {
	fields := strings.Fields(l.Command)
	if len(fields) == 0 {
		return false, fmt.Errorf("no editor configured")
	}

	name := fields[0]
	args, supported := Args(name, a)
	args = append(fields[1:len(fields):len(fields)], args...)

	runner := l.Runner
	if runner == nil {
		runner = execRunner{}
	}

	if err := runner.Run(ctx, name, args); err != nil {
		return supported, fmt.Errorf("failed to run editor %s: %w", name, err)
	}
	return supported, nil
}
