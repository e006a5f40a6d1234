package display

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrSelectionCancelled is returned when the user quits the prompt.
var ErrSelectionCancelled = errors.New("selection cancelled")

// MenuReader defines interface for reading user input (for testing)
type MenuReader interface {
	ReadString(delim byte) (string, error)
}

// PromptSelection asks for an annotation index in [0, count) and returns it.
// Entering q cancels with ErrSelectionCancelled.
func PromptSelection(reader MenuReader, out io.Writer, count int, colorOutput bool) (int, error) {
	if count == 0 {
		return 0, fmt.Errorf("nothing to select")
	}

	prompt := fmt.Sprintf("Open file # (0-%d, q to quit): ", count-1)
	if colorOutput {
		cyan := color.New(color.FgCyan)
		cyan.EnableColor()
		prompt = cyan.Sprint(prompt)
	}
	fmt.Fprint(out, prompt)

	input, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(strings.ToLower(input))
	if input == "q" {
		return 0, ErrSelectionCancelled
	}

	selection, err := strconv.Atoi(input)
	if err != nil || selection < 0 || selection >= count {
		return 0, fmt.Errorf("invalid selection %q: must be between 0 and %d", input, count-1)
	}

	return selection, nil
}
