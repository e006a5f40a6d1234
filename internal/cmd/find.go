package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/todos/internal/config"
	"github.com/harrison/todos/internal/display"
	"github.com/harrison/todos/internal/editor"
	"github.com/harrison/todos/internal/fileutil"
	"github.com/harrison/todos/internal/ignore"
	"github.com/harrison/todos/internal/logger"
	"github.com/harrison/todos/internal/models"
	"github.com/harrison/todos/internal/parser"
	"github.com/harrison/todos/internal/report"
	"github.com/harrison/todos/internal/scanner"
)

// editorRunner overrides how the editor process is started (for testing)
var editorRunner editor.CommandRunner

// findOptions holds the flag values of the find command
type findOptions struct {
	open       bool
	filter     string
	extensions []string
	ignoreFile string
	ignoreOpt  bool
	configPath string
	format     string
	output     string
	logLevel   string
	keepGoing  bool
}

// NewFindCommand creates and returns the find subcommand
func NewFindCommand() *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find [path]",
		Short: "List annotated comments under a directory",
		Long: `Walk the directory (default: src) and list every TODO, FIX, WARNING
and NOTE comment found in files with an allowed extension.

Examples:
  todos find
  todos find web --filter auth
  todos find --ext go,proto --format json --output todos.json
  todos find --open`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadFindConfig(cmd, opts)
			if err != nil {
				return err
			}

			root := cfg.DefaultPath
			if len(args) == 1 {
				root = args[0]
			}

			return runFind(cmd.Context(), root, cfg, opts, findStreams{
				out:    cmd.OutOrStdout(),
				errOut: cmd.ErrOrStderr(),
				in:     bufio.NewReader(cmd.InOrStdin()),
			})
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&opts.open, "open", "o", false, "Prompt for an annotation and open it in $EDITOR")
	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "", "Only keep annotation lines containing this text")
	cmd.Flags().StringSliceVarP(&opts.extensions, "ext", "e", nil, "File extensions to scan (comma separated or repeated)")
	cmd.Flags().StringVar(&opts.ignoreFile, "ignore-file", "", "File listing paths to skip (default: .gitignore)")
	cmd.Flags().BoolVar(&opts.ignoreOpt, "ignore-optional", false, "Scan without an ignore list when the ignore file is missing")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Config file (default: .todos.yaml or $TODOS_CONFIG)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: text, json, markdown, html")
	cmd.Flags().StringVar(&opts.output, "output", "", "Write the report to this file instead of stdout")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().BoolVar(&opts.keepGoing, "keep-going", false, "Skip unreadable files instead of aborting")

	return cmd
}

// loadFindConfig loads the config file and applies the flags the user set.
func loadFindConfig(cmd *cobra.Command, opts *findOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(config.ResolvePath(opts.configPath))
	if err != nil {
		return nil, err
	}

	var extensions *[]string
	var ignoreFile, format, logLevel *string
	var ignoreOptional, keepGoing *bool

	flags := cmd.Flags()
	if flags.Changed("ext") {
		extensions = &opts.extensions
	}
	if flags.Changed("ignore-file") {
		ignoreFile = &opts.ignoreFile
	}
	if flags.Changed("ignore-optional") {
		ignoreOptional = &opts.ignoreOpt
	}
	if flags.Changed("format") {
		format = &opts.format
	}
	if flags.Changed("log-level") {
		logLevel = &opts.logLevel
	}
	if flags.Changed("keep-going") {
		keepGoing = &opts.keepGoing
	}
	cfg.MergeWithFlags(extensions, ignoreFile, ignoreOptional, format, logLevel, keepGoing)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// findStreams carries the command's input and output
type findStreams struct {
	out    io.Writer
	errOut io.Writer
	in     display.MenuReader
}

// runFind scans root and presents the result as configured.
func runFind(ctx context.Context, root string, cfg *config.Config, opts *findOptions, streams findStreams) error {
	log := logger.NewConsoleLogger(streams.errOut, cfg.LogLevel)

	loadIgnore := ignore.Load
	if cfg.IgnoreOptional {
		loadIgnore = ignore.LoadOptional
	}
	ignoreList, err := loadIgnore(cfg.IgnoreFile)
	if err != nil {
		return err
	}
	log.LogDebug(fmt.Sprintf("Loaded %d ignore entries from %s", ignoreList.Len(), cfg.IgnoreFile))
	if ignoreList.Len() > 0 {
		log.LogTrace("Ignoring: " + strings.Join(ignoreList.Paths(), ", "))
	}

	sc := scanner.New(scanner.Options{
		Walk: fileutil.WalkOptions{
			Extensions: cfg.Extensions,
			Ignore:     ignoreList,
		},
		Parser: parser.New(parser.Options{
			CommentTokens: cfg.CommentTokens,
			CloseToken:    cfg.CloseToken,
		}),
		Needle:          opts.filter,
		ContinueOnError: cfg.ContinueOnError,
		Logger:          log,
	})

	log.LogScanStart(root)
	start := time.Now()
	result, err := sc.Scan(root)
	if err != nil {
		return err
	}
	log.LogScanComplete(result, time.Since(start))

	if len(result.Skipped) > 0 {
		display.Warning{
			Title:      "Skipped unreadable files",
			Message:    "Annotations in these files are not listed",
			Files:      result.Skipped,
			Suggestion: "Fix the file permissions or drop --keep-going to fail on the first one",
		}.Display(streams.errOut, isTerminal(streams.errOut))
	}

	colorOutput := isTerminal(streams.out)

	if opts.open {
		return openAnnotation(ctx, result, cfg, streams, colorOutput)
	}

	if cfg.Format == config.FormatText && opts.output == "" {
		printer := display.NewPrinter(streams.out, colorOutput)
		printer.PrintAnnotations(result.Annotations, false)
		printer.PrintSummary(result)
		return nil
	}

	data, err := report.New(result, opts.filter).Render(cfg.Format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := streams.out.Write(data)
		return err
	}

	if err := report.WriteFile(opts.output, data); err != nil {
		return err
	}
	log.LogInfo(fmt.Sprintf("Wrote %s report to %s", cfg.Format, opts.output))
	return nil
}

// openAnnotation lists the annotations with their index, asks for one and
// opens it in the editor.
func openAnnotation(ctx context.Context, result *models.ScanResult, cfg *config.Config, streams findStreams, colorOutput bool) error {
	printer := display.NewPrinter(streams.out, colorOutput)
	printer.PrintAnnotations(result.Annotations, true)
	printer.PrintSummary(result)

	if len(result.Annotations) == 0 {
		display.Warning{
			Title:   "No annotations to open",
			Message: fmt.Sprintf("Nothing was found under %s", result.Root),
		}.Display(streams.errOut, isTerminal(streams.errOut))
		return nil
	}

	fmt.Fprintln(streams.out)
	index, err := display.PromptSelection(streams.in, streams.out, len(result.Annotations), colorOutput)
	if errors.Is(err, display.ErrSelectionCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	selected := result.Annotations[index]
	launcher := editor.NewLauncher(cfg.Editor)
	if editorRunner != nil {
		launcher.Runner = editorRunner
	}

	supported, err := launcher.Open(ctx, selected)
	if err != nil {
		return err
	}
	if !supported {
		display.Warning{
			Title:      fmt.Sprintf("Editor %q cannot jump to a location", launcher.Command),
			Message:    fmt.Sprintf("Opened %s without moving the cursor to %d:%d", selected.FilePath, selected.Line, selected.Column),
			Suggestion: "Set $EDITOR to vim, nvim or code to land on the annotation",
		}.Display(streams.errOut, isTerminal(streams.errOut))
	}
	return nil
}

// isTerminal reports whether w is a terminal that should receive colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
