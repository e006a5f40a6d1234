// Package config loads todos settings from an optional YAML file and merges
// command-line flags over them.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/todos/internal/fileutil"
	"github.com/harrison/todos/internal/ignore"
	"github.com/harrison/todos/internal/parser"
)

// DefaultFile is the config file read from the working directory.
const DefaultFile = ".todos.yaml"

// EnvConfigPath overrides DefaultFile when set.
const EnvConfigPath = "TODOS_CONFIG"

// Output formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

var validFormats = []string{FormatText, FormatJSON, FormatMarkdown, FormatHTML}

// Config represents todos configuration options
type Config struct {
	// DefaultPath is scanned when no path argument is given
	DefaultPath string `yaml:"default_path"`

	// Extensions is the file extension allow-list (case-sensitive, no dot needed)
	Extensions []string `yaml:"extensions"`

	// IgnoreFile is the flat ignore list, one path per line
	IgnoreFile string `yaml:"ignore_file"`

	// IgnoreOptional treats a missing ignore file as an empty list instead of
	// failing the scan
	IgnoreOptional bool `yaml:"ignore_optional"`

	// CommentTokens open a comment in front of a marker
	CommentTokens []string `yaml:"comment_tokens"`

	// CloseToken is stripped from the end of messages
	CloseToken string `yaml:"close_token"`

	// Editor opens a selected annotation; empty falls back to $EDITOR, then vim
	Editor string `yaml:"editor"`

	// Format is the report format (text, json, markdown, html)
	Format string `yaml:"format"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// ContinueOnError skips unreadable files instead of aborting
	ContinueOnError bool `yaml:"continue_on_error"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		DefaultPath:     "src",
		Extensions:      slices.Clone(fileutil.DefaultExtensions),
		IgnoreFile:      ignore.DefaultFile,
		CommentTokens:   slices.Clone(parser.DefaultCommentTokens),
		CloseToken:      parser.DefaultCloseToken,
		Editor:          "",
		Format:          FormatText,
		LogLevel:        "warn",
		ContinueOnError: false,
	}
}

// ResolvePath picks the config file: the explicit path if given, then
// $TODOS_CONFIG, then DefaultFile.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultFile
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.DefaultPath != "" {
		cfg.DefaultPath = fileCfg.DefaultPath
	}
	if len(fileCfg.Extensions) > 0 {
		cfg.Extensions = fileCfg.Extensions
	}
	if fileCfg.IgnoreFile != "" {
		cfg.IgnoreFile = fileCfg.IgnoreFile
	}
	if fileCfg.IgnoreOptional {
		cfg.IgnoreOptional = true
	}
	if len(fileCfg.CommentTokens) > 0 {
		cfg.CommentTokens = fileCfg.CommentTokens
	}
	if fileCfg.CloseToken != "" {
		cfg.CloseToken = fileCfg.CloseToken
	}
	if fileCfg.Editor != "" {
		cfg.Editor = fileCfg.Editor
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	// ContinueOnError is explicitly set if present in YAML
	if fileCfg.ContinueOnError {
		cfg.ContinueOnError = true
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(extensions *[]string, ignoreFile *string, ignoreOptional *bool, format *string, logLevel *string, continueOnError *bool) {
	if extensions != nil {
		c.Extensions = splitList(*extensions)
	}
	if ignoreFile != nil {
		c.IgnoreFile = *ignoreFile
	}
	if ignoreOptional != nil {
		c.IgnoreOptional = *ignoreOptional
	}
	if format != nil {
		c.Format = *format
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if continueOnError != nil {
		c.ContinueOnError = *continueOnError
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if !slices.Contains(validFormats, c.Format) {
		return fmt.Errorf("invalid format %q, must be one of: %s", c.Format, strings.Join(validFormats, ", "))
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions cannot be empty")
	}
	for _, ext := range c.Extensions {
		if strings.TrimPrefix(strings.TrimSpace(ext), ".") == "" {
			return fmt.Errorf("extensions cannot contain an empty entry")
		}
	}

	if len(c.CommentTokens) == 0 {
		return fmt.Errorf("comment_tokens cannot be empty")
	}
	for _, tok := range c.CommentTokens {
		if strings.TrimSpace(tok) == "" {
			return fmt.Errorf("comment_tokens cannot contain an empty entry")
		}
	}

	return nil
}

// splitList flattens comma separated flag values and drops blanks.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
