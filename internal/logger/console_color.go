package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/todos/internal/models"
)

// colorScheme defines consistent colors for different metric types.
// Green: OK files
// Red: filtered lines
// Yellow: scanned entries
// Cyan: labels
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
}

// newColorScheme creates the standard color scheme for metrics.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgBlue),
	}
}

// formatColorizedMetric formats a single metric as "label: value" with the
// label in cyan and the value in the given color.
func formatColorizedMetric(label string, value interface{}, valueColor *color.Color, scheme *colorScheme) string {
	return fmt.Sprintf("%s: %s", scheme.label.Sprint(label), valueColor.Sprintf("%v", value))
}

// formatColorizedScanMetrics formats the scan counters with color coding.
// Colors are automatically disabled when output is not a TTY via fatih/color's built-in detection.
func formatColorizedScanMetrics(result *models.ScanResult) string {
	scheme := newColorScheme()
	parts := []string{
		formatColorizedMetric("annotations", len(result.Annotations), scheme.value, scheme),
		formatColorizedMetric("scanned", result.Summary.FilesScanned, scheme.warn, scheme),
		formatColorizedMetric("ok", result.Summary.OKFiles, scheme.success, scheme),
	}
	if result.Summary.Filtered > 0 {
		parts = append(parts, formatColorizedMetric("filtered", result.Summary.Filtered, scheme.fail, scheme))
	} else {
		parts = append(parts, formatColorizedMetric("filtered", 0, scheme.value, scheme))
	}
	return strings.Join(parts, ", ")
}

// formatScanMetrics is the plain-text counterpart of formatColorizedScanMetrics.
func formatScanMetrics(result *models.ScanResult) string {
	return fmt.Sprintf("annotations: %d, scanned: %d, ok: %d, filtered: %d",
		len(result.Annotations),
		result.Summary.FilesScanned,
		result.Summary.OKFiles,
		result.Summary.Filtered,
	)
}
