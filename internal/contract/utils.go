package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/transitlab/transitscope/schema"
)

// Completeness label constants.
const (
	CompleteValue = "Complete" // Nearly every profile field resolved
	PartialValue  = "Partial"  // Most profile fields resolved
	SparseValue   = "Sparse"   // Few profile fields resolved
	MinimalValue  = "Minimal"  // Almost nothing resolved
)

// Color variables for console output.
var (
	CompleteColor = color.New(color.FgGreen, color.Bold) // completeColor signals solid catalog coverage.
	PartialColor  = color.New(color.FgCyan)              // partialColor signals usable coverage.
	SparseColor   = color.New(color.FgYellow)            // sparseColor signals thin coverage.
	MinimalColor  = color.New(color.FgRed)               // minimalColor signals a near-empty profile.
)

// GetColorLabel returns a colored completeness label for console output (table).
// It uses schema.GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(completeness float64) string {
	text := schema.GetPlainLabel(completeness)

	switch text {
	case CompleteValue:
		return CompleteColor.Sprint(text)
	case PartialValue:
		return PartialColor.Sprint(text)
	case SparseValue:
		return SparseColor.Sprint(text)
	default: // "Minimal"
		return MinimalColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateText truncates text to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and
// at least one character of content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogLookupHeader prints a concise, 2-line header for catalog lookups.
func LogLookupHeader(cfg *Config) {
	if cfg.UseEmojis {
		fmt.Printf("🔎 System: %s\n", cfg.Identifier)
		fmt.Printf("📚 Sources: %s\n", sourceList())
	} else {
		fmt.Printf("System: %s\n", cfg.Identifier)
		fmt.Printf("Sources: %s\n", sourceList())
	}
}

// LogGenerateHeader prints a header for signal generation commands.
func LogGenerateHeader(cfg *Config) {
	if cfg.UseEmojis {
		fmt.Printf("📡 System: %s\n", cfg.Identifier)
		fmt.Printf("📅 Window: %.1f days (%d samples)\n", cfg.Generation.WindowDays, cfg.Generation.CurveSamples)
	} else {
		fmt.Printf("System: %s\n", cfg.Identifier)
		fmt.Printf("Window: %.1f days (%d samples)\n", cfg.Generation.WindowDays, cfg.Generation.CurveSamples)
	}
}

// LogFitHeader prints a header for the parameter search.
func LogFitHeader(cfg *Config) {
	if cfg.UseEmojis {
		fmt.Printf("📐 System: %s\n", cfg.Identifier)
		fmt.Printf("📊 Search: %d iterations (%d explore)\n", cfg.Optimizer.Iterations, cfg.Optimizer.ExploreIterations)
	} else {
		fmt.Printf("System: %s\n", cfg.Identifier)
		fmt.Printf("Search: %d iterations (%d explore)\n", cfg.Optimizer.Iterations, cfg.Optimizer.ExploreIterations)
	}
}

// LogBatchHeader prints a header for batch analysis runs.
func LogBatchHeader(cfg *Config, systems int) {
	if cfg.UseEmojis {
		fmt.Printf("🔭 Batch: %d systems (%d workers)\n", systems, cfg.Workers)
		fmt.Printf("📈 Ranking: top %d by fit score\n", cfg.ResultLimit)
	} else {
		fmt.Printf("Batch: %d systems (%d workers)\n", systems, cfg.Workers)
		fmt.Printf("Ranking: top %d by fit score\n", cfg.ResultLimit)
	}
}

// sourceList renders the fixed source order for lookup headers.
func sourceList() string {
	names := make([]string, len(schema.AllFetchSources))
	for i, s := range schema.AllFetchSources {
		names[i] = string(s)
	}
	return strings.Join(names, " → ")
}
