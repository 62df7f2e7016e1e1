package contract

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spiroflow/vo2peak/schema"
)

// Color variables for console output.
var (
	ReachedColor     = color.New(color.FgGreen, color.Bold)  // plateau reached, maximal test
	NotReachedColor  = color.New(color.FgYellow)             // plateau not reached
	MaximalColor     = color.New(color.FgGreen, color.Bold)  // RER confirms maximal effort
	NearMaximalColor = color.New(color.FgCyan)               // RER close to maximal
	SubmaximalColor  = color.New(color.FgYellow)             // RER below maximal range
	MissingColor     = color.New(color.FgHiBlack)            // undefined metrics
)

// GetColorPlateauLabel returns a colored plateau status for console output
// (table). It uses schema.GetPlateauLabel to determine the string, and then
// applies the appropriate color.
func GetColorPlateauLabel(plateau bool) string {
	text := schema.GetPlateauLabel(plateau)
	if plateau {
		return ReachedColor.Sprint(text)
	}
	return NotReachedColor.Sprint(text)
}

// GetColorEffortLabel returns a colored effort classification for console output.
func GetColorEffortLabel(rer *float64) string {
	text := schema.GetEffortLabel(rer)

	switch text {
	case schema.EffortMaximal:
		return MaximalColor.Sprint(text)
	case schema.EffortNearMaximal:
		return NearMaximalColor.Sprint(text)
	case schema.EffortSubmaximal:
		return SubmaximalColor.Sprint(text)
	default: // "N/A"
		return MissingColor.Sprint(text)
	}
}

// FormatOptional renders an optional metric with the given precision, or the
// "N/A" placeholder when the value is undefined.
func FormatOptional(v *float64, precision int) string {
	if v == nil {
		return schema.NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', precision, 64)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
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
