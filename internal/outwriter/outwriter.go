// Package outwriter has output and writer logic for the derived artifacts.
package outwriter

import (
	"os"

	"github.com/spiroflow/vo2peak/internal/contract"
	"golang.org/x/term"
)

// getTerminalWidth resolves the terminal width for text tables, honoring the
// configured override.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}

	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Conservative default for narrow terminals and CI
		return 80
	}
	return detectedWidth
}

// getMaxColumnLabelWidth budgets header width for the smoothed sample table
// so passthrough columns with long free-text labels cannot blow up the
// layout.
func getMaxColumnLabelWidth(cfg *contract.Config, columns int) int {
	if columns == 0 {
		columns = 1
	}
	available := getTerminalWidth(cfg)/columns - 3 // borders and padding
	if available < 6 {
		return 6
	}
	if available > 24 {
		return 24
	}
	return available
}

// truncateLabel shortens a column label to a maximum width with an ellipsis
// suffix.
func truncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}
