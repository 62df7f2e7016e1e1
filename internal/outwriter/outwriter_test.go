package outwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/schema"
)

func TestCreateFormatters(t *testing.T) {
	fmtFloat, fmtOptional := createFormatters(2)

	assert.Equal(t, "3.14", fmtFloat(3.14159))
	assert.Equal(t, "3.14", fmtOptional(schema.Float(3.14159)))
	assert.Equal(t, schema.NotAvailable, fmtOptional(nil))

	fmtFloat, _ = createFormatters(1)
	assert.Equal(t, "3.1", fmtFloat(3.14159))
}

func TestGetTerminalWidthOverride(t *testing.T) {
	cfg := &contract.Config{Width: 120}
	assert.Equal(t, 120, getTerminalWidth(cfg))
}

func TestGetMaxColumnLabelWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		columns  int
		expected int
	}{
		{name: "wide terminal few columns caps at 24", width: 200, columns: 2, expected: 24},
		{name: "narrow terminal many columns floors at 6", width: 80, columns: 20, expected: 6},
		{name: "mid range", width: 80, columns: 5, expected: 13},
		{name: "zero columns treated as one", width: 40, columns: 0, expected: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, getMaxColumnLabelWidth(cfg, tt.columns))
		})
	}
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		maxWidth int
		expected string
	}{
		{name: "short label untouched", label: "V'O2", maxWidth: 10, expected: "V'O2"},
		{name: "exact width untouched", label: "V'O2_30s", maxWidth: 8, expected: "V'O2_30s"},
		{name: "long label gets ellipsis", label: "Inspiratory Capacity", maxWidth: 10, expected: "Inspira..."},
		{name: "tiny budget is left alone", label: "V'O2_30s", maxWidth: 3, expected: "V'O2_30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateLabel(tt.label, tt.maxWidth))
		})
	}
}
