package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiroflow/vo2peak/schema"
)

func TestRollingMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []*float64
		n        int
		expected []*float64
	}{
		{
			name:     "warm-up rows are missing",
			values:   []*float64{schema.Float(1), schema.Float(2), schema.Float(3), schema.Float(4)},
			n:        3,
			expected: []*float64{nil, nil, schema.Float(2), schema.Float(3)},
		},
		{
			name:     "window of one is identity",
			values:   []*float64{schema.Float(1), nil, schema.Float(3)},
			n:        1,
			expected: []*float64{schema.Float(1), nil, schema.Float(3)},
		},
		{
			name:     "gap resets the window",
			values:   []*float64{schema.Float(1), schema.Float(2), nil, schema.Float(3), schema.Float(4)},
			n:        2,
			expected: []*float64{nil, schema.Float(1.5), nil, nil, schema.Float(3.5)},
		},
		{
			name:     "series shorter than window",
			values:   []*float64{schema.Float(1), schema.Float(2)},
			n:        3,
			expected: []*float64{nil, nil},
		},
		{
			name:     "empty series",
			values:   []*float64{},
			n:        3,
			expected: []*float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rollingMean(tt.values, tt.n)
			require.Len(t, result, len(tt.expected))
			for i := range tt.expected {
				if tt.expected[i] == nil {
					assert.Nil(t, result[i], "row %d", i)
					continue
				}
				require.NotNil(t, result[i], "row %d", i)
				assert.InDelta(t, *tt.expected[i], *result[i], 1e-9, "row %d", i)
			}
		})
	}
}

func TestSmoothTableAddsColumnsAndKeepsRaw(t *testing.T) {
	table := schema.NewSampleTable(4)
	table.AddColumn("t", []*float64{schema.Float(10), schema.Float(20), schema.Float(30), schema.Float(40)})
	table.AddColumn("V'O2", []*float64{schema.Float(1.0), schema.Float(1.2), schema.Float(1.5), schema.Float(1.5)})
	table.AddColumn("HR", []*float64{schema.Float(100), schema.Float(110), schema.Float(120), schema.Float(130)})

	out := SmoothTable(table, testConfig())

	// The input table is not mutated.
	assert.False(t, table.HasColumn("V'O2_30s"))

	// Raw columns survive next to their smoothed versions.
	assert.True(t, out.HasColumn("V'O2"))
	require.True(t, out.HasColumn("V'O2_30s"))
	require.True(t, out.HasColumn("HR_30s"))
	// Channels absent from the input gain no column.
	assert.False(t, out.HasColumn("V'E_30s"))

	vo2, _ := out.Column("V'O2_30s")
	assert.Nil(t, vo2[0])
	assert.Nil(t, vo2[1])
	assert.InDelta(t, 1.2333333, *vo2[2], 1e-6)
	assert.InDelta(t, 1.4, *vo2[3], 1e-9)
}
