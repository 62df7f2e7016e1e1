package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiroflow/vo2peak/schema"
)

// floats builds an optional series with no missing entries.
func floats(values ...float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		out[i] = schema.Float(v)
	}
	return out
}

func TestIsPlateau(t *testing.T) {
	tests := []struct {
		name      string
		values    []*float64
		threshold float64
		expected  bool
	}{
		{
			name:      "both terminal increments flat",
			values:    floats(2.80, 3.10, 3.22, 3.34),
			threshold: 0.15,
			expected:  true,
		},
		{
			name:      "still climbing",
			values:    floats(2.80, 3.00, 3.20, 3.45),
			threshold: 0.15,
			expected:  false,
		},
		{
			name:      "only last increment flat",
			values:    floats(2.80, 3.00, 3.30, 3.40),
			threshold: 0.15,
			expected:  false,
		},
		{
			name:      "increment exactly at threshold is not flat",
			values:    floats(3.00, 3.15, 3.30),
			threshold: 0.15,
			expected:  false,
		},
		{
			name:      "declining values count as flat",
			values:    floats(3.40, 3.30, 3.20),
			threshold: 0.15,
			expected:  true,
		},
		{
			name:      "missing entries are skipped",
			values:    []*float64{schema.Float(3.10), nil, schema.Float(3.22), nil, schema.Float(3.34)},
			threshold: 0.15,
			expected:  true,
		},
		{
			name:      "too few valid values",
			values:    []*float64{nil, schema.Float(3.0), schema.Float(3.1)},
			threshold: 0.15,
			expected:  false,
		},
		{
			name:      "empty series",
			values:    nil,
			threshold: 0.15,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isPlateau(tt.values, tt.threshold))
		})
	}
}

func TestMaxWithIndex(t *testing.T) {
	tests := []struct {
		name     string
		values   []*float64
		wantIdx  int
		wantPeak float64
	}{
		{
			name:     "plain maximum",
			values:   floats(1.0, 3.0, 2.0),
			wantIdx:  1,
			wantPeak: 3.0,
		},
		{
			name:     "tie resolves to first occurrence",
			values:   floats(1.0, 3.0, 3.0, 2.0),
			wantIdx:  1,
			wantPeak: 3.0,
		},
		{
			name:     "missing entries are skipped",
			values:   []*float64{nil, schema.Float(2.0), nil},
			wantIdx:  1,
			wantPeak: 2.0,
		},
		{
			name:    "entirely missing",
			values:  []*float64{nil, nil},
			wantIdx: -1,
		},
		{
			name:    "empty",
			values:  nil,
			wantIdx: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, peak := maxWithIndex(tt.values)
			assert.Equal(t, tt.wantIdx, idx)
			if tt.wantIdx >= 0 {
				assert.Equal(t, tt.wantPeak, peak)
			}
		})
	}
}

func TestTailMean(t *testing.T) {
	assert.InDelta(t, 1.2, *tailMean(floats(0.9, 1.1, 1.2, 1.3), 3), 1e-9)
	// Fewer than n values are averaged as-is.
	assert.InDelta(t, 1.0, *tailMean(floats(0.9, 1.1), 3), 1e-9)
	// Missing entries do not dilute the tail.
	assert.InDelta(t, 1.2, *tailMean([]*float64{schema.Float(1.1), nil, schema.Float(1.3)}, 2), 1e-9)
	assert.Nil(t, tailMean([]*float64{nil, nil}, 3))
	assert.Nil(t, tailMean(nil, 3))
}

func TestDetectPeaks(t *testing.T) {
	cfg := testConfig()
	table := schema.NewSampleTable(5)
	table.AddColumn("t", floats(10, 20, 30, 40, 50))
	table.AddColumn("V'O2_30s", []*float64{nil, nil, schema.Float(3.10), schema.Float(3.22), schema.Float(3.34)})
	table.AddColumn("V'O2/kg_30s", []*float64{nil, nil, schema.Float(44.3), schema.Float(46.0), schema.Float(47.7)})
	table.AddColumn("V'E_30s", []*float64{nil, nil, schema.Float(110), schema.Float(132), schema.Float(128)})
	table.AddColumn("HR_30s", []*float64{nil, nil, schema.Float(165), schema.Float(172), schema.Float(178)})
	table.AddColumn("RER_30s", []*float64{nil, nil, schema.Float(1.05), schema.Float(1.10), schema.Float(1.15)})

	summary := DetectPeaks(table, cfg)

	require.NotNil(t, summary.VO2Peak)
	assert.InDelta(t, 3.34, *summary.VO2Peak, 1e-9)
	require.NotNil(t, summary.VO2PeakPerKg)
	assert.InDelta(t, 47.7, *summary.VO2PeakPerKg, 1e-9)
	require.NotNil(t, summary.VO2PeakTime)
	assert.InDelta(t, 50, *summary.VO2PeakTime, 1e-9)

	assert.True(t, summary.Plateau)
	assert.Equal(t, schema.PlateauReached, summary.PlateauLabel)

	// Ventilation peaks earlier than V'O2; the maxima are independent.
	require.NotNil(t, summary.VEPeak)
	assert.InDelta(t, 132, *summary.VEPeak, 1e-9)
	require.NotNil(t, summary.HRPeak)
	assert.InDelta(t, 178, *summary.HRPeak, 1e-9)

	require.NotNil(t, summary.RERTerminal)
	assert.InDelta(t, 1.10, *summary.RERTerminal, 1e-9)
	assert.Equal(t, schema.EffortMaximal, schema.GetEffortLabel(summary.RERTerminal))
}

func TestDetectPeaksEmptyTable(t *testing.T) {
	summary := DetectPeaks(schema.NewSampleTable(0), testConfig())

	assert.Nil(t, summary.VO2Peak)
	assert.Nil(t, summary.VO2PeakPerKg)
	assert.Nil(t, summary.VO2PeakTime)
	assert.Nil(t, summary.VEPeak)
	assert.Nil(t, summary.HRPeak)
	assert.Nil(t, summary.RERTerminal)
	assert.False(t, summary.Plateau)
	assert.Equal(t, schema.PlateauNotReached, summary.PlateauLabel)
}
