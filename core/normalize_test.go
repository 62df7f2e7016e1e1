package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/schema"
)

// testConfig returns the default smoothing parameters used across core tests.
func testConfig() *contract.Config {
	return &contract.Config{
		SamplingInterval: 10,
		WindowDuration:   30,
		WindowRows:       3,
		PlateauThreshold: 0.15,
		DefaultBodyMass:  70,
		Precision:        2,
	}
}

func TestNormalizeTableCanonicalizesLabels(t *testing.T) {
	raw := &schema.RawTable{
		Header: []string{"Time (s)", "VO2 (L/min)", "Heart Rate", "Lactate"},
		Records: [][]string{
			{"10", "1.0", "120", "2.1"},
			{"20", "1.2", "130", "2.4"},
		},
	}

	table, err := NormalizeTable(raw, testConfig())
	require.NoError(t, err)

	assert.True(t, table.HasColumn("t"))
	assert.True(t, table.HasColumn("V'O2"))
	assert.True(t, table.HasColumn("HR"))
	// Unknown labels pass through untouched.
	assert.True(t, table.HasColumn("Lactate"))
}

func TestNormalizeTableIsIdempotentOnCanonicalInput(t *testing.T) {
	raw := &schema.RawTable{
		Header: []string{"t", "V'O2"},
		Records: [][]string{
			{"10", "1.0"},
			{"20", "1.2"},
		},
	}

	table, err := NormalizeTable(raw, testConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"t", "V'O2", "BodyMass"}, table.Columns)
	vo2, _ := table.Column("V'O2")
	assert.Equal(t, []*float64{schema.Float(1.0), schema.Float(1.2)}, vo2)
}

func TestNormalizeTableDuplicateColumnsFirstWins(t *testing.T) {
	raw := &schema.RawTable{
		Header: []string{"t", "VO2", "V'O2"},
		Records: [][]string{
			{"10", "1.0", "9.9"},
		},
	}

	table, err := NormalizeTable(raw, testConfig())
	require.NoError(t, err)

	vo2, _ := table.Column("V'O2")
	assert.Equal(t, 1.0, *vo2[0])
}

func TestNormalizeTableRequiresOxygenUptake(t *testing.T) {
	raw := &schema.RawTable{
		Header:  []string{"t", "HR"},
		Records: [][]string{{"10", "120"}},
	}

	_, err := NormalizeTable(raw, testConfig())
	assert.ErrorIs(t, err, ErrNoOxygenUptake)
}

func TestNormalizeTableSynthesizesTimeAxis(t *testing.T) {
	raw := &schema.RawTable{
		Header: []string{"V'O2"},
		Records: [][]string{
			{"1.0"}, {"1.2"}, {"1.4"},
		},
	}

	table, err := NormalizeTable(raw, testConfig())
	require.NoError(t, err)

	// The synthesized axis leads the column order.
	assert.Equal(t, "t", table.Columns[0])
	ts, _ := table.Column("t")
	assert.Equal(t, []*float64{schema.Float(0), schema.Float(10), schema.Float(20)}, ts)
}

func TestNormalizeTableForwardFillsTime(t *testing.T) {
	raw := &schema.RawTable{
		Header: []string{"t", "V'O2"},
		Records: [][]string{
			{"", "1.0"},
			{"20", "1.2"},
			{"bogus", "1.4"},
		},
	}

	table, err := NormalizeTable(raw, testConfig())
	require.NoError(t, err)

	ts, _ := table.Column("t")
	// A leading gap cannot be filled; the trailing malformed value carries
	// the previous time forward.
	assert.Nil(t, ts[0])
	assert.Equal(t, 20.0, *ts[1])
	assert.Equal(t, 20.0, *ts[2])
}

func TestNormalizeTableBodyMass(t *testing.T) {
	t.Run("absent column gets the configured default", func(t *testing.T) {
		raw := &schema.RawTable{
			Header:  []string{"t", "V'O2"},
			Records: [][]string{{"10", "1.0"}},
		}

		table, err := NormalizeTable(raw, testConfig())
		require.NoError(t, err)

		mass, _ := table.Column("BodyMass")
		assert.Equal(t, 70.0, *mass[0])
	})

	t.Run("gaps are filled in both directions", func(t *testing.T) {
		raw := &schema.RawTable{
			Header: []string{"t", "V'O2", "Weight (kg)"},
			Records: [][]string{
				{"10", "1.0", ""},
				{"20", "1.2", "82"},
				{"30", "1.4", ""},
			},
		}

		table, err := NormalizeTable(raw, testConfig())
		require.NoError(t, err)

		mass, _ := table.Column("BodyMass")
		assert.Equal(t, 82.0, *mass[0])
		assert.Equal(t, 82.0, *mass[1])
		assert.Equal(t, 82.0, *mass[2])
	})
}

func TestNormalizeTableRaggedRecords(t *testing.T) {
	raw := &schema.RawTable{
		Header: []string{"t", "V'O2", "HR"},
		Records: [][]string{
			{"10", "1.0", "120"},
			{"20", "1.2"}, // short row: HR missing
		},
	}

	table, err := NormalizeTable(raw, testConfig())
	require.NoError(t, err)

	hr, _ := table.Column("HR")
	assert.Equal(t, 120.0, *hr[0])
	assert.Nil(t, hr[1])
}

func TestParseTimeValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *float64
	}{
		{name: "bare seconds", input: "90", expected: schema.Float(90)},
		{name: "bare fractional", input: "90.5", expected: schema.Float(90.5)},
		{name: "minutes and seconds", input: "01:30", expected: schema.Float(90)},
		{name: "hours minutes seconds", input: "1:02:03", expected: schema.Float(3723)},
		{name: "fractional seconds in clock", input: "00:10.5", expected: schema.Float(10.5)},
		{name: "empty", input: "", expected: nil},
		{name: "negative clock part", input: "-1:30", expected: nil},
		{name: "negative bare numeric", input: "-5", expected: nil},
		{name: "garbage", input: "n/a", expected: nil},
		{name: "too many parts", input: "1:2:3:4", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseTimeValue(tt.input)
			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.InDelta(t, *tt.expected, *result, 1e-9)
		})
	}
}
