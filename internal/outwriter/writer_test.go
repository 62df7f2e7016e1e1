package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/schema"
)

// testResult builds a small analysis result covering every summary field.
func testResult() *schema.AnalysisResult {
	table := schema.NewSampleTable(3)
	table.AddColumn("t", []*float64{schema.Float(10), schema.Float(20), schema.Float(30)})
	table.AddColumn("V'O2", []*float64{schema.Float(1.0), schema.Float(1.2), nil})
	table.AddColumn("V'O2_30s", []*float64{nil, nil, schema.Float(1.1)})

	return &schema.AnalysisResult{
		Smoothed: table,
		Summary: schema.MetricsSummary{
			Plateau:      true,
			PlateauLabel: schema.PlateauReached,
			VO2Peak:      schema.Float(3.34),
			VO2PeakPerKg: schema.Float(47.71),
			VO2PeakTime:  schema.Float(600),
			VEPeak:       schema.Float(132.4),
			HRPeak:       schema.Float(186),
			RERTerminal:  schema.Float(1.12),
		},
		Deciles: []schema.DecileRow{
			{TargetPct: 10, AttainedPct: 25.0, TimeSec: 10, RowIndex: 0, VO2: 0.84},
			{TargetPct: 100, AttainedPct: 100.0, TimeSec: 600, RowIndex: 59, VO2: 3.34},
		},
	}
}

func testWriterConfig() *contract.Config {
	return &contract.Config{
		Precision: 2,
		Output:    schema.TextOut,
		Width:     120,
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSummaryCSV(&buf, testResult().Summary, testWriterConfig()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "plateau", records[0][0])
	assert.Equal(t, "true", records[1][0])
	assert.Equal(t, schema.PlateauReached, records[1][1])
	assert.Equal(t, "3.34", records[1][2])
	assert.Equal(t, schema.EffortMaximal, records[1][8])
}

func TestWriteSummaryCSVMissingMetrics(t *testing.T) {
	var buf bytes.Buffer
	summary := schema.MetricsSummary{PlateauLabel: schema.PlateauNotReached}
	require.NoError(t, writeSummaryCSV(&buf, summary, testWriterConfig()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, schema.NotAvailable, records[1][2])
	assert.Equal(t, schema.NotAvailable, records[1][7])
}

func TestWriteAnalysisJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeAnalysisJSON(&buf, testResult()))

	var decoded struct {
		Summary struct {
			Plateau bool     `json:"plateau"`
			VO2Peak *float64 `json:"vo2_peak"`
		} `json:"summary"`
		EffortLabel string `json:"effort_label"`
		Deciles     []struct {
			TargetPct int `json:"target_pct"`
		} `json:"deciles"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.True(t, decoded.Summary.Plateau)
	require.NotNil(t, decoded.Summary.VO2Peak)
	assert.InDelta(t, 3.34, *decoded.Summary.VO2Peak, 1e-9)
	assert.Equal(t, schema.EffortMaximal, decoded.EffortLabel)
	require.Len(t, decoded.Deciles, 2)
	assert.Equal(t, 10, decoded.Deciles[0].TargetPct)
}

func TestWriteAnalysisText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeAnalysisText(&buf, testResult(), testWriterConfig(), time.Millisecond))

	output := buf.String()
	assert.Contains(t, output, "VO2peak (L/min)")
	assert.Contains(t, output, "3.34")
	assert.Contains(t, output, schema.PlateauReached)
	assert.Contains(t, output, schema.EffortMaximal)
	assert.Contains(t, output, "% of peak")
	assert.Contains(t, output, "Analysis completed in")
}

func TestWriteDecilesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDecilesCSV(&buf, testResult().Deciles, testWriterConfig()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"target_pct", "attained_pct", "time_sec", "row_index", "vo2_l_min"}, records[0])
	assert.Equal(t, []string{"10", "25.00", "10.00", "0", "0.84"}, records[1])
}

func TestWriteDecilesCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDecilesCSV(&buf, nil, testWriterConfig()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	// Header only.
	assert.Len(t, records, 1)
}

func TestWriteDecilesTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDecilesTable(&buf, nil, testWriterConfig()))
	assert.Contains(t, buf.String(), "peak oxygen uptake is undefined")
}

func TestWriteSamplesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSamplesCSV(&buf, testResult().Smoothed))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"t", "V'O2", "V'O2_30s"}, records[0])
	// Missing values export as empty cells, not placeholders.
	assert.Equal(t, []string{"30", "", "1.1"}, records[3])
}

func TestWriteSamplesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSamplesJSON(&buf, testResult().Smoothed))

	var decoded struct {
		Columns []string              `json:"columns"`
		Series  map[string][]*float64 `json:"series"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, []string{"t", "V'O2", "V'O2_30s"}, decoded.Columns)
	require.Len(t, decoded.Series["V'O2"], 3)
	// Missing stays null in JSON.
	assert.Nil(t, decoded.Series["V'O2"][2])
	assert.InDelta(t, 1.2, *decoded.Series["V'O2"][1], 1e-9)
}

func TestWriteSamplesTextRespectsLimit(t *testing.T) {
	cfg := testWriterConfig()
	cfg.ResultLimit = 2

	var buf bytes.Buffer
	require.NoError(t, writeSamplesText(&buf, testResult().Smoothed, cfg, time.Millisecond))

	output := buf.String()
	assert.Contains(t, output, "Showing 2 of 3 rows")
	assert.NotContains(t, output, "30.00")
}
