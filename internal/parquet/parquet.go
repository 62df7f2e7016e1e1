// Package parquet provides record structures and functions for exporting
// analysis data to Parquet using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"

	"github.com/spiroflow/vo2peak/schema"

	"github.com/parquet-go/parquet-go"
)

// SmoothedSample represents one breath-averaged sample row. Every measured
// channel is nullable so gaps in the source recording survive export.
type SmoothedSample struct {
	// TimeSec is elapsed exercise time in seconds
	TimeSec *float64 `parquet:"time_sec,optional,snappy"`

	// VO2 is raw oxygen uptake in L/min
	VO2 *float64 `parquet:"vo2_l_min,optional,snappy"`

	// VCO2 is raw carbon dioxide output in L/min
	VCO2 *float64 `parquet:"vco2_l_min,optional,snappy"`

	// VE is raw minute ventilation in L/min
	VE *float64 `parquet:"ve_l_min,optional,snappy"`

	// HR is heart rate in beats per minute
	HR *float64 `parquet:"hr_bpm,optional,snappy"`

	// VT is tidal volume in L
	VT *float64 `parquet:"vt_l,optional,snappy"`

	// BF is breathing frequency in breaths per minute
	BF *float64 `parquet:"bf_per_min,optional,snappy"`

	// BodyMass is subject mass in kg
	BodyMass *float64 `parquet:"body_mass_kg,optional,snappy"`

	// VO2Smoothed is the rolling-window mean of VO2
	VO2Smoothed *float64 `parquet:"vo2_smoothed_l_min,optional,snappy"`

	// VCO2Smoothed is the rolling-window mean of VCO2
	VCO2Smoothed *float64 `parquet:"vco2_smoothed_l_min,optional,snappy"`

	// VESmoothed is the rolling-window mean of VE
	VESmoothed *float64 `parquet:"ve_smoothed_l_min,optional,snappy"`

	// HRSmoothed is the rolling-window mean of HR
	HRSmoothed *float64 `parquet:"hr_smoothed_bpm,optional,snappy"`

	// VTSmoothed is the rolling-window mean of VT
	VTSmoothed *float64 `parquet:"vt_smoothed_l,optional,snappy"`

	// BFSmoothed is the rolling-window mean of BF
	BFSmoothed *float64 `parquet:"bf_smoothed_per_min,optional,snappy"`

	// VO2PerKg is mass-relative smoothed oxygen uptake in mL/kg/min
	VO2PerKg *float64 `parquet:"vo2_per_kg_ml_kg_min,optional,snappy"`

	// RER is the respiratory exchange ratio from smoothed channels
	RER *float64 `parquet:"rer,optional,snappy"`
}

// DecileEntry represents one attained percentage-of-peak threshold.
type DecileEntry struct {
	// TargetPct is the decile threshold (10 through 100)
	TargetPct int32 `parquet:"target_pct,snappy"`

	// AttainedPct is the actual percentage of peak at the crossing row
	AttainedPct float64 `parquet:"attained_pct,snappy"`

	// TimeSec is elapsed exercise time at the crossing row in seconds
	TimeSec float64 `parquet:"time_sec,snappy"`

	// RowIndex is the zero-based sample row that first crossed the threshold
	RowIndex int32 `parquet:"row_index,snappy"`

	// VO2 is the smoothed oxygen uptake at the crossing row in L/min
	VO2 float64 `parquet:"vo2_l_min,snappy"`
}

// SummaryRecord represents the peak metrics of a single test.
type SummaryRecord struct {
	// Plateau reports whether a terminal oxygen-uptake plateau was detected
	Plateau bool `parquet:"plateau,snappy"`

	// PlateauLabel is the human-readable plateau verdict
	PlateauLabel string `parquet:"plateau_label,snappy"`

	// VO2Peak is peak oxygen uptake in L/min (nullable)
	VO2Peak *float64 `parquet:"vo2_peak_l_min,optional,snappy"`

	// VO2PeakPerKg is mass-relative peak oxygen uptake in mL/kg/min (nullable)
	VO2PeakPerKg *float64 `parquet:"vo2_peak_ml_kg_min,optional,snappy"`

	// VO2PeakTime is elapsed time at the peak row in seconds (nullable)
	VO2PeakTime *float64 `parquet:"vo2_peak_time_sec,optional,snappy"`

	// VEPeak is the maximum smoothed minute ventilation in L/min (nullable)
	VEPeak *float64 `parquet:"ve_peak_l_min,optional,snappy"`

	// HRPeak is the maximum smoothed heart rate in bpm (nullable)
	HRPeak *float64 `parquet:"hr_peak_bpm,optional,snappy"`

	// RERTerminal is the mean respiratory exchange ratio over the final
	// samples (nullable)
	RERTerminal *float64 `parquet:"rer_terminal,optional,snappy"`
}

// WriteSmoothedSamples writes sample records to a Parquet stream.
func WriteSmoothedSamples(w io.Writer, data []SmoothedSample) error {
	return writeRecords(w, data)
}

// WriteDecileEntries writes decile records to a Parquet stream.
func WriteDecileEntries(w io.Writer, data []DecileEntry) error {
	return writeRecords(w, data)
}

// WriteSummaryRecords writes summary records to a Parquet stream.
func WriteSummaryRecords(w io.Writer, data []SummaryRecord) error {
	return writeRecords(w, data)
}

// writeRecords streams records of any supported schema. The Parquet schema
// is inferred from the struct tags of T.
func writeRecords[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet stream: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet stream: %w", err)
	}
	return nil
}

// ConvertSmoothedSamples converts a sample table to SmoothedSample records
// for Parquet export. Passthrough columns outside the fixed record schema
// are not exported.
func ConvertSmoothedSamples(table *schema.SampleTable, windowSeconds float64) []SmoothedSample {
	column := func(name string) []*float64 {
		return table.Series[name]
	}
	at := func(series []*float64, i int) *float64 {
		if series == nil {
			return nil
		}
		return series[i]
	}

	timeSec := column(string(schema.ChannelTime))
	vo2 := column(string(schema.ChannelVO2))
	vco2 := column(string(schema.ChannelVCO2))
	ve := column(string(schema.ChannelVE))
	hr := column(string(schema.ChannelHR))
	vt := column(string(schema.ChannelVT))
	bf := column(string(schema.ChannelBF))
	mass := column(string(schema.ChannelBodyMass))
	vo2Smoothed := column(schema.SmoothedName(schema.ChannelVO2, windowSeconds))
	vco2Smoothed := column(schema.SmoothedName(schema.ChannelVCO2, windowSeconds))
	veSmoothed := column(schema.SmoothedName(schema.ChannelVE, windowSeconds))
	hrSmoothed := column(schema.SmoothedName(schema.ChannelHR, windowSeconds))
	vtSmoothed := column(schema.SmoothedName(schema.ChannelVT, windowSeconds))
	bfSmoothed := column(schema.SmoothedName(schema.ChannelBF, windowSeconds))
	perKg := column(schema.VO2PerKgName(windowSeconds))
	rer := column(schema.RERName(windowSeconds))

	result := make([]SmoothedSample, table.Rows())
	for i := range result {
		result[i] = SmoothedSample{
			TimeSec:      at(timeSec, i),
			VO2:          at(vo2, i),
			VCO2:         at(vco2, i),
			VE:           at(ve, i),
			HR:           at(hr, i),
			VT:           at(vt, i),
			BF:           at(bf, i),
			BodyMass:     at(mass, i),
			VO2Smoothed:  at(vo2Smoothed, i),
			VCO2Smoothed: at(vco2Smoothed, i),
			VESmoothed:   at(veSmoothed, i),
			HRSmoothed:   at(hrSmoothed, i),
			VTSmoothed:   at(vtSmoothed, i),
			BFSmoothed:   at(bfSmoothed, i),
			VO2PerKg:     at(perKg, i),
			RER:          at(rer, i),
		}
	}
	return result
}

// ConvertDecileRows converts schema.DecileRow to DecileEntry for Parquet export.
func ConvertDecileRows(rows []schema.DecileRow) []DecileEntry {
	result := make([]DecileEntry, len(rows))
	for i, row := range rows {
		result[i] = DecileEntry{
			TargetPct:   int32(row.TargetPct),
			AttainedPct: row.AttainedPct,
			TimeSec:     row.TimeSec,
			RowIndex:    int32(row.RowIndex),
			VO2:         row.VO2,
		}
	}
	return result
}

// ConvertSummary converts schema.MetricsSummary to a SummaryRecord for Parquet export.
func ConvertSummary(summary schema.MetricsSummary) SummaryRecord {
	return SummaryRecord{
		Plateau:      summary.Plateau,
		PlateauLabel: summary.PlateauLabel,
		VO2Peak:      summary.VO2Peak,
		VO2PeakPerKg: summary.VO2PeakPerKg,
		VO2PeakTime:  summary.VO2PeakTime,
		VEPeak:       summary.VEPeak,
		HRPeak:       summary.HRPeak,
		RERTerminal:  summary.RERTerminal,
	}
}
