package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/internal/parquet"
	"github.com/spiroflow/vo2peak/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteAnalysis outputs the metrics summary, dispatching based on the output
// format configured. Text output also renders the percentage-of-peak table;
// csv and parquet render the summary record alone (the deciles command
// exports the threshold table on its own).
func WriteAnalysis(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, result.Summary, cfg)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			records := []parquet.SummaryRecord{parquet.ConvertSummary(result.Summary)}
			return parquet.WriteSummaryRecords(w, records)
		}, "Wrote parquet")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisText(w, result, cfg, duration)
		}, "Wrote table")
	}
}

// writeAnalysisJSON writes the full analysis result in JSON format.
func writeAnalysisJSON(w io.Writer, result *schema.AnalysisResult) error {
	// 1. Prepare the data structure for JSON with the effort label added
	type JSONAnalysis struct {
		Summary     schema.MetricsSummary `json:"summary"`
		EffortLabel string                `json:"effort_label"`
		Deciles     []schema.DecileRow    `json:"deciles"`
	}

	deciles := result.Deciles
	if deciles == nil {
		deciles = []schema.DecileRow{}
	}
	output := JSONAnalysis{
		Summary:     result.Summary,
		EffortLabel: schema.GetEffortLabel(result.Summary.RERTerminal),
		Deciles:     deciles,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// writeSummaryCSV writes the metrics summary as a single CSV record.
func writeSummaryCSV(w io.Writer, summary schema.MetricsSummary, cfg *contract.Config) error {
	_, fmtOptional := createFormatters(cfg.Precision)

	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	header := []string{
		"plateau",
		"plateau_label",
		"vo2_peak_l_min",
		"vo2_peak_ml_kg_min",
		"vo2_peak_time_sec",
		"ve_peak_l_min",
		"hr_peak_bpm",
		"rer_terminal",
		"effort_label",
	}
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	record := []string{
		fmt.Sprintf("%t", summary.Plateau),
		summary.PlateauLabel,
		fmtOptional(summary.VO2Peak),
		fmtOptional(summary.VO2PeakPerKg),
		fmtOptional(summary.VO2PeakTime),
		fmtOptional(summary.VEPeak),
		fmtOptional(summary.HRPeak),
		fmtOptional(summary.RERTerminal),
		schema.GetEffortLabel(summary.RERTerminal),
	}
	return csvWriter.Write(record)
}

// writeAnalysisText generates and writes the human-readable summary and
// decile tables.
func writeAnalysisText(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	_, fmtOptional := createFormatters(cfg.Precision)
	summary := result.Summary

	plateauLabel := summary.PlateauLabel
	effortLabel := schema.GetEffortLabel(summary.RERTerminal)
	if cfg.UseColors {
		plateauLabel = contract.GetColorPlateauLabel(summary.Plateau)
		effortLabel = contract.GetColorEffortLabel(summary.RERTerminal)
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"VO2 plateau", plateauLabel},
		{"VO2peak (L/min)", fmtOptional(summary.VO2Peak)},
		{"VO2peak (mL/kg/min)", fmtOptional(summary.VO2PeakPerKg)},
		{"Time at peak (s)", fmtOptional(summary.VO2PeakTime)},
		{"VEmax (L/min)", fmtOptional(summary.VEPeak)},
		{"HRmax (bpm)", fmtOptional(summary.HRPeak)},
		{"Terminal RER", fmtOptional(summary.RERTerminal)},
		{"Effort", effortLabel},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if err := writeDecilesTable(w, result.Deciles, cfg); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration)
	return err
}
