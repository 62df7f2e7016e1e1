// Package xlsx writes the analysis workbook, the export artifact handed to
// exercise physiologists.
package xlsx

import (
	"fmt"

	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/schema"

	"github.com/xuri/excelize/v2"
)

// Sheet names for the analysis workbook.
const (
	SheetSmoothed = "Smoothed_Data"
	SheetSummary  = "Metrics_Summary"
	SheetDeciles  = "VO2_Deciles"
)

// maxSheetNameLength is the hard limit Excel places on sheet names.
const maxSheetNameLength = 31

// TruncateSheetName shortens a sheet name to the Excel limit.
func TruncateSheetName(name string) string {
	runes := []rune(name)
	if len(runes) > maxSheetNameLength {
		return string(runes[:maxSheetNameLength])
	}
	return name
}

// WriteWorkbook writes the full analysis result as a three-sheet xlsx
// workbook: the smoothed sample table, the metrics summary, and the
// percentage-of-peak table.
func WriteWorkbook(result *schema.AnalysisResult, cfg *contract.Config, path string) error {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	smoothedSheet := TruncateSheetName(SheetSmoothed)
	summarySheet := TruncateSheetName(SheetSummary)
	decilesSheet := TruncateSheetName(SheetDeciles)

	// The default sheet becomes the sample sheet so the workbook never
	// carries an empty "Sheet1".
	if err := file.SetSheetName(file.GetSheetName(0), smoothedSheet); err != nil {
		return fmt.Errorf("cannot rename sheet: %w", err)
	}
	if err := writeSamplesSheet(file, smoothedSheet, result.Smoothed); err != nil {
		return err
	}

	if _, err := file.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("cannot add sheet %q: %w", summarySheet, err)
	}
	if err := writeSummarySheet(file, summarySheet, result.Summary); err != nil {
		return err
	}

	if _, err := file.NewSheet(decilesSheet); err != nil {
		return fmt.Errorf("cannot add sheet %q: %w", decilesSheet, err)
	}
	if err := writeDecilesSheet(file, decilesSheet, result.Deciles); err != nil {
		return err
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save workbook: %w", err)
	}
	return nil
}

// writeSamplesSheet writes the smoothed sample table row-major. Missing
// values stay as empty cells.
func writeSamplesSheet(file *excelize.File, sheet string, table *schema.SampleTable) error {
	for j, column := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, column); err != nil {
			return err
		}
	}

	for i := 0; i < table.Rows(); i++ {
		for j, column := range table.Columns {
			value := table.Series[column][i]
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheet, cell, *value); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeSummarySheet writes the metrics summary as metric/value pairs.
func writeSummarySheet(file *excelize.File, sheet string, summary schema.MetricsSummary) error {
	optional := func(v *float64) any {
		if v == nil {
			return schema.NotAvailable
		}
		return *v
	}

	rows := []struct {
		metric string
		value  any
	}{
		{"VO2 plateau", summary.PlateauLabel},
		{"VO2peak (L/min)", optional(summary.VO2Peak)},
		{"VO2peak (mL/kg/min)", optional(summary.VO2PeakPerKg)},
		{"Time at peak (s)", optional(summary.VO2PeakTime)},
		{"VEmax (L/min)", optional(summary.VEPeak)},
		{"HRmax (bpm)", optional(summary.HRPeak)},
		{"Terminal RER", optional(summary.RERTerminal)},
		{"Effort", schema.GetEffortLabel(summary.RERTerminal)},
	}

	if err := file.SetCellValue(sheet, "A1", "Metric"); err != nil {
		return err
	}
	if err := file.SetCellValue(sheet, "B1", "Value"); err != nil {
		return err
	}
	for i, row := range rows {
		metricCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, metricCell, row.metric); err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, valueCell, row.value); err != nil {
			return err
		}
	}
	return nil
}

// writeDecilesSheet writes the percentage-of-peak table, header included even
// when no threshold was attained.
func writeDecilesSheet(file *excelize.File, sheet string, rows []schema.DecileRow) error {
	header := []string{"% of peak", "Attained %", "Time (s)", "Row", "VO2 (L/min)"}
	for j, label := range header {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := []any{row.TargetPct, row.AttainedPct, row.TimeSec, row.RowIndex, row.VO2}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
