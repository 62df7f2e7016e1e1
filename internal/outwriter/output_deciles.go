package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/internal/parquet"
	"github.com/spiroflow/vo2peak/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteDeciles outputs the percentage-of-peak threshold table, dispatching
// based on the output format configured.
func WriteDeciles(rows []schema.DecileRow, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if rows == nil {
				rows = []schema.DecileRow{}
			}
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDecilesCSV(w, rows, cfg)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteDecileEntries(w, parquet.ConvertDecileRows(rows))
		}, "Wrote parquet")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeDecilesTable(w, rows, cfg); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration)
			return err
		}, "Wrote table")
	}
}

// writeDecilesCSV writes one record per attained decile threshold.
func writeDecilesCSV(w io.Writer, rows []schema.DecileRow, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	header := []string{"target_pct", "attained_pct", "time_sec", "row_index", "vo2_l_min"}
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.TargetPct),
			fmtFloat(row.AttainedPct),
			fmtFloat(row.TimeSec),
			strconv.Itoa(row.RowIndex),
			fmtFloat(row.VO2),
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// writeDecilesTable renders the threshold table for terminal display. An
// empty table means the peak was undefined, which gets a message instead of
// bare borders.
func writeDecilesTable(w io.Writer, rows []schema.DecileRow, cfg *contract.Config) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No percentage-of-peak thresholds: peak oxygen uptake is undefined")
		return err
	}

	fmtFloat, _ := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"% of peak", "Attained %", "Time (s)", "Row", "VO2 (L/min)"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{
			strconv.Itoa(row.TargetPct),
			fmtFloat(row.AttainedPct),
			fmtFloat(row.TimeSec),
			strconv.Itoa(row.RowIndex),
			fmtFloat(row.VO2),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
