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

// WriteSamples outputs the smoothed sample table, dispatching based on the
// output format configured. Text output respects the result limit; file
// formats always carry every row.
func WriteSamples(table *schema.SampleTable, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSamplesJSON(w, table)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSamplesCSV(w, table)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			records := parquet.ConvertSmoothedSamples(table, cfg.WindowDuration)
			return parquet.WriteSmoothedSamples(w, records)
		}, "Wrote parquet")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSamplesText(w, table, cfg, duration)
		}, "Wrote table")
	}
}

// writeSamplesJSON writes the table in columnar form. Missing values stay
// null so downstream tooling can tell a gap from a zero.
func writeSamplesJSON(w io.Writer, table *schema.SampleTable) error {
	type JSONSamples struct {
		Columns []string              `json:"columns"`
		Series  map[string][]*float64 `json:"series"`
	}

	output := JSONSamples{Columns: table.Columns, Series: table.Series}
	if output.Columns == nil {
		output.Columns = []string{}
	}
	return writeJSON(w, output)
}

// writeSamplesCSV writes the table row-major with full float precision.
// Missing values become empty cells.
func writeSamplesCSV(w io.Writer, table *schema.SampleTable) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(table.Columns); err != nil {
		return err
	}

	record := make([]string, len(table.Columns))
	for i := 0; i < table.Rows(); i++ {
		for j, column := range table.Columns {
			value := table.Series[column][i]
			if value == nil {
				record[j] = ""
			} else {
				record[j] = strconv.FormatFloat(*value, 'g', -1, 64)
			}
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// writeSamplesText renders the table for terminal display, truncating long
// passthrough labels and capping the row count at the configured limit.
func writeSamplesText(w io.Writer, table *schema.SampleTable, cfg *contract.Config, duration time.Duration) error {
	_, fmtOptional := createFormatters(cfg.Precision)

	maxLabelWidth := getMaxColumnLabelWidth(cfg, len(table.Columns))
	header := make([]string, len(table.Columns))
	for i, column := range table.Columns {
		header[i] = truncateLabel(column, maxLabelWidth)
	}

	total := table.Rows()
	shown := total
	if cfg.ResultLimit > 0 && cfg.ResultLimit < total {
		shown = cfg.ResultLimit
	}

	out := tablewriter.NewWriter(w)
	out.Header(header)
	out.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, shown)
	for i := 0; i < shown; i++ {
		record := make([]string, len(table.Columns))
		for j, column := range table.Columns {
			record[j] = fmtOptional(table.Series[column][i])
		}
		data = append(data, record)
	}
	if err := out.Bulk(data); err != nil {
		return err
	}
	if err := out.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d of %d rows, completed in %v\n", shown, total, duration)
	return err
}
