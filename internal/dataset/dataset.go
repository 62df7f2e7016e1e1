// Package dataset implements the spreadsheet input boundary of the pipeline.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/schema"
)

// ErrEmptyDataset reports a file with no header or no data rows.
var ErrEmptyDataset = errors.New("dataset is empty")

// NewReader selects a reader for the configured input format. Auto detection
// falls back to xlsx, the native export format of metabolic carts.
func NewReader(cfg *contract.Config) contract.DatasetReader {
	format := cfg.InputFormat
	if format == schema.AutoIn {
		switch strings.ToLower(filepath.Ext(cfg.DatasetPath)) {
		case ".csv":
			format = schema.CSVIn
		default:
			format = schema.XLSXIn
		}
	}

	if format == schema.CSVIn {
		return &csvReader{skipUnitsRow: cfg.SkipUnitsRow}
	}
	return &xlsxReader{skipUnitsRow: cfg.SkipUnitsRow}
}

// csvReader reads a comma-separated dataset.
type csvReader struct {
	skipUnitsRow bool
}

// Read loads a csv file. Records may have ragged lengths; short rows are
// padded downstream by the normalizer.
func (r *csvReader) Read(path string) (*schema.RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open dataset: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse csv: %w", err)
	}

	return buildRawTable(rows, r.skipUnitsRow)
}

// buildRawTable assembles the raw table from sheet rows, dropping the units
// sub-header row when configured.
func buildRawTable(rows [][]string, skipUnitsRow bool) (*schema.RawTable, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	header := make([]string, len(rows[0]))
	for i, label := range rows[0] {
		header[i] = strings.TrimSpace(label)
	}

	records := rows[1:]
	if skipUnitsRow && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return &schema.RawTable{Header: header, Records: records}, nil
}
