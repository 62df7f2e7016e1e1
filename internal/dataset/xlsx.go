package dataset

import (
	"fmt"

	"github.com/spiroflow/vo2peak/schema"
	"github.com/xuri/excelize/v2"
)

// xlsxReader reads the first sheet of an Excel workbook, the shape produced
// by MetaLyzer and similar metabolic carts.
type xlsxReader struct {
	skipUnitsRow bool
}

// Read loads an xlsx file.
func (r *xlsxReader) Read(path string) (*schema.RawTable, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyDataset
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheets[0], err)
	}

	return buildRawTable(rows, r.skipUnitsRow)
}
