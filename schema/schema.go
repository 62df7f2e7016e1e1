// Package schema has configs, models and shared definitions for all parts of vo2peak.
package schema

// RawTable is a tabular dataset exactly as read from disk, before any
// normalization. The units sub-header row has already been dropped by the
// reader, so Records contains data rows only.
type RawTable struct {
	Header  []string
	Records [][]string
}

// Rows returns the number of data rows in the raw table.
func (t *RawTable) Rows() int {
	return len(t.Records)
}

// SampleTable is an ordered collection of numeric sample columns. A nil entry
// in a series marks a missing value; downstream stages must never substitute
// a numeric placeholder for it.
type SampleTable struct {
	Columns []string
	Series  map[string][]*float64

	rows int
}

// NewSampleTable creates an empty sample table with a fixed row count.
func NewSampleTable(rows int) *SampleTable {
	return &SampleTable{
		Series: make(map[string][]*float64),
		rows:   rows,
	}
}

// Rows returns the number of rows shared by every column.
func (t *SampleTable) Rows() int {
	return t.rows
}

// AddColumn appends a named column. A short series is padded with missing
// values so every column keeps the same row count; extra values are dropped.
func (t *SampleTable) AddColumn(name string, values []*float64) {
	if len(values) > t.rows {
		values = values[:t.rows]
	}
	for len(values) < t.rows {
		values = append(values, nil)
	}
	if _, exists := t.Series[name]; !exists {
		t.Columns = append(t.Columns, name)
	}
	t.Series[name] = values
}

// Column returns the series for a column name.
func (t *SampleTable) Column(name string) ([]*float64, bool) {
	s, ok := t.Series[name]
	return s, ok
}

// HasColumn reports whether a column is present.
func (t *SampleTable) HasColumn(name string) bool {
	_, ok := t.Series[name]
	return ok
}

// Clone returns a deep copy of the sample table. Stages that append columns
// operate on a clone so the producing stage's output stays immutable.
func (t *SampleTable) Clone() *SampleTable {
	clone := NewSampleTable(t.rows)
	for _, name := range t.Columns {
		src := t.Series[name]
		dst := make([]*float64, len(src))
		for i, v := range src {
			if v != nil {
				f := *v
				dst[i] = &f
			}
		}
		clone.AddColumn(name, dst)
	}
	return clone
}

// AnalysisResult bundles the three derived artifacts of one pipeline run.
type AnalysisResult struct {
	Smoothed *SampleTable
	Summary  MetricsSummary
	Deciles  []DecileRow
}
