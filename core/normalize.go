package core

import (
	"strconv"
	"strings"

	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/schema"
)

// NormalizeTable maps heterogeneous raw column labels to canonical channel
// names, parses cell values, and guarantees elapsed-time and body-mass
// columns. Malformed values degrade to missing; the only hard failure is a
// dataset without an oxygen-uptake channel.
func NormalizeTable(raw *schema.RawTable, cfg *contract.Config) (*schema.SampleTable, error) {
	rows := raw.Rows()
	table := schema.NewSampleTable(rows)

	for col, label := range raw.Header {
		name, _ := schema.CanonicalChannel(strings.TrimSpace(label))
		if name == "" || table.HasColumn(name) {
			// Unnamed or duplicate column; first occurrence wins.
			continue
		}

		values := make([]*float64, rows)
		for i, record := range raw.Records {
			if col >= len(record) {
				continue
			}
			if name == string(schema.ChannelTime) {
				values[i] = parseTimeValue(record[col])
			} else {
				values[i] = parseNumericValue(record[col])
			}
		}
		table.AddColumn(name, values)
	}

	ensureTimeColumn(table, cfg)
	ensureBodyMassColumn(table, cfg)

	if !table.HasColumn(string(schema.ChannelVO2)) {
		return nil, ErrNoOxygenUptake
	}
	return table, nil
}

// ensureTimeColumn forward-fills parsed time values, or synthesizes a
// zero-based axis at the sampling interval when no time column exists.
func ensureTimeColumn(table *schema.SampleTable, cfg *contract.Config) {
	name := string(schema.ChannelTime)
	if values, ok := table.Column(name); ok {
		forwardFill(values)
		return
	}

	values := make([]*float64, table.Rows())
	for i := range values {
		values[i] = schema.Float(float64(i) * cfg.SamplingInterval)
	}
	synthesized := schema.NewSampleTable(table.Rows())
	synthesized.AddColumn(name, values)
	for _, col := range table.Columns {
		series, _ := table.Column(col)
		synthesized.AddColumn(col, series)
	}
	*table = *synthesized
}

// ensureBodyMassColumn fills gaps in an existing body-mass column with an
// explicit forward then backward scan, or synthesizes a constant default.
func ensureBodyMassColumn(table *schema.SampleTable, cfg *contract.Config) {
	name := string(schema.ChannelBodyMass)
	if values, ok := table.Column(name); ok {
		forwardFill(values)
		backwardFill(values)
		return
	}

	values := make([]*float64, table.Rows())
	for i := range values {
		values[i] = schema.Float(cfg.DefaultBodyMass)
	}
	table.AddColumn(name, values)
}

// parseTimeValue parses an elapsed-time cell. Longer clock formats are tried
// first: "H:MM:SS", then "MM:SS", then a bare numeric string. Unparseable
// values become missing; they never raise.
func parseTimeValue(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 3:
		h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		m, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		sec, errS := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if errH != nil || errM != nil || errS != nil || h < 0 || m < 0 || sec < 0 {
			return nil
		}
		return schema.Float(float64(h)*3600 + float64(m)*60 + sec)
	case 2:
		m, errM := strconv.Atoi(strings.TrimSpace(parts[0]))
		sec, errS := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errM != nil || errS != nil || m < 0 || sec < 0 {
			return nil
		}
		return schema.Float(float64(m)*60 + sec)
	default:
		v := parseNumericValue(s)
		if v != nil && *v < 0 {
			return nil
		}
		return v
	}
}

// parseNumericValue parses a numeric cell; anything else is missing.
func parseNumericValue(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return schema.Float(v)
}

// forwardFill carries the last valid value forward over missing entries.
// A leading run of missing values cannot be filled and remains missing.
func forwardFill(values []*float64) {
	var last *float64
	for i, v := range values {
		if v != nil {
			last = v
			continue
		}
		if last != nil {
			values[i] = schema.Float(*last)
		}
	}
}

// backwardFill carries the first valid value backward over missing entries.
func backwardFill(values []*float64) {
	var next *float64
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] != nil {
			next = values[i]
			continue
		}
		if next != nil {
			values[i] = schema.Float(*next)
		}
	}
}
