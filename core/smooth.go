package core

import (
	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/schema"
)

// SmoothTable appends a trailing-window mean column for every configured
// channel present in the table. Raw columns are retained unmodified for
// audit and export; channels absent from the input are silently skipped.
func SmoothTable(table *schema.SampleTable, cfg *contract.Config) *schema.SampleTable {
	out := table.Clone()
	for _, ch := range schema.SmoothedChannels {
		raw, ok := out.Column(string(ch))
		if !ok {
			continue
		}
		out.AddColumn(schema.SmoothedName(ch, cfg.WindowDuration), rollingMean(raw, cfg.WindowRows))
	}
	return out
}

// rollingMean computes a causal simple moving average over n consecutive
// rows. The value at row i is defined only when all n values ending at i are
// non-missing; a gap resets the window. Only current and preceding rows are
// read, so the series is computable during a live test.
func rollingMean(values []*float64, n int) []*float64 {
	out := make([]*float64, len(values))
	if n < 1 {
		return out
	}

	streak := 0 // length of the non-missing run ending at the current row
	for i, v := range values {
		if v == nil {
			streak = 0
			continue
		}
		streak++
		if streak < n {
			continue
		}

		var sum float64
		for j := i - n + 1; j <= i; j++ {
			sum += *values[j]
		}
		out[i] = schema.Float(sum / float64(n))
	}
	return out
}
