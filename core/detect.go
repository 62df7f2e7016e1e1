package core

import (
	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/schema"
)

// terminalRERPoints is how many trailing RER values feed the terminal mean.
const terminalRERPoints = 3

// DetectPeaks computes the metrics summary from the smoothed and derived
// table. Every max over an empty or entirely-missing series resolves to nil,
// never to a numeric default or an error.
func DetectPeaks(table *schema.SampleTable, cfg *contract.Config) schema.MetricsSummary {
	var summary schema.MetricsSummary

	if vo2, ok := table.Column(schema.SmoothedName(schema.ChannelVO2, cfg.WindowDuration)); ok {
		if idx, peak := maxWithIndex(vo2); idx >= 0 {
			summary.VO2Peak = schema.Float(peak)

			// The per-kg peak is read from the same row as the absolute
			// peak: one time point represents the true maximal effort.
			if perKg, ok := table.Column(schema.VO2PerKgName(cfg.WindowDuration)); ok && perKg[idx] != nil {
				summary.VO2PeakPerKg = schema.Float(*perKg[idx])
			}
			if ts, ok := table.Column(string(schema.ChannelTime)); ok && ts[idx] != nil {
				summary.VO2PeakTime = schema.Float(*ts[idx])
			}
		}
		summary.Plateau = isPlateau(vo2, cfg.PlateauThreshold)
	}
	summary.PlateauLabel = schema.GetPlateauLabel(summary.Plateau)

	// Ventilation and heart-rate peaks are maximized over their own series,
	// not tied to the V'O2 peak row.
	if ve, ok := table.Column(schema.SmoothedName(schema.ChannelVE, cfg.WindowDuration)); ok {
		if idx, peak := maxWithIndex(ve); idx >= 0 {
			summary.VEPeak = schema.Float(peak)
		}
	}
	if hr, ok := table.Column(schema.SmoothedName(schema.ChannelHR, cfg.WindowDuration)); ok {
		if idx, peak := maxWithIndex(hr); idx >= 0 {
			summary.HRPeak = schema.Float(peak)
		}
	}

	if rer, ok := table.Column(schema.RERName(cfg.WindowDuration)); ok {
		summary.RERTerminal = tailMean(rer, terminalRERPoints)
	}

	return summary
}

// isPlateau checks the last two successive differences of consecutive
// non-missing values against the threshold. Both increments must be strictly
// below it. Fewer than two valid differences means "not yet plateaued",
// which is not an error.
func isPlateau(values []*float64, threshold float64) bool {
	var valid []float64
	for _, v := range values {
		if v != nil {
			valid = append(valid, *v)
		}
	}
	if len(valid) < 3 {
		return false
	}

	n := len(valid)
	last := valid[n-1] - valid[n-2]
	prev := valid[n-2] - valid[n-3]
	return last < threshold && prev < threshold
}

// maxWithIndex returns the first index holding the maximum non-missing value.
// An empty or entirely-missing series yields index -1.
func maxWithIndex(values []*float64) (int, float64) {
	idx := -1
	var best float64
	for i, v := range values {
		if v == nil {
			continue
		}
		if idx < 0 || *v > best {
			idx = i
			best = *v
		}
	}
	return idx, best
}

// tailMean averages the last n non-missing values. Fewer than n values are
// averaged as-is; an entirely-missing series yields nil.
func tailMean(values []*float64, n int) *float64 {
	var tail []float64
	for i := len(values) - 1; i >= 0 && len(tail) < n; i-- {
		if values[i] != nil {
			tail = append(tail, *values[i])
		}
	}
	if len(tail) == 0 {
		return nil
	}

	var sum float64
	for _, v := range tail {
		sum += v
	}
	return schema.Float(sum / float64(len(tail)))
}
