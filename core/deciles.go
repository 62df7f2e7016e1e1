package core

import (
	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/schema"
)

// Decile thresholds of the percentage-of-peak table.
const (
	decileStep = 10
	decileMax  = 100
)

// BuildDecileTable locates, for each decile of the peak oxygen uptake, the
// earliest row whose smoothed V'O2 reaches that threshold. Deciles no row
// reaches are omitted; a zero or missing peak yields an empty table.
func BuildDecileTable(table *schema.SampleTable, peak *float64, cfg *contract.Config) []schema.DecileRow {
	if peak == nil || *peak <= 0 {
		return nil
	}
	vo2, ok := table.Column(schema.SmoothedName(schema.ChannelVO2, cfg.WindowDuration))
	if !ok {
		return nil
	}
	ts, _ := table.Column(string(schema.ChannelTime))

	var rows []schema.DecileRow
	for target := decileStep; target <= decileMax; target += decileStep {
		for i, v := range vo2 {
			if v == nil {
				continue
			}
			pct := *v / *peak * 100
			if pct < float64(target) {
				continue
			}
			rows = append(rows, schema.DecileRow{
				TargetPct:   target,
				AttainedPct: pct,
				TimeSec:     rowTime(ts, i, cfg),
				RowIndex:    i,
				VO2:         *v,
			})
			break
		}
	}
	return rows
}

// rowTime resolves the elapsed time of a row. Only an unfilled leading time
// value can be missing after normalization; fall back to the nominal axis.
func rowTime(ts []*float64, i int, cfg *contract.Config) float64 {
	if i < len(ts) && ts[i] != nil {
		return *ts[i]
	}
	return float64(i) * cfg.SamplingInterval
}
