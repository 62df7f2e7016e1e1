package core

import (
	"github.com/spiroflow/vo2peak/internal/contract"
	"github.com/spiroflow/vo2peak/schema"
)

// DeriveMetrics appends the mass-normalized oxygen uptake and respiratory
// exchange ratio columns computed row-wise from the smoothed channels. The
// derived columns participate in downstream lookups exactly like first-class
// smoothed channels.
func DeriveMetrics(table *schema.SampleTable, cfg *contract.Config) {
	vo2, ok := table.Column(schema.SmoothedName(schema.ChannelVO2, cfg.WindowDuration))
	if !ok {
		return
	}

	// V'O2/kg = smoothed V'O2 / body mass * 1000 (L/min -> mL/kg/min).
	// The normalizer guarantees a fully-filled body-mass column.
	if mass, ok := table.Column(string(schema.ChannelBodyMass)); ok {
		perKg := make([]*float64, len(vo2))
		for i, v := range vo2 {
			if v == nil || mass[i] == nil || *mass[i] == 0 {
				continue
			}
			perKg[i] = schema.Float(*v / *mass[i] * 1000)
		}
		table.AddColumn(schema.VO2PerKgName(cfg.WindowDuration), perKg)
	}

	// RER = smoothed V'CO2 / smoothed V'O2. Division by a missing or zero
	// V'O2 yields a missing value, never an error.
	if vco2, ok := table.Column(schema.SmoothedName(schema.ChannelVCO2, cfg.WindowDuration)); ok {
		rer := make([]*float64, len(vo2))
		for i, v := range vo2 {
			if v == nil || *v == 0 || vco2[i] == nil {
				continue
			}
			rer[i] = schema.Float(*vco2[i] / *v)
		}
		table.AddColumn(schema.RERName(cfg.WindowDuration), rer)
	}
}
