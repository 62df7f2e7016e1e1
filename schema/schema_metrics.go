package schema

// MetricsSummary holds the peak/maximal metrics of one dataset. Optional
// fields are nil when the underlying series was empty or entirely missing;
// presentation layers render nil as "N/A". The summary is computed once per
// run and never mutated afterwards.
type MetricsSummary struct {
	// Plateau reports whether the terminal portion of the smoothed V'O2
	// trace satisfies the plateau criterion.
	Plateau bool `json:"plateau"`

	// PlateauLabel is the human-readable plateau status.
	PlateauLabel string `json:"plateau_label"`

	// VO2Peak is the peak smoothed oxygen uptake in L/min.
	VO2Peak *float64 `json:"vo2_peak,omitempty"`

	// VO2PeakPerKg is the mass-normalized oxygen uptake in mL/kg/min, read
	// from the same row as VO2Peak.
	VO2PeakPerKg *float64 `json:"vo2_peak_per_kg,omitempty"`

	// VO2PeakTime is the elapsed time in seconds at which VO2Peak occurred
	// (first occurrence on ties).
	VO2PeakTime *float64 `json:"vo2_peak_time,omitempty"`

	// VEPeak is the peak smoothed minute ventilation in L/min, maximized
	// independently of the V'O2 peak row.
	VEPeak *float64 `json:"ve_peak,omitempty"`

	// HRPeak is the peak smoothed heart rate in bpm, maximized independently
	// of the V'O2 peak row.
	HRPeak *float64 `json:"hr_peak,omitempty"`

	// RERTerminal is the mean of the last 3 non-missing respiratory exchange
	// ratio values.
	RERTerminal *float64 `json:"rer_terminal,omitempty"`
}

// DecileRow is one entry of the percentage-of-peak table: the earliest row
// whose smoothed V'O2 reached the decile threshold of the peak.
type DecileRow struct {
	// TargetPct is the nominal decile target (10, 20, ..., 100).
	TargetPct int `json:"target_pct"`

	// AttainedPct is the percentage of peak actually reached at the selected
	// row. It may exceed TargetPct since selection uses a first-row-at-or-
	// above rule, not interpolation.
	AttainedPct float64 `json:"attained_pct"`

	// TimeSec is the elapsed time of the selected row in seconds.
	TimeSec float64 `json:"time_sec"`

	// RowIndex is the zero-based index of the selected row.
	RowIndex int `json:"row_index"`

	// VO2 is the smoothed oxygen uptake at the selected row in L/min.
	VO2 float64 `json:"vo2"`
}
