package schema

import (
	"fmt"
	"strings"
	"unicode"
)

// Channel identifies a canonical physiological channel.
type Channel string

// Canonical channel identifiers. The names follow the MetaLyzer export
// convention so datasets that are already canonical pass through untouched.
const (
	ChannelTime     Channel = "t"        // elapsed time in seconds
	ChannelVO2      Channel = "V'O2"     // oxygen uptake, L/min
	ChannelVCO2     Channel = "V'CO2"    // carbon-dioxide output, L/min
	ChannelVE       Channel = "V'E"      // minute ventilation, L/min
	ChannelHR       Channel = "HR"       // heart rate, bpm
	ChannelVT       Channel = "VT"       // tidal volume, L
	ChannelBF       Channel = "BF"       // breathing frequency, 1/min
	ChannelBodyMass Channel = "BodyMass" // body mass, kg
)

// SmoothedChannels lists the gas-exchange and HR channels that receive a
// trailing-window mean column.
var SmoothedChannels = []Channel{
	ChannelVO2, ChannelVCO2, ChannelVE, ChannelHR, ChannelVT, ChannelBF,
}

// channelAliases maps normalized raw labels (lowercased, whitespace removed)
// to their canonical channel. The map is populated once at init time and is
// never mutated afterwards.
var channelAliases = map[string]Channel{
	"t":           ChannelTime,
	"time":        ChannelTime,
	"time(s)":     ChannelTime,
	"t(s)":        ChannelTime,
	"elapsedtime": ChannelTime,

	"v'o2":         ChannelVO2,
	"vo2":          ChannelVO2,
	"vo2(l/min)":   ChannelVO2,
	"v'o2(l/min)":  ChannelVO2,
	"oxygenuptake": ChannelVO2,

	"v'co2":               ChannelVCO2,
	"vco2":                ChannelVCO2,
	"vco2(l/min)":         ChannelVCO2,
	"v'co2(l/min)":        ChannelVCO2,
	"carbondioxideoutput": ChannelVCO2,

	"v'e":               ChannelVE,
	"ve":                ChannelVE,
	"ve(l/min)":         ChannelVE,
	"v'e(l/min)":        ChannelVE,
	"minuteventilation": ChannelVE,

	"hr":        ChannelHR,
	"hr(bpm)":   ChannelHR,
	"heartrate": ChannelHR,

	"vt":          ChannelVT,
	"vt(l)":       ChannelVT,
	"tidalvolume": ChannelVT,

	"bf":                 ChannelBF,
	"bf(1/min)":          ChannelBF,
	"rf":                 ChannelBF,
	"breathingfrequency": ChannelBF,

	"bodymass":   ChannelBodyMass,
	"mass":       ChannelBodyMass,
	"mass(kg)":   ChannelBodyMass,
	"weight":     ChannelBodyMass,
	"weight(kg)": ChannelBodyMass,
	"bodyweight": ChannelBodyMass,
}

// NormalizeLabel folds a raw column label for alias lookup by lowercasing it
// and stripping all whitespace.
func NormalizeLabel(label string) string {
	folded := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, label)
	return strings.ToLower(folded)
}

// CanonicalChannel resolves a raw column label against the alias table.
// It returns the canonical channel and true on a match; otherwise the label
// is passed through unchanged and ok is false.
func CanonicalChannel(label string) (string, bool) {
	if ch, ok := channelAliases[NormalizeLabel(label)]; ok {
		return string(ch), true
	}
	return label, false
}

// AliasesFor returns the raw aliases recognized for a canonical channel,
// used by the static channels display.
func AliasesFor(ch Channel) []string {
	var aliases []string
	for alias, canonical := range channelAliases {
		if canonical == ch {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}

// SmoothedName returns the column name for a channel's trailing-window mean,
// e.g. "V'O2_30s" for a 30 second window.
func SmoothedName(ch Channel, windowSeconds float64) string {
	return fmt.Sprintf("%s_%.0fs", ch, windowSeconds)
}

// VO2PerKgName returns the column name of the mass-normalized oxygen uptake
// derived from the smoothed V'O2, e.g. "V'O2/kg_30s".
func VO2PerKgName(windowSeconds float64) string {
	return fmt.Sprintf("%s/kg_%.0fs", ChannelVO2, windowSeconds)
}

// RERName returns the column name of the respiratory exchange ratio derived
// from the smoothed channels, e.g. "RER_30s".
func RERName(windowSeconds float64) string {
	return fmt.Sprintf("RER_%.0fs", windowSeconds)
}
