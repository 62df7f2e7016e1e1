package cmd

import (
	"os"
	"sort"
	"strings"

	"github.com/spiroflow/vo2peak/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// channelsCmd displays the canonical channels and their recognized aliases.
var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Display the canonical channels and the column labels mapped to them",
	Long: `Show every physiological channel the analyzer understands and the raw
column labels that normalize to it. Label matching is case-insensitive and
ignores whitespace.

No dataset is read - this is purely informational.

Use this to:
- Check whether your cart's export labels will be recognized
- Pick canonical names when preparing a CSV by hand

Examples:
  # Show the alias table
  vo2peak channels`,
	Run: func(_ *cobra.Command, _ []string) {
		channels := []schema.Channel{
			schema.ChannelTime,
			schema.ChannelVO2,
			schema.ChannelVCO2,
			schema.ChannelVE,
			schema.ChannelHR,
			schema.ChannelVT,
			schema.ChannelBF,
			schema.ChannelBodyMass,
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"Channel", "Recognized labels"})
		data := make([][]string, 0, len(channels))
		for _, ch := range channels {
			aliases := schema.AliasesFor(ch)
			sort.Strings(aliases)
			data = append(data, []string{string(ch), strings.Join(aliases, ", ")})
		}
		if err := table.Bulk(data); err != nil {
			return
		}
		_ = table.Render()
	},
}
