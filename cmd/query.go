package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/julianunes2703/ipp/extractor"
	"github.com/julianunes2703/ipp/extractor/common"
)

var queryCmd = &cobra.Command{
	Use:   "query <semantic-key> [month]",
	Short: "Looks up an account by semantic key",
	Long: `Resolves a semantic account key ("ebitda", "lucro_liquido") against the
extracted rows. With a month, prints that month's value; without, prints
the whole row as a table.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		bindTarget(cmd)
		snap := fetchSnapshot()

		row, found := snap.FindRow(args[0])
		if !found {
			fmt.Fprintf(os.Stderr, "no row matches %q\n", args[0])
			os.Exit(1)
		}

		if len(args) == 2 {
			fmt.Println(row.Value(common.MonthKey(args[1])).String())
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		header := table.Row{"Account"}
		values := table.Row{row.Name}
		for _, month := range snap.Months {
			header = append(header, string(month))
			values = append(values, row.Value(month).StringFixed(2))
		}
		t.AppendHeader(header)
		t.AppendRow(values)
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

var debugCmd = &cobra.Command{
	Use:   "debug <semantic-key>...",
	Short: "Reports which semantic keys resolve to extracted rows",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bindTarget(cmd)
		snap := fetchSnapshot()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Key", "Found"})
		for _, status := range snap.DebugKeys(args...) {
			t.AppendRow(table.Row{status.Key, status.Found})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

func bindTarget(cmd *cobra.Command) {
	if t, _ := cmd.Flags().GetString("target"); t != "" {
		viper.Set("target", t)
	}
}

// fetchSnapshot runs one extraction pass against the configured target.
func fetchSnapshot() extractor.Snapshot {
	tgt := target()
	if tgt == "" {
		fmt.Fprintln(os.Stderr, "no target: pass --target or set source.url in the config")
		os.Exit(1)
	}

	engine := extractor.NewEngine(extractor.LoadConfig(), sourceFormat(tgt), extractor.NewFetcher(tgt))
	if err := engine.Refresh(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "extraction failed: %v\n", err)
		os.Exit(1)
	}
	return engine.Snapshot()
}

func init() {
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(debugCmd)
	for _, cmd := range []*cobra.Command{queryCmd, debugCmd} {
		cmd.Flags().StringP("target", "t", "", "File or URL of the DRE export")
	}
}
