package cmd

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3sdk/internal/ui"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently generated SDKs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := cfg.LoadHistory()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(h.Entries) == 0 {
			fmt.Fprintln(out, ui.Info("No SDKs generated yet. Try: w3sdk wizard"))
			return nil
		}

		entries := h.Entries
		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[len(entries)-historyLimit:]
		}

		t := ui.NewTable([]ui.Column{
			{Title: "WHEN", Width: 20},
			{Title: "CONTRACT", Width: 14},
			{Title: "CHAIN", Width: 16},
			{Title: "PACKAGE", Width: 24},
			{Title: "LANG", Width: 22},
			{Title: "OUTPUT", Width: 36},
		})
		// Newest first.
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			t.AddRow(ui.Row{
				e.GeneratedAt,
				ui.TruncateAddr(e.Address),
				e.Chain,
				e.PackageName,
				strings.Join(e.Languages, ","),
				e.Output,
			})
		}
		fmt.Fprintln(out, t.Render())
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of entries to show (0 = all)")
}
