package cmd

import (
	"fmt"
	"strconv"

	"github.com/Mohsinsiddi/w3sdk/internal/contract"
	"github.com/Mohsinsiddi/w3sdk/internal/ui"
	"github.com/spf13/cobra"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "List bundled standard ABIs usable with --builtin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := ui.NewTable([]ui.Column{
			{Title: "ID", Width: 8},
			{Title: "NAME", Width: 16},
			{Title: "READ", Width: 5},
			{Title: "WRITE", Width: 5},
			{Title: "DESCRIPTION", Width: 48},
		})
		for _, b := range contract.AllBuiltins() {
			cls, err := contract.Classify(b.ABI)
			if err != nil {
				return fmt.Errorf("built-in %s: %w", b.ID, err)
			}
			t.AddRow(ui.Row{
				b.ID,
				b.Name,
				strconv.Itoa(len(cls.Read)),
				strconv.Itoa(len(cls.Write)),
				b.Description,
			})
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, t.Render())
		fmt.Fprintln(out, ui.Hint("w3sdk generate <address> --builtin <id>"))
		return nil
	},
}
