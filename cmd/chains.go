package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Mohsinsiddi/w3sdk/internal/rpc"
	"github.com/Mohsinsiddi/w3sdk/internal/ui"
	"github.com/spf13/cobra"
)

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List the chains generated SDKs can target",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := ui.NewTable([]ui.Column{
			{Title: "NAME", Width: 16},
			{Title: "DISPLAY", Width: 20},
			{Title: "CHAIN ID", Width: 10},
			{Title: "VIEM EXPORT", Width: 16},
			{Title: "EXPLORER API", Width: 12},
			{Title: "RPC", Width: 40},
		})

		for _, c := range registry.All() {
			name := c.Name
			if c.Name == cfg.DefaultChain {
				name += " *"
			}
			api := "no"
			if c.ExplorerAPI != "" {
				api = "yes"
			}
			t.AddRow(ui.Row{
				ui.ChainName(name),
				c.DisplayName,
				strconv.FormatInt(c.ChainID, 10),
				c.ViemImport,
				api,
				cfg.RPCFor(&c),
			})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, t.Render())
		fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d chains · * default (change with: w3sdk config set default_chain <name>)", len(registry.All()))))
		return nil
	},
}

var chainsProbeCmd = &cobra.Command{
	Use:   "probe [chain]",
	Short: "Check a chain's RPC endpoints for latency and chain id",
	Long: `Probe every RPC known for the chain (custom ones from config first) and
show which one answers fastest with the right chain id. The fastest healthy
endpoint is what verify falls back to when --rpc is not given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		ch, err := resolveChain(name)
		if err != nil {
			return err
		}
		urls := rpcCandidates(ch)
		if len(urls) == 0 {
			return fmt.Errorf("%s has no RPC endpoints (add one with: w3sdk config add-rpc %s <url>)", ch.Name, ch.Name)
		}

		sp := ui.NewSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Probing %d RPC endpoints...", len(urls)))
		sp.Start()
		eps := rpc.Probe(cmd.Context(), urls, ch.ChainID)
		sp.Stop()

		t := ui.NewTable([]ui.Column{
			{Title: "RPC", Width: 44},
			{Title: "LATENCY", Width: 10},
			{Title: "STATUS", Width: 40},
		})
		for _, ep := range eps {
			status := ui.Success("ok")
			if !ep.Healthy() {
				status = ui.Err(ep.Err.Error())
			}
			t.AddRow(ui.Row{ep.URL, ep.Latency.Round(time.Millisecond).String(), status})
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, t.Render())

		best, err := rpc.Pick(eps, rpc.AlgorithmFastest)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ui.Hint("Fastest: "+best.URL))
		return nil
	},
}

func init() {
	chainsCmd.AddCommand(chainsProbeCmd)
}
