package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3sdk/internal/config"
	"github.com/Mohsinsiddi/w3sdk/internal/ui"
	"github.com/spf13/cobra"
)

var keyChain string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Show and change the defaults used by generate and wizard.

Keys: ` + strings.Join(config.Keys, ", "),
}

var configShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"list"},
	Short:   "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", ui.StyleTitle.Render("Current Configuration"))
		fmt.Fprintln(out, string(data))
		fmt.Fprintln(out, ui.Meta("Config directory: "+cfg.Dir()))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := cfg.Get(args[0])
		if err != nil {
			return fmt.Errorf("%w (keys: %s)", err, strings.Join(config.Keys, ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one configuration value",
	Example: `  w3sdk config set default_chain base-sepolia
  w3sdk config set languages js,ts
  w3sdk config set class_name VaultSDK`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		v, _ := cfg.Get(args[0])
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("%s set to %q", args[0], v)))
		return nil
	},
}

var configAddRPCCmd = &cobra.Command{
	Use:   "add-rpc <chain> <url>",
	Short: "Add a custom RPC for a chain (the first one is embedded in generated SDKs)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := resolveChain(args[0])
		if err != nil {
			return err
		}
		url := strings.TrimSpace(args[1])
		if err := cfg.AddRPC(ch.Name, url); err != nil {
			// Already present, nothing to save.
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn(err.Error()))
			return nil
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("RPC %s added for %s", url, ch.Name)))
		return nil
	},
}

var configRemoveRPCCmd = &cobra.Command{
	Use:   "remove-rpc <chain> <url>",
	Short: "Remove a custom RPC",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := resolveChain(args[0])
		if err != nil {
			return err
		}
		if err := cfg.RemoveRPC(ch.Name, strings.TrimSpace(args[1])); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("RPC removed for "+ch.Name))
		return nil
	},
}

var configSetExplorerKeyCmd = &cobra.Command{
	Use:   "set-explorer-key [key]",
	Short: "Store an explorer API key in the OS keychain",
	Long: `Store an explorer API key used by --fetch and verify. Without --chain the key
is used for every chain that has no key of its own. When the key argument is
omitted it is read from stdin.

$W3SDK_EXPLORER_KEY overrides any stored key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := keyChainName()
		if err != nil {
			return err
		}
		var key string
		if len(args) == 1 {
			key = args[0]
		} else {
			fmt.Fprint(cmd.ErrOrStderr(), "Explorer API key: ")
			key, _ = bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		}

		keys, err := openKeys()
		if err != nil {
			return fmt.Errorf("opening keychain: %w", err)
		}
		if err := keys.SetExplorerKey(name, key); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Explorer key stored for "+keyScope(name)))
		return nil
	},
}

var configDeleteExplorerKeyCmd = &cobra.Command{
	Use:   "delete-explorer-key",
	Short: "Remove a stored explorer API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := keyChainName()
		if err != nil {
			return err
		}
		keys, err := openKeys()
		if err != nil {
			return fmt.Errorf("opening keychain: %w", err)
		}
		if err := keys.DeleteExplorerKey(name); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Explorer key removed for "+keyScope(name)))
		return nil
	},
}

// keyChainName validates --chain for the explorer key commands; "" means
// the global key.
func keyChainName() (string, error) {
	if keyChain == "" {
		return "", nil
	}
	ch, err := resolveChain(keyChain)
	if err != nil {
		return "", err
	}
	return ch.Name, nil
}

func keyScope(name string) string {
	if name == "" {
		return "all chains"
	}
	return name
}

func init() {
	for _, c := range []*cobra.Command{configSetExplorerKeyCmd, configDeleteExplorerKeyCmd} {
		c.Flags().StringVar(&keyChain, "chain", "", "chain the key belongs to (default: all chains)")
	}
	configCmd.AddCommand(
		configShowCmd,
		configGetCmd,
		configSetCmd,
		configAddRPCCmd,
		configRemoveRPCCmd,
		configSetExplorerKeyCmd,
		configDeleteExplorerKeyCmd,
	)
}
