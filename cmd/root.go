package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mohsinsiddi/w3sdk/internal/chain"
	"github.com/Mohsinsiddi/w3sdk/internal/config"
	"github.com/Mohsinsiddi/w3sdk/internal/keystore"
	"github.com/Mohsinsiddi/w3sdk/internal/log"
	"github.com/Mohsinsiddi/w3sdk/internal/sdkgen"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/w3sdk/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool

	registry = chain.NewRegistry()
	sdkCache = sdkgen.NewCache()

	// openKeys is swapped out in tests.
	openKeys = func() (*keystore.Keys, error) {
		kc, err := keystore.OpenKeychain(filepath.Join(cfg.Dir(), "keys"))
		if err != nil {
			return nil, err
		}
		return keystore.New(kc), nil
	}
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "w3sdk",
	Short: "Generate client SDKs from smart contract ABIs",
	Long: `w3sdk turns a deployed contract's ABI into a ready-to-publish npm package:
a viem-based client class with read and write namespaces, the ABI, and a README.

  w3sdk generate 0xABCD... --abi ./out/Token.sol/Token.json --class TokenSDK
  w3sdk generate 0xABCD... --fetch --lang js,ts --zip
  w3sdk wizard

Configuration lives in ~/.w3sdk (override with --config or $W3SDK_CONFIG_DIR).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		log.SetLevel(level)
		cmd.SetContext(log.WithLogField(cmd.Context(), "cmd", cmd.Name()))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, errLine(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default: $W3SDK_CONFIG_DIR or ~/.w3sdk)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	// Register all sub-commands.
	rootCmd.AddCommand(
		generateCmd,
		inspectCmd,
		verifyCmd,
		wizardCmd,
		chainsCmd,
		builtinsCmd,
		historyCmd,
		configCmd,
	)
}
