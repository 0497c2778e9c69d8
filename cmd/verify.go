package cmd

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Mohsinsiddi/w3sdk/internal/chain"
	"github.com/Mohsinsiddi/w3sdk/internal/contract"
	"github.com/Mohsinsiddi/w3sdk/internal/log"
	"github.com/Mohsinsiddi/w3sdk/internal/rpc"
	"github.com/Mohsinsiddi/w3sdk/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	verifyChain    string
	verifyBytecode string
	verifyRPC      string
)

var errBytecodeMismatch = errors.New("deployed bytecode does not match")

var verifyCmd = &cobra.Command{
	Use:   "verify <address|ens-name>",
	Short: "Check a contract's explorer verification and deployed bytecode",
	Long: `Look the contract up on the chain's explorer and report whether its source
is verified. With --bytecode, also compare the deployed runtime bytecode with
a local build (Hardhat/Foundry artifact or a file of hex), ignoring the
compiler metadata trailer.

Examples:
  w3sdk verify 0xABCD...
  w3sdk verify 0xABCD... --bytecode ./out/Token.sol/Token.json
  w3sdk verify 0xABCD... --chain base --bytecode ./Token.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		address, err := resolveAddress(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		ch, err := resolveChain(verifyChain)
		if err != nil {
			return err
		}
		ctx := log.WithLogField(cmd.Context(), "contract", address)
		ctx = log.WithLogField(ctx, "chain", ch.Name)

		var local string
		if verifyBytecode != "" {
			if local, err = loadLocalBytecode(verifyBytecode); err != nil {
				return err
			}
		}

		ex, exErr := chain.ExplorerFor(ch, explorerKey(ctx, ch))
		if exErr != nil && local == "" {
			return exErr
		}

		var (
			v        *chain.Verification
			deployed string
		)
		g, gctx := errgroup.WithContext(ctx)
		if ex != nil {
			g.Go(func() error {
				var err error
				v, err = ex.Verify(gctx, address)
				return err
			})
		}
		if local != "" {
			g.Go(func() error {
				var err error
				deployed, err = deployedCode(gctx, ex, ch, verifyRPC, address)
				return err
			})
		}

		sp := ui.NewSpinner(cmd.ErrOrStderr(), "Checking "+ui.TruncateAddr(address)+" on "+ch.DisplayName+"...")
		sp.Start()
		err = g.Wait()
		sp.Stop()
		if err != nil {
			return err
		}

		pairs := [][2]string{
			{"Contract", address},
			{"Chain", ch.DisplayName + " (" + strconv.FormatInt(ch.ChainID, 10) + ")"},
		}
		if v != nil {
			if v.Verified {
				pairs = append(pairs,
					[2]string{"Verified", ui.Success("yes")},
					[2]string{"Name", v.ContractName},
					[2]string{"Compiler", v.CompilerVersion},
					[2]string{"Functions", strconv.Itoa(contract.CountFunctions(v.ABI))},
				)
			} else {
				pairs = append(pairs, [2]string{"Verified", ui.Warn("no")})
			}
		}
		if link := ch.AddressURL(address); link != "" {
			pairs = append(pairs, [2]string{"Explorer", link})
		}
		fmt.Fprintln(out, ui.KeyValueBlock("Contract verification", pairs))

		if local == "" {
			if v != nil && v.Verified {
				fmt.Fprintln(out, ui.Hint("Generate an SDK with: w3sdk generate "+address+" --fetch --chain "+ch.Name))
			}
			return nil
		}
		if chain.NormalizeCode(deployed) == "" {
			return fmt.Errorf("no contract code at %s on %s", address, ch.DisplayName)
		}
		if !chain.CodeMatches(local, deployed) {
			return fmt.Errorf("%w %s", errBytecodeMismatch, verifyBytecode)
		}
		fmt.Fprintln(out, ui.Success("Deployed bytecode matches "+verifyBytecode))
		return nil
	},
}

// deployedCode asks the explorer first and falls back to rpcURL, or to the
// fastest of the chain's RPCs when rpcURL is empty.
func deployedCode(ctx context.Context, ex *chain.Explorer, ch *chain.Chain, rpcURL, address string) (string, error) {
	if ex != nil {
		code, err := ex.DeployedBytecode(ctx, address)
		if err == nil {
			return code, nil
		}
		log.L(ctx).WithError(err).Debug("explorer eth_getCode failed, using RPC")
	}
	if rpcURL == "" {
		var err error
		if rpcURL, err = rpc.Best(ctx, rpcCandidates(ch), ch.ChainID, rpc.AlgorithmFastest); err != nil {
			return "", fmt.Errorf("reading deployed code: %w (use --rpc)", err)
		}
	}
	return chain.NewEVMClient(rpcURL).GetCode(ctx, address)
}

// loadLocalBytecode reads runtime bytecode from a compiler artifact or a
// plain hex file and returns it as hex without 0x.
func loadLocalBytecode(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read bytecode file: %w", err)
	}
	data = bytes.TrimSpace(data)
	if bytes.HasPrefix(data, []byte("{")) {
		art, err := contract.LoadArtifactFull(path)
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(art.Bytecode), nil
	}

	code := chain.NormalizeCode(string(data))
	if code == "" {
		return "", fmt.Errorf("bytecode file is empty: %s", path)
	}
	if _, err := hex.DecodeString(code); err != nil {
		return "", fmt.Errorf("bytecode file is not hex: %s", path)
	}
	return code, nil
}

func init() {
	verifyCmd.Flags().StringVar(&verifyChain, "chain", "", "chain the contract is deployed on (default from config)")
	verifyCmd.Flags().StringVar(&verifyBytecode, "bytecode", "", "compare with this artifact or hex file")
	verifyCmd.Flags().StringVar(&verifyRPC, "rpc", "", "RPC endpoint for the eth_getCode fallback")
}
