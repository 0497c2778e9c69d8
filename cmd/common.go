package cmd

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Mohsinsiddi/w3sdk/internal/chain"
	"github.com/Mohsinsiddi/w3sdk/internal/contract"
	"github.com/Mohsinsiddi/w3sdk/internal/ens"
	"github.com/Mohsinsiddi/w3sdk/internal/log"
	"github.com/Mohsinsiddi/w3sdk/internal/sdkgen"
	"github.com/Mohsinsiddi/w3sdk/internal/ui"
)

// errLine renders a command error for stderr.
func errLine(err error) string {
	return ui.Err(err.Error())
}

// resolveAddress accepts a hex address or an ENS name. Names are resolved
// on Ethereum mainnet whatever chain the contract lives on.
func resolveAddress(ctx context.Context, s string) (string, error) {
	if !ens.IsName(s) {
		return chain.NormalizeAddress(s)
	}
	mainnet, err := registry.GetByName("ethereum")
	if err != nil {
		return "", err
	}
	addr, err := ens.NewResolver(cfg.RPCFor(mainnet)).Resolve(ctx, s)
	if err != nil {
		return "", err
	}
	log.L(ctx).WithField("name", ens.Normalize(s)).WithField("address", addr).Debug("resolved ENS name")
	return addr, nil
}

// resolveChain returns the named chain, or the configured default.
func resolveChain(name string) (*chain.Chain, error) {
	if name == "" {
		name = cfg.DefaultChain
	}
	c, err := registry.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (see: w3sdk chains)", err, name)
	}
	return c, nil
}

func chainRef(c *chain.Chain) sdkgen.ChainRef {
	return sdkgen.ChainRef{Name: c.Name, ViemImport: c.ViemImport, ID: c.ChainID}
}

// abiSource names exactly one place to read an ABI from.
type abiSource struct {
	File    string // path or URL
	Builtin string
	Fetch   bool
}

func (s abiSource) count() int {
	n := 0
	if s.File != "" {
		n++
	}
	if s.Builtin != "" {
		n++
	}
	if s.Fetch {
		n++
	}
	return n
}

// loadABI resolves src to an ABI and a short label describing where it came
// from. Progress goes to w.
func loadABI(ctx context.Context, w io.Writer, src abiSource, address string, c *chain.Chain) ([]contract.ABIEntry, string, error) {
	if src.count() != 1 {
		return nil, "", fmt.Errorf("choose exactly one ABI source: --abi <file|url>, --builtin <id> or --fetch")
	}

	switch {
	case src.File != "" && contract.IsURL(src.File):
		abi, err := contract.NewFetcher().FetchFromURL(ctx, src.File)
		return abi, src.File, err

	case src.File != "":
		// Supports both raw ABI arrays and Hardhat/Foundry artifacts.
		abi, err := contract.LoadFromArtifact(src.File)
		return abi, src.File, err

	case src.Builtin != "":
		b, ok := contract.GetBuiltin(src.Builtin)
		if !ok {
			return nil, "", fmt.Errorf("unknown built-in %q (available: %s)", src.Builtin, strings.Join(builtinIDs(), ", "))
		}
		return b.ABI, "built-in " + b.ID, nil
	}

	ex, err := chain.ExplorerFor(c, explorerKey(ctx, c))
	if err != nil {
		return nil, "", err
	}
	sp := ui.NewSpinner(w, "Fetching verified ABI from "+c.DisplayName+" explorer...")
	sp.Start()
	v, err := ex.Verify(ctx, address)
	sp.Stop()
	if err != nil {
		return nil, "", err
	}
	if !v.Verified {
		return nil, "", fmt.Errorf("%s is not verified on %s; pass the ABI with --abi <file>", address, c.DisplayName)
	}
	return v.ABI, "explorer (" + v.ContractName + ")", nil
}

// explorerKey returns the stored API key for c. Keys are optional, so a
// keychain that cannot be opened only costs a debug line.
func explorerKey(ctx context.Context, c *chain.Chain) string {
	keys, err := openKeys()
	if err != nil {
		log.L(ctx).WithError(err).Debug("keychain unavailable")
		return ""
	}
	key, err := keys.ExplorerKey(c.Name)
	if err != nil {
		log.L(ctx).WithError(err).Debug("reading explorer key")
		return ""
	}
	return key
}

func builtinIDs() []string {
	var ids []string
	for _, b := range contract.AllBuiltins() {
		ids = append(ids, b.ID)
	}
	return ids
}

// packageDir turns an npm package name into a directory name:
// "@acme/vault-sdk" → "acme-vault-sdk".
func packageDir(pkg string) string {
	s := strings.ReplaceAll(strings.TrimPrefix(pkg, "@"), "/", "-")
	s = strings.Trim(s, ". ")
	if s == "" {
		return sdkgen.DefaultPackageName
	}
	return s
}

// rpcCandidates lists custom RPCs for c ahead of the registered ones.
func rpcCandidates(c *chain.Chain) []string {
	var urls []string
	for _, u := range slices.Concat(cfg.GetRPCs(c.Name), c.RPCs) {
		if !slices.Contains(urls, u) {
			urls = append(urls, u)
		}
	}
	return urls
}
