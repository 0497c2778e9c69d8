package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Mohsinsiddi/w3sdk/internal/config"
	"github.com/Mohsinsiddi/w3sdk/internal/contract"
	"github.com/Mohsinsiddi/w3sdk/internal/log"
	"github.com/Mohsinsiddi/w3sdk/internal/sdkgen"
	"github.com/Mohsinsiddi/w3sdk/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// generateOptions carries one generation run, from flags or the wizard.
// Empty fields fall back to the config.
type generateOptions struct {
	Address        string
	Chain          string
	Source         abiSource
	Languages      []string
	ClassName      string
	PackageName    string
	PackageVersion string
	RPCURL         string
	OutDir         string
	Zip            bool
	Print          bool
	Force          bool
}

var genOpts generateOptions

var generateCmd = &cobra.Command{
	Use:   "generate <address|ens-name>",
	Short: "Generate a client SDK package for a contract",
	Long: `Generate an npm package exposing every function of the contract's ABI:
view/pure functions under sdk.read, state-changing ones under sdk.write
(available after connectWallet).

ABI source (pick one):
  --abi <file|url>    Raw ABI JSON array or Hardhat/Foundry artifact
  --builtin <id>      Use a bundled ABI (see: w3sdk builtins)
  --fetch             Fetch the verified ABI from the chain's explorer

Output:
  <out>/<package>/                 single language
  <out>/<package>/<language>/      several languages
  <out>/<package>-<ext>.zip        with --zip

Examples:
  w3sdk generate 0xABCD... --abi ./out/Token.sol/Token.json --class TokenSDK
  w3sdk generate 0xABCD... --builtin erc20 --lang js,ts --package @acme/token
  w3sdk generate 0xABCD... --fetch --chain somnia-testnet --zip`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := genOpts
		opts.Address = args[0]
		return runGenerate(cmd, opts)
	},
}

func runGenerate(cmd *cobra.Command, o generateOptions) error {
	out := cmd.OutOrStdout()

	address, err := resolveAddress(cmd.Context(), o.Address)
	if err != nil {
		return err
	}
	ch, err := resolveChain(o.Chain)
	if err != nil {
		return err
	}
	ctx := log.WithLogField(cmd.Context(), "contract", address)
	ctx = log.WithLogField(ctx, "chain", ch.Name)

	abi, abiLabel, err := loadABI(ctx, cmd.ErrOrStderr(), o.Source, address, ch)
	if err != nil {
		return err
	}

	langList := o.Languages
	if len(langList) == 0 {
		langList = cfg.Languages
	}
	langs, err := config.ParseLanguages(strings.Join(langList, ","))
	if err != nil {
		return err
	}

	base := sdkgen.Request{
		ABI:             abi,
		ContractAddress: address,
		ClassName:       firstNonEmpty(o.ClassName, cfg.ClassName),
		PackageName:     firstNonEmpty(o.PackageName, cfg.PackageName),
		PackageVersion:  firstNonEmpty(o.PackageVersion, cfg.PackageVersion),
		RPCURL:          firstNonEmpty(o.RPCURL, cfg.RPCFor(ch)),
		Chain:           chainRef(ch),
	}

	results, err := generateAll(ctx, base, langs)
	if err != nil {
		return err
	}

	if o.Print {
		return printResults(out, results)
	}

	outDir := firstNonEmpty(o.OutDir, cfg.OutputDir)
	written, err := writeResults(cmd, outDir, results, o.Zip, o.Force)
	if err != nil {
		return err
	}

	entry := config.GeneratedEntry{
		Address:     address,
		Chain:       ch.Name,
		ClassName:   results[0].Request.ClassName,
		PackageName: results[0].Request.PackageName,
		Languages:   langs,
		Output:      strings.Join(written, ", "),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := cfg.RecordGenerated(entry); err != nil {
		log.L(ctx).WithError(err).Warn("could not record history")
	}

	methods := results[0].Methods
	pairs := [][2]string{
		{"Contract", address},
		{"Chain", ch.DisplayName + " (" + strconv.FormatInt(ch.ChainID, 10) + ")"},
		{"ABI", abiLabel},
		{"Class", results[0].Request.ClassName},
		{"Package", results[0].Request.PackageName + "@" + results[0].Request.PackageVersion},
		{"Languages", strings.Join(langs, ", ")},
		{"Read functions", strconv.Itoa(len(methods.Read))},
		{"Write functions", strconv.Itoa(len(methods.Write))},
	}
	for _, p := range written {
		pairs = append(pairs, [2]string{"Output", p})
	}
	fmt.Fprintln(out, ui.KeyValueBlock("SDK generated", pairs))
	for _, m := range append(append([]contract.Method{}, methods.Read...), methods.Write...) {
		if m.Overloaded() {
			fmt.Fprintln(out, ui.Hint(fmt.Sprintf("%s is exposed as %s", m.Signature, m.Ident)))
		}
	}
	if !o.Zip && len(written) > 0 {
		fmt.Fprintln(out, ui.Hint("Next: cd "+written[0]+" && npm install"))
	}
	return nil
}

// generateAll renders base once per language, concurrently, through the
// shared cache. Results keep the order of langs.
func generateAll(ctx context.Context, base sdkgen.Request, langs []string) ([]*sdkgen.Result, error) {
	results := make([]*sdkgen.Result, len(langs))
	g, gctx := errgroup.WithContext(ctx)
	for i, l := range langs {
		req := base
		req.Language = sdkgen.Language(l)
		g.Go(func() error {
			res, err := sdkCache.Generate(log.WithLogField(gctx, "language", l), req)
			if err != nil {
				return fmt.Errorf("generating %s SDK: %w", l, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// printResults writes every generated file to w, each under a
// "==> path <==" header.
func printResults(w io.Writer, results []*sdkgen.Result) error {
	for _, res := range results {
		files, err := res.Files()
		if err != nil {
			return err
		}
		for _, f := range files {
			prefix := ""
			if len(results) > 1 {
				prefix = string(res.Request.Language) + "/"
			}
			fmt.Fprintf(w, "==> %s%s <==\n%s\n", prefix, f.Path, f.Data)
		}
	}
	return nil
}

// writeResults lays every result out under outDir and returns the written
// paths.
func writeResults(cmd *cobra.Command, outDir string, results []*sdkgen.Result, zip, force bool) ([]string, error) {
	var written []string
	for _, res := range results {
		files, err := res.Files()
		if err != nil {
			return nil, err
		}
		pkgDir := packageDir(res.Request.PackageName)

		if zip {
			dst := filepath.Join(outDir, pkgDir+"-"+res.Request.Language.Ext()+".zip")
			if err := confirmOverwrite(cmd, dst, force); err != nil {
				return nil, err
			}
			if err := writeZipFile(dst, pkgDir, files); err != nil {
				return nil, err
			}
			written = append(written, dst)
			continue
		}

		dst := filepath.Join(outDir, pkgDir)
		if len(results) > 1 {
			dst = filepath.Join(dst, string(res.Request.Language))
		}
		if err := confirmOverwrite(cmd, dst, force); err != nil {
			return nil, err
		}
		if err := sdkgen.WriteDir(dst, files); err != nil {
			return nil, err
		}
		written = append(written, dst)
	}
	return written, nil
}

func writeZipFile(dst, root string, files []sdkgen.File) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := sdkgen.WriteZip(f, root, files); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return f.Close()
}

// confirmOverwrite asks before replacing an existing file or non-empty
// directory, unless force is set.
func confirmOverwrite(cmd *cobra.Command, path string, force bool) error {
	if force || !exists(path) {
		return nil
	}
	if ui.Confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), path+" already exists. Overwrite?") {
		return nil
	}
	return fmt.Errorf("%s already exists (use --force to overwrite)", path)
}

// exists reports whether path is a file or a non-empty directory.
func exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) > 0
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genOpts.Source.File, "abi", "", "ABI JSON or Hardhat/Foundry artifact (file path or URL)")
	f.StringVar(&genOpts.Source.Builtin, "builtin", "", "use a bundled ABI, e.g. erc20")
	f.BoolVar(&genOpts.Source.Fetch, "fetch", false, "fetch the verified ABI from the chain's explorer")
	f.StringSliceVarP(&genOpts.Languages, "lang", "l", nil, "languages to generate: javascript|js, typescript|ts (default from config)")
	f.StringVar(&genOpts.ClassName, "class", "", "SDK class name (default from config)")
	f.StringVar(&genOpts.PackageName, "package", "", "npm package name (default from config)")
	f.StringVar(&genOpts.PackageVersion, "pkg-version", "", "npm package version (default from config)")
	f.StringVar(&genOpts.RPCURL, "rpc", "", "default RPC URL baked into the client (default: chain RPC)")
	f.StringVar(&genOpts.Chain, "chain", "", "chain the contract is deployed on (default from config)")
	f.StringVarP(&genOpts.OutDir, "out", "o", "", "output directory (default from config)")
	f.BoolVar(&genOpts.Zip, "zip", false, "write a .zip archive per language instead of a directory")
	f.BoolVar(&genOpts.Print, "print", false, "print the generated files to stdout instead of writing them")
	f.BoolVarP(&genOpts.Force, "force", "f", false, "overwrite existing output without asking")
	generateCmd.MarkFlagsMutuallyExclusive("abi", "builtin", "fetch")
	generateCmd.MarkFlagsMutuallyExclusive("zip", "print")
}
