package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Mohsinsiddi/w3sdk/internal/contract"
	"github.com/Mohsinsiddi/w3sdk/internal/ui"
	"github.com/spf13/cobra"
)

var (
	inspectBuiltin string
	inspectJSON    bool
)

// methodJSON is the --json form of a classified method.
type methodJSON struct {
	Ident      string `json:"ident"`
	Name       string `json:"name"`
	Signature  string `json:"signature"`
	Selector   string `json:"selector"`
	Mutability string `json:"mutability"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [abi-file|url]",
	Short: "Show how an ABI splits into read and write functions",
	Long: `Classify an ABI the way generate does and print the resulting read and
write namespaces, with selectors and overload renames.

Examples:
  w3sdk inspect ./out/Token.sol/Token.json
  w3sdk inspect --builtin erc721
  w3sdk inspect ./abi.json --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		src := abiSource{Builtin: inspectBuiltin}
		if len(args) == 1 {
			src.File = args[0]
		}
		if src.count() != 1 {
			return fmt.Errorf("give either an ABI file/URL or --builtin <id>")
		}
		abi, label, err := loadABI(cmd.Context(), cmd.ErrOrStderr(), src, "", nil)
		if err != nil {
			return err
		}

		cls, err := contract.Classify(abi)
		if err != nil {
			return err
		}

		if inspectJSON {
			data, err := json.MarshalIndent(map[string][]methodJSON{
				"read":  toMethodJSON(cls.Read),
				"write": toMethodJSON(cls.Write),
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintln(out, ui.Meta("ABI: "+label))
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.StyleRead.Render(fmt.Sprintf("Read functions (%d)", len(cls.Read))))
		if len(cls.Read) > 0 {
			fmt.Fprint(out, ui.MethodTable(cls.Read).Render())
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.StyleWrite.Render(fmt.Sprintf("Write functions (%d)", len(cls.Write))))
		if len(cls.Write) > 0 {
			fmt.Fprint(out, ui.MethodTable(cls.Write).Render())
		}
		if skipped := len(abi) - cls.Len(); skipped > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d non-function entries (events, errors, constructor…) are kept in the ABI but get no method.", skipped)))
		}
		return nil
	},
}

func toMethodJSON(ms []contract.Method) []methodJSON {
	out := make([]methodJSON, 0, len(ms))
	for _, m := range ms {
		out = append(out, methodJSON{
			Ident:      m.Ident,
			Name:       m.Name,
			Signature:  m.Signature,
			Selector:   m.Selector,
			Mutability: m.Mutability,
		})
	}
	return out
}

func init() {
	inspectCmd.Flags().StringVar(&inspectBuiltin, "builtin", "", "inspect a bundled ABI, e.g. erc20")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "print the classification as JSON")
}
