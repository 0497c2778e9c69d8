package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/w3sdk/internal/chain"
	"github.com/Mohsinsiddi/w3sdk/internal/sdkgen"
	"github.com/Mohsinsiddi/w3sdk/internal/ui"
	"github.com/spf13/cobra"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive SDK generator",
	Long:  "Walk through chain, address, ABI source, languages and naming, then generate the SDK into the configured output directory.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Banner(Version))

		result, err := ui.RunWizard(wizardOptions())
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn("Wizard canceled"))
			return nil
		}
		return runGenerate(cmd, optionsFromWizard(result))
	},
}

// wizardOptions seeds the wizard from the registry and the config. The
// default chain is listed first so it is preselected.
func wizardOptions() ui.WizardOptions {
	chains := []string{cfg.DefaultChain}
	for _, name := range registry.Names() {
		if name != cfg.DefaultChain {
			chains = append(chains, name)
		}
	}

	langs := append([]string{}, cfg.Languages...)
	for _, l := range sdkgen.Languages {
		found := false
		for _, have := range langs {
			if have == string(l) {
				found = true
			}
		}
		if !found {
			langs = append(langs, string(l))
		}
	}

	return ui.WizardOptions{
		Chains:          chains,
		Builtins:        builtinIDs(),
		Languages:       langs,
		ClassName:       cfg.ClassName,
		PackageName:     cfg.PackageName,
		ValidateAddr:    chain.NormalizeAddress,
		ValidateName:    sdkgen.CheckClassName,
		ValidatePackage: sdkgen.ValidatePackageName,
	}
}

func optionsFromWizard(r *ui.WizardResult) generateOptions {
	o := generateOptions{
		Address:     r.Address,
		Chain:       r.Chain,
		Languages:   r.Languages,
		ClassName:   r.ClassName,
		PackageName: r.PackageName,
		OutDir:      cfg.OutputDir,
	}
	switch r.Source {
	case ui.SourceFile:
		o.Source.File = r.ABIPath
	case ui.SourceBuiltin:
		o.Source.Builtin = r.Builtin
	case ui.SourceExplorer:
		o.Source.Fetch = true
	}
	return o
}
