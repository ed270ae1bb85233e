// Command reactgen runs the hadronic reaction kernel for one incoming
// pair, given by PDG-code flags, under the policy read from a TOML file
// and prints the resulting branch list.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbinet/hadrx/cmd/reactgen/internal/run"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		policyPath string
		pdgA       int
		pdgB       int
		sqrtS      float64
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "reactgen",
		Short: "Evaluate the hadronic reaction kernel for one incoming pair",
		Long: `reactgen loads a TOML policy file and builds the ordered branch
list for a single incoming pair at a given collision energy.

Example:
  reactgen --policy policy.toml --pdg-a 2212 --pdg-b 2212 --sqrts 2.2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run.One(run.Options{
				PolicyPath: policyPath,
				PdgA:       pdgA,
				PdgB:       pdgB,
				SqrtS:      sqrtS,
				Seed:       seed,
				Stdout:     cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVar(&policyPath, "policy", "", "path to the TOML policy file (required)")
	cmd.Flags().IntVar(&pdgA, "pdg-a", 2212, "PDG code of the first incoming particle")
	cmd.Flags().IntVar(&pdgB, "pdg-b", 2212, "PDG code of the second incoming particle")
	cmd.Flags().Float64Var(&sqrtS, "sqrts", 2.2, "collision energy in GeV")
	cmd.Flags().Int64Var(&seed, "seed", 1234, "random seed for the string-excitation draw")
	cmd.MarkFlagRequired("policy")

	return cmd
}
