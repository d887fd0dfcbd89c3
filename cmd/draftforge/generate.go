package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftforge/draftforge/internal/contracts"
)

func generateCmd() *cobra.Command {
	var (
		typeName   string
		vendor     string
		value      int64
		termYears  int
		complexity string
		folder     string
		allRisks   bool
		risks      contracts.RiskFactors
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single contract PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := contracts.ParseType(typeName)
			if !ok {
				return fmt.Errorf("unknown contract type: %q", typeName)
			}
			c, ok := contracts.ParseComplexity(complexity)
			if !ok {
				return fmt.Errorf("unknown complexity: %q", complexity)
			}
			if allRisks {
				risks = contracts.AllRisks()
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			rec, err := a.generator.Generate(cmd.Context(), contracts.GenerateConfig{
				Type:       t,
				Vendor:     vendor,
				Value:      value,
				TermYears:  termYears,
				Complexity: c,
				Risks:      risks,
				Folder:     folder,
			})
			if err != nil {
				return err
			}
			return emit(rec)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", string(contracts.SoftwareLicense), "Contract type")
	cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor name (default varies by type)")
	cmd.Flags().Int64Var(&value, "value", 0, "Contract value in dollars (default varies by type)")
	cmd.Flags().IntVar(&termYears, "term-years", 3, "Initial term in years")
	cmd.Flags().StringVar(&complexity, "complexity", "standard", "Document complexity (minimal, standard, detailed, comprehensive)")
	cmd.Flags().StringVar(&folder, "folder", "", "Destination folder override")
	addRiskFlags(cmd, &risks, &allRisks)

	return cmd
}

// addRiskFlags binds the shared risk toggles used by generate and batch.
func addRiskFlags(cmd *cobra.Command, risks *contracts.RiskFactors, allRisks *bool) {
	cmd.Flags().BoolVar(allRisks, "all-risks", false, "Enable every risk factor")
	cmd.Flags().BoolVar(&risks.UncappedFees, "uncapped-fees", false, "Uncapped variable fees")
	cmd.Flags().BoolVar(&risks.LowLiability, "low-liability", false, "Low vendor liability cap")
	cmd.Flags().BoolVar(&risks.DataSovereignty, "data-sovereignty", false, "Unrestricted data storage locations")
	cmd.Flags().BoolVar(&risks.AsymmetricTerms, "asymmetric-terms", false, "One-sided termination and amendment terms")
	cmd.Flags().BoolVar(&risks.IPIssues, "ip-issues", false, "Vendor-favorable intellectual property terms")
	cmd.Flags().BoolVar(&risks.WarrantyGaps, "warranty-gaps", false, "Weak warranty coverage")
}
