package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftforge/draftforge/internal/contracts"
)

func batchCmd() *cobra.Command {
	var (
		count      int
		typeNames  []string
		vendors    []string
		minValue   int64
		maxValue   int64
		complexity string
		allRisks   bool
		risks      contracts.RiskFactors
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate a batch of contracts into a shared folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			types := make([]contracts.Type, 0, len(typeNames))
			for _, name := range typeNames {
				t, ok := contracts.ParseType(name)
				if !ok {
					return fmt.Errorf("unknown contract type: %q", name)
				}
				types = append(types, t)
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

			results, err := a.generator.GenerateBatch(cmd.Context(), contracts.BatchConfig{
				Count:      count,
				Types:      types,
				Vendors:    vendors,
				MinValue:   minValue,
				MaxValue:   maxValue,
				Complexity: c,
				Risks:      risks,
			})
			if err != nil {
				return err
			}
			return emit(results)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of contracts to generate")
	cmd.Flags().StringSliceVar(&typeNames, "types", nil, "Contract types to draw from (default all)")
	cmd.Flags().StringSliceVar(&vendors, "vendors", nil, "Vendor names to draw from")
	cmd.Flags().Int64Var(&minValue, "min-value", 0, "Minimum contract value")
	cmd.Flags().Int64Var(&maxValue, "max-value", 0, "Maximum contract value")
	cmd.Flags().StringVar(&complexity, "complexity", "standard", "Document complexity (minimal, standard, detailed, comprehensive)")
	addRiskFlags(cmd, &risks, &allRisks)

	return cmd
}
