package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftforge/draftforge/internal/contracts"
)

func amendCmd() *cobra.Command {
	var (
		baseID     string
		baseVendor string
		baseValue  int64
		number     int
		changes    contracts.AmendmentChanges
	)

	cmd := &cobra.Command{
		Use:   "amend",
		Short: "Generate an amendment to an existing contract",
		Long: `Amend locates the base contract in the inventory by id and produces
an amendment PDF carrying the selected change articles.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseID == "" {
				return fmt.Errorf("--base is required")
			}
			changes.Pricing = changes.NewValue > 0

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			base, err := findRecord(cmd, a, baseID)
			if err != nil {
				return err
			}

			// Scan recovery leaves placeholder metadata; let flags
			// supply the real values.
			if baseVendor != "" {
				base.Vendor = baseVendor
			}
			if baseValue > 0 {
				base.Value = baseValue
			}

			rec, err := a.generator.GenerateAmendment(cmd.Context(), contracts.AmendmentConfig{
				Base:    *base,
				Number:  number,
				Changes: changes,
			})
			if err != nil {
				return err
			}
			return emit(rec)
		},
	}

	cmd.Flags().StringVar(&baseID, "base", "", "Base contract id")
	cmd.Flags().StringVar(&baseVendor, "base-vendor", "", "Vendor name when scan recovery has none")
	cmd.Flags().Int64Var(&baseValue, "base-value", 0, "Base contract value when scan recovery has none")
	cmd.Flags().IntVar(&number, "number", 1, "Amendment number")
	cmd.Flags().Int64Var(&changes.NewValue, "new-value", 0, "Revised contract value (enables the pricing article)")
	cmd.Flags().IntVar(&changes.TermExtension, "extend-term", 0, "Term extension in years")
	cmd.Flags().StringVar(&changes.ServicesDescription, "services", "", "Revised services description")
	cmd.Flags().BoolVar(&changes.Liability, "liability", false, "Revise the liability cap")
	cmd.Flags().BoolVar(&changes.Termination, "termination", false, "Revise termination rights")
	cmd.Flags().BoolVar(&changes.AuditRights, "audit-rights", false, "Add audit rights")

	return cmd
}

// findRecord scans the inventory for the record with the given id.
func findRecord(cmd *cobra.Command, a *app, id string) (*contracts.Record, error) {
	records, err := a.inventory.Scan(cmd.Context())
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%w: contract %q", contracts.ErrNotFound, id)
}
