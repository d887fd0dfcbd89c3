package main

import (
	"github.com/spf13/cobra"

	"github.com/draftforge/draftforge/internal/inventory"
	"github.com/draftforge/draftforge/pkg/formatting"
)

func scanCmd() *cobra.Command {
	var (
		typeName    string
		folder      string
		amendments  bool
		contractsOn bool
		minFileSize string
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List generated documents recovered from the vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			filters := inventory.Filters{
				Type:   typeName,
				Folder: folder,
			}
			if minFileSize != "" {
				size, err := formatting.ParseBytes(minFileSize)
				if err != nil {
					return err
				}
				filters.MinFileSize = size
			}
			if amendments {
				v := true
				filters.Amendments = &v
			} else if contractsOn {
				v := false
				filters.Amendments = &v
			}

			records, err := a.inventory.Scan(cmd.Context())
			if err != nil {
				return err
			}

			matched := records[:0]
			for _, rec := range records {
				if filters.Match(rec) {
					matched = append(matched, rec)
				}
			}
			return emit(matched)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "Filter by contract type")
	cmd.Flags().StringVar(&folder, "folder", "", "Filter by folder")
	cmd.Flags().BoolVar(&amendments, "amendments", false, "Only amendments")
	cmd.Flags().BoolVar(&contractsOn, "contracts", false, "Only base contracts")
	cmd.Flags().StringVar(&minFileSize, "min-file-size", "", "Minimum file size, e.g. 4096 or 50KB")

	return cmd
}
