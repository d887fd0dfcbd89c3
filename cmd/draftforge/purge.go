package main

import (
	"github.com/spf13/cobra"
)

func purgeCmd() *cobra.Command {
	var folder string

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove generated documents from the vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if folder != "" {
				return a.inventory.DeleteFolder(cmd.Context(), folder)
			}
			return a.inventory.Purge(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "", "Remove a single folder instead of everything")

	return cmd
}
