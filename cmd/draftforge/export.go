package main

import (
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <folder>",
		Short: "Mirror a vault folder to blob storage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.export.ExportFolder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(result)
		},
	}
}
