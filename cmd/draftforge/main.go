// Package main provides the draftforge binary entry point. It exposes
// contract generation, inventory, and export operations as subcommands
// against the same configuration the server uses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draftforge/draftforge/internal/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draftforge",
		Short: "Synthetic contract document generator",
		Long: `Draftforge produces realistic synthetic legal contract PDFs with
controllable problematic clauses, for exercising document review and
audit tooling against known ground truth.

Configuration is read from config.toml, an optional environment
overlay, and DRAFTFORGE_* environment variables.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		generateCmd(),
		batchCmd(),
		amendCmd(),
		scanCmd(),
		exportCmd(),
		purgeCmd(),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Printf("draftforge version %s\n", cfg.Version)
			return nil
		},
	}
}
