package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/fundlens/readiness-cli/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and manage the question catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in the active catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		fmt.Printf("Catalog version: %s (%d questions)\n\n", cat.Version(), cat.Len())
		fmt.Printf("%-28s %-24s %-12s %6s %s\n", "ID", "Category", "Type", "Weight", "Killer")
		for _, q := range cat.Questions() {
			killer := ""
			if q.BusinessKiller {
				killer = "yes"
			}
			fmt.Printf("%-28s %-24s %-12s %6.1f %s\n", q.ID, q.Category, q.Type, q.Weight, killer)
		}
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("OK: %s (version %s, %d questions)\n", args[0], cat.Version(), cat.Len())
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active catalog as a YAML artifact",
	RunE: func(cmd *cobra.Command, _ []string) error {
		outputPath, _ := cmd.Flags().GetString("output")

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		data, err := cat.MarshalArtifact()
		if err != nil {
			return err
		}

		if outputPath == "" {
			_, err := os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return eris.Wrapf(err, "catalog: write %s", outputPath)
		}
		fmt.Printf("Exported catalog %s to %s\n", cat.Version(), outputPath)
		return nil
	},
}

func init() {
	catalogExportCmd.Flags().String("output", "", "output file path (default: stdout)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}
