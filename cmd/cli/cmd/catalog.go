// Package cmd - catalog commands
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pricing-simulator/core/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect pricing catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <catalog-file>",
	Short: "Check that every section's intervals tile [0, ∞)",
	Long: `Validate a pricing catalog.

Each section must start at 0, every interval must begin where the previous
one ends, only the last interval may be unbounded, prices must not be
negative and section types must be unique. Sections without intervals are
treated as still loading and are not checked.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalogValidate(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}

func runCatalogValidate(w io.Writer, path string) error {
	c, err := catalog.Load(path)
	if err != nil {
		return err
	}

	problems := c.Validate(catalog.DefaultValidationRules())
	if err := c.ValidationError(problems); err != nil {
		for _, p := range problems {
			fmt.Fprintf(w, "✗ %v\n", p)
		}
		return err
	}

	stats := c.Stats()
	fmt.Fprintf(w, "✓ %s: %d sections, %d intervals (%d progressive, %d loading)\n",
		path, stats.Sections, stats.Intervals, stats.Progressive, stats.Loading)
	return nil
}
