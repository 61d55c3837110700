package cmd

import (
	"fmt"

	"github.com/Rana718/mockseed/internal/console"
	"github.com/Rana718/mockseed/internal/pipeline"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the product catalog as YAML",
	Long: `
Print the catalog the generator draws from: product templates, price ranges,
conditions and the other value pools. With --catalog the printed catalog is
the merged result, so this also checks a catalog file.

Examples:
  mockseed catalog > catalog.yaml
  mockseed catalog --catalog catalog.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		p, err := pipeline.New(cfg, pipeline.WithReporter(console.Stdout()))
		if err != nil {
			return err
		}

		data, err := p.Catalog().YAML()
		if err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
