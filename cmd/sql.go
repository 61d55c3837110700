package cmd

import (
	"github.com/Rana718/mockseed/internal/console"
	"github.com/Rana718/mockseed/internal/pipeline"
	"github.com/spf13/cobra"
)

var sqlCmd = &cobra.Command{
	Use:   "sql",
	Short: "Only write the SQL seed file",
	Long: `
Generate N product listings and write the SQL file without downloading images.
The cover_url of every listing still points at /uploads/product_NNN.jpg.

Examples:
  mockseed sql -n 10 -o seed.sql
  mockseed sql --dialect mysql --seed 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		printer := console.Stdout()
		p, err := pipeline.New(cfg, pipeline.WithReporter(printer))
		if err != nil {
			return err
		}

		_, err = p.WriteSQL()
		return err
	},
}

func init() {
	rootCmd.AddCommand(sqlCmd)
}
