package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/Rana718/mockseed/internal/console"
	"github.com/Rana718/mockseed/internal/pipeline"
	"github.com/spf13/cobra"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Only download the cover images",
	Long: `
Download product_001.jpg .. product_NNN.jpg into the image directory without
generating any SQL. Existing files are skipped.

Examples:
  mockseed images -n 20
  mockseed images --image-dir ./uploads --delay 1s`,
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

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		_, err = p.FetchImages(ctx)
		return err
	},
}

func init() {
	rootCmd.AddCommand(imagesCmd)
}
