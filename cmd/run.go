package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Rana718/mockseed/internal/config"
	"github.com/Rana718/mockseed/internal/console"
	"github.com/Rana718/mockseed/internal/images"
	"github.com/Rana718/mockseed/internal/pipeline"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Download cover images and write the SQL seed file",
	Long: `
Download N placeholder cover images, then generate N product listings and write
them as INSERT statements, together with the test seller, to the SQL file.

Images that already exist are kept. A failed download is reported and the run
continues; the listing still points at the missing image.

Examples:
  mockseed run
  mockseed run -n 100 --seed 42
  mockseed run --dialect sqlite -o seed.sql --skip-images`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
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

	printer.Banner("marketplace mock data generator")

	if _, err := p.Run(ctx); err != nil {
		return err
	}

	printer.NextSteps(nextSteps(cfg)...)
	return nil
}

func nextSteps(cfg *config.Config) []string {
	return []string{
		fmt.Sprintf("Import %s into your %s database (or run: mockseed apply %s)", cfg.Output, cfg.Dialect, cfg.Output),
		fmt.Sprintf("Make sure %s is served under %s (or run: mockseed serve)", cfg.ImageDir, images.URLPrefix),
	}
}
