package cmd

import (
	"fmt"

	"github.com/Rana718/mockseed/internal/server"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the downloaded images under /uploads",
	Long: `
Start a local web server that exposes the image directory under /uploads, the
path every generated cover_url points at. Useful to check the images before
the marketplace backend is running.

Examples:
  mockseed serve
  mockseed serve --port 9000 --image-dir ./uploads`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		srv := server.New(afero.NewOsFs(), cfg.ImageDir, cfg.Serve.Port)
		return srv.Start(func(url string) {
			fmt.Printf("🖼️  Serving %s on %s\n", cfg.ImageDir, url)
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8090, "Port to serve images on")
	viper.BindPFlag("serve.port", serveCmd.Flags().Lookup("port"))
}
