package cmd

import (
	"fmt"
	"strings"

	"github.com/Rana718/mockseed/internal/config"
	"github.com/Rana718/mockseed/internal/dialect"
	"github.com/Rana718/mockseed/internal/images"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════╗",
		"║                                                  ║",
		"║     🌱 mockseed                                  ║",
		"║     marketplace mock data generator              ║",
		"║                                                  ║",
		"╚══════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("     ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "mockseed",
	Short: "Generate mock marketplace listings with cover images and a SQL seed file",
	Long: `
mockseed populates a second-hand marketplace database for development and testing.

It downloads placeholder cover images into the backend's upload directory and
writes a SQL file that creates a test seller and N product listings pointing
at those images.

Running mockseed without a subcommand is the same as "mockseed run".

Dialects:
- PostgreSQL (default)
- MySQL
- SQLite`,
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("mockseed version %s\n", Version)
			return nil
		}

		showBanner()
		fmt.Println()
		return runSeed(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./mockseed.config.json)")
	flags.IntP("count", "n", config.DefaultCount, "Number of products to generate")
	flags.String("image-dir", config.DefaultImageDir, "Directory the cover images are saved to")
	flags.StringP("output", "o", config.DefaultOutput, "Path of the generated SQL file")
	flags.Int64("seed", 0, "Random seed for reproducible output (0 = random)")
	flags.String("dialect", config.DefaultDialect, fmt.Sprintf("SQL dialect %v", dialect.Names()))
	flags.String("catalog", "", "YAML file overriding the product catalog")
	flags.String("image-url", images.DefaultBaseURL, "Base URL of the placeholder image service")
	flags.Duration("delay", images.DefaultDelay, "Pause between image requests")
	flags.Duration("timeout", images.DefaultTimeout, "Timeout of a single image request")
	flags.Bool("skip-images", false, "Only generate the SQL file")

	bindFlags := map[string]string{
		"count":           "count",
		"image_dir":       "image-dir",
		"output":          "output",
		"seed":            "seed",
		"dialect":         "dialect",
		"catalog":         "catalog",
		"images.base_url": "image-url",
		"images.delay":    "delay",
		"images.timeout":  "timeout",
		"skip_images":     "skip-images",
	}
	for key, name := range bindFlags {
		viper.BindPFlag(key, flags.Lookup(name))
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("mockseed.config")
	}

	viper.SetEnvPrefix("MOCKSEED")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.ReadInConfig()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
