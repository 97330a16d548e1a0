package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/hetznerdns"
	"github.com/lite-lake/hetznerdns/internal/config"
	"github.com/lite-lake/hetznerdns/internal/infrastructure/logger"
)

var (
	ConfigPath  string
	ShowVersion bool
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "dnsops",
	Short: "Hetzner DNS operations tool",
	Long:  "Dnsops is a CLI tool for managing DNS zones and records through the Hetzner DNS API.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if ShowVersion {
			fmt.Println(Version)
			os.Exit(0)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", "", "Configuration file (default dnsops.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&ShowVersion, "version", "v", false, "Show version information")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func newClient(cfg *config.Config) *hetznerdns.Client {
	opts := []hetznerdns.Option{
		hetznerdns.WithLogger(logger.L().Logger),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, hetznerdns.WithBaseURL(cfg.BaseURL))
	}
	return hetznerdns.New(cfg.Token.Reveal(), opts...)
}
