package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-payforms/internal/config"
	"github.com/goliatone/go-payforms/pkg/orchestrator"
)

var (
	cfgFile string
	cfg     config.Config
	logger  *log.Logger
)

var rootCmd = &cobra.Command{
	Use:           "payforms",
	Short:         "Render, fill and serve payment-method forms",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = loaded
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix:          "payforms",
			ReportTimestamp: true,
			Level:           cfg.Level(),
		})
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Config file (default is ./payforms.yaml)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("locale", "", "Locale for labels and messages")
	flags.String("merchant", "", "Merchant name shown in mandate text")
	flags.String("country", "", "Default billing country (ISO 3166 alpha-2)")
	flags.String("theme", "", "Theme name from the config file")
	flags.String("theme-variant", "", "Theme variant")

	rootCmd.AddCommand(listCmd, renderCmd, fillCmd, serveCmd)
}

// newOrchestrator builds the pipeline from the loaded configuration.
func newOrchestrator(extra ...orchestrator.Option) *orchestrator.Orchestrator {
	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithMerchantName(cfg.MerchantName),
		orchestrator.WithDefaultCountry(cfg.DefaultCountry),
		orchestrator.WithDefaultRenderer(cfg.Renderer),
	}
	if manifest := cfg.ThemeManifest(); manifest != nil {
		options = append(options, orchestrator.WithThemeManifests(manifest.Name, cfg.Theme.Variant, manifest))
	}
	return orchestrator.New(append(options, extra...)...)
}
