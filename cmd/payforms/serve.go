package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-payforms/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve forms over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(newOrchestrator(), logger,
			server.WithMethods(cfg.EnabledMethods()...),
			server.WithLocale(cfg.Locale),
		)
		return srv.Start(ctx, cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default :8080)")
}
