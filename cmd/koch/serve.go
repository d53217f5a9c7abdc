package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/esimov/koch/server"
	"github.com/esimov/koch/store"
)

func newServeCmd() *cobra.Command {
	var (
		addr       string
		outputDir  string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the snowflake generator web service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := server.DefaultConfig()
			if configFile != "" {
				loaded, err := server.LoadConfig(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Flags win over the config file.
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = outputDir
			}

			log := slog.Default()
			st, err := store.New(cfg.OutputDir, store.WithLogger(log))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(st, log).Run(ctx, cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":5000", "listen address")
	cmd.Flags().StringVar(&outputDir, "output-dir", "static/images", "directory for generated images")
	cmd.Flags().StringVar(&configFile, "config", "", "path to a YAML config file")
	return cmd
}
