package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/server"
	"github.com/Lixing-Zhang/kart-challenge/menucart/pkg/logger"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration from environment
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Initialize structured logger
			log := logger.New(cfg.LogLevel)
			slog.SetDefault(log)

			log.Info("starting menu cart api server",
				"port", cfg.Server.Port,
				"host", cfg.Server.Host,
				"log_level", cfg.LogLevel,
				"catalog_file", cfg.Catalog.File,
				"auth_enabled", len(cfg.Auth.APIKeys) > 0,
				"metrics_enabled", cfg.Metrics.Enabled,
			)

			srv, err := server.New(cfg, log)
			if err != nil {
				log.Error("failed to initialize server", "error", err)
				return err
			}

			// Wait for interrupt signal to gracefully shutdown the server
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := srv.Run(ctx); err != nil {
				log.Error("server stopped with error", "error", err)
				return err
			}
			return nil
		},
	}
}
