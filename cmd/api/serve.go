package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"booklibrary/internal/app"
	"booklibrary/internal/config"
	"booklibrary/internal/platform/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Example: `  # Listen on the default address (:8080)
  booklibrary serve

  # Listen on a custom address with a custom dataset
  BOOKS_DATASET=./books.json booklibrary serve --addr :3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.New()
			if err := v.BindPFlag("app_addr", cmd.Flags().Lookup("addr")); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			a, err := app.New(cfg, log)
			if err != nil {
				log.Error("startup failed", zap.Error(err))
				return err
			}
			defer a.Close()

			server := &http.Server{
				Addr:         cfg.Addr,
				Handler:      a.Handler(),
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				log.Info("starting server", zap.String("addr", cfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case <-cmd.Context().Done():
				log.Info("shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					log.Error("server shutdown failed", zap.Error(err))
					return err
				}
				log.Info("server stopped")
				return nil
			case err := <-serverErr:
				log.Error("server error", zap.Error(err))
				return err
			}
		},
	}

	cmd.Flags().String("addr", ":8080", "Address to listen on (overrides APP_ADDR)")

	return cmd
}
