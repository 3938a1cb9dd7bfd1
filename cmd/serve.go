package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cpusched/cpu-scheduler/api"
)

const shutdownTimeout = 5 * time.Second

var port int // Listen port, overrides config

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		log := newLogger(cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app := api.NewApp(cfg, log)
		addr := fmt.Sprintf(":%d", cfg.Port)

		listenErr := make(chan error, 1)
		go func() {
			log.WithField("addr", addr).Info("Starting scheduler API")
			listenErr <- app.Listen(addr)
		}()

		select {
		case err := <-listenErr:
			return errors.Wrap(err, "listen")
		case <-ctx.Done():
		}

		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		log.Info("Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 9095, "Listen port")
}
