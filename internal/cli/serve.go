package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// NewServeCommand создает команду запуска HTTP API и фоновой синхронизации
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API, network monitor and background sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), rootOpts)
		},
	}
}

func runServe(parent context.Context, opts *RootOptions) error {
	log := opts.logger

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := opts.openApp(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.WithError(err).Error("Failed to close application")
		}
	}()

	background := make(chan error, 1)
	go func() {
		background <- a.RunBackground(ctx)
	}()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", opts.cfg.HTTPPort),
		Handler: a.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	log.Infof("HTTP server started on port %s", opts.cfg.HTTPPort)

	select {
	case <-ctx.Done():
		log.Info("Received shutdown signal, shutting down server...")
	case err := <-serveErr:
		stop()
		<-background
		return fmt.Errorf("error starting HTTP server: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	<-background

	log.Info("Server gracefully stopped")
	return nil
}
