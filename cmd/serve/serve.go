// Package serve implements the serve command running the ComplyRadar web
// service.
package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/cobra"

	"github.com/complyradar/complyradar/internal/classify"
	"github.com/complyradar/complyradar/internal/config"
	"github.com/complyradar/complyradar/internal/pipeline"
	"github.com/complyradar/complyradar/internal/server"
	"github.com/complyradar/complyradar/internal/storage"
	"github.com/complyradar/complyradar/pkg/logger"
)

var (
	configFile string
	listen     string
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the upload and report web service",
		Long: `Run the HTTP service: accept CSV uploads, trigger sensitive-data
classification scans, and serve generated compliance reports with
time-limited download links.`,
		Example: `  # Run with a config file
  complyradar serve --config configs/production.yaml

  # Override the listen address
  complyradar serve --config configs/production.yaml --listen :9090`,
		RunE: runServe,
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to config file (required)")
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides config)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	log := logger.GetGlobalLogger()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if listen != "" {
		cfg.Server.Listen = listen
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return fmt.Errorf("loading AWS config: %w", err)
	}

	store := storage.NewS3StoreWithLogger(awsCfg, log)
	trigger := classify.NewJobTriggerWithLogger(awsCfg, log)
	reporter := pipeline.NewWithLogger(store, cfg.Storage, log)
	srv := server.NewWithLogger(store, trigger, reporter, cfg, log)

	httpServer := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening", "addr", cfg.Server.Listen)
		errCh <- httpServer.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
	case sig := <-sigCh:
		log.Info("Shutting down", "signal", sig.String())
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}
