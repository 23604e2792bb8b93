package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/NathiDhliso/ReelApps/internal/ranking"
	"github.com/NathiDhliso/ReelApps/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing candidate matching, job and persona analysis, health and metrics endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, "stdout")
	if err != nil {
		return err
	}
	defer a.Close()

	port := a.cfg.Port
	if servePort > 0 {
		port = servePort
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := ranking.NewMetrics()
	if err := metrics.Register(registry); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	summary := a.cfg.LogSummary()
	fields := make([]zap.Field, 0, len(summary))
	for k, v := range summary {
		fields = append(fields, zap.String(k, v))
	}
	for analysis, model := range a.analysis.Models() {
		fields = append(fields, zap.String("model_"+analysis, model))
	}
	a.logger.Info("configuration loaded", fields...)

	srv := server.New(server.Config{
		Port:             port,
		Version:          version,
		RequestTimeout:   a.cfg.RequestTimeout,
		RateLimitEnabled: a.cfg.RateLimitEnabled,
	}, server.Deps{
		Matcher:  a.matcher(metrics),
		Analysis: a.analysis,
		Logger:   a.logger,
		Registry: registry,
	})

	return srv.Start(ctx)
}
