package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/NathiDhliso/ReelApps/internal/analysis"
	"github.com/NathiDhliso/ReelApps/internal/config"
	"github.com/NathiDhliso/ReelApps/internal/llm"
	"github.com/NathiDhliso/ReelApps/internal/logger"
	"github.com/NathiDhliso/ReelApps/internal/ranking"
	"go.uber.org/zap"
)

// app bundles the services shared by the commands.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	client   llm.Client
	analysis *analysis.Service
}

// newApp loads configuration and builds the logger and analysis service.
// Command output goes to stdout, so CLI logs are sent to logOutput.
func newApp(ctx context.Context, logOutput string) (*app, error) {
	cfg, errs := config.Load(configPath)
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	log, err := logger.New(cfg.LogJSON, cfg.LogDebug, logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	a := &app{cfg: cfg, logger: log}

	if cfg.AIAvailable() {
		llmCfg := llm.DefaultConfig().WithModel(llm.TierStandard, cfg.GeminiModel)
		client, err := llm.NewClient(ctx, llmCfg, cfg.GeminiAPIKey, log)
		if err != nil {
			log.Warn("Gemini client unavailable, continuing without AI", zap.Error(err))
		} else {
			a.client = client
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, AI analysis runs in fallback mode")
	}

	a.analysis = analysis.NewService(a.client, log)
	return a, nil
}

// matcher builds a Matcher from the loaded configuration.
func (a *app) matcher(metrics *ranking.Metrics) *ranking.Matcher {
	return ranking.NewMatcher(ranking.Config{
		Workers:     a.cfg.MatchWorkers,
		MaxFeatures: a.cfg.MaxFeatures,
		Logger:      a.logger,
		Metrics:     metrics,
	})
}

func (a *app) Close() {
	if a.client != nil {
		if err := a.client.Close(); err != nil {
			a.logger.Warn("failed to close Gemini client", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
