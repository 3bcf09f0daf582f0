package app

import (
	"log/slog"

	"github.com/walled99/Learn-Deutsch/internal/adapter/imagefile"
	"github.com/walled99/Learn-Deutsch/internal/adapter/netprobe"
	"github.com/walled99/Learn-Deutsch/internal/adapter/provider/gemini"
	"github.com/walled99/Learn-Deutsch/internal/config"
	"github.com/walled99/Learn-Deutsch/internal/service/extraction"
)

// Components are the wired collaborators shared by the server and the CLI.
type Components struct {
	Model        *gemini.Client
	Connectivity extraction.ConnectivityChecker
	Extraction   *extraction.Service
}

// NewComponents wires the extraction service from cfg. metrics may be nil.
func NewComponents(cfg *config.Config, logger *slog.Logger, metrics *extraction.Metrics) *Components {
	model := gemini.NewClient(gemini.Config{
		APIKey:     cfg.Gemini.APIKey,
		BaseURL:    cfg.Gemini.BaseURL,
		APIVersion: cfg.Gemini.APIVersion,
		Model:      cfg.Gemini.Model,
		UserAgent:  UserAgent(),
	}, logger)

	var connectivity extraction.ConnectivityChecker = extraction.AlwaysOnline{}
	if cfg.Extraction.ConnectivityProbe {
		connectivity = netprobe.New(cfg.Extraction.ProbeAddress, cfg.Extraction.ProbeTimeout, logger)
	}

	policy := extraction.RetryPolicy{
		MaxAttempts:    cfg.Extraction.MaxAttempts,
		AttemptTimeout: cfg.Extraction.AttemptTimeout,
		BackoffBase:    cfg.Extraction.BackoffBase,
	}

	svc := extraction.NewService(logger, imagefile.NewEncoder(logger), model, policy,
		extraction.WithConnectivity(connectivity),
		extraction.WithMetrics(metrics),
	)

	return &Components{
		Model:        model,
		Connectivity: connectivity,
		Extraction:   svc,
	}
}
