// Command extractor runs vocabulary extraction on local images and prints
// one JSON outcome per line, in argument order.
//
// Usage:
//
//	extractor [-config path] IMAGE...
//
// Exit codes: 0 = every extraction succeeded, 1 = any failure,
// 2 = usage error (no images given).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/walled99/Learn-Deutsch/internal/app"
	"github.com/walled99/Learn-Deutsch/internal/config"
	"github.com/walled99/Learn-Deutsch/internal/domain"
)

type line struct {
	Image string `json:"image"`
	domain.ExtractionOutcome
}

func main() {
	configPath := flag.String("config", "", "path to config YAML (optional; falls back to env)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config path] IMAGE...\n\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), config.Usage())
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	comps := app.NewComponents(cfg, logger, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	enc := json.NewEncoder(os.Stdout)
	failed := 0
	for _, ref := range flag.Args() {
		out := comps.Extraction.Extract(ctx, ref)
		if !out.Succeeded {
			failed++
		}
		if err := enc.Encode(line{Image: ref, ExtractionOutcome: out}); err != nil {
			logger.Error("write outcome", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if failed > 0 {
		logger.Warn("extraction finished with failures",
			slog.Int("images", flag.NArg()),
			slog.Int("failed", failed),
		)
		os.Exit(1)
	}
}
