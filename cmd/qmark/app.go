package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"qmark/pkg/bench"
	"qmark/pkg/config"
	"qmark/pkg/observability"
	"qmark/pkg/protocol/codec"
	"qmark/pkg/report"
)

// run is the main entry point after CLI parsing.
func run(opts Options) int {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to load config:", err)
		return 1
	}
	if opts.Debug {
		cfg.Bench.Debug = true
		cfg.Log.Level = "debug"
	}
	if opts.QTasks > 0 {
		cfg.Bench.QTasks = opts.QTasks
	}
	if opts.CTasks > 0 {
		cfg.Bench.CTasks = opts.CTasks
	}
	if opts.Runs > 0 {
		cfg.Bench.Runs = opts.Runs
	}

	logger, err := observability.SetupLogger(cfg.Log)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	zap.L().Info("starting benchmark sweep",
		zap.Int("qtasks", cfg.Bench.QTasks),
		zap.Int("ctasks", cfg.Bench.CTasks),
		zap.Int("runs", cfg.Bench.Runs))

	samples, err := bench.RunMany(cfg.Bench.QTasks, cfg.Bench.CTasks, cfg.Bench.Runs,
		bench.Options{Debug: cfg.Bench.Debug})
	if err != nil {
		zap.L().Error("benchmark failed", zap.Error(err))
		return 1
	}

	summary := report.Summarize(cfg.Bench.QTasks, cfg.Bench.CTasks, samples)
	if err := summary.Render(os.Stdout); err != nil {
		zap.L().Error("failed to render report", zap.Error(err))
		return 1
	}
	if opts.Out != "" {
		if err := export(summary, opts.Out, opts.Format); err != nil {
			zap.L().Error("failed to export summary", zap.Error(err))
			return 1
		}
	}
	return 0
}

// export writes the summary in the requested serialization to path.
func export(summary report.Summary, path, format string) error {
	reg := codec.NewRegistry()
	cb, err := codec.CBOR()
	if err != nil {
		return err
	}
	reg.Register(cb)

	var contentType string
	switch format {
	case "", "json":
		contentType = "application/json"
	case "cbor":
		contentType = "application/cbor"
	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
	b, err := summary.Marshal(contentType, reg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
