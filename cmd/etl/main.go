package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/praiseOjay/capstone-project/internal/config"
	"github.com/praiseOjay/capstone-project/internal/dataprocessing"
	"github.com/praiseOjay/capstone-project/internal/infrastructure"
	"github.com/praiseOjay/capstone-project/internal/operations"
	"github.com/praiseOjay/capstone-project/pkg/contracts"
)

func main() {
	inFile := flag.String("in", "", "input CSV or XLSX file (defaults to the configured raw file)")
	outDir := flag.String("out", "", "output directory for the loaded artifacts (defaults to the configured output directory)")
	configFile := flag.String("config", "", "optional YAML config file")
	stages := flag.String("stages", "", "comma-separated subset of stages to run (extract,transform,visualize,load); default all")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	if *inFile != "" {
		cfg.Paths.RawFile = *inFile
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging, paths.LogsDir)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	tracing, err := infrastructure.InitializeTracing(cfg.Tracing, logger)
	if err != nil {
		logger.Warn("Failed to initialize tracing, continuing without it", slog.String("error", err.Error()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting fitness ETL pipeline",
		slog.String("raw_file", paths.RawFile),
		slog.String("processed_dir", paths.ProcessedDir),
		slog.String("output_dir", paths.OutputDir))

	manager := operations.NewManager(logger)
	if err := registerStages(manager, logger, cfg, paths, *stages); err != nil {
		logger.Error("Invalid stage selection", slog.String("error", err.Error()))
		os.Exit(1)
	}

	state, runErr := manager.Execute(ctx)

	for _, step := range state.StepStates() {
		logger.Info("Stage result",
			slog.String("stage", step.ID),
			slog.String("status", string(step.GetStatus())),
			slog.Duration("elapsed", step.Duration()))
	}

	if tracing != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to shut down tracing", slog.String("error", err.Error()))
		}
		cancel()
	}

	if runErr != nil {
		logger.Error("Pipeline run failed", slog.String("error", runErr.Error()))
		os.Exit(1)
	}

	logger.Info("Pipeline run completed",
		slog.String("loaded_csv", paths.LoadedCSV),
		slog.String("parquet", paths.Parquet),
		slog.Duration("elapsed", state.Duration()))
}

// registerStages adds the requested stages to the manager in pipeline
// order. An empty selection means the full pipeline.
func registerStages(manager *operations.Manager, logger *slog.Logger, cfg *config.Config, paths *config.Paths, selection string) error {
	selected := map[string]bool{}
	if selection == "" {
		for _, id := range []string{operations.StepIDExtract, operations.StepIDTransform, operations.StepIDVisualize, operations.StepIDLoad} {
			selected[id] = true
		}
	} else {
		for _, raw := range strings.Split(selection, ",") {
			id := strings.TrimSpace(strings.ToLower(raw))
			if id == "" {
				continue
			}
			switch id {
			case operations.StepIDExtract, operations.StepIDTransform, operations.StepIDVisualize, operations.StepIDLoad:
				selected[id] = true
			default:
				return fmt.Errorf("unknown stage %q", id)
			}
		}
	}

	preparerCfg := dataprocessing.PreparerConfig{
		SampleSize:      cfg.Pipeline.SampleSize,
		SampleSeed:      cfg.Pipeline.SampleSeed,
		RollingWindow:   cfg.Pipeline.RollingWindow,
		MinObservations: cfg.Pipeline.MinObservations,
	}

	if selected[operations.StepIDExtract] {
		manager.Register(operations.NewExtractStep(logger, paths.RawFile))
	}
	if selected[operations.StepIDTransform] {
		manager.Register(operations.NewTransformStep(logger, paths))
	}
	if selected[operations.StepIDVisualize] {
		manager.Register(operations.NewVisualizeStep(logger, preparerCfg))
	}
	if selected[operations.StepIDLoad] {
		manager.Register(operations.NewLoadStep(logger, paths))
	}
	return nil
}
