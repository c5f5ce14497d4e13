package operations

import (
	"context"
	"log/slog"

	"github.com/praiseOjay/capstone-project/internal/config"
	"github.com/praiseOjay/capstone-project/internal/dataprocessing"
	pipelineerrors "github.com/praiseOjay/capstone-project/internal/errors"
	"github.com/praiseOjay/capstone-project/internal/exporter"
)

// ExtractStep reads the raw dataset from disk into an untyped table
type ExtractStep struct {
	logger *slog.Logger
	parser *dataprocessing.Parser
	path   string
}

// NewExtractStep creates the extract step reading from the given file
func NewExtractStep(logger *slog.Logger, path string) *ExtractStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStep{
		logger: logger,
		parser: dataprocessing.NewParser(logger),
		path:   path,
	}
}

func (s *ExtractStep) ID() string   { return StepIDExtract }
func (s *ExtractStep) Name() string { return "Extract raw dataset" }

// Validate checks that a source path was configured
func (s *ExtractStep) Validate(state *OperationState) error {
	if s.path == "" {
		return pipelineerrors.NewValidationError(StepIDExtract, "no input file configured")
	}
	return nil
}

// Execute parses the source file and stores the raw table in the state
func (s *ExtractStep) Execute(ctx context.Context, state *OperationState) error {
	raw, err := s.parser.ParseFile(ctx, s.path)
	if err != nil {
		return err
	}
	state.SetRawTable(raw)
	return nil
}

// TransformStep cleans and enriches the raw table, then writes the
// cleaned snapshot to the processed directory
type TransformStep struct {
	logger  *slog.Logger
	cleaner *dataprocessing.Cleaner
	loader  *exporter.Loader
}

// NewTransformStep creates the transform step
func NewTransformStep(logger *slog.Logger, paths *config.Paths) *TransformStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransformStep{
		logger:  logger,
		cleaner: dataprocessing.NewCleaner(logger),
		loader:  exporter.NewLoader(logger, paths),
	}
}

func (s *TransformStep) ID() string   { return StepIDTransform }
func (s *TransformStep) Name() string { return "Clean and enrich dataset" }

// Validate checks that the extract step produced a raw table
func (s *TransformStep) Validate(state *OperationState) error {
	if state.RawTable() == nil {
		return pipelineerrors.NewValidationError(StepIDTransform, "no raw table available, run the extract step first")
	}
	return nil
}

// Execute cleans the raw table and persists the cleaned snapshot
func (s *TransformStep) Execute(ctx context.Context, state *OperationState) error {
	ds, err := s.cleaner.Clean(ctx, state.RawTable())
	if err != nil {
		return err
	}
	if err := s.loader.WriteCleanedSnapshot(ctx, ds); err != nil {
		return err
	}
	state.SetDataset(ds)
	return nil
}

// VisualizeStep computes participant and weekly metrics over the
// cleaned dataset and produces the dashboard-ready table
type VisualizeStep struct {
	logger   *slog.Logger
	preparer *dataprocessing.VisualizationPreparer
}

// NewVisualizeStep creates the visualize step
func NewVisualizeStep(logger *slog.Logger, cfg dataprocessing.PreparerConfig) *VisualizeStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &VisualizeStep{
		logger:   logger,
		preparer: dataprocessing.NewVisualizationPreparer(logger, cfg),
	}
}

func (s *VisualizeStep) ID() string   { return StepIDVisualize }
func (s *VisualizeStep) Name() string { return "Prepare visualization dataset" }

// Validate checks that the transform step produced a dataset
func (s *VisualizeStep) Validate(state *OperationState) error {
	if state.Dataset() == nil {
		return pipelineerrors.NewValidationError(StepIDVisualize, "no cleaned dataset available, run the transform step first")
	}
	return nil
}

// Execute prepares the visualization dataset and stores it in the state
func (s *VisualizeStep) Execute(ctx context.Context, state *OperationState) error {
	vd, err := s.preparer.Prepare(ctx, state.Dataset())
	if err != nil {
		return err
	}
	state.SetVisualization(vd)
	return nil
}

// LoadStep writes the final CSV and parquet artifacts
type LoadStep struct {
	logger *slog.Logger
	loader *exporter.Loader
}

// NewLoadStep creates the load step writing to the configured paths
func NewLoadStep(logger *slog.Logger, paths *config.Paths) *LoadStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadStep{
		logger: logger,
		loader: exporter.NewLoader(logger, paths),
	}
}

func (s *LoadStep) ID() string   { return StepIDLoad }
func (s *LoadStep) Name() string { return "Load output artifacts" }

// Validate checks that the visualize step produced its dataset
func (s *LoadStep) Validate(state *OperationState) error {
	if state.Visualization() == nil {
		return pipelineerrors.NewValidationError(StepIDLoad, "no visualization dataset available, run the visualize step first")
	}
	return nil
}

// Execute writes both output artifacts
func (s *LoadStep) Execute(ctx context.Context, state *OperationState) error {
	return s.loader.Load(ctx, state.Visualization())
}
