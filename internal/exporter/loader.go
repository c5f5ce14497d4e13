package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/praiseOjay/capstone-project/internal/config"
	pipelineerrors "github.com/praiseOjay/capstone-project/internal/errors"
	"github.com/praiseOjay/capstone-project/pkg/contracts/domain"
)

// Loader persists the final dataset to its two output artifacts: a
// row-oriented CSV and a columnar parquet file, both containing the
// identical table. The load is all-or-nothing: both artifacts are
// written to temporary names and only renamed into place once both
// writes succeed, so a failure never leaves a partial output behind.
type Loader struct {
	logger  *slog.Logger
	paths   *config.Paths
	csv     *CSVWriter
	parquet *ParquetWriter
}

// NewLoader creates a new Loader writing to the configured paths
func NewLoader(logger *slog.Logger, paths *config.Paths) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:  logger,
		paths:   paths,
		csv:     NewCSVWriter(logger),
		parquet: NewParquetWriter(logger),
	}
}

// Load writes the visualization dataset to the CSV and parquet outputs
func (l *Loader) Load(ctx context.Context, vd *domain.VisualizationDataset) error {
	l.logger.InfoContext(ctx, "starting data loading",
		slog.Int("rows", len(vd.Rows)),
		slog.String("csv_path", l.paths.LoadedCSV),
		slog.String("parquet_path", l.paths.Parquet))

	csvTmp := l.paths.LoadedCSV + ".tmp"
	parquetTmp := l.paths.Parquet + ".tmp"

	cleanup := func() {
		os.Remove(csvTmp)
		os.Remove(parquetTmp)
	}

	headers, records := FlattenVisualization(vd)
	if err := l.csv.WriteSimpleCSV(csvTmp, headers, records); err != nil {
		cleanup()
		return pipelineerrors.NewLoadError("failed to write CSV output", err)
	}

	if err := l.parquet.Write(parquetTmp, vd.Rows); err != nil {
		cleanup()
		return pipelineerrors.NewLoadError("failed to write parquet output", err)
	}

	if err := os.Rename(csvTmp, l.paths.LoadedCSV); err != nil {
		cleanup()
		return pipelineerrors.NewLoadError("failed to finalize CSV output", err)
	}
	if err := os.Rename(parquetTmp, l.paths.Parquet); err != nil {
		// The CSV already landed; remove it so no half-load remains
		os.Remove(l.paths.LoadedCSV)
		cleanup()
		return pipelineerrors.NewLoadError("failed to finalize parquet output", err)
	}

	l.logger.InfoContext(ctx, "data loading complete")
	return nil
}

// WriteCleanedSnapshot persists the cleaned dataset to the processed
// directory, the side effect of the cleaning stage
func (l *Loader) WriteCleanedSnapshot(ctx context.Context, ds *domain.ActivityDataset) error {
	headers, records := FlattenActivity(ds)
	if err := l.csv.WriteSimpleCSV(l.paths.CleanedCSV, headers, records); err != nil {
		return fmt.Errorf("failed to write cleaned snapshot: %w", err)
	}
	l.logger.InfoContext(ctx, "cleaned snapshot written",
		slog.String("path", l.paths.CleanedCSV),
		slog.Int("rows", len(ds.Records)))
	return nil
}
