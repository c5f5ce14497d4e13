package exporter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/praiseOjay/capstone-project/pkg/contracts/domain"
)

// ParquetWriter writes the visualization dataset to a columnar parquet
// file. The schema comes from the VisualizationRow struct tags: date is
// a real timestamp column and the categorical fields are plain UTF8
// strings, so the dashboard's generic filtering works without
// type-specific handling.
type ParquetWriter struct {
	logger *slog.Logger
}

// NewParquetWriter creates a new parquet writer instance
func NewParquetWriter(logger *slog.Logger) *ParquetWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParquetWriter{logger: logger}
}

// Write writes the dataset rows to a parquet file at filePath, creating
// the parent directory if needed
func (w *ParquetWriter) Write(filePath string, rows []domain.VisualizationRow) error {
	w.logger.Info("writing parquet file",
		slog.String("path", filePath),
		slog.Int("record_count", len(rows)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writer := parquet.NewGenericWriter[domain.VisualizationRow](file)

	if len(rows) > 0 {
		if _, err := writer.Write(rows); err != nil {
			writer.Close()
			file.Close()
			return fmt.Errorf("failed to write rows: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		file.Close()
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return file.Close()
}

// ReadVisualization reads a parquet file produced by Write back into
// rows; used by tests and downstream tooling
func ReadVisualization(filePath string) ([]domain.VisualizationRow, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	reader := parquet.NewGenericReader[domain.VisualizationRow](file)
	defer reader.Close()

	rows := make([]domain.VisualizationRow, reader.NumRows())
	if len(rows) == 0 {
		return rows, nil
	}
	if _, err := reader.Read(rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read rows from %s (%d bytes): %w", filePath, info.Size(), err)
	}
	return rows, nil
}
