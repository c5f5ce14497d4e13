package dataprocessing

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	pipelineerrors "github.com/praiseOjay/capstone-project/internal/errors"
	"github.com/praiseOjay/capstone-project/pkg/contracts/domain"
)

// expectedExtractDuration is the performance benchmark for extraction,
// logged against the actual elapsed time for monitoring.
const expectedExtractDuration = 600 * time.Millisecond

// Parser reads a raw fitness dataset file into an untyped table.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a new raw dataset parser
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// ParseFile reads the raw dataset at path into a RawTable. CSV and XLSX
// sources are supported, selected by file extension. A missing or
// unreadable file fails fast with an error naming the path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*domain.RawTable, error) {
	start := time.Now()

	p.logger.InfoContext(ctx, "starting raw dataset extraction",
		slog.String("path", path))

	if _, err := os.Stat(path); err != nil {
		return nil, pipelineerrors.NewSourceError(path, err)
	}

	var (
		table *domain.RawTable
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		table, err = p.parseCSV(path)
	case ".xlsx":
		table, err = p.parseExcel(path)
	default:
		return nil, pipelineerrors.NewParseError(
			fmt.Sprintf("unsupported raw file format: %s", filepath.Ext(path)), nil)
	}
	if err != nil {
		return nil, pipelineerrors.NewSourceError(path, err)
	}

	elapsed := time.Since(start)
	p.logger.InfoContext(ctx, "raw dataset extraction complete",
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Columns)),
		slog.Int("null_cells", table.NullCells()),
		slog.Int("duplicate_rows", table.DuplicateRows()),
		slog.Duration("elapsed", elapsed),
		slog.Duration("expected", expectedExtractDuration),
		slog.Bool("within_benchmark", elapsed <= expectedExtractDuration))

	return table, nil
}

// parseCSV reads a delimited text file with a fixed header row
func (p *Parser) parseCSV(path string) (*domain.RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(stripBOM(file))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	return shapeTable(records), nil
}

// parseExcel reads the first sheet of an Excel workbook
func (p *Parser) parseExcel(path string) (*domain.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheets[0])
	}

	return shapeTable(rows), nil
}

// shapeTable turns header+data rows into a rectangular RawTable, padding
// short rows with missing cells and truncating overlong ones to the
// header width.
func shapeTable(records [][]string) *domain.RawTable {
	columns := make([]string, len(records[0]))
	for i, col := range records[0] {
		columns[i] = strings.TrimSpace(col)
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, len(columns))
		copy(row, rec)
		rows = append(rows, row)
	}

	return &domain.RawTable{Columns: columns, Rows: rows}
}

// stripBOM removes a UTF-8 byte order mark if present
func stripBOM(file *os.File) *bufio.Reader {
	reader := bufio.NewReader(file)
	if prefix, err := reader.Peek(3); err == nil && prefix[0] == 0xEF && prefix[1] == 0xBB && prefix[2] == 0xBF {
		reader.Discard(3)
	}
	return reader
}
