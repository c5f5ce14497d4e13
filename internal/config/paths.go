package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Well-known artifact file names. The cleaned CSV is the side effect of
// the cleaning stage; the loaded CSV and parquet file are the final
// outputs consumed by tests and the dashboard respectively.
const (
	CleanedFileName = "cleaned_fitness_stats.csv"
	LoadedFileName  = "loaded_fitness_stats.csv"
	ParquetFileName = "clean_fitness_stats.parquet"
)

// Paths contains every resolved file system path the pipeline touches.
// This is the single source of truth for file locations.
type Paths struct {
	BaseDir      string
	RawFile      string
	ProcessedDir string
	OutputDir    string
	LogsDir      string

	// Well-known artifact files
	CleanedCSV string
	LoadedCSV  string
	Parquet    string
}

// ResolvePaths resolves the configured paths against the base directory.
// When no base directory is configured the current working directory is
// used, matching how the pipeline is run from the project root.
func (c *Config) ResolvePaths() (*Paths, error) {
	base := c.Paths.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		base = wd
	}

	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	processedDir := resolve(c.Paths.ProcessedDir)
	outputDir := resolve(c.Paths.OutputDir)

	return &Paths{
		BaseDir:      base,
		RawFile:      resolve(c.Paths.RawFile),
		ProcessedDir: processedDir,
		OutputDir:    outputDir,
		LogsDir:      resolve(c.Paths.LogsDir),
		CleanedCSV:   filepath.Join(processedDir, CleanedFileName),
		LoadedCSV:    filepath.Join(outputDir, LoadedFileName),
		Parquet:      filepath.Join(outputDir, ParquetFileName),
	}, nil
}

// EnsureDirectories creates every output directory the pipeline writes to
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.ProcessedDir, p.OutputDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the full path for a log file name
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}
