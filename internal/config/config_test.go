package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)

	assert.Equal(t, "data/raw/fitness_stats/unclean_fitness_dataset.csv", cfg.Paths.RawFile)
	assert.Equal(t, "data/processed", cfg.Paths.ProcessedDir)
	assert.Equal(t, "data/output", cfg.Paths.OutputDir)

	assert.Equal(t, 1000, cfg.Pipeline.SampleSize)
	assert.Equal(t, int64(42), cfg.Pipeline.SampleSeed)
	assert.Equal(t, 30, cfg.Pipeline.RollingWindow)
	assert.Equal(t, 5, cfg.Pipeline.MinObservations)

	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Paths.RawFile, cfg.Paths.RawFile)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FITNESS_LOGGING_LEVEL", "debug")
	t.Setenv("FITNESS_PIPELINE_SAMPLE_SIZE", "50")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 50, cfg.Pipeline.SampleSize)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: warn
  format: text
paths:
  raw_file: custom/input.csv
pipeline:
  rolling_window: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "custom/input.csv", cfg.Paths.RawFile)
	assert.Equal(t, 7, cfg.Pipeline.RollingWindow)
	// Untouched values keep their defaults
	assert.Equal(t, 1000, cfg.Pipeline.SampleSize)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	t.Setenv("FITNESS_LOGGING_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: verbose\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestResolvePaths(t *testing.T) {
	cfg := Default()
	cfg.Paths.BaseDir = "/srv/etl"

	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)

	assert.Equal(t, "/srv/etl/data/raw/fitness_stats/unclean_fitness_dataset.csv", paths.RawFile)
	assert.Equal(t, "/srv/etl/data/processed", paths.ProcessedDir)
	assert.Equal(t, filepath.Join(paths.ProcessedDir, CleanedFileName), paths.CleanedCSV)
	assert.Equal(t, filepath.Join(paths.OutputDir, LoadedFileName), paths.LoadedCSV)
	assert.Equal(t, filepath.Join(paths.OutputDir, ParquetFileName), paths.Parquet)
}

func TestResolvePaths_AbsolutePathsUntouched(t *testing.T) {
	cfg := Default()
	cfg.Paths.BaseDir = "/srv/etl"
	cfg.Paths.RawFile = "/mnt/data/raw.csv"

	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, "/mnt/data/raw.csv", paths.RawFile)
}

func TestPaths_EnsureDirectoriesAndLogPath(t *testing.T) {
	cfg := Default()
	cfg.Paths.BaseDir = t.TempDir()

	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirectories())

	assert.DirExists(t, paths.ProcessedDir)
	assert.DirExists(t, paths.OutputDir)
	assert.DirExists(t, paths.LogsDir)
	assert.Equal(t, filepath.Join(paths.LogsDir, "etl.log"), paths.GetLogPath("etl.log"))
}
