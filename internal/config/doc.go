// Package config provides centralized configuration management for the
// fitness ETL pipeline. It handles loading configuration from multiple
// sources, validation, and resolved filesystem paths for every artifact
// the pipeline reads or writes.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (YAML)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern FITNESS_* for namespacing:
//
//	FITNESS_LOGGING_LEVEL=info
//	FITNESS_PATHS_RAW_FILE=data/raw/fitness_stats/unclean_fitness_dataset.csv
//	FITNESS_PATHS_OUTPUT_DIR=data/output
//	FITNESS_PIPELINE_SAMPLE_SIZE=1000
//
// # Paths
//
// The Paths type is the single source of truth for file locations:
//
//	paths, err := cfg.ResolvePaths()
//	paths.EnsureDirectories()
//	paths.CleanedCSV  // data/processed/cleaned_fitness_stats.csv
//	paths.LoadedCSV   // data/output/loaded_fitness_stats.csv
//	paths.Parquet     // data/output/clean_fitness_stats.parquet
package config
