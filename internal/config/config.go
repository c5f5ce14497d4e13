package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete pipeline configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
	Tracing  TracingConfig  `yaml:"tracing" envconfig:"TRACING"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	File   string `yaml:"file" envconfig:"FILE" default:"etl_pipeline.log"`
}

// PathsConfig contains the file system locations the pipeline works with.
// Relative paths are resolved against BaseDir (the working directory when
// BaseDir is empty).
type PathsConfig struct {
	BaseDir      string `yaml:"base_dir" envconfig:"BASE_DIR"`
	RawFile      string `yaml:"raw_file" envconfig:"RAW_FILE" default:"data/raw/fitness_stats/unclean_fitness_dataset.csv" validate:"required"`
	ProcessedDir string `yaml:"processed_dir" envconfig:"PROCESSED_DIR" default:"data/processed" validate:"required"`
	OutputDir    string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"data/output" validate:"required"`
	LogsDir      string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs" validate:"required"`
}

// PipelineConfig contains tuning knobs for the transform stage
type PipelineConfig struct {
	SampleSize      int   `yaml:"sample_size" envconfig:"SAMPLE_SIZE" default:"1000" validate:"min=1"`
	SampleSeed      int64 `yaml:"sample_seed" envconfig:"SAMPLE_SEED" default:"42"`
	RollingWindow   int   `yaml:"rolling_window" envconfig:"ROLLING_WINDOW" default:"30" validate:"min=1"`
	MinObservations int   `yaml:"min_observations" envconfig:"MIN_OBSERVATIONS" default:"5" validate:"min=1"`
}

// TracingConfig controls OpenTelemetry span export
type TracingConfig struct {
	Enabled bool `yaml:"enabled" envconfig:"ENABLED" default:"false"`
}

// Load loads configuration from environment variables and an optional
// YAML config file. Environment variables win over file values, which win
// over struct defaults.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("FITNESS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileCfg, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileCfg, cfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration produced by the struct defaults alone.
func Default() *Config {
	var cfg Config
	// envconfig applies the default tags; an empty environment cannot fail here
	_ = envconfig.Process("FITNESS_DEFAULTS_UNUSED", &cfg)
	return &cfg
}

// Validate checks the configuration against its declared constraints
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence,
// but environment values that are still at their declared defaults yield
// to explicit file values)
func mergeConfigs(fileConfig, envConfig Config) Config {
	defaults := Default()

	if fileConfig.Logging.Level != "" && envConfig.Logging.Level == defaults.Logging.Level {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Format != "" && envConfig.Logging.Format == defaults.Logging.Format {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if fileConfig.Logging.Output != "" && envConfig.Logging.Output == defaults.Logging.Output {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.File != "" && envConfig.Logging.File == defaults.Logging.File {
		envConfig.Logging.File = fileConfig.Logging.File
	}

	if fileConfig.Paths.BaseDir != "" && envConfig.Paths.BaseDir == "" {
		envConfig.Paths.BaseDir = fileConfig.Paths.BaseDir
	}
	if fileConfig.Paths.RawFile != "" && envConfig.Paths.RawFile == defaults.Paths.RawFile {
		envConfig.Paths.RawFile = fileConfig.Paths.RawFile
	}
	if fileConfig.Paths.ProcessedDir != "" && envConfig.Paths.ProcessedDir == defaults.Paths.ProcessedDir {
		envConfig.Paths.ProcessedDir = fileConfig.Paths.ProcessedDir
	}
	if fileConfig.Paths.OutputDir != "" && envConfig.Paths.OutputDir == defaults.Paths.OutputDir {
		envConfig.Paths.OutputDir = fileConfig.Paths.OutputDir
	}
	if fileConfig.Paths.LogsDir != "" && envConfig.Paths.LogsDir == defaults.Paths.LogsDir {
		envConfig.Paths.LogsDir = fileConfig.Paths.LogsDir
	}

	if fileConfig.Pipeline.SampleSize != 0 && envConfig.Pipeline.SampleSize == defaults.Pipeline.SampleSize {
		envConfig.Pipeline.SampleSize = fileConfig.Pipeline.SampleSize
	}
	if fileConfig.Pipeline.SampleSeed != 0 && envConfig.Pipeline.SampleSeed == defaults.Pipeline.SampleSeed {
		envConfig.Pipeline.SampleSeed = fileConfig.Pipeline.SampleSeed
	}
	if fileConfig.Pipeline.RollingWindow != 0 && envConfig.Pipeline.RollingWindow == defaults.Pipeline.RollingWindow {
		envConfig.Pipeline.RollingWindow = fileConfig.Pipeline.RollingWindow
	}
	if fileConfig.Pipeline.MinObservations != 0 && envConfig.Pipeline.MinObservations == defaults.Pipeline.MinObservations {
		envConfig.Pipeline.MinObservations = fileConfig.Pipeline.MinObservations
	}

	if fileConfig.Tracing.Enabled {
		envConfig.Tracing.Enabled = true
	}

	return envConfig
}
