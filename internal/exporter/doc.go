// Package exporter writes the pipeline's output artifacts: the cleaned
// dataset snapshot, the final row-oriented CSV and the columnar parquet
// file the dashboard reads. The Loader coordinates the final writes
// all-or-nothing so a failed run never leaves a partial artifact behind.
package exporter
