// Package dataprocessing contains the transform core of the fitness ETL
// pipeline: raw file parsing, the ordered cleaning stages, enrichment
// with calculated fields, and the participant-level and weekly
// aggregations that prepare the dataset for the dashboard.
//
// The package operates on the domain types in pkg/contracts/domain. The
// raw table is an untyped string grid; cleaning turns it into typed
// activity records with explicit optional (pointer) fields, and the
// preparers produce the consolidated visualization rows.
//
// All transforms are single-pass and synchronous. Each function receives
// a table, produces a new version, and never mutates data shared with
// another stage.
package dataprocessing
