// Package operations coordinates the ETL pipeline as an ordered
// sequence of steps. Each step implements the Step interface and
// operates on a shared OperationState that carries the dataset
// between stages. The Manager executes the steps in order, fails
// fast on the first error, and records per-step timing so a run can
// be inspected after the fact.
package operations
