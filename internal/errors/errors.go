// Package errors defines the structured error taxonomy of the pipeline.
// Errors carry the stage they originated from and a stable code so the
// orchestrator can log failures with context before re-raising them.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies a pipeline error
type Code string

const (
	// CodeSource indicates the raw input file is missing or unreadable
	CodeSource Code = "SOURCE_ERROR"
	// CodeParse indicates the raw table could not be interpreted
	CodeParse Code = "PARSE_ERROR"
	// CodeValidation indicates a step's preconditions were not met
	CodeValidation Code = "VALIDATION_ERROR"
	// CodeAggregation indicates a grouped computation failed
	CodeAggregation Code = "AGGREGATION_ERROR"
	// CodeLoad indicates an output artifact could not be written
	CodeLoad Code = "LOAD_ERROR"
	// CodeExecution is the catch-all for step failures
	CodeExecution Code = "EXECUTION_ERROR"
)

// PipelineError is a structured error raised by a pipeline stage
type PipelineError struct {
	Code    Code   `json:"code"`
	Stage   string `json:"stage,omitempty"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e == nil {
		return "unknown pipeline error"
	}
	if e.Stage != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Stage, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *PipelineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// New creates a PipelineError with the given code, stage and message
func New(code Code, stage, message string) *PipelineError {
	return &PipelineError{Code: code, Stage: stage, Message: message}
}

// Wrap creates a PipelineError wrapping a cause
func Wrap(code Code, stage, message string, cause error) *PipelineError {
	return &PipelineError{Code: code, Stage: stage, Message: message, Cause: cause}
}

// NewSourceError reports a missing or unreadable input, naming the path
func NewSourceError(path string, cause error) *PipelineError {
	return &PipelineError{
		Code:    CodeSource,
		Stage:   "extract",
		Message: fmt.Sprintf("failed to load the raw dataset at: %s", path),
		Cause:   cause,
	}
}

// NewParseError reports an uninterpretable raw table
func NewParseError(message string, cause error) *PipelineError {
	return &PipelineError{Code: CodeParse, Stage: "extract", Message: message, Cause: cause}
}

// NewValidationError reports a step whose inputs are not available
func NewValidationError(stage, message string) *PipelineError {
	return &PipelineError{Code: CodeValidation, Stage: stage, Message: message}
}

// NewAggregationError reports a grouped computation failure
func NewAggregationError(stage, message string, cause error) *PipelineError {
	return &PipelineError{Code: CodeAggregation, Stage: stage, Message: message, Cause: cause}
}

// NewLoadError reports a failed artifact write
func NewLoadError(message string, cause error) *PipelineError {
	return &PipelineError{Code: CodeLoad, Stage: "load", Message: message, Cause: cause}
}

// NewExecutionError wraps an arbitrary step failure
func NewExecutionError(stage string, cause error) *PipelineError {
	return &PipelineError{
		Code:    CodeExecution,
		Stage:   stage,
		Message: "step execution failed",
		Cause:   cause,
	}
}

// IsCode reports whether err is (or wraps) a PipelineError with the code
func IsCode(err error, code Code) bool {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}
