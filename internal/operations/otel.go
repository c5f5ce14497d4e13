package operations

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TracerName identifies spans emitted by the pipeline
	TracerName = "fitness-etl.operation"
)

// StageTracer provides OpenTelemetry instrumentation for pipeline runs
type StageTracer struct {
	tracer trace.Tracer
}

// NewStageTracer creates a new stage tracer using the global provider
func NewStageTracer() *StageTracer {
	return &StageTracer{
		tracer: otel.Tracer(TracerName),
	}
}

// TraceRun creates a span covering the entire pipeline run
func (st *StageTracer) TraceRun(ctx context.Context, runID string, stepCount int) (context.Context, trace.Span) {
	ctx, span := st.tracer.Start(ctx, "pipeline.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("pipeline.run_id", runID),
			attribute.Int("pipeline.step_count", stepCount),
		),
	)
	return ctx, span
}

// TraceStep creates a span for an individual step execution
func (st *StageTracer) TraceStep(ctx context.Context, runID, stepID string) (context.Context, trace.Span) {
	spanName := fmt.Sprintf("pipeline.step.%s", stepID)
	ctx, span := st.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("pipeline.run_id", runID),
			attribute.String("step.id", stepID),
		),
	)
	return ctx, span
}

// RecordStepCompletion records step completion on the given span
func (st *StageTracer) RecordStepCompletion(span trace.Span, stepID string, duration time.Duration, err error) {
	span.SetAttributes(
		attribute.Float64("step.duration_seconds", duration.Seconds()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, fmt.Sprintf("step %s failed", stepID))
		return
	}
	span.SetStatus(codes.Ok, fmt.Sprintf("step %s completed", stepID))
}

// RecordRunCompletion records the final status of the run span
func (st *StageTracer) RecordRunCompletion(span trace.Span, duration time.Duration, err error) {
	span.SetAttributes(
		attribute.Float64("pipeline.duration_seconds", duration.Seconds()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "pipeline run failed")
		return
	}
	span.SetStatus(codes.Ok, "pipeline run completed")
}
