package operations

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	pipelineerrors "github.com/praiseOjay/capstone-project/internal/errors"
)

// Manager runs a sequence of pipeline steps against a shared state.
// Steps execute in registration order and the run stops at the first
// failure.
type Manager struct {
	logger *slog.Logger
	tracer *StageTracer
	steps  []Step
}

// NewManager creates a new pipeline manager
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger: logger,
		tracer: NewStageTracer(),
	}
}

// Register appends a step to the pipeline
func (m *Manager) Register(step Step) {
	m.steps = append(m.steps, step)
}

// Steps returns the registered steps in execution order
func (m *Manager) Steps() []Step {
	return m.steps
}

// Execute runs all registered steps in order and returns the final
// operation state. The returned state is populated even when the run
// fails, so callers can inspect which step broke.
func (m *Manager) Execute(ctx context.Context) (*OperationState, error) {
	runID := uuid.New().String()
	state := NewOperationState(runID)
	state.SetStatus(OperationStatusRunning)

	ctx, runSpan := m.tracer.TraceRun(ctx, runID, len(m.steps))
	defer runSpan.End()

	m.logger.InfoContext(ctx, "pipeline run started",
		slog.String("run_id", runID),
		slog.Int("steps", len(m.steps)))

	for _, step := range m.steps {
		stepState := NewStepState(step.ID(), step.Name())
		state.AddStep(stepState)

		if err := m.runStep(ctx, runID, step, stepState, state); err != nil {
			state.SetStatus(OperationStatusFailed)
			m.tracer.RecordRunCompletion(runSpan, state.Duration(), err)
			m.logger.ErrorContext(ctx, "pipeline run failed",
				slog.String("run_id", runID),
				slog.String("step", step.ID()),
				slog.Duration("elapsed", state.Duration()),
				slog.String("error", err.Error()))
			return state, err
		}
	}

	state.SetStatus(OperationStatusCompleted)
	m.tracer.RecordRunCompletion(runSpan, state.Duration(), nil)
	m.logger.InfoContext(ctx, "pipeline run completed",
		slog.String("run_id", runID),
		slog.Duration("elapsed", state.Duration()))
	return state, nil
}

func (m *Manager) runStep(ctx context.Context, runID string, step Step, stepState *StepState, state *OperationState) error {
	if err := ctx.Err(); err != nil {
		stepState.Skip("run cancelled")
		return pipelineerrors.NewExecutionError(step.ID(), err)
	}

	if err := step.Validate(state); err != nil {
		stepState.Fail(err)
		return err
	}

	stepCtx, span := m.tracer.TraceStep(ctx, runID, step.ID())
	defer span.End()

	m.logger.InfoContext(stepCtx, "step started",
		slog.String("run_id", runID),
		slog.String("step", step.ID()),
		slog.String("name", step.Name()))

	stepState.Start()
	err := step.Execute(stepCtx, state)
	if err != nil {
		stepState.Fail(err)
		m.tracer.RecordStepCompletion(span, step.ID(), stepState.Duration(), err)
		return err
	}

	stepState.Complete()
	m.tracer.RecordStepCompletion(span, step.ID(), stepState.Duration(), nil)
	m.logger.InfoContext(stepCtx, "step completed",
		slog.String("run_id", runID),
		slog.String("step", step.ID()),
		slog.Duration("elapsed", stepState.Duration()))
	return nil
}
