package operations

import (
	"sync"
	"time"

	"github.com/praiseOjay/capstone-project/pkg/contracts/domain"
)

// OperationStatus represents the overall status of a pipeline run
type OperationStatus string

const (
	OperationStatusPending   OperationStatus = "pending"
	OperationStatusRunning   OperationStatus = "running"
	OperationStatusCompleted OperationStatus = "completed"
	OperationStatusFailed    OperationStatus = "failed"
)

// OperationState carries the data and bookkeeping for a single
// pipeline run. Steps read their inputs from it and write their
// outputs back, so each step only depends on the state slots it
// declares in Validate.
type OperationState struct {
	mu sync.RWMutex

	id        string
	status    OperationStatus
	startTime time.Time
	endTime   *time.Time
	steps     map[string]*StepState
	stepOrder []string

	// Data slots populated as the pipeline advances.
	raw           *domain.RawTable
	dataset       *domain.ActivityDataset
	visualization *domain.VisualizationDataset
}

// NewOperationState creates a new operation state with the given run ID
func NewOperationState(id string) *OperationState {
	return &OperationState{
		id:        id,
		status:    OperationStatusPending,
		startTime: time.Now(),
		steps:     make(map[string]*StepState),
	}
}

// ID returns the run identifier
func (s *OperationState) ID() string {
	return s.id
}

// Status returns the current operation status
func (s *OperationState) Status() OperationStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// SetStatus updates the operation status
func (s *OperationState) SetStatus(status OperationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	if status == OperationStatusCompleted || status == OperationStatusFailed {
		now := time.Now()
		s.endTime = &now
	}
}

// Duration returns the elapsed time of the run
func (s *OperationState) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.endTime != nil {
		return s.endTime.Sub(s.startTime)
	}
	return time.Since(s.startTime)
}

// AddStep registers a step state and remembers registration order
func (s *OperationState) AddStep(step *StepState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.steps[step.ID]; !exists {
		s.stepOrder = append(s.stepOrder, step.ID)
	}
	s.steps[step.ID] = step
}

// GetStep returns the state of the step with the given ID
func (s *OperationState) GetStep(id string) (*StepState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	step, ok := s.steps[id]
	return step, ok
}

// StepStates returns the step states in registration order
func (s *OperationState) StepStates() []*StepState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*StepState, 0, len(s.stepOrder))
	for _, id := range s.stepOrder {
		out = append(out, s.steps[id])
	}
	return out
}

// SetRawTable stores the extracted raw table
func (s *OperationState) SetRawTable(raw *domain.RawTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = raw
}

// RawTable returns the extracted raw table, if any
func (s *OperationState) RawTable() *domain.RawTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw
}

// SetDataset stores the cleaned and enriched dataset
func (s *OperationState) SetDataset(ds *domain.ActivityDataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
}

// Dataset returns the cleaned and enriched dataset, if any
func (s *OperationState) Dataset() *domain.ActivityDataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// SetVisualization stores the dashboard-ready dataset
func (s *OperationState) SetVisualization(vd *domain.VisualizationDataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visualization = vd
}

// Visualization returns the dashboard-ready dataset, if any
func (s *OperationState) Visualization() *domain.VisualizationDataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visualization
}
