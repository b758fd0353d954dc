package types

import (
	"time"

	"github.com/google/uuid"
)

// Run log status values.
const (
	// StatusInProgress marks a run that has not finished all three stages.
	StatusInProgress = "in_progress"
	// StatusCompleted marks a run whose three stages all produced output.
	StatusCompleted = "completed"
	// StatusError marks a run aborted by a failure outside the stages.
	StatusError = "error"
)

// StageRecord is one completed expert pass inside a run log.
type StageRecord struct {
	Expert    string    `json:"expert"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// RunLog is the structured record of one pipeline execution. It is owned
// exclusively by the pipeline while the run is in flight, then handed to the
// log store as a value copy and never mutated again.
//
// Invariant: len(Steps) <= 3 at all times; len(Steps) == 3 exactly when
// Status is StatusCompleted; when Status is StatusError, len(Steps) < 3 and
// ErrorMessage is set.
type RunLog struct {
	ID           uuid.UUID     `json:"id"`
	ServiceType  ServiceType   `json:"service_type"`
	ServiceLabel string        `json:"service_label"`
	StartedAt    time.Time     `json:"started_at"`
	Steps        []StageRecord `json:"steps"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// NewRunLog creates an in-progress run log for one pipeline execution.
func NewRunLog(serviceType ServiceType) RunLog {
	return RunLog{
		ID:           uuid.New(),
		ServiceType:  serviceType,
		ServiceLabel: serviceType.Label(),
		StartedAt:    time.Now().UTC(),
		Status:       StatusInProgress,
	}
}

// AppendStep records one completed expert pass.
func (l *RunLog) AppendStep(expert string, stage Stage) {
	l.Steps = append(l.Steps, StageRecord{
		Expert:    expert,
		Action:    stage.String(),
		Timestamp: time.Now().UTC(),
	})
}

// Complete marks the run as finished on the normal path.
func (l *RunLog) Complete() {
	l.Status = StatusCompleted
}

// Fail marks the run as aborted by a pipeline-level failure.
func (l *RunLog) Fail(message string) {
	l.Status = StatusError
	l.ErrorMessage = message
}

// Clone returns a deep copy so stored logs cannot alias pipeline state.
func (l RunLog) Clone() RunLog {
	out := l
	out.Steps = make([]StageRecord, len(l.Steps))
	copy(out.Steps, l.Steps)
	return out
}
