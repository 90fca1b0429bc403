package model

import (
	"time"

	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// ExecutionStatus is the outcome of one scenario execution.
type ExecutionStatus string

const (
	ExecutionRunning ExecutionStatus = "running"
	ExecutionSuccess ExecutionStatus = "success"
	ExecutionFailed  ExecutionStatus = "failed"
)

// ExecutionLog is one entry of a scenario's execution history. The
// execution engine itself is an opaque remote collaborator; the editor
// only lists what it reported.
type ExecutionLog struct {
	ID         string          `json:"id"`
	FileID     types.FileID    `json:"fileId"`
	Status     ExecutionStatus `json:"status"`
	Message    string          `json:"message,omitempty"`
	StartedAt  time.Time       `json:"startedAt"`
	FinishedAt time.Time       `json:"finishedAt,omitzero"`
}
