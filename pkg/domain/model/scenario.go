package model

import (
	"time"

	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// ScenarioFile is one scenario file record on the persistence service.
// CanvasData holds the encoded WirePayload; Metadata is an opaque JSON
// blob written by the legacy direct-save path.
type ScenarioFile struct {
	ID         types.FileID
	Name       string
	CanvasData string
	Metadata   string
	UpdatedAt  time.Time
}

// SaveMetadata describes who and when produced a save-scenario request.
type SaveMetadata struct {
	Author    string    `json:"author"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
	Version   int       `json:"version"`
}

// SaveRequest is the body of POST /api/projects/files/{fileId}/save-scenario.
type SaveRequest struct {
	Components []WireComponent `json:"components"`
	Project    string          `json:"project"`
	Scenarios  string          `json:"scenarios"`
	Metadata   SaveMetadata    `json:"metadata"`
}

// ScenarioRecord is the stored result of one save-scenario request.
type ScenarioRecord struct {
	ID         string
	FileID     types.FileID
	Project    string
	Scenario   string
	CanvasData string
	Metadata   SaveMetadata
	Version    int
	CreatedAt  time.Time
}
