package interfaces

import (
	"context"

	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// ScenarioFileRepository stores scenario files and their canvas documents.
type ScenarioFileRepository interface {
	// Get retrieves a scenario file by ID.
	Get(ctx context.Context, id types.FileID) (*model.ScenarioFile, error)

	// PutCanvas replaces the canvas data and metadata of a file, creating
	// the record if it does not exist yet.
	PutCanvas(ctx context.Context, id types.FileID, canvasData, metadata string) error

	// SaveScenario stores the result of a save-scenario request.
	SaveScenario(ctx context.Context, rec *model.ScenarioRecord) (*model.ScenarioRecord, error)
}
