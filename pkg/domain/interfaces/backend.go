package interfaces

import (
	"context"

	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// TokenSource supplies the bearer token for requests to the persistence
// service. The token is opaque to the core; an absent token simply means
// requests will fail with 401/403.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// ScenarioBackend is the remote persistence service for scenario canvas
// documents. Implementations classify transport and status errors into
// the model error taxonomy before returning.
type ScenarioBackend interface {
	// LoadCanvas fetches and decodes the canvas document of a file. A file
	// with no canvas data yields (nil, nil).
	LoadCanvas(ctx context.Context, fileID types.FileID) (*model.WirePayload, error)

	// SaveScenario posts a save-scenario request for a file.
	SaveScenario(ctx context.Context, fileID types.FileID, req *model.SaveRequest) error

	// PutCanvas writes canvas data through the legacy direct-save path.
	PutCanvas(ctx context.Context, fileID types.FileID, canvasData, metadata string) error
}
