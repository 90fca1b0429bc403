package usecase

import (
	"context"
	"time"

	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// CanvasDocument returns the stored scenario file record.
func (u *UseCases) CanvasDocument(ctx context.Context, fileID types.FileID) (*model.ScenarioFile, error) {
	return u.repo.ScenarioFile().Get(ctx, fileID)
}

// PutCanvasDocument overwrites a file's canvas data and metadata.
func (u *UseCases) PutCanvasDocument(ctx context.Context, fileID types.FileID, canvasData, metadata string) error {
	return u.repo.ScenarioFile().PutCanvas(ctx, fileID, canvasData, metadata)
}

// StoreScenario records one save-scenario request: the versioned scenario
// record is appended and the file's canvas document is overwritten with
// the freshly projected payload, so both read paths observe the same
// state.
func (u *UseCases) StoreScenario(ctx context.Context, fileID types.FileID, req *model.SaveRequest) (*model.ScenarioRecord, error) {
	components := make([]*model.PlacedComponent, 0, len(req.Components))
	for i := range req.Components {
		components = append(components, model.NormalizeComponent(&req.Components[i], u.icons))
	}

	savedAt := req.Metadata.Timestamp
	if savedAt.IsZero() {
		savedAt = time.Now()
	}
	payload := model.BuildPayload(components, savedAt)
	encoded, err := model.EncodeCanvasData(payload)
	if err != nil {
		return nil, err
	}

	rec, err := u.repo.ScenarioFile().SaveScenario(ctx, &model.ScenarioRecord{
		FileID:     fileID,
		Project:    req.Project,
		Scenario:   req.Scenarios,
		CanvasData: encoded,
		Metadata:   req.Metadata,
		Version:    req.Metadata.Version,
	})
	if err != nil {
		return nil, err
	}

	if err := u.repo.ScenarioFile().PutCanvas(ctx, fileID, encoded, ""); err != nil {
		return nil, err
	}

	return rec, nil
}
