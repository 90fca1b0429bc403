package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/uncal-lab/flowcanvas/pkg/domain/interfaces"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
	"github.com/uncal-lab/flowcanvas/pkg/utils/async"
	"github.com/uncal-lab/flowcanvas/pkg/utils/errutil"
	"golang.org/x/sync/errgroup"
)

// ScenarioUseCase moves canvases between memory and the persistence
// service. Loads are fail-safe: any failure leaves the file with an empty
// canvas instead of stale or partial state, and the workspace keeps
// running.
type ScenarioUseCase struct {
	uc *UseCases

	mu     sync.Mutex
	saving map[types.FileID]bool
}

func newScenarioUseCase(uc *UseCases) *ScenarioUseCase {
	return &ScenarioUseCase{
		uc:     uc,
		saving: make(map[types.FileID]bool),
	}
}

// Load fetches the canvas document of one file and replaces the in-memory
// canvas. A document that fails to parse resets the canvas silently; a
// transport or service failure additionally notifies the user. Sibling
// files are never touched. The returned slice reflects the canvas after
// the load.
func (s *ScenarioUseCase) Load(ctx context.Context, fileID types.FileID) []*model.PlacedComponent {
	payload, err := s.uc.backend.LoadCanvas(ctx, fileID)
	if err != nil {
		errutil.Handle(ctx, err, "scenario load failed")
		s.uc.Canvas.replace(fileID, []*model.PlacedComponent{})
		if !errors.Is(err, model.ErrParseCanvas) {
			s.uc.notifier.Error(ctx, "Failed to load scenario data")
		}
		return []*model.PlacedComponent{}
	}

	components := model.NormalizePayload(payload, s.uc.icons)
	s.uc.Canvas.replace(fileID, components)
	s.publish(ctx, types.TopicScenarioChanged, fileID, "loaded")

	return s.uc.Canvas.Components(fileID)
}

// LoadAll loads several files concurrently. Each file is fail-safe on its
// own; one failure never affects another.
func (s *ScenarioUseCase) LoadAll(ctx context.Context, fileIDs []types.FileID) map[types.FileID][]*model.PlacedComponent {
	var mu sync.Mutex
	out := make(map[types.FileID][]*model.PlacedComponent, len(fileIDs))

	g, ctx := errgroup.WithContext(ctx)
	for _, fileID := range fileIDs {
		g.Go(func() error {
			components := s.Load(ctx, fileID)
			mu.Lock()
			out[fileID] = components
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (s *ScenarioUseCase) acquireSave(fileID types.FileID) bool {
	if !s.uc.saveLock {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving[fileID] {
		return false
	}
	s.saving[fileID] = true
	return true
}

func (s *ScenarioUseCase) releaseSave(fileID types.FileID) {
	if !s.uc.saveLock {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saving, fileID)
}

// Save posts the file's current canvas through the save-scenario path.
// On success it schedules a delayed read-back load so local state picks up
// whatever the service persisted.
func (s *ScenarioUseCase) Save(ctx context.Context, fileID types.FileID, project, scenarios string, meta model.SaveMetadata) error {
	if !s.acquireSave(fileID) {
		return ErrSaveInProgress
	}
	defer s.releaseSave(fileID)

	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now().UTC()
	}

	payload := model.BuildPayload(s.uc.Canvas.Components(fileID), time.Now())
	req := &model.SaveRequest{
		Components: payload.Components,
		Project:    project,
		Scenarios:  scenarios,
		Metadata:   meta,
	}

	if err := s.uc.backend.SaveScenario(ctx, fileID, req); err != nil {
		errutil.Handle(ctx, err, "scenario save failed")
		s.uc.notifier.Error(ctx, "Failed to save scenario")
		return err
	}

	s.uc.notifier.Success(ctx, "Scenario saved")
	s.publish(ctx, types.TopicFileStatusChanged, fileID, "saved")

	async.DispatchAfter(ctx, s.uc.reloadDelay, func(ctx context.Context) error {
		s.Load(ctx, fileID)
		return nil
	})

	return nil
}

// SaveDirect writes the encoded canvas through the legacy direct PUT
// path. No read-back reload is scheduled; callers using this path manage
// refresh themselves.
func (s *ScenarioUseCase) SaveDirect(ctx context.Context, fileID types.FileID, metadata string) error {
	if !s.acquireSave(fileID) {
		return ErrSaveInProgress
	}
	defer s.releaseSave(fileID)

	payload := model.BuildPayload(s.uc.Canvas.Components(fileID), time.Now())
	encoded, err := model.EncodeCanvasData(payload)
	if err != nil {
		return err
	}

	if err := s.uc.backend.PutCanvas(ctx, fileID, encoded, metadata); err != nil {
		errutil.Handle(ctx, err, "direct canvas save failed")
		s.uc.notifier.Error(ctx, "Failed to save scenario")
		return err
	}

	s.uc.notifier.Success(ctx, "Scenario saved")
	s.publish(ctx, types.TopicFileStatusChanged, fileID, "saved")
	return nil
}

func (s *ScenarioUseCase) publish(ctx context.Context, topic types.EventTopic, fileID types.FileID, status string) {
	if s.uc.bus == nil {
		return
	}
	s.uc.bus.Publish(ctx, interfaces.Event{
		Topic:  topic,
		FileID: fileID,
		Status: status,
	})
}
