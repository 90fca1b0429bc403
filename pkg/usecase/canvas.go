package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// CanvasUseCase holds the in-memory canvas of every open file. Canvases
// are created lazily on first access and replaced wholesale on load.
type CanvasUseCase struct {
	uc *UseCases

	mu       sync.Mutex
	canvases map[types.FileID]*model.Canvas
}

func newCanvasUseCase(uc *UseCases) *CanvasUseCase {
	return &CanvasUseCase{
		uc:       uc,
		canvases: make(map[types.FileID]*model.Canvas),
	}
}

func (c *CanvasUseCase) canvasFor(fileID types.FileID) *model.Canvas {
	c.mu.Lock()
	defer c.mu.Unlock()

	cv, exists := c.canvases[fileID]
	if !exists {
		cv = model.NewCanvas()
		c.canvases[fileID] = cv
	}
	return cv
}

// Place drops a new component of the given catalog type onto the file's
// canvas. A second sender is rejected with a user-facing notification.
func (c *CanvasUseCase) Place(ctx context.Context, fileID types.FileID, typeID string, style *model.Style) (*model.PlacedComponent, error) {
	ct, err := c.uc.repo.Catalog().Get(ctx, typeID)
	if err != nil {
		return nil, goerr.Wrap(ErrUnknownComponentType, err.Error(), goerr.V("type_id", typeID))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cv, exists := c.canvases[fileID]
	if !exists {
		cv = model.NewCanvas()
		c.canvases[fileID] = cv
	}

	pc, err := cv.Add(ct, style)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateSender) {
			c.uc.notifier.Error(ctx, "Only one Sender component is allowed per scenario")
		}
		return nil, err
	}
	return pc, nil
}

// Remove deletes a component from the file's canvas.
func (c *CanvasUseCase) Remove(ctx context.Context, fileID types.FileID, id types.ComponentID) error {
	return c.canvasFor(fileID).Remove(id)
}

// Components returns the file's components in placement order.
func (c *CanvasUseCase) Components(fileID types.FileID) []*model.PlacedComponent {
	return c.canvasFor(fileID).List()
}

// Find returns one component of the file's canvas by ID.
func (c *CanvasUseCase) Find(fileID types.FileID, id types.ComponentID) (*model.PlacedComponent, bool) {
	return c.canvasFor(fileID).Find(id)
}

func (c *CanvasUseCase) replace(fileID types.FileID, components []*model.PlacedComponent) {
	c.canvasFor(fileID).Replace(components)
}

func (c *CanvasUseCase) updateConfig(fileID types.FileID, id types.ComponentID, data model.FieldMap) error {
	return c.canvasFor(fileID).UpdateConfig(id, data)
}

// Drop discards the canvas of a closed file.
func (c *CanvasUseCase) Drop(fileID types.FileID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.canvases, fileID)
}
