package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
)

type snapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*model.WorkspaceSnapshot
}

func newSnapshotRepository() *snapshotRepository {
	return &snapshotRepository{
		snapshots: make(map[string]*model.WorkspaceSnapshot),
	}
}

func copySnapshot(s *model.WorkspaceSnapshot) *model.WorkspaceSnapshot {
	out := &model.WorkspaceSnapshot{
		Folders:    append([]model.FolderRef(nil), s.Folders...),
		OpenFiles:  append([]string(nil), s.OpenFiles...),
		ActiveFile: s.ActiveFile,
		SavedAt:    s.SavedAt,
	}
	if s.Files != nil {
		out.Files = make(map[string][]model.FileRef, len(s.Files))
		for k, v := range s.Files {
			out.Files[k] = append([]model.FileRef(nil), v...)
		}
	}
	if s.CanvasData != nil {
		out.CanvasData = make(map[string][]model.WireComponent, len(s.CanvasData))
		for k, v := range s.CanvasData {
			out.CanvasData[k] = append([]model.WireComponent(nil), v...)
		}
	}
	return out
}

func (r *snapshotRepository) Get(ctx context.Context, userID string) (*model.WorkspaceSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, exists := r.snapshots[userID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "snapshot not found", goerr.V("user_id", userID))
	}
	return copySnapshot(snap), nil
}

func (r *snapshotRepository) Put(ctx context.Context, userID string, snap *model.WorkspaceSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[userID] = copySnapshot(snap)
	return nil
}
