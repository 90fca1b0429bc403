package usecase

import (
	"context"
	"time"

	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// SaveWorkspace persists a user's workspace snapshot.
func (u *UseCases) SaveWorkspace(ctx context.Context, userID string, snap *model.WorkspaceSnapshot) error {
	snap.SavedAt = time.Now().UTC()
	return u.repo.Snapshot().Put(ctx, userID, snap)
}

// RestoreWorkspace returns the last persisted snapshot of a user.
func (u *UseCases) RestoreWorkspace(ctx context.Context, userID string) (*model.WorkspaceSnapshot, error) {
	return u.repo.Snapshot().Get(ctx, userID)
}

// RecordExecution appends one execution log entry.
func (u *UseCases) RecordExecution(ctx context.Context, log *model.ExecutionLog) (*model.ExecutionLog, error) {
	return u.repo.Execution().Append(ctx, log)
}

// Executions lists a file's execution history, most recent first.
func (u *UseCases) Executions(ctx context.Context, fileID types.FileID) ([]*model.ExecutionLog, error) {
	return u.repo.Execution().List(ctx, fileID)
}
