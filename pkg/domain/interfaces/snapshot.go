package interfaces

import (
	"context"

	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
)

// SnapshotRepository stores the per-user workspace snapshot used for
// session continuity. The snapshot is a fail-safe replica, never the
// source of truth.
type SnapshotRepository interface {
	// Get retrieves the snapshot for a user. Returns ErrNotFound when the
	// user has no snapshot yet.
	Get(ctx context.Context, userID string) (*model.WorkspaceSnapshot, error)

	// Put replaces the snapshot for a user.
	Put(ctx context.Context, userID string, snap *model.WorkspaceSnapshot) error
}
