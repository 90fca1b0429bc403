package interfaces

import (
	"context"

	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// ExecutionRepository stores scenario execution history entries.
type ExecutionRepository interface {
	// Append stores one execution log entry and assigns its ID.
	Append(ctx context.Context, log *model.ExecutionLog) (*model.ExecutionLog, error)

	// List retrieves the execution history of a file, most recent first.
	List(ctx context.Context, fileID types.FileID) ([]*model.ExecutionLog, error)
}
