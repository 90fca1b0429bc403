package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

type executionRepository struct {
	mu   sync.RWMutex
	logs []*model.ExecutionLog
}

func newExecutionRepository() *executionRepository {
	return &executionRepository{}
}

func copyLog(l *model.ExecutionLog) *model.ExecutionLog {
	out := *l
	return &out
}

func (r *executionRepository) Append(ctx context.Context, log *model.ExecutionLog) (*model.ExecutionLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyLog(log)
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.StartedAt.IsZero() {
		created.StartedAt = time.Now().UTC()
	}
	r.logs = append(r.logs, created)

	return copyLog(created), nil
}

func (r *executionRepository) List(ctx context.Context, fileID types.FileID) ([]*model.ExecutionLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.ExecutionLog, 0)
	for _, l := range r.logs {
		if l.FileID == fileID {
			out = append(out, copyLog(l))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out, nil
}
