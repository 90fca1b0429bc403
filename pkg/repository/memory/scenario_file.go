package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

type scenarioFileRepository struct {
	mu      sync.RWMutex
	files   map[types.FileID]*model.ScenarioFile
	records []*model.ScenarioRecord
}

func newScenarioFileRepository() *scenarioFileRepository {
	return &scenarioFileRepository{
		files: make(map[types.FileID]*model.ScenarioFile),
	}
}

func copyFile(f *model.ScenarioFile) *model.ScenarioFile {
	out := *f
	return &out
}

func copyRecord(r *model.ScenarioRecord) *model.ScenarioRecord {
	out := *r
	return &out
}

func (r *scenarioFileRepository) Get(ctx context.Context, id types.FileID) (*model.ScenarioFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, exists := r.files[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "scenario file not found", goerr.V("id", id))
	}
	return copyFile(f), nil
}

func (r *scenarioFileRepository) PutCanvas(ctx context.Context, id types.FileID, canvasData, metadata string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, exists := r.files[id]
	if !exists {
		f = &model.ScenarioFile{ID: id, Name: id.String()}
		r.files[id] = f
	}
	f.CanvasData = canvasData
	f.Metadata = metadata
	f.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *scenarioFileRepository) SaveScenario(ctx context.Context, rec *model.ScenarioRecord) (*model.ScenarioRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyRecord(rec)
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	created.CreatedAt = time.Now().UTC()
	r.records = append(r.records, created)

	return copyRecord(created), nil
}
