package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
)

type catalogRepository struct {
	mu      sync.RWMutex
	entries []*model.ComponentType
}

func newCatalogRepository() *catalogRepository {
	return &catalogRepository{}
}

func (r *catalogRepository) Create(ctx context.Context, ct *model.ComponentType) (*model.ComponentType, error) {
	if err := ct.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid component type")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := ct.Clone()
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	for _, existing := range r.entries {
		if existing.ID == created.ID {
			return nil, goerr.New("component type already exists", goerr.V("id", created.ID))
		}
	}

	r.entries = append(r.entries, created)
	return created.Clone(), nil
}

func (r *catalogRepository) Get(ctx context.Context, id string) (*model.ComponentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ct := range r.entries {
		if ct.ID == id {
			return ct.Clone(), nil
		}
	}
	return nil, goerr.Wrap(ErrNotFound, "component type not found", goerr.V("id", id))
}

func (r *catalogRepository) List(ctx context.Context) ([]*model.ComponentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.ComponentType, 0, len(r.entries))
	for _, ct := range r.entries {
		out = append(out, ct.Clone())
	}
	return out, nil
}

func (r *catalogRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ct := range r.entries {
		if ct.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return goerr.Wrap(ErrNotFound, "component type not found", goerr.V("id", id))
}
