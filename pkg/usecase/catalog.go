package usecase

import (
	"context"

	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
)

// ComponentTypes lists the component catalog.
func (u *UseCases) ComponentTypes(ctx context.Context) ([]*model.ComponentType, error) {
	return u.repo.Catalog().List(ctx)
}

// AddComponentType registers a new catalog entry.
func (u *UseCases) AddComponentType(ctx context.Context, ct *model.ComponentType) (*model.ComponentType, error) {
	return u.repo.Catalog().Create(ctx, ct)
}

// RemoveComponentType deletes a catalog entry.
func (u *UseCases) RemoveComponentType(ctx context.Context, id string) error {
	return u.repo.Catalog().Delete(ctx, id)
}
