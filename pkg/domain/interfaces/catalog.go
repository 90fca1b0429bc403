package interfaces

import (
	"context"

	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
)

// CatalogRepository stores the palette's component types. Entries created
// through the API get a server-assigned ID.
type CatalogRepository interface {
	// Create stores a new component type and assigns its ID.
	Create(ctx context.Context, ct *model.ComponentType) (*model.ComponentType, error)

	// Get retrieves a component type by ID.
	Get(ctx context.Context, id string) (*model.ComponentType, error)

	// List retrieves all component types in creation order.
	List(ctx context.Context) ([]*model.ComponentType, error)

	// Delete removes a component type by ID.
	Delete(ctx context.Context, id string) error
}
