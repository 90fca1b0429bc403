package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type catalogRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newCatalogRepository(client *firestore.Client) *catalogRepository {
	return &catalogRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *catalogRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_components"
	}
	return "components"
}

func (r *catalogRepository) Create(ctx context.Context, ct *model.ComponentType) (*model.ComponentType, error) {
	if err := ct.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid component type")
	}

	created := ct.Clone()
	if created.ID == "" {
		created.ID = uuid.NewString()
	}

	docRef := r.client.Collection(r.collection()).Doc(created.ID)
	if _, err := docRef.Get(ctx); err == nil {
		return nil, goerr.New("component type already exists", goerr.V("id", created.ID))
	} else if status.Code(err) != codes.NotFound {
		return nil, goerr.Wrap(err, "failed to check component type existence", goerr.V("id", created.ID))
	}

	if _, err := docRef.Set(ctx, created); err != nil {
		return nil, goerr.Wrap(err, "failed to create component type", goerr.V("id", created.ID))
	}

	return created, nil
}

func (r *catalogRepository) Get(ctx context.Context, id string) (*model.ComponentType, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "component type not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get component type", goerr.V("id", id))
	}

	var ct model.ComponentType
	if err := docSnap.DataTo(&ct); err != nil {
		return nil, goerr.Wrap(err, "failed to decode component type", goerr.V("id", id))
	}

	return &ct, nil
}

func (r *catalogRepository) List(ctx context.Context) ([]*model.ComponentType, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var out []*model.ComponentType
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate component types")
		}

		var ct model.ComponentType
		if err := docSnap.DataTo(&ct); err != nil {
			return nil, goerr.Wrap(err, "failed to decode component type", goerr.V("doc_id", docSnap.Ref.ID))
		}

		out = append(out, &ct)
	}

	return out, nil
}

func (r *catalogRepository) Delete(ctx context.Context, id string) error {
	docRef := r.client.Collection(r.collection()).Doc(id)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "component type not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check component type existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete component type", goerr.V("id", id))
	}

	return nil
}
