package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type snapshotRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newSnapshotRepository(client *firestore.Client) *snapshotRepository {
	return &snapshotRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *snapshotRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_workspace_snapshots"
	}
	return "workspace_snapshots"
}

func (r *snapshotRepository) Get(ctx context.Context, userID string) (*model.WorkspaceSnapshot, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "snapshot not found", goerr.V("user_id", userID))
		}
		return nil, goerr.Wrap(err, "failed to get snapshot", goerr.V("user_id", userID))
	}

	var snap model.WorkspaceSnapshot
	if err := docSnap.DataTo(&snap); err != nil {
		return nil, goerr.Wrap(err, "failed to decode snapshot", goerr.V("user_id", userID))
	}

	return &snap, nil
}

func (r *snapshotRepository) Put(ctx context.Context, userID string, snap *model.WorkspaceSnapshot) error {
	if _, err := r.client.Collection(r.collection()).Doc(userID).Set(ctx, snap); err != nil {
		return goerr.Wrap(err, "failed to put snapshot", goerr.V("user_id", userID))
	}
	return nil
}
