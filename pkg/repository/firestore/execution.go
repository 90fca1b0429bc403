package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
	"google.golang.org/api/iterator"
)

type executionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newExecutionRepository(client *firestore.Client) *executionRepository {
	return &executionRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *executionRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_execution_logs"
	}
	return "execution_logs"
}

func (r *executionRepository) Append(ctx context.Context, log *model.ExecutionLog) (*model.ExecutionLog, error) {
	created := *log
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.StartedAt.IsZero() {
		created.StartedAt = time.Now().UTC()
	}

	if _, err := r.client.Collection(r.collection()).Doc(created.ID).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to append execution log", goerr.V("id", created.ID), goerr.V("file_id", created.FileID))
	}

	return &created, nil
}

func (r *executionRepository) List(ctx context.Context, fileID types.FileID) ([]*model.ExecutionLog, error) {
	iter := r.client.Collection(r.collection()).
		Where("FileID", "==", fileID.String()).
		OrderBy("StartedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var out []*model.ExecutionLog
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate execution logs", goerr.V("file_id", fileID))
		}

		var l model.ExecutionLog
		if err := docSnap.DataTo(&l); err != nil {
			return nil, goerr.Wrap(err, "failed to decode execution log", goerr.V("doc_id", docSnap.Ref.ID))
		}

		out = append(out, &l)
	}

	return out, nil
}
