package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type scenarioFileRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newScenarioFileRepository(client *firestore.Client) *scenarioFileRepository {
	return &scenarioFileRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *scenarioFileRepository) filesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_scenario_files"
	}
	return "scenario_files"
}

func (r *scenarioFileRepository) scenariosCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_scenarios"
	}
	return "scenarios"
}

func (r *scenarioFileRepository) Get(ctx context.Context, id types.FileID) (*model.ScenarioFile, error) {
	docSnap, err := r.client.Collection(r.filesCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "scenario file not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get scenario file", goerr.V("id", id))
	}

	var f model.ScenarioFile
	if err := docSnap.DataTo(&f); err != nil {
		return nil, goerr.Wrap(err, "failed to decode scenario file", goerr.V("id", id))
	}

	return &f, nil
}

func (r *scenarioFileRepository) PutCanvas(ctx context.Context, id types.FileID, canvasData, metadata string) error {
	docRef := r.client.Collection(r.filesCollection()).Doc(id.String())

	f := &model.ScenarioFile{
		ID:         id,
		Name:       id.String(),
		CanvasData: canvasData,
		Metadata:   metadata,
		UpdatedAt:  time.Now().UTC(),
	}

	if docSnap, err := docRef.Get(ctx); err == nil {
		var existing model.ScenarioFile
		if err := docSnap.DataTo(&existing); err == nil && existing.Name != "" {
			f.Name = existing.Name
		}
	} else if status.Code(err) != codes.NotFound {
		return goerr.Wrap(err, "failed to check scenario file existence", goerr.V("id", id))
	}

	if _, err := docRef.Set(ctx, f); err != nil {
		return goerr.Wrap(err, "failed to put canvas data", goerr.V("id", id))
	}

	return nil
}

func (r *scenarioFileRepository) SaveScenario(ctx context.Context, rec *model.ScenarioRecord) (*model.ScenarioRecord, error) {
	created := *rec
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	created.CreatedAt = time.Now().UTC()

	if _, err := r.client.Collection(r.scenariosCollection()).Doc(created.ID).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to save scenario", goerr.V("id", created.ID), goerr.V("file_id", created.FileID))
	}

	return &created, nil
}
