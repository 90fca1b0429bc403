package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/interfaces"
)

type Firestore struct {
	client       *firestore.Client
	catalog      *catalogRepository
	scenarioFile *scenarioFileRepository
	snapshot     *snapshotRepository
	execution    *executionRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.catalog.collectionPrefix = prefix
		f.scenarioFile.collectionPrefix = prefix
		f.snapshot.collectionPrefix = prefix
		f.execution.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:       client,
		catalog:      newCatalogRepository(client),
		scenarioFile: newScenarioFileRepository(client),
		snapshot:     newSnapshotRepository(client),
		execution:    newExecutionRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Catalog() interfaces.CatalogRepository {
	return f.catalog
}

func (f *Firestore) ScenarioFile() interfaces.ScenarioFileRepository {
	return f.scenarioFile
}

func (f *Firestore) Snapshot() interfaces.SnapshotRepository {
	return f.snapshot
}

func (f *Firestore) Execution() interfaces.ExecutionRepository {
	return f.execution
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
