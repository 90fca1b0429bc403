package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
	"github.com/uncal-lab/flowcanvas/pkg/repository/memory"
)

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create assigns an ID when absent", func(t *testing.T) {
		repo := memory.New()

		created, err := repo.Catalog().Create(ctx, &model.ComponentType{
			Label:    "SMTP Agent",
			Category: types.CategorySender,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).NotEqual("")
	})

	t.Run("Create rejects invalid entries", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.Catalog().Create(ctx, &model.ComponentType{Category: types.CategorySender})
		gt.Error(t, err)
	})

	t.Run("Create rejects duplicate IDs", func(t *testing.T) {
		repo := memory.New()

		ct := &model.ComponentType{ID: "a", Label: "A", Category: types.CategoryObject}
		_, err := repo.Catalog().Create(ctx, ct)
		gt.NoError(t, err).Required()
		_, err = repo.Catalog().Create(ctx, ct)
		gt.Error(t, err)
	})

	t.Run("Get and Delete", func(t *testing.T) {
		repo := memory.New()

		created, err := repo.Catalog().Create(ctx, &model.ComponentType{
			ID: "imap", Label: "IMAP Agent", Category: types.CategoryReceiver,
		})
		gt.NoError(t, err).Required()

		got, err := repo.Catalog().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Label).Equal("IMAP Agent")

		gt.NoError(t, repo.Catalog().Delete(ctx, created.ID))

		_, err = repo.Catalog().Get(ctx, created.ID)
		gt.Value(t, errors.Is(err, memory.ErrNotFound)).Equal(true)
		err = repo.Catalog().Delete(ctx, created.ID)
		gt.Value(t, errors.Is(err, memory.ErrNotFound)).Equal(true)
	})

	t.Run("List returns copies", func(t *testing.T) {
		repo := memory.New()
		_, err := repo.Catalog().Create(ctx, &model.ComponentType{
			ID: "a", Label: "A", Category: types.CategoryObject,
			Schema: &model.FormSchema{Tabs: []model.Tab{{ID: "t", Fields: []model.Field{
				{Key: "name", Type: types.FieldTypeText},
			}}}},
		})
		gt.NoError(t, err).Required()

		list, err := repo.Catalog().List(ctx)
		gt.NoError(t, err).Required()
		list[0].Label = "mutated"
		list[0].Schema.Tabs[0].ID = "mutated"

		fresh, err := repo.Catalog().Get(ctx, "a")
		gt.NoError(t, err).Required()
		gt.Value(t, fresh.Label).Equal("A")
		gt.Value(t, fresh.Schema.Tabs[0].ID).Equal("t")
	})
}

func TestScenarioFileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Get of unknown file", func(t *testing.T) {
		repo := memory.New()
		_, err := repo.ScenarioFile().Get(ctx, "nope")
		gt.Value(t, errors.Is(err, memory.ErrNotFound)).Equal(true)
	})

	t.Run("PutCanvas creates and overwrites", func(t *testing.T) {
		repo := memory.New()
		fileID := types.FileID("file-1")

		gt.NoError(t, repo.ScenarioFile().PutCanvas(ctx, fileID, `{"version":1}`, `{"author":"a"}`)).Required()

		f, err := repo.ScenarioFile().Get(ctx, fileID)
		gt.NoError(t, err).Required()
		gt.Value(t, f.CanvasData).Equal(`{"version":1}`)
		gt.Value(t, f.UpdatedAt.IsZero()).Equal(false)

		gt.NoError(t, repo.ScenarioFile().PutCanvas(ctx, fileID, `{"version":2}`, ""))
		f, err = repo.ScenarioFile().Get(ctx, fileID)
		gt.NoError(t, err).Required()
		gt.Value(t, f.CanvasData).Equal(`{"version":2}`)
	})

	t.Run("SaveScenario assigns ID and timestamp", func(t *testing.T) {
		repo := memory.New()

		rec, err := repo.ScenarioFile().SaveScenario(ctx, &model.ScenarioRecord{
			FileID:  "file-1",
			Project: "proj",
			Version: 3,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, rec.ID).NotEqual("")
		gt.Value(t, rec.CreatedAt.IsZero()).Equal(false)
		gt.Value(t, rec.Version).Equal(3)
	})
}

func TestSnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	_, err := repo.Snapshot().Get(ctx, "u1")
	gt.Value(t, errors.Is(err, memory.ErrNotFound)).Equal(true)

	snap := &model.WorkspaceSnapshot{
		OpenFiles:  []string{"file-1", "file-2"},
		ActiveFile: "file-2",
		SavedAt:    time.Now().UTC(),
	}
	gt.NoError(t, repo.Snapshot().Put(ctx, "u1", snap)).Required()

	// Mutating the caller's snapshot must not affect the stored copy.
	snap.OpenFiles[0] = "mutated"

	restored, err := repo.Snapshot().Get(ctx, "u1")
	gt.NoError(t, err).Required()
	gt.Value(t, restored.OpenFiles[0]).Equal("file-1")
	gt.Value(t, restored.ActiveFile).Equal("file-2")

	// Snapshots are per user.
	_, err = repo.Snapshot().Get(ctx, "u2")
	gt.Value(t, errors.Is(err, memory.ErrNotFound)).Equal(true)
}

func TestExecutionRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	fileID := types.FileID("file-1")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, status := range []model.ExecutionStatus{
		model.ExecutionSuccess, model.ExecutionFailed, model.ExecutionRunning,
	} {
		_, err := repo.Execution().Append(ctx, &model.ExecutionLog{
			FileID:    fileID,
			Status:    status,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		})
		gt.NoError(t, err).Required()
	}
	_, err := repo.Execution().Append(ctx, &model.ExecutionLog{
		FileID: "other", Status: model.ExecutionSuccess, StartedAt: base,
	})
	gt.NoError(t, err).Required()

	logs, err := repo.Execution().List(ctx, fileID)
	gt.NoError(t, err).Required()
	gt.Value(t, len(logs)).Equal(3)
	gt.Value(t, logs[0].Status).Equal(model.ExecutionRunning)
	gt.Value(t, logs[2].Status).Equal(model.ExecutionSuccess)
}
