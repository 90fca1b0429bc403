package memory

import (
	"github.com/uncal-lab/flowcanvas/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	catalog      *catalogRepository
	scenarioFile *scenarioFileRepository
	snapshot     *snapshotRepository
	execution    *executionRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		catalog:      newCatalogRepository(),
		scenarioFile: newScenarioFileRepository(),
		snapshot:     newSnapshotRepository(),
		execution:    newExecutionRepository(),
	}
}

func (m *Memory) Catalog() interfaces.CatalogRepository {
	return m.catalog
}

func (m *Memory) ScenarioFile() interfaces.ScenarioFileRepository {
	return m.scenarioFile
}

func (m *Memory) Snapshot() interfaces.SnapshotRepository {
	return m.snapshot
}

func (m *Memory) Execution() interfaces.ExecutionRepository {
	return m.execution
}

func (m *Memory) Close() error {
	return nil
}
