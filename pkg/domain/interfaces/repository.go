package interfaces

// Repository defines the interface for data persistence.
type Repository interface {
	Catalog() CatalogRepository
	ScenarioFile() ScenarioFileRepository
	Snapshot() SnapshotRepository
	Execution() ExecutionRepository

	Close() error
}
