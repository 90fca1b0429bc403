package usecase

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrSaveInProgress is returned when the save lock is enabled and a
	// save for the same file has not finished yet.
	ErrSaveInProgress = goerr.New("save already in progress")

	// ErrUnknownComponentType is returned when a placement names a catalog
	// entry that does not exist.
	ErrUnknownComponentType = goerr.New("unknown component type")
)
