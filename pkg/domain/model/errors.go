package model

import "github.com/m-mizutani/goerr/v2"

// Error taxonomy shared across the canvas model and the persistence
// protocol. Network-boundary errors wrap ErrLoadFailed/ErrSaveFailed with
// the HTTP status attached via goerr values under StatusKey.
var (
	ErrDuplicateSender   = goerr.New("only one Sender component is allowed per scenario")
	ErrComponentNotFound = goerr.New("component not found on canvas")
	ErrLoadFailed        = goerr.New("failed to load scenario")
	ErrSaveFailed        = goerr.New("failed to save scenario")
	ErrParseCanvas       = goerr.New("malformed canvas data")

	// ErrRecordNotFound is the shared identity behind the repositories'
	// not-found errors, so transport layers can map it without knowing
	// which store is behind the interface.
	ErrRecordNotFound = goerr.New("record not found")
)

// Context keys for error values.
const (
	StatusKey      = "status"
	MessageKey     = "message"
	FileIDKey      = "file_id"
	ComponentIDKey = "component_id"
)
