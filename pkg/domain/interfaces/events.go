package interfaces

import (
	"context"

	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// Event is one cross-component signal emitted by the persistence layer.
type Event struct {
	Topic  types.EventTopic
	FileID types.FileID
	Status string
}

// EventBus replaces the window-scoped refresh hooks of earlier releases:
// collaborators subscribe explicitly instead of reaching into a shared
// global. Handlers run synchronously on the publisher's goroutine.
type EventBus interface {
	Publish(ctx context.Context, ev Event)
	Subscribe(topic types.EventTopic, fn func(Event)) (unsubscribe func())
}
