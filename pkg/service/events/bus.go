package events

import (
	"context"
	"sort"
	"sync"

	"github.com/uncal-lab/flowcanvas/pkg/domain/interfaces"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// Bus is an in-process event bus. Handlers run synchronously on the
// publisher's goroutine, in subscription order. A handler must not call
// Subscribe or Publish on the same bus while handling an event.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[types.EventTopic]map[int]func(interfaces.Event)
}

var _ interfaces.EventBus = &Bus{}

func New() *Bus {
	return &Bus{
		subs: make(map[types.EventTopic]map[int]func(interfaces.Event)),
	}
}

func (b *Bus) Publish(ctx context.Context, ev interfaces.Event) {
	b.mu.RLock()
	handlers := make([]func(interfaces.Event), 0, len(b.subs[ev.Topic]))
	ids := make([]int, 0, len(b.subs[ev.Topic]))
	for id := range b.subs[ev.Topic] {
		ids = append(ids, id)
	}
	// Map iteration order is random; deliver in subscription order.
	sort.Ints(ids)
	for _, id := range ids {
		handlers = append(handlers, b.subs[ev.Topic][id])
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(ev)
	}
}

func (b *Bus) Subscribe(topic types.EventTopic, fn func(interfaces.Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func(interfaces.Event))
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}
