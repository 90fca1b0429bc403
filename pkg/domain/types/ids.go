package types

import (
	"strconv"
	"sync/atomic"
	"time"
)

// FileID identifies a scenario file on the persistence service.
type FileID string

func (id FileID) String() string {
	return string(id)
}

// ComponentID identifies one placed component within a scenario canvas.
// IDs are derived from a millisecond timestamp, matching the identifiers
// produced by earlier releases, and are never reused within one canvas.
type ComponentID string

func (id ComponentID) String() string {
	return string(id)
}

var lastComponentID atomic.Int64

// NewComponentID returns a fresh timestamp-derived component ID. The value
// is strictly monotonic even when two components are placed within the
// same millisecond.
func NewComponentID() ComponentID {
	now := time.Now().UnixMilli()
	for {
		last := lastComponentID.Load()
		if now <= last {
			now = last + 1
		}
		if lastComponentID.CompareAndSwap(last, now) {
			return ComponentID(strconv.FormatInt(now, 10))
		}
	}
}
