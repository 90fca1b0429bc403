package memory

import "github.com/uncal-lab/flowcanvas/pkg/domain/model"

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = model.ErrRecordNotFound
