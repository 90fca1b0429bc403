package firestore

import "github.com/uncal-lab/flowcanvas/pkg/domain/model"

// ErrNotFound indicates the requested document does not exist.
var ErrNotFound = model.ErrRecordNotFound
