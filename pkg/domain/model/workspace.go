package model

import (
	"time"

	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// FolderRef and FileRef mirror the project/folder tree entries shown by
// the external navigation UI. The core only stores them inside the
// workspace snapshot; the tree itself is an external collaborator.
type FolderRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type FileRef struct {
	ID   types.FileID `json:"id"`
	Name string       `json:"name"`
}

// WorkspaceSnapshot is the fail-safe local replica kept for session
// continuity. It is never authoritative: a successful remote load always
// supersedes it.
type WorkspaceSnapshot struct {
	Folders    []FolderRef              `json:"folders"`
	Files      map[string][]FileRef     `json:"files"`
	CanvasData map[string][]WireComponent `json:"canvasData"`
	OpenFiles  []string                 `json:"openFiles"`
	ActiveFile string                   `json:"activeFile"`
	SavedAt    time.Time                `json:"savedAt"`
}
