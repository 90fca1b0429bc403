package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// SessionUseCase drives the single edit session of the workspace. Opening
// a second editor while one is active fails; the first must commit or
// close.
type SessionUseCase struct {
	uc *UseCases

	mu      sync.Mutex
	session *model.EditSession
	fileID  types.FileID
}

func newSessionUseCase(uc *UseCases) *SessionUseCase {
	return &SessionUseCase{
		uc:      uc,
		session: model.NewEditSession(),
	}
}

// Open starts editing one component of one file.
func (s *SessionUseCase) Open(ctx context.Context, fileID types.FileID, id types.ComponentID) error {
	pc, ok := s.uc.Canvas.Find(fileID, id)
	if !ok {
		return goerr.Wrap(model.ErrComponentNotFound, "open editor failed",
			goerr.V(model.FileIDKey, fileID), goerr.V(model.ComponentIDKey, id))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Open(pc); err != nil {
		return err
	}
	s.fileID = fileID
	return nil
}

// SetValue updates one field of the active session.
func (s *SessionUseCase) SetValue(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SetValue(key, value)
}

// Values returns a copy of the session's current field map.
func (s *SessionUseCase) Values() model.FieldMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Values()
}

// SelectTab switches the active tab.
func (s *SessionUseCase) SelectTab(tabID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SelectTab(tabID)
}

// ActiveTab returns the selected tab ID, or "" when idle.
func (s *SessionUseCase) ActiveTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.ActiveTab()
}

// VisibleFields returns the fields of one tab that pass their conditional
// checks against the current values.
func (s *SessionUseCase) VisibleFields(tabID string) []model.Field {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.VisibleFields(tabID)
}

// Commit writes the edited values back to the component and ends the
// session.
func (s *SessionUseCase) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.session.ComponentID()
	fileID := s.fileID

	data, err := s.session.Commit()
	if err != nil {
		return err
	}
	s.fileID = ""

	if err := s.uc.Canvas.updateConfig(fileID, id, data); err != nil {
		return err
	}

	s.uc.notifier.Success(ctx, "Configuration saved")
	return nil
}

// Close discards uncommitted edits.
func (s *SessionUseCase) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Close()
	s.fileID = ""
}
