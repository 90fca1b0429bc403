package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// SessionState is the edit-session lifecycle state.
type SessionState string

const (
	SessionIdle    SessionState = "idle"
	SessionEditing SessionState = "editing"
)

var (
	ErrSessionBusy = goerr.New("an edit session is already active")
	ErrSessionIdle = goerr.New("no active edit session")
	ErrUnknownTab  = goerr.New("unknown tab")
)

// EditSession is the transient form state store for the component being
// edited. Exactly one session is active at a time: Open while editing is
// rejected, making the single-active-session rule explicit instead of a
// UI convention. Values live here until Commit; nothing touches the
// canvas or the network.
type EditSession struct {
	state       SessionState
	componentID types.ComponentID
	schema      *FormSchema
	values      FieldMap
	activeTab   string
}

// NewEditSession returns an idle session.
func NewEditSession() *EditSession {
	return &EditSession{state: SessionIdle}
}

// State returns the current lifecycle state.
func (s *EditSession) State() SessionState {
	return s.state
}

// ComponentID returns the component under edit, or "" when idle.
func (s *EditSession) ComponentID() types.ComponentID {
	return s.componentID
}

// Open starts an edit session for the component. The initial field map
// covers every key declared across all tabs, including fields currently
// hidden by conditionals: existing canonical values win, then declared
// defaults, then the type's zero value. The legacy critical keys are
// force-inserted afterwards. The first tab becomes active.
func (s *EditSession) Open(pc *PlacedComponent) error {
	if s.state == SessionEditing {
		return goerr.Wrap(ErrSessionBusy, "open rejected",
			goerr.V("editing", s.componentID), goerr.V("requested", pc.ID))
	}
	if pc.Schema == nil || len(pc.Schema.Tabs) == 0 {
		return goerr.New("component has no form schema", goerr.V(ComponentIDKey, pc.ID))
	}

	values := make(FieldMap)
	for _, key := range pc.Schema.FieldKeys() {
		if existing, ok := pc.Data[key]; ok {
			values[key] = existing
			continue
		}
		values[key] = pc.Schema.FindField(key).DefaultValue()
	}
	values = PatchLegacyKeys(values)

	s.state = SessionEditing
	s.componentID = pc.ID
	s.schema = pc.Schema.Clone()
	s.values = values
	s.activeTab = pc.Schema.FirstTabID()
	return nil
}

// SetValue updates a single field value.
func (s *EditSession) SetValue(key string, value any) error {
	if s.state != SessionEditing {
		return goerr.Wrap(ErrSessionIdle, "set value rejected", goerr.V("key", key))
	}
	s.values[key] = value
	return nil
}

// Values returns a copy of the current field map.
func (s *EditSession) Values() FieldMap {
	return s.values.Clone()
}

// ActiveTab returns the currently selected tab ID.
func (s *EditSession) ActiveTab() string {
	return s.activeTab
}

// SelectTab switches the active tab.
func (s *EditSession) SelectTab(tabID string) error {
	if s.state != SessionEditing {
		return goerr.Wrap(ErrSessionIdle, "select tab rejected")
	}
	for _, tab := range s.schema.Tabs {
		if tab.ID == tabID {
			s.activeTab = tabID
			return nil
		}
	}
	return goerr.Wrap(ErrUnknownTab, "select tab rejected", goerr.V("tab", tabID))
}

// VisibleFields evaluates conditional visibility for the fields of one
// tab against the current values. Re-evaluation is O(fields) on every
// call; there is no incremental tracking.
func (s *EditSession) VisibleFields(tabID string) []Field {
	if s.state != SessionEditing {
		return nil
	}
	for _, tab := range s.schema.Tabs {
		if tab.ID != tabID {
			continue
		}
		visible := make([]Field, 0, len(tab.Fields))
		for _, f := range tab.Fields {
			if f.Visible(s.values) {
				visible = append(visible, f)
			}
		}
		return visible
	}
	return nil
}

// Commit finalizes the session and returns the canonical data to store on
// the component. The legacy-key patch is re-applied so a save never omits
// the critical keys even if the schema changed between Open and Commit.
// The session returns to idle.
func (s *EditSession) Commit() (FieldMap, error) {
	if s.state != SessionEditing {
		return nil, goerr.Wrap(ErrSessionIdle, "commit rejected")
	}
	final := PatchLegacyKeys(s.values.Clone())
	s.reset()
	return final, nil
}

// Close discards uncommitted edits and returns the session to idle.
func (s *EditSession) Close() {
	s.reset()
}

func (s *EditSession) reset() {
	s.state = SessionIdle
	s.componentID = ""
	s.schema = nil
	s.values = nil
	s.activeTab = ""
}
