package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// Canvas is the ordered list of components placed on one scenario.
// Insertion order is visual left-to-right order and doubles as the
// implicit linear flow rendered between consecutive entries. All
// operations are synchronous and local; persistence happens elsewhere.
type Canvas struct {
	components []*PlacedComponent
}

// NewCanvas builds a canvas from an already-normalized component list.
func NewCanvas(components ...*PlacedComponent) *Canvas {
	return &Canvas{components: components}
}

// Add places a new component of the given type. It enforces the
// single-sender rule and assigns a fresh ID distinct from every existing
// entry. The new entry starts with empty canonical data; a missing drop
// position gets the default offset.
func (c *Canvas) Add(ct *ComponentType, style *Style) (*PlacedComponent, error) {
	if ct.Category.IsSender() {
		for _, existing := range c.components {
			if existing.Type.IsSender() {
				return nil, goerr.Wrap(ErrDuplicateSender, "sender already placed",
					goerr.V(ComponentIDKey, existing.ID))
			}
		}
	}

	id := types.NewComponentID()
	for c.contains(id) {
		id = types.NewComponentID()
	}

	if style == nil {
		style = DefaultStyle()
	}

	pc := &PlacedComponent{
		ID:     id,
		Type:   ct.Category,
		Label:  ct.Label,
		Icon:   ct.Icon,
		Style:  style,
		Data:   FieldMap{},
		Schema: ct.Schema.Clone(),
	}
	c.components = append(c.components, pc)
	return pc.Clone(), nil
}

// Remove deletes the component with the given ID, preserving the order of
// the remaining entries.
func (c *Canvas) Remove(id types.ComponentID) error {
	for i, pc := range c.components {
		if pc.ID == id {
			c.components = append(c.components[:i], c.components[i+1:]...)
			return nil
		}
	}
	return goerr.Wrap(ErrComponentNotFound, "remove failed", goerr.V(ComponentIDKey, id))
}

// UpdateConfig replaces the canonical data of one component. Label, type
// and icon are left untouched.
func (c *Canvas) UpdateConfig(id types.ComponentID, data FieldMap) error {
	for _, pc := range c.components {
		if pc.ID == id {
			pc.Data = data.Clone()
			return nil
		}
	}
	return goerr.Wrap(ErrComponentNotFound, "update failed", goerr.V(ComponentIDKey, id))
}

// Find returns a copy of the component with the given ID.
func (c *Canvas) Find(id types.ComponentID) (*PlacedComponent, bool) {
	for _, pc := range c.components {
		if pc.ID == id {
			return pc.Clone(), true
		}
	}
	return nil, false
}

// List returns the components in insertion order. Entries are copies;
// mutating them does not affect the canvas.
func (c *Canvas) List() []*PlacedComponent {
	out := make([]*PlacedComponent, len(c.components))
	for i, pc := range c.components {
		out[i] = pc.Clone()
	}
	return out
}

// Replace swaps the whole component list, used when a scenario load
// succeeds. There is no incremental diffing against server state.
func (c *Canvas) Replace(components []*PlacedComponent) {
	c.components = components
}

// Len returns the number of placed components.
func (c *Canvas) Len() int {
	return len(c.components)
}

func (c *Canvas) contains(id types.ComponentID) bool {
	for _, pc := range c.components {
		if pc.ID == id {
			return true
		}
	}
	return false
}
