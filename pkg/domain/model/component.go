package model

import (
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// FieldMap holds the canonical key/value configuration for one placed
// component. It is the single source of truth that both legacy config and
// form sub-trees are projected from.
type FieldMap map[string]any

// Clone returns a shallow-value deep-map copy of the field map. Values are
// scalars or small JSON slices; slices are copied to keep projections from
// aliasing each other.
func (m FieldMap) Clone() FieldMap {
	if m == nil {
		return nil
	}
	out := make(FieldMap, len(m))
	for k, v := range m {
		switch vv := v.(type) {
		case []any:
			out[k] = append([]any(nil), vv...)
		case []string:
			out[k] = append([]string(nil), vv...)
		default:
			out[k] = v
		}
	}
	return out
}

// Style is the canvas placement style of a component.
type Style struct {
	Position string `json:"position,omitempty"`
	Left     string `json:"left,omitempty"`
	Top      string `json:"top,omitempty"`
}

// DefaultStyle is the placement applied when a drop carries no position.
func DefaultStyle() *Style {
	return &Style{Position: "absolute", Left: "50px", Top: "50px"}
}

// PlacedComponent is one component instance placed on a scenario canvas.
// Its Data is mutated only through committed edit sessions, never by
// direct field writes.
type PlacedComponent struct {
	ID     types.ComponentID
	Type   types.Category
	Label  string
	Icon   string
	Notes  string
	Style  *Style
	Data   FieldMap
	Schema *FormSchema
}

// Configured reports whether the component carries any saved
// configuration values.
func (c *PlacedComponent) Configured() bool {
	return len(c.Data) > 0
}

// Clone returns a deep copy of the placed component.
func (c *PlacedComponent) Clone() *PlacedComponent {
	if c == nil {
		return nil
	}
	out := &PlacedComponent{
		ID:     c.ID,
		Type:   c.Type,
		Label:  c.Label,
		Icon:   c.Icon,
		Notes:  c.Notes,
		Data:   c.Data.Clone(),
		Schema: c.Schema.Clone(),
	}
	if c.Style != nil {
		style := *c.Style
		out.Style = &style
	}
	return out
}
