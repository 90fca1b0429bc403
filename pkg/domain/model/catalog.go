package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// ComponentType is an immutable palette entry: a component the user can
// drop onto the canvas, together with the schema of its configuration
// form. The editor core never mutates a component type.
type ComponentType struct {
	ID       string         `json:"id" toml:"id"`
	Label    string         `json:"label" toml:"label"`
	Category types.Category `json:"category" toml:"category"`
	Icon     string         `json:"icon,omitempty" toml:"icon"`
	Schema   *FormSchema    `json:"schema,omitempty" toml:"schema"`
}

// Validate checks the catalog entry and its schema.
func (t *ComponentType) Validate() error {
	if t.Label == "" {
		return goerr.New("component type label is required", goerr.V("id", t.ID))
	}
	if t.Category == "" {
		return goerr.New("component type category is required", goerr.V("id", t.ID))
	}
	if t.Schema != nil {
		if err := t.Schema.Validate(); err != nil {
			return goerr.Wrap(err, "invalid component schema", goerr.V("id", t.ID))
		}
	}
	return nil
}

// Clone returns a deep copy of the component type.
func (t *ComponentType) Clone() *ComponentType {
	if t == nil {
		return nil
	}
	out := *t
	out.Schema = t.Schema.Clone()
	return &out
}

// Catalog is the set of component types available on the palette.
type Catalog struct {
	entries []*ComponentType
}

// NewCatalog builds a catalog, validating every entry and rejecting
// duplicate IDs.
func NewCatalog(entries []*ComponentType) (*Catalog, error) {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if e.ID != "" {
			if seen[e.ID] {
				return nil, goerr.New("duplicate component type ID", goerr.V("id", e.ID))
			}
			seen[e.ID] = true
		}
	}
	return &Catalog{entries: entries}, nil
}

// List returns all entries in declaration order.
func (c *Catalog) List() []*ComponentType {
	out := make([]*ComponentType, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Clone()
	}
	return out
}

// Get looks up a component type by ID.
func (c *Catalog) Get(id string) (*ComponentType, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return nil, false
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
