package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// FormSchema is the declarative tab/field definition describing a
// component type's editable configuration surface. Schemas are defined by
// the palette catalog and never mutated by the editor core.
type FormSchema struct {
	Title   string   `json:"title,omitempty" toml:"title"`
	Tabs    []Tab    `json:"tabs,omitempty" toml:"tab"`
	Buttons []Button `json:"buttons,omitempty" toml:"button"`
}

// Tab groups fields under one form tab.
type Tab struct {
	ID     string  `json:"id" toml:"id"`
	Label  string  `json:"label,omitempty" toml:"label"`
	Fields []Field `json:"fields,omitempty" toml:"field"`
}

// ButtonAction is the behavior bound to a form button.
type ButtonAction string

const (
	ButtonActionSave  ButtonAction = "save"
	ButtonActionClose ButtonAction = "close"
)

// Button is a form action button.
type Button struct {
	Label  string       `json:"label" toml:"label"`
	Action ButtonAction `json:"action" toml:"action"`
}

// Field is one editable input within a tab. Keys are unique across all
// tabs of a schema.
type Field struct {
	Key         string          `json:"key" toml:"key"`
	Type        types.FieldType `json:"type" toml:"type"`
	Label       string          `json:"label" toml:"label"`
	Placeholder string          `json:"placeholder,omitempty" toml:"placeholder"`
	Options     []string        `json:"options,omitempty" toml:"options"`
	Default     any             `json:"default,omitempty" toml:"default"`
	Conditional *Conditional    `json:"conditional,omitempty" toml:"conditional"`
}

// Conditional gates a field's visibility on another field's current value.
type Conditional struct {
	Field    string `json:"field" toml:"field"`
	Operator string `json:"operator,omitempty" toml:"operator"`
	Value    any    `json:"value" toml:"value"`
}

// OperatorNotEqual is the only non-default conditional operator.
const OperatorNotEqual = "!="

// Visible evaluates the field's conditional against the current form
// values. A field with no conditional is always visible. Sequence values
// use membership semantics; "!=" inverts them only when the operator is
// exactly "!=".
func (f *Field) Visible(values FieldMap) bool {
	if f.Conditional == nil {
		return true
	}

	current := values[f.Conditional.Field]

	if seq, ok := asSlice(f.Conditional.Value); ok {
		member := false
		for _, v := range seq {
			if scalarEqual(current, v) {
				member = true
				break
			}
		}
		if f.Conditional.Operator == OperatorNotEqual {
			return !member
		}
		return member
	}

	if f.Conditional.Operator == OperatorNotEqual {
		return !scalarEqual(current, f.Conditional.Value)
	}
	return scalarEqual(current, f.Conditional.Value)
}

// DefaultValue resolves the initial value for the field: the declared
// default if present, false for checkboxes, empty string otherwise.
func (f *Field) DefaultValue() any {
	if f.Default != nil {
		return f.Default
	}
	if f.Type == types.FieldTypeCheckbox {
		return false
	}
	return ""
}

// asSlice unwraps a conditional value that is a sequence of scalars.
// Both []any (JSON) and []string (TOML catalog) appear in practice.
func asSlice(v any) ([]any, bool) {
	switch seq := v.(type) {
	case []any:
		return seq, true
	case []string:
		out := make([]any, len(seq))
		for i, s := range seq {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// scalarEqual compares two scalar form values. JSON decoding yields
// float64 for every number, so numeric comparison goes through a common
// representation before falling back to string formatting.
func scalarEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf
		}
		return false
	}
	if a == b {
		return true
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// FieldKeys returns all field keys across all tabs in declaration order.
func (s *FormSchema) FieldKeys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, tab := range s.Tabs {
		for _, f := range tab.Fields {
			if !seen[f.Key] {
				seen[f.Key] = true
				keys = append(keys, f.Key)
			}
		}
	}
	return keys
}

// FindField looks up a field definition by key across all tabs.
func (s *FormSchema) FindField(key string) *Field {
	for ti := range s.Tabs {
		for fi := range s.Tabs[ti].Fields {
			if s.Tabs[ti].Fields[fi].Key == key {
				return &s.Tabs[ti].Fields[fi]
			}
		}
	}
	return nil
}

// HasField reports whether the schema declares the given key.
func (s *FormSchema) HasField(key string) bool {
	return s.FindField(key) != nil
}

// FirstTabID returns the ID of the first tab, or "" for an empty schema.
func (s *FormSchema) FirstTabID() string {
	if len(s.Tabs) == 0 {
		return ""
	}
	return s.Tabs[0].ID
}

// Validate checks schema invariants: unique tab IDs, unique field keys
// across all tabs, valid field types, options on select fields, and
// conditional targets that exist within the schema.
func (s *FormSchema) Validate() error {
	tabIDs := make(map[string]bool)
	fieldKeys := make(map[string]bool)

	for _, tab := range s.Tabs {
		if tab.ID == "" {
			return goerr.New("tab ID is required", goerr.V("schema", s.Title))
		}
		if tabIDs[tab.ID] {
			return goerr.New("duplicate tab ID", goerr.V("tab", tab.ID))
		}
		tabIDs[tab.ID] = true

		for _, f := range tab.Fields {
			if f.Key == "" {
				return goerr.New("field key is required", goerr.V("tab", tab.ID))
			}
			if fieldKeys[f.Key] {
				return goerr.New("duplicate field key", goerr.V("key", f.Key))
			}
			fieldKeys[f.Key] = true

			if !f.Type.IsValid() {
				return goerr.New("invalid field type",
					goerr.V("key", f.Key), goerr.V("type", f.Type))
			}
			if f.Type == types.FieldTypeSelect && len(f.Options) == 0 {
				return goerr.New("select field requires options", goerr.V("key", f.Key))
			}
		}
	}

	for _, tab := range s.Tabs {
		for _, f := range tab.Fields {
			if f.Conditional == nil {
				continue
			}
			if !fieldKeys[f.Conditional.Field] {
				return goerr.New("conditional references unknown field",
					goerr.V("key", f.Key), goerr.V("target", f.Conditional.Field))
			}
			if op := f.Conditional.Operator; op != "" && op != "=" && op != OperatorNotEqual {
				return goerr.New("invalid conditional operator",
					goerr.V("key", f.Key), goerr.V("operator", op))
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the schema.
func (s *FormSchema) Clone() *FormSchema {
	if s == nil {
		return nil
	}
	out := &FormSchema{Title: s.Title}
	out.Tabs = cloneTabs(s.Tabs)
	out.Buttons = append([]Button(nil), s.Buttons...)
	return out
}

func cloneTabs(tabs []Tab) []Tab {
	if tabs == nil {
		return nil
	}
	out := make([]Tab, len(tabs))
	for i, tab := range tabs {
		out[i] = Tab{ID: tab.ID, Label: tab.Label}
		out[i].Fields = make([]Field, len(tab.Fields))
		for j, f := range tab.Fields {
			out[i].Fields[j] = f
			out[i].Fields[j].Options = append([]string(nil), f.Options...)
			if f.Conditional != nil {
				cond := *f.Conditional
				out[i].Fields[j].Conditional = &cond
			}
		}
	}
	return out
}
