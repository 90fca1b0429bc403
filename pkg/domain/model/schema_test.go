package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

func agentSchema() *model.FormSchema {
	return &model.FormSchema{
		Title: "Agent Settings",
		Tabs: []model.Tab{
			{
				ID:    "general",
				Label: "General",
				Fields: []model.Field{
					{Key: "name", Type: types.FieldTypeText, Label: "Name"},
					{Key: "mode", Type: types.FieldTypeSelect, Label: "Mode", Options: []string{"x", "y"}},
					{
						Key: "host", Type: types.FieldTypeText, Label: "Host",
						Conditional: &model.Conditional{Field: "mode", Value: "x"},
					},
					{
						Key: "port", Type: types.FieldTypeNumber, Label: "Port",
						Conditional: &model.Conditional{Field: "mode", Operator: model.OperatorNotEqual, Value: "x"},
					},
				},
			},
			{
				ID:    "advanced",
				Label: "Advanced",
				Fields: []model.Field{
					{Key: "retries", Type: types.FieldTypeNumber, Label: "Retries", Default: 3},
					{Key: "secure", Type: types.FieldTypeCheckbox, Label: "Secure"},
					{
						Key: "proto", Type: types.FieldTypeText, Label: "Protocol",
						Conditional: &model.Conditional{Field: "mode", Value: []any{"x", "y"}},
					},
				},
			},
		},
		Buttons: []model.Button{
			{Label: "Save", Action: model.ButtonActionSave},
			{Label: "Close", Action: model.ButtonActionClose},
		},
	}
}

func TestFieldVisible(t *testing.T) {
	schema := agentSchema()

	cases := []struct {
		name   string
		key    string
		values model.FieldMap
		want   bool
	}{
		{"no conditional is always visible", "name", model.FieldMap{}, true},
		{"scalar match", "host", model.FieldMap{"mode": "x"}, true},
		{"scalar mismatch", "host", model.FieldMap{"mode": "y"}, false},
		{"scalar missing controller value", "host", model.FieldMap{}, false},
		{"not-equal inverts scalar", "port", model.FieldMap{"mode": "y"}, true},
		{"not-equal on matching scalar", "port", model.FieldMap{"mode": "x"}, false},
		{"sequence membership", "proto", model.FieldMap{"mode": "y"}, true},
		{"sequence non-member", "proto", model.FieldMap{"mode": "z"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := schema.FindField(tc.key)
			gt.Value(t, f).NotNil()
			gt.Value(t, f.Visible(tc.values)).Equal(tc.want)
		})
	}
}

func TestFieldVisibleNumericEquality(t *testing.T) {
	// JSON decoding yields float64; the catalog may declare int.
	f := model.Field{
		Key: "extra", Type: types.FieldTypeText,
		Conditional: &model.Conditional{Field: "count", Value: 5},
	}
	gt.Value(t, f.Visible(model.FieldMap{"count": float64(5)})).Equal(true)
	gt.Value(t, f.Visible(model.FieldMap{"count": float64(6)})).Equal(false)
}

func TestFieldVisibleSequenceNotEqual(t *testing.T) {
	f := model.Field{
		Key: "extra", Type: types.FieldTypeText,
		Conditional: &model.Conditional{
			Field:    "mode",
			Operator: model.OperatorNotEqual,
			Value:    []any{"x", "y"},
		},
	}
	gt.Value(t, f.Visible(model.FieldMap{"mode": "x"})).Equal(false)
	gt.Value(t, f.Visible(model.FieldMap{"mode": "z"})).Equal(true)
}

func TestFieldDefaultValue(t *testing.T) {
	schema := agentSchema()

	gt.Value(t, schema.FindField("retries").DefaultValue()).Equal(3)
	gt.Value(t, schema.FindField("secure").DefaultValue()).Equal(false)
	gt.Value(t, schema.FindField("name").DefaultValue()).Equal("")
}

func TestFormSchemaFieldKeys(t *testing.T) {
	schema := agentSchema()

	gt.Array(t, schema.FieldKeys()).Equal([]string{
		"name", "mode", "host", "port", "retries", "secure", "proto",
	})
	gt.Value(t, schema.HasField("retries")).Equal(true)
	gt.Value(t, schema.HasField("unknown")).Equal(false)
	gt.Value(t, schema.FirstTabID()).Equal("general")
}

func TestFormSchemaValidate(t *testing.T) {
	t.Run("valid schema passes", func(t *testing.T) {
		gt.NoError(t, agentSchema().Validate())
	})

	t.Run("duplicate tab ID", func(t *testing.T) {
		s := agentSchema()
		s.Tabs[1].ID = "general"
		gt.Error(t, s.Validate())
	})

	t.Run("duplicate field key across tabs", func(t *testing.T) {
		s := agentSchema()
		s.Tabs[1].Fields[0].Key = "name"
		gt.Error(t, s.Validate())
	})

	t.Run("select without options", func(t *testing.T) {
		s := agentSchema()
		s.Tabs[0].Fields[1].Options = nil
		gt.Error(t, s.Validate())
	})

	t.Run("conditional referencing unknown field", func(t *testing.T) {
		s := agentSchema()
		s.Tabs[0].Fields[2].Conditional.Field = "missing"
		gt.Error(t, s.Validate())
	})

	t.Run("invalid operator", func(t *testing.T) {
		s := agentSchema()
		s.Tabs[0].Fields[2].Conditional.Operator = ">"
		gt.Error(t, s.Validate())
	})

	t.Run("invalid field type", func(t *testing.T) {
		s := agentSchema()
		s.Tabs[0].Fields[0].Type = "radio"
		gt.Error(t, s.Validate())
	})
}

func TestFormSchemaClone(t *testing.T) {
	original := agentSchema()
	clone := original.Clone()

	clone.Tabs[0].Fields[0].Key = "renamed"
	clone.Tabs[0].Fields[1].Options[0] = "mutated"
	clone.Tabs[0].Fields[2].Conditional.Value = "changed"

	gt.Value(t, original.Tabs[0].Fields[0].Key).Equal("name")
	gt.Value(t, original.Tabs[0].Fields[1].Options[0]).Equal("x")
	gt.Value(t, original.Tabs[0].Fields[2].Conditional.Value).Equal("x")
}
