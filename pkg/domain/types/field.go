package types

// FieldType represents the input type of a schema field.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypePassword FieldType = "password"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
)

// AllFieldTypes returns all valid field types.
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeNumber,
		FieldTypePassword,
		FieldTypeTextarea,
		FieldTypeSelect,
		FieldTypeCheckbox,
	}
}

// IsValid checks if the field type is valid.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText,
		FieldTypeNumber,
		FieldTypePassword,
		FieldTypeTextarea,
		FieldTypeSelect,
		FieldTypeCheckbox:
		return true
	default:
		return false
	}
}

func (t FieldType) String() string {
	return string(t)
}
