package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Template kinds. Each kind seeds a different editor form.
const (
	TemplateKindSettlement = "settlement"
	TemplateKindNode       = "node"
	TemplateKindGroup      = "group"
	TemplateKindNPCHistory = "npc_history"
)

// TemplateField describes one field in a template's form layout
type TemplateField struct {
	Name     string      `json:"name"`
	Label    string      `json:"label"`
	Type     string      `json:"type"`
	Default  interface{} `json:"default,omitempty"`
	Required bool        `json:"required,omitempty"`
}

// Template represents a reusable form layout for authoring world content.
// Built-in templates are seeded at startup and cannot be deleted.
type Template struct {
	gorm.Model
	Kind        string         `json:"kind" gorm:"index;not null"`
	Name        string         `json:"name" gorm:"uniqueIndex;not null"`
	Description string         `json:"description"`
	BuiltIn     bool           `json:"built_in" gorm:"default:false"`
	Fields      datatypes.JSON `json:"fields"`
}

// FieldDefs decodes the stored layout back into field definitions.
func (t *Template) FieldDefs() ([]TemplateField, error) {
	var defs []TemplateField
	if len(t.Fields) == 0 {
		return defs, nil
	}
	if err := json.Unmarshal(t.Fields, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// SetFieldDefs encodes field definitions into the stored layout.
func (t *Template) SetFieldDefs(defs []TemplateField) error {
	raw, err := json.Marshal(defs)
	if err != nil {
		return err
	}
	t.Fields = datatypes.JSON(raw)
	return nil
}
