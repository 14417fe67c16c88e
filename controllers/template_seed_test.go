package controllers

import (
	"testing"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplateSeedsCoverEveryKind(t *testing.T) {
	require.Len(t, defaultTemplateSeeds, 4)

	kinds := make(map[string]bool)
	names := make(map[string]bool)
	for _, seed := range defaultTemplateSeeds {
		assert.False(t, kinds[seed.kind], "duplicate kind %s", seed.kind)
		assert.False(t, names[seed.name], "duplicate name %s", seed.name)
		kinds[seed.kind] = true
		names[seed.name] = true
	}

	assert.True(t, kinds[models.TemplateKindSettlement])
	assert.True(t, kinds[models.TemplateKindNode])
	assert.True(t, kinds[models.TemplateKindGroup])
	assert.True(t, kinds[models.TemplateKindNPCHistory])
}

func TestDefaultTemplateSeedsPassFieldValidation(t *testing.T) {
	for _, seed := range defaultTemplateSeeds {
		reason, ok := validateTemplateFields(seed.fields)
		assert.True(t, ok, "seed %s rejected: %s", seed.name, reason)
	}
}

func TestSeedFieldDerivesLabel(t *testing.T) {
	field := seedField("birth_year", "number", false)
	assert.Equal(t, "birth_year", field.Name)
	assert.Equal(t, "Birth Year", field.Label)
	assert.Equal(t, "number", field.Type)
	assert.False(t, field.Required)
	assert.Nil(t, field.Default)
}

func TestSeedFieldWithDefault(t *testing.T) {
	field := seedFieldWithDefault("population", "number", 100)
	assert.Equal(t, "Population", field.Label)
	assert.Equal(t, 100, field.Default)
	assert.False(t, field.Required)
}

func TestValidateTemplateFields(t *testing.T) {
	reason, ok := validateTemplateFields([]models.TemplateField{
		{Name: "name", Type: "text"},
		{Name: "motto", Type: "textarea"},
	})
	assert.True(t, ok)
	assert.Empty(t, reason)

	reason, ok = validateTemplateFields(nil)
	assert.True(t, ok, "a template may have no fields yet")
	assert.Empty(t, reason)

	reason, ok = validateTemplateFields([]models.TemplateField{{Name: "  ", Type: "text"}})
	assert.False(t, ok)
	assert.Equal(t, "Field name is required", reason)

	reason, ok = validateTemplateFields([]models.TemplateField{
		{Name: "name", Type: "text"},
		{Name: "name", Type: "textarea"},
	})
	assert.False(t, ok)
	assert.Equal(t, "Duplicate field name: name", reason)

	reason, ok = validateTemplateFields([]models.TemplateField{{Name: "banner", Type: "image"}})
	assert.False(t, ok)
	assert.Equal(t, "Invalid field type: image", reason)
}

func TestTemplateFieldDefsRoundTrip(t *testing.T) {
	var template models.Template
	require.NoError(t, template.SetFieldDefs([]models.TemplateField{
		seedField("name", "text", true),
		seedFieldWithDefault("alive", "boolean", true),
	}))

	defs, err := template.FieldDefs()
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "Name", defs[0].Label)
	assert.True(t, defs[0].Required)
	assert.Equal(t, "alive", defs[1].Name)
	assert.Equal(t, true, defs[1].Default)
}
