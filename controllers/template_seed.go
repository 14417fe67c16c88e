package controllers

import (
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/config"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/models"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
)

// seedField builds a template field with a label derived from its name
func seedField(name, fieldType string, required bool) models.TemplateField {
	return models.TemplateField{
		Name:     name,
		Label:    utils.FieldLabel(name),
		Type:     fieldType,
		Required: required,
	}
}

// seedFieldWithDefault builds an optional template field with a default value
func seedFieldWithDefault(name, fieldType string, def interface{}) models.TemplateField {
	field := seedField(name, fieldType, false)
	field.Default = def
	return field
}

type templateSeed struct {
	kind        string
	name        string
	description string
	fields      []models.TemplateField
}

var defaultTemplateSeeds = []templateSeed{
	{
		kind:        models.TemplateKindSettlement,
		name:        "Basic Settlement",
		description: "Starter form for towns, villages, and cities",
		fields: []models.TemplateField{
			seedField("name", "text", true),
			seedField("description", "textarea", false),
			seedFieldWithDefault("kind", "select", models.LocationKindSettlement),
			seedFieldWithDefault("population", "number", 100),
		},
	},
	{
		kind:        models.TemplateKindNode,
		name:        "Map Node",
		description: "Starter form for landmarks and points of interest",
		fields: []models.TemplateField{
			seedField("name", "text", true),
			seedField("description", "textarea", false),
			seedFieldWithDefault("kind", "select", models.LocationKindLandmark),
			seedFieldWithDefault("x", "number", 0),
			seedFieldWithDefault("y", "number", 0),
		},
	},
	{
		kind:        models.TemplateKindGroup,
		name:        "Faction Charter",
		description: "Starter form for factions, guilds, and orders",
		fields: []models.TemplateField{
			seedField("name", "text", true),
			seedField("description", "textarea", false),
			seedField("doctrine", "textarea", false),
			seedFieldWithDefault("influence", "number", 10),
		},
	},
	{
		kind:        models.TemplateKindNPCHistory,
		name:        "Character History",
		description: "Starter form for character backstories",
		fields: []models.TemplateField{
			seedField("name", "text", true),
			seedField("summary", "textarea", false),
			seedField("birth_year", "number", false),
			seedFieldWithDefault("alive", "boolean", true),
		},
	},
}

// CreateDefaultTemplates seeds the built-in authoring templates
func CreateDefaultTemplates() error {
	utils.LogInfo("CreateDefaultTemplates called")

	for _, seed := range defaultTemplateSeeds {
		template := models.Template{
			Kind:        seed.kind,
			Name:        seed.name,
			Description: seed.description,
			BuiltIn:     true,
		}
		if err := template.SetFieldDefs(seed.fields); err != nil {
			utils.LogError("Failed to encode fields for template %s: %v", seed.name, err)
			return err
		}
		utils.LogDebug("Created template model for: %s", seed.name)

		if err := config.DB.FirstOrCreate(&template, models.Template{Name: seed.name}).Error; err != nil {
			utils.LogError("Failed to seed template %s: %v", seed.name, err)
			return err
		}
	}

	utils.LogInfo("Successfully seeded %d built-in templates", len(defaultTemplateSeeds))
	return nil
}
