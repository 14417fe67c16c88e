package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/config"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/models"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
	"github.com/gin-gonic/gin"
)

// TemplateRequest represents the template creation/update request
type TemplateRequest struct {
	Kind        string                 `json:"kind" binding:"required"`
	Name        string                 `json:"name" binding:"required,min=2,max=100"`
	Description string                 `json:"description"`
	Fields      []models.TemplateField `json:"fields"`
}

var validTemplateKinds = map[string]bool{
	models.TemplateKindSettlement: true,
	models.TemplateKindNode:       true,
	models.TemplateKindGroup:      true,
	models.TemplateKindNPCHistory: true,
}

var validFieldTypes = map[string]bool{
	"text":     true,
	"textarea": true,
	"number":   true,
	"boolean":  true,
	"select":   true,
	"color":    true,
}

// validateTemplateFields checks the field layout of a template request
func validateTemplateFields(fields []models.TemplateField) (string, bool) {
	seen := make(map[string]bool)
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return "Field name is required", false
		}
		if seen[name] {
			return "Duplicate field name: " + name, false
		}
		seen[name] = true
		if !validFieldTypes[field.Type] {
			return "Invalid field type: " + field.Type, false
		}
	}
	return "", true
}

// GetTemplates handles template listing with optional kind filter
func GetTemplates(c *gin.Context) {
	utils.LogInfo("GetTemplates called")

	kind := c.Query("kind")
	search := c.Query("search")
	page, limit := utils.GetPaginationParams(c)

	query := config.DB.Model(&models.Template{})
	if kind != "" {
		if !validTemplateKinds[kind] {
			utils.LogError("Invalid template kind filter: %s", kind)
			utils.BadRequest(c, "Invalid template kind", "Kind must be 'settlement', 'node', 'group', or 'npc_history'")
			return
		}
		query = query.Where("kind = ?", kind)
	}
	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count templates: %v", err)
		utils.InternalServerError(c, "Failed to fetch templates", err.Error())
		return
	}

	var templates []models.Template
	if err := query.Order("kind ASC, name ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&templates).Error; err != nil {
		utils.LogError("Failed to fetch templates: %v", err)
		utils.InternalServerError(c, "Failed to fetch templates", err.Error())
		return
	}

	utils.LogInfo("Successfully retrieved %d of %d templates", len(templates), total)
	utils.SuccessWithPagination(c, "Templates retrieved successfully", gin.H{
		"templates": templates,
	}, total, page, limit)
}

// GetTemplateDetails returns one template with its decoded field layout
func GetTemplateDetails(c *gin.Context) {
	utils.LogInfo("GetTemplateDetails called")

	templateID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid template ID: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid template ID", nil)
		return
	}

	var template models.Template
	if err := config.DB.First(&template, templateID).Error; err != nil {
		utils.LogError("Template not found: %v", err)
		utils.NotFound(c, "Template not found")
		return
	}

	fields, err := template.FieldDefs()
	if err != nil {
		utils.LogError("Failed to decode template fields: %v", err)
		utils.InternalServerError(c, "Failed to decode template fields", err.Error())
		return
	}

	utils.Success(c, "Template retrieved successfully", gin.H{
		"template": gin.H{
			"id":          template.ID,
			"kind":        template.Kind,
			"name":        template.Name,
			"description": template.Description,
			"built_in":    template.BuiltIn,
			"fields":      fields,
			"created_at":  template.CreatedAt,
			"updated_at":  template.UpdatedAt,
		},
	})
}

// CreateTemplate handles custom template creation
func CreateTemplate(c *gin.Context) {
	utils.LogInfo("CreateTemplate called")

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Received template creation request - Name: %s, Kind: %s", req.Name, req.Kind)

	if !validTemplateKinds[req.Kind] {
		utils.LogError("Invalid template kind: %s", req.Kind)
		utils.BadRequest(c, "Invalid template kind", "Kind must be 'settlement', 'node', 'group', or 'npc_history'")
		return
	}

	if reason, ok := validateTemplateFields(req.Fields); !ok {
		utils.LogError("Invalid template fields: %s", reason)
		utils.BadRequest(c, "Invalid template fields", reason)
		return
	}

	// Check if a template with the same name already exists
	var existingTemplate models.Template
	if err := config.DB.Where("name ILIKE ?", req.Name).First(&existingTemplate).Error; err == nil {
		utils.LogError("Template with name %s already exists", req.Name)
		utils.Conflict(c, "A template with this name already exists", nil)
		return
	}

	template := models.Template{
		Kind:        req.Kind,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		BuiltIn:     false,
	}
	if err := template.SetFieldDefs(req.Fields); err != nil {
		utils.LogError("Failed to encode template fields: %v", err)
		utils.InternalServerError(c, "Failed to encode template fields", err.Error())
		return
	}

	if err := config.DB.Create(&template).Error; err != nil {
		utils.LogError("Failed to create template: %v", err)
		utils.InternalServerError(c, "Failed to create template", err.Error())
		return
	}

	utils.LogInfo("Template created successfully: %s", template.Name)
	utils.Created(c, "Template created successfully", gin.H{
		"template": template,
	})
}

// UpdateTemplate handles custom template updates. Built-in templates are read-only.
func UpdateTemplate(c *gin.Context) {
	utils.LogInfo("UpdateTemplate called")

	templateID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid template ID: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid template ID", nil)
		return
	}

	var template models.Template
	if err := config.DB.First(&template, templateID).Error; err != nil {
		utils.LogError("Template not found: %v", err)
		utils.NotFound(c, "Template not found")
		return
	}
	utils.LogDebug("Found template: %s", template.Name)

	if template.BuiltIn {
		utils.LogError("Attempted to update built-in template: %s", template.Name)
		utils.Forbidden(c, "Built-in templates cannot be modified")
		return
	}

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if !validTemplateKinds[req.Kind] {
		utils.LogError("Invalid template kind: %s", req.Kind)
		utils.BadRequest(c, "Invalid template kind", "Kind must be 'settlement', 'node', 'group', or 'npc_history'")
		return
	}

	if reason, ok := validateTemplateFields(req.Fields); !ok {
		utils.LogError("Invalid template fields: %s", reason)
		utils.BadRequest(c, "Invalid template fields", reason)
		return
	}

	// Check for duplicate name excluding current template
	var existingTemplate models.Template
	if err := config.DB.Where("name ILIKE ? AND id != ?", req.Name, templateID).First(&existingTemplate).Error; err == nil {
		utils.LogError("Duplicate template name found: %s", req.Name)
		utils.Conflict(c, "Template name already exists", "Please choose a different name")
		return
	}

	if err := template.SetFieldDefs(req.Fields); err != nil {
		utils.LogError("Failed to encode template fields: %v", err)
		utils.InternalServerError(c, "Failed to encode template fields", err.Error())
		return
	}

	updates := map[string]interface{}{
		"kind":        req.Kind,
		"name":        strings.TrimSpace(req.Name),
		"description": strings.TrimSpace(req.Description),
		"fields":      template.Fields,
		"updated_at":  time.Now(),
	}

	if err := config.DB.Model(&template).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update template: %v", err)
		utils.InternalServerError(c, "Failed to update template", err.Error())
		return
	}

	utils.LogInfo("Template updated successfully: %s", template.Name)
	utils.Success(c, "Template updated successfully", gin.H{
		"template": template,
	})
}

// DeleteTemplate removes a custom template. Built-in templates are read-only.
func DeleteTemplate(c *gin.Context) {
	utils.LogInfo("DeleteTemplate called")

	templateID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid template ID: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid template ID", nil)
		return
	}

	var template models.Template
	if err := config.DB.First(&template, templateID).Error; err != nil {
		utils.LogError("Template not found: %v", err)
		utils.NotFound(c, "Template not found")
		return
	}

	if template.BuiltIn {
		utils.LogError("Attempted to delete built-in template: %s", template.Name)
		utils.Forbidden(c, "Built-in templates cannot be deleted")
		return
	}

	if err := config.DB.Delete(&template).Error; err != nil {
		utils.LogError("Failed to delete template: %v", err)
		utils.InternalServerError(c, "Failed to delete template", err.Error())
		return
	}

	utils.LogInfo("Template deleted successfully: %s", template.Name)
	utils.Success(c, "Template deleted successfully", nil)
}
