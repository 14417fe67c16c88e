package controllers

import (
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/config"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/models"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
	"github.com/gin-gonic/gin"
)

// CharacterTypeRequest represents the archetype creation/update request
type CharacterTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreateCharacterType handles archetype creation
func CreateCharacterType(c *gin.Context) {
	utils.LogInfo("CreateCharacterType called")

	var req CharacterTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", gin.H{
			"error": "Name and description are required",
		})
		return
	}
	utils.LogDebug("Received character type creation request - Name: %s", req.Name)

	// Check if a type with the same name already exists
	var existingType models.CharacterType
	if err := config.DB.Where("name = ?", req.Name).First(&existingType).Error; err == nil {
		utils.LogError("Character type with name %s already exists", req.Name)
		utils.Conflict(c, "A character type with this name already exists", nil)
		return
	}
	utils.LogDebug("No existing character type found with name: %s", req.Name)

	characterType := models.CharacterType{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := config.DB.Create(&characterType).Error; err != nil {
		utils.LogError("Failed to create character type: %v", err)
		utils.InternalServerError(c, "Failed to create character type", err.Error())
		return
	}

	utils.LogInfo("Character type created successfully: %s", characterType.Name)
	utils.Success(c, "Character type created successfully", gin.H{
		"character_type": gin.H{
			"id":          characterType.ID,
			"name":        characterType.Name,
			"description": characterType.Description,
		},
	})
}

// GetCharacterTypes retrieves all archetypes
func GetCharacterTypes(c *gin.Context) {
	utils.LogInfo("GetCharacterTypes called")

	var types []models.CharacterType
	if err := config.DB.Order("name ASC").Find(&types).Error; err != nil {
		utils.LogError("Failed to fetch character types: %v", err)
		utils.InternalServerError(c, "Failed to fetch character types", err.Error())
		return
	}

	utils.LogInfo("Successfully retrieved %d character types", len(types))
	utils.Success(c, "Character types retrieved successfully", gin.H{
		"character_types": types,
	})
}

// UpdateCharacterType handles archetype updates
func UpdateCharacterType(c *gin.Context) {
	utils.LogInfo("UpdateCharacterType called")

	typeID := c.Param("id")
	if typeID == "" {
		utils.LogError("Character type ID not provided")
		utils.BadRequest(c, "Character type ID is required", nil)
		return
	}
	utils.LogDebug("Updating character type with ID: %s", typeID)

	var characterType models.CharacterType
	if err := config.DB.First(&characterType, typeID).Error; err != nil {
		utils.LogError("Character type not found: %v", err)
		utils.NotFound(c, "Character type not found")
		return
	}
	utils.LogDebug("Found character type to update: %s", characterType.Name)

	var req CharacterTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", gin.H{
			"error": "Name and description are required",
		})
		return
	}

	// Check if another type with the same name exists
	var existingType models.CharacterType
	if err := config.DB.Where("name = ? AND id != ?", req.Name, typeID).First(&existingType).Error; err == nil {
		utils.LogError("Another character type with name %s already exists", req.Name)
		utils.Conflict(c, "Another character type with this name already exists", nil)
		return
	}

	characterType.Name = req.Name
	characterType.Description = req.Description

	if err := config.DB.Save(&characterType).Error; err != nil {
		utils.LogError("Failed to update character type: %v", err)
		utils.InternalServerError(c, "Failed to update character type", err.Error())
		return
	}

	utils.LogInfo("Character type updated successfully: %s", characterType.Name)
	utils.Success(c, "Character type updated successfully", gin.H{
		"character_type": gin.H{
			"id":          characterType.ID,
			"name":        characterType.Name,
			"description": characterType.Description,
		},
	})
}

// DeleteCharacterType handles archetype deletion
func DeleteCharacterType(c *gin.Context) {
	utils.LogInfo("DeleteCharacterType called")

	typeID := c.Param("id")
	if typeID == "" {
		utils.LogError("Character type ID not provided")
		utils.BadRequest(c, "Character type ID is required", nil)
		return
	}
	utils.LogDebug("Attempting to delete character type with ID: %s", typeID)

	var characterType models.CharacterType
	if err := config.DB.First(&characterType, typeID).Error; err != nil {
		utils.LogError("Character type not found: %v", err)
		utils.NotFound(c, "Character type not found")
		return
	}
	utils.LogDebug("Found character type to delete: %s", characterType.Name)

	// Check if any characters use this type
	var characterCount int64
	if err := config.DB.Model(&models.Character{}).Where("character_type_id = ?", typeID).Count(&characterCount).Error; err != nil {
		utils.LogError("Failed to count characters: %v", err)
		utils.InternalServerError(c, "Failed to check character type usage", err.Error())
		return
	}
	utils.LogDebug("Found %d characters using this type", characterCount)

	if characterCount > 0 {
		utils.LogError("Cannot delete character type with %d characters", characterCount)
		utils.BadRequest(c, "Cannot delete character type that has characters associated with it", gin.H{
			"character_count": characterCount,
		})
		return
	}

	if err := config.DB.Delete(&characterType).Error; err != nil {
		utils.LogError("Failed to delete character type: %v", err)
		utils.InternalServerError(c, "Failed to delete character type", err.Error())
		return
	}

	utils.LogInfo("Character type deleted successfully: %s", characterType.Name)
	utils.Success(c, "Character type deleted successfully", nil)
}
