package controllers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/config"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/models"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
	"github.com/gin-gonic/gin"
)

// CharacterRequest represents the character creation/update request
type CharacterRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=100"`
	Summary         string `json:"summary"`
	BirthYear       int    `json:"birth_year"`
	DeathYear       int    `json:"death_year"`
	Alive           bool   `json:"alive"`
	CharacterTypeID uint   `json:"character_type_id"`
	FactionID       *uint  `json:"faction_id"`
	CategoryID      string `json:"category_id"`
}

// validateCharacterRequest checks that referenced records exist in this world
func validateCharacterRequest(worldID uint, req *CharacterRequest) (string, bool) {
	if req.CharacterTypeID != 0 {
		var count int64
		config.DB.Model(&models.CharacterType{}).Where("id = ?", req.CharacterTypeID).Count(&count)
		if count == 0 {
			return "Character type does not exist", false
		}
	}
	if req.FactionID != nil {
		var count int64
		config.DB.Model(&models.Faction{}).
			Where("world_id = ? AND id = ?", worldID, *req.FactionID).
			Count(&count)
		if count == 0 {
			return "Faction does not exist in this world", false
		}
	}
	if req.CategoryID != "" {
		var count int64
		config.DB.Model(&models.Category{}).
			Where("world_id = ? AND id = ?", worldID, req.CategoryID).
			Count(&count)
		if count == 0 {
			return "Category does not exist in this world", false
		}
	}
	return "", true
}

// CreateCharacter handles character creation inside a world
func CreateCharacter(c *gin.Context) {
	utils.LogInfo("CreateCharacter called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	var req CharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Received character creation request - Name: %s", req.Name)

	if errs := utils.ValidateCharacterLifespan(req.BirthYear, req.DeathYear, req.Alive, world.CurrentYear); len(errs) > 0 {
		utils.LogError("Character lifespan validation failed: %v", errs)
		utils.BadRequest(c, "Validation failed", gin.H{"fields": errs})
		return
	}

	if msg, ok := validateCharacterRequest(world.ID, &req); !ok {
		utils.LogError("Invalid character request: %s", msg)
		utils.BadRequest(c, "Invalid character", msg)
		return
	}

	character := models.Character{
		WorldID:         world.ID,
		Name:            req.Name,
		Summary:         req.Summary,
		BirthYear:       req.BirthYear,
		DeathYear:       req.DeathYear,
		Alive:           req.Alive,
		CharacterTypeID: req.CharacterTypeID,
		FactionID:       req.FactionID,
		CategoryID:      req.CategoryID,
	}

	if err := config.DB.Create(&character).Error; err != nil {
		utils.LogError("Failed to create character: %v", err)
		utils.InternalServerError(c, "Failed to create character", err.Error())
		return
	}

	utils.LogInfo("Character created successfully: %s", character.Name)
	utils.Created(c, "Character created successfully", gin.H{
		"character": gin.H{
			"id":                character.ID,
			"name":              character.Name,
			"summary":           character.Summary,
			"birth_year":        character.BirthYear,
			"death_year":        character.DeathYear,
			"alive":             character.Alive,
			"character_type_id": character.CharacterTypeID,
			"faction_id":        character.FactionID,
			"category_id":       character.CategoryID,
		},
	})
}

// GetCharacters handles character listing with search, filtering, and pagination
func GetCharacters(c *gin.Context) {
	utils.LogInfo("GetCharacters called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	pagination := utils.NewPagination(c)
	search := c.Query("search")
	factionID := c.Query("faction_id")
	typeID := c.Query("character_type_id")
	alive := c.Query("alive")
	order := c.DefaultQuery("order", "asc")
	sortBy := c.DefaultQuery("sort_by", "name")

	utils.LogDebug("Query parameters - Page: %d, Limit: %d, Search: %s, Faction: %s, Type: %s",
		pagination.Page, pagination.Limit, search, factionID, typeID)

	if order != "asc" && order != "desc" {
		utils.LogError("Invalid order parameter: %s", order)
		utils.BadRequest(c, "Invalid order parameter", "Order must be either 'asc' or 'desc'")
		return
	}

	validSortFields := map[string]bool{"name": true, "created_at": true, "birth_year": true}
	if !validSortFields[sortBy] {
		utils.LogError("Invalid sort field: %s", sortBy)
		utils.BadRequest(c, "Invalid sort field", "Sort field must be 'name', 'created_at', or 'birth_year'")
		return
	}

	query := config.DB.Model(&models.Character{}).Where("world_id = ?", world.ID)

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("name ILIKE ? OR summary ILIKE ?", searchTerm, searchTerm)
	}
	if factionID != "" {
		query = query.Where("faction_id = ?", factionID)
	}
	if typeID != "" {
		query = query.Where("character_type_id = ?", typeID)
	}
	if alive != "" {
		query = query.Where("alive = ?", alive == "true")
	}

	query = query.Order(fmt.Sprintf("%s %s", sortBy, order))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to get total count: %v", err)
		utils.InternalServerError(c, "Failed to fetch characters", err.Error())
		return
	}
	pagination.SetTotal(total)

	var characters []models.Character
	if err := query.Preload("CharacterType").Preload("Faction").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&characters).Error; err != nil {
		utils.LogError("Failed to fetch characters: %v", err)
		utils.InternalServerError(c, "Failed to fetch characters", err.Error())
		return
	}

	utils.LogInfo("Successfully retrieved %d characters for world %d", len(characters), world.ID)
	utils.SuccessWithPagination(c, "Characters retrieved successfully", gin.H{
		"characters": characters,
	}, total, pagination.Page, pagination.Limit)
}

// GetCharacterDetails returns one character with its archetype and faction
func GetCharacterDetails(c *gin.Context) {
	utils.LogInfo("GetCharacterDetails called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	characterID, err := strconv.ParseUint(c.Param("characterId"), 10, 32)
	if err != nil {
		utils.LogError("Invalid character ID: %s", c.Param("characterId"))
		utils.BadRequest(c, "Invalid character ID", nil)
		return
	}

	var character models.Character
	if err := config.DB.Where("world_id = ?", world.ID).
		Preload("CharacterType").Preload("Faction").
		First(&character, characterID).Error; err != nil {
		utils.LogError("Character not found: %v", err)
		utils.NotFound(c, "Character not found")
		return
	}

	utils.Success(c, "Character retrieved successfully", gin.H{
		"character": character,
	})
}

// UpdateCharacter handles character updates
func UpdateCharacter(c *gin.Context) {
	utils.LogInfo("UpdateCharacter called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	characterID, err := strconv.ParseUint(c.Param("characterId"), 10, 32)
	if err != nil {
		utils.LogError("Invalid character ID: %s", c.Param("characterId"))
		utils.BadRequest(c, "Invalid character ID", nil)
		return
	}

	var character models.Character
	if err := config.DB.Where("world_id = ?", world.ID).First(&character, characterID).Error; err != nil {
		utils.LogError("Character not found: %v", err)
		utils.NotFound(c, "Character not found")
		return
	}
	utils.LogDebug("Found character: %s", character.Name)

	var req CharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if errs := utils.ValidateCharacterLifespan(req.BirthYear, req.DeathYear, req.Alive, world.CurrentYear); len(errs) > 0 {
		utils.LogError("Character lifespan validation failed: %v", errs)
		utils.BadRequest(c, "Validation failed", gin.H{"fields": errs})
		return
	}

	if msg, ok := validateCharacterRequest(world.ID, &req); !ok {
		utils.LogError("Invalid character request: %s", msg)
		utils.BadRequest(c, "Invalid character", msg)
		return
	}

	updates := map[string]interface{}{
		"name":              strings.TrimSpace(req.Name),
		"summary":           strings.TrimSpace(req.Summary),
		"birth_year":        req.BirthYear,
		"death_year":        req.DeathYear,
		"alive":             req.Alive,
		"character_type_id": req.CharacterTypeID,
		"faction_id":        req.FactionID,
		"category_id":       req.CategoryID,
		"updated_at":        time.Now(),
	}

	if err := config.DB.Model(&character).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update character: %v", err)
		utils.InternalServerError(c, "Failed to update character", err.Error())
		return
	}

	utils.LogInfo("Character updated successfully: %s", character.Name)
	utils.Success(c, "Character updated successfully", gin.H{
		"character": character,
	})
}

// DeleteCharacter removes a character
func DeleteCharacter(c *gin.Context) {
	utils.LogInfo("DeleteCharacter called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	characterID, err := strconv.ParseUint(c.Param("characterId"), 10, 32)
	if err != nil {
		utils.LogError("Invalid character ID: %s", c.Param("characterId"))
		utils.BadRequest(c, "Invalid character ID", nil)
		return
	}

	var character models.Character
	if err := config.DB.Where("world_id = ?", world.ID).First(&character, characterID).Error; err != nil {
		utils.LogError("Character not found: %v", err)
		utils.NotFound(c, "Character not found")
		return
	}

	if err := config.DB.Delete(&character).Error; err != nil {
		utils.LogError("Failed to delete character: %v", err)
		utils.InternalServerError(c, "Failed to delete character", err.Error())
		return
	}

	utils.LogInfo("Character deleted successfully: %s", character.Name)
	utils.Success(c, "Character deleted successfully", nil)
}
