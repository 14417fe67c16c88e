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

// FactionRequest represents the faction creation/update request
type FactionRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
	Doctrine    string `json:"doctrine"`
	Influence   int    `json:"influence"`
	FoundedYear int    `json:"founded_year"`
	Dissolved   bool   `json:"dissolved"`
}

// CreateFaction handles faction creation inside a world
func CreateFaction(c *gin.Context) {
	utils.LogInfo("CreateFaction called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	var req FactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Received faction creation request - Name: %s", req.Name)

	if req.Influence < 0 {
		utils.LogError("Negative influence rejected: %d", req.Influence)
		utils.BadRequest(c, "Invalid faction", "Influence cannot be negative")
		return
	}

	// Check if a faction with the same name already exists in this world
	var existingFaction models.Faction
	if err := config.DB.Where("world_id = ? AND name = ?", world.ID, req.Name).First(&existingFaction).Error; err == nil {
		utils.LogError("Faction with name %s already exists in world %d", req.Name, world.ID)
		utils.Conflict(c, "A faction with this name already exists in this world", nil)
		return
	}

	faction := models.Faction{
		WorldID:     world.ID,
		Name:        req.Name,
		Description: req.Description,
		Doctrine:    req.Doctrine,
		Influence:   req.Influence,
		FoundedYear: req.FoundedYear,
		Dissolved:   req.Dissolved,
	}

	if err := config.DB.Create(&faction).Error; err != nil {
		utils.LogError("Failed to create faction: %v", err)
		utils.InternalServerError(c, "Failed to create faction", err.Error())
		return
	}

	utils.LogInfo("Faction created successfully: %s", faction.Name)
	utils.Created(c, "Faction created successfully", gin.H{
		"faction": gin.H{
			"id":           faction.ID,
			"name":         faction.Name,
			"description":  faction.Description,
			"doctrine":     faction.Doctrine,
			"influence":    faction.Influence,
			"founded_year": faction.FoundedYear,
			"dissolved":    faction.Dissolved,
		},
	})
}

// GetFactions handles faction listing with search and pagination
func GetFactions(c *gin.Context) {
	utils.LogInfo("GetFactions called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	pagination := utils.NewPagination(c)
	search := c.Query("search")
	dissolved := c.Query("dissolved")
	order := c.DefaultQuery("order", "desc")
	sortBy := c.DefaultQuery("sort_by", "influence")

	utils.LogDebug("Query parameters - Page: %d, Limit: %d, Search: %s",
		pagination.Page, pagination.Limit, search)

	if order != "asc" && order != "desc" {
		utils.LogError("Invalid order parameter: %s", order)
		utils.BadRequest(c, "Invalid order parameter", "Order must be either 'asc' or 'desc'")
		return
	}

	validSortFields := map[string]bool{"name": true, "created_at": true, "influence": true, "founded_year": true}
	if !validSortFields[sortBy] {
		utils.LogError("Invalid sort field: %s", sortBy)
		utils.BadRequest(c, "Invalid sort field", "Sort field must be 'name', 'created_at', 'influence', or 'founded_year'")
		return
	}

	query := config.DB.Model(&models.Faction{}).Where("world_id = ?", world.ID)

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR doctrine ILIKE ?", searchTerm, searchTerm, searchTerm)
	}
	if dissolved != "" {
		query = query.Where("dissolved = ?", dissolved == "true")
	}

	query = query.Order(fmt.Sprintf("%s %s", sortBy, order))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to get total count: %v", err)
		utils.InternalServerError(c, "Failed to fetch factions", err.Error())
		return
	}
	pagination.SetTotal(total)

	var factions []models.Faction
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&factions).Error; err != nil {
		utils.LogError("Failed to fetch factions: %v", err)
		utils.InternalServerError(c, "Failed to fetch factions", err.Error())
		return
	}

	utils.LogInfo("Successfully retrieved %d factions for world %d", len(factions), world.ID)
	utils.SuccessWithPagination(c, "Factions retrieved successfully", gin.H{
		"factions": factions,
	}, total, pagination.Page, pagination.Limit)
}

// GetFactionDetails returns one faction with its member roster
func GetFactionDetails(c *gin.Context) {
	utils.LogInfo("GetFactionDetails called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	factionID, err := strconv.ParseUint(c.Param("factionId"), 10, 32)
	if err != nil {
		utils.LogError("Invalid faction ID: %s", c.Param("factionId"))
		utils.BadRequest(c, "Invalid faction ID", nil)
		return
	}

	var faction models.Faction
	if err := config.DB.Where("world_id = ?", world.ID).
		Preload("Members").
		First(&faction, factionID).Error; err != nil {
		utils.LogError("Faction not found: %v", err)
		utils.NotFound(c, "Faction not found")
		return
	}

	utils.Success(c, "Faction retrieved successfully", gin.H{
		"faction": faction,
	})
}

// UpdateFaction handles faction updates
func UpdateFaction(c *gin.Context) {
	utils.LogInfo("UpdateFaction called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	factionID, err := strconv.ParseUint(c.Param("factionId"), 10, 32)
	if err != nil {
		utils.LogError("Invalid faction ID: %s", c.Param("factionId"))
		utils.BadRequest(c, "Invalid faction ID", nil)
		return
	}

	var faction models.Faction
	if err := config.DB.Where("world_id = ?", world.ID).First(&faction, factionID).Error; err != nil {
		utils.LogError("Faction not found: %v", err)
		utils.NotFound(c, "Faction not found")
		return
	}
	utils.LogDebug("Found faction: %s", faction.Name)

	var req FactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if req.Influence < 0 {
		utils.LogError("Negative influence rejected: %d", req.Influence)
		utils.BadRequest(c, "Invalid faction", "Influence cannot be negative")
		return
	}

	// Check for duplicate name excluding current faction
	var existingFaction models.Faction
	if err := config.DB.Where("world_id = ? AND name ILIKE ? AND id != ?", world.ID, req.Name, factionID).First(&existingFaction).Error; err == nil {
		utils.LogError("Duplicate faction name found: %s", req.Name)
		utils.Conflict(c, "Faction name already exists", "Please choose a different name")
		return
	}

	updates := map[string]interface{}{
		"name":         strings.TrimSpace(req.Name),
		"description":  strings.TrimSpace(req.Description),
		"doctrine":     strings.TrimSpace(req.Doctrine),
		"influence":    req.Influence,
		"founded_year": req.FoundedYear,
		"dissolved":    req.Dissolved,
		"updated_at":   time.Now(),
	}

	if err := config.DB.Model(&faction).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update faction: %v", err)
		utils.InternalServerError(c, "Failed to update faction", err.Error())
		return
	}

	utils.LogInfo("Faction updated successfully: %s", faction.Name)
	utils.Success(c, "Faction updated successfully", gin.H{
		"faction": faction,
	})
}

// DeleteFaction removes a faction and detaches its members
func DeleteFaction(c *gin.Context) {
	utils.LogInfo("DeleteFaction called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	factionID, err := strconv.ParseUint(c.Param("factionId"), 10, 32)
	if err != nil {
		utils.LogError("Invalid faction ID: %s", c.Param("factionId"))
		utils.BadRequest(c, "Invalid faction ID", nil)
		return
	}

	var faction models.Faction
	if err := config.DB.Where("world_id = ?", world.ID).First(&faction, factionID).Error; err != nil {
		utils.LogError("Faction not found: %v", err)
		utils.NotFound(c, "Faction not found")
		return
	}

	// Detach members before removing the faction
	if err := config.DB.Model(&models.Character{}).
		Where("faction_id = ?", faction.ID).
		Update("faction_id", nil).Error; err != nil {
		utils.LogError("Failed to detach faction members: %v", err)
		utils.InternalServerError(c, "Failed to detach faction members", err.Error())
		return
	}

	if err := config.DB.Delete(&faction).Error; err != nil {
		utils.LogError("Failed to delete faction: %v", err)
		utils.InternalServerError(c, "Failed to delete faction", err.Error())
		return
	}

	utils.LogInfo("Faction deleted successfully: %s", faction.Name)
	utils.Success(c, "Faction deleted successfully", nil)
}
