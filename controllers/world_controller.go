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
	"gorm.io/gorm"
)

// WorldRequest represents the world creation/update request
type WorldRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
	Era         string `json:"era"`
	StartYear   int    `json:"start_year"`
	CurrentYear int    `json:"current_year"`
}

// getOwnedWorld resolves the :id route parameter to a world owned by the
// authenticated user. On failure it writes the error response and reports
// ok=false.
func getOwnedWorld(c *gin.Context) (*models.World, bool) {
	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return nil, false
	}

	userModel, ok := user.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.InternalServerError(c, "Invalid user type", nil)
		return nil, false
	}

	worldID := c.Param("id")
	if worldID == "" {
		utils.LogError("World ID not provided")
		utils.BadRequest(c, "World ID is required", nil)
		return nil, false
	}

	id, err := strconv.ParseUint(worldID, 10, 32)
	if err != nil {
		utils.LogError("Invalid world ID format: %v", err)
		utils.BadRequest(c, "Invalid world ID format", "World ID must be a valid number")
		return nil, false
	}

	var world models.World
	if err := config.DB.First(&world, id).Error; err != nil {
		utils.LogError("World not found: %v", err)
		utils.NotFound(c, utils.ErrWorldNotFound)
		return nil, false
	}

	if world.UserID != userModel.ID {
		utils.LogError("User %d attempted access to world %d owned by %d", userModel.ID, world.ID, world.UserID)
		utils.Forbidden(c, "You do not own this world")
		return nil, false
	}

	return &world, true
}

// CreateWorld handles world creation
func CreateWorld(c *gin.Context) {
	utils.LogInfo("CreateWorld called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)
	utils.LogDebug("User authenticated: %s", userModel.Email)

	var req WorldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Received world creation request - Name: %s", req.Name)

	if err := utils.ValidateYearRange(req.StartYear, req.CurrentYear); err != nil {
		utils.LogError("Invalid year range: %v", err)
		utils.BadRequest(c, "Invalid timeline", err.Error())
		return
	}

	if req.Era != "" {
		if err := utils.ValidateStringLength(req.Era, 2, 50); err != nil {
			utils.LogError("Invalid era: %v", err)
			utils.BadRequest(c, "Invalid era", err.Error())
			return
		}
	}

	world := models.World{
		Name:        req.Name,
		Description: req.Description,
		Era:         req.Era,
		StartYear:   req.StartYear,
		CurrentYear: req.CurrentYear,
		UserID:      userModel.ID,
	}

	if err := config.DB.Create(&world).Error; err != nil {
		utils.LogError("Failed to create world: %v", err)
		utils.InternalServerError(c, "Failed to create world", err.Error())
		return
	}

	if err := EnsureDefaultCategory(world.ID); err != nil {
		utils.LogError("Failed to seed default category for world %d: %v", world.ID, err)
	}

	utils.LogInfo("World created successfully: %s", world.Name)
	utils.Created(c, "World created successfully", gin.H{
		"world": gin.H{
			"id":           world.ID,
			"name":         world.Name,
			"description":  world.Description,
			"era":          world.Era,
			"start_year":   world.StartYear,
			"current_year": world.CurrentYear,
		},
	})
}

// GetWorlds handles world listing with search, pagination, and sorting
func GetWorlds(c *gin.Context) {
	utils.LogInfo("GetWorlds called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	pagination := utils.NewPagination(c)
	order := c.DefaultQuery("order", "desc")
	search := c.Query("search")
	sortBy := c.DefaultQuery("sort_by", "created_at")

	utils.LogDebug("Query parameters - Page: %d, Limit: %d, Order: %s, SortBy: %s, Search: %s",
		pagination.Page, pagination.Limit, order, sortBy, search)

	if order != "asc" && order != "desc" {
		utils.LogError("Invalid order parameter: %s", order)
		utils.BadRequest(c, "Invalid order parameter", "Order must be either 'asc' or 'desc'")
		return
	}

	validSortFields := map[string]bool{"name": true, "created_at": true, "current_year": true}
	if !validSortFields[sortBy] {
		utils.LogError("Invalid sort field: %s", sortBy)
		utils.BadRequest(c, "Invalid sort field", "Sort field must be 'name', 'created_at', or 'current_year'")
		return
	}

	query := config.DB.Model(&models.World{}).Where("user_id = ?", userModel.ID)

	if search != "" {
		searchTerm := "%" + search + "%"
		utils.LogDebug("Applying search with term: %s", search)
		query = query.Where("name ILIKE ? OR description ILIKE ? OR era ILIKE ?", searchTerm, searchTerm, searchTerm)
	}

	query = query.Order(fmt.Sprintf("%s %s", sortBy, order))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to get total count: %v", err)
		utils.InternalServerError(c, "Failed to fetch worlds", err.Error())
		return
	}
	pagination.SetTotal(total)

	var worlds []models.World
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&worlds).Error; err != nil {
		utils.LogError("Failed to fetch worlds: %v", err)
		utils.InternalServerError(c, "Failed to fetch worlds", err.Error())
		return
	}
	utils.LogDebug("Found %d worlds", len(worlds))

	var simpleWorlds []gin.H
	for _, world := range worlds {
		simpleWorlds = append(simpleWorlds, gin.H{
			"id":           world.ID,
			"name":         world.Name,
			"description":  world.Description,
			"era":          world.Era,
			"start_year":   world.StartYear,
			"current_year": world.CurrentYear,
			"created_at":   world.CreatedAt,
			"updated_at":   world.UpdatedAt,
		})
	}

	utils.LogInfo("Successfully retrieved %d worlds for user %d", len(worlds), userModel.ID)
	utils.SuccessWithPagination(c, "Worlds retrieved successfully", gin.H{
		"worlds": simpleWorlds,
		"filters": gin.H{
			"search": search,
			"sort":   sortBy,
			"order":  order,
		},
	}, total, pagination.Page, pagination.Limit)
}

// GetWorldDetails returns one world with its content counts
func GetWorldDetails(c *gin.Context) {
	utils.LogInfo("GetWorldDetails called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	var locationCount, characterCount, factionCount, categoryCount int64
	config.DB.Model(&models.Location{}).Where("world_id = ?", world.ID).Count(&locationCount)
	config.DB.Model(&models.Character{}).Where("world_id = ?", world.ID).Count(&characterCount)
	config.DB.Model(&models.Faction{}).Where("world_id = ?", world.ID).Count(&factionCount)
	config.DB.Model(&models.Category{}).Where("world_id = ?", world.ID).Count(&categoryCount)

	utils.LogInfo("Retrieved world details: %s", world.Name)
	utils.Success(c, "World retrieved successfully", gin.H{
		"world": gin.H{
			"id":           world.ID,
			"name":         world.Name,
			"description":  world.Description,
			"era":          world.Era,
			"start_year":   world.StartYear,
			"current_year": world.CurrentYear,
			"created_at":   world.CreatedAt,
			"updated_at":   world.UpdatedAt,
		},
		"counts": gin.H{
			"locations":  locationCount,
			"characters": characterCount,
			"factions":   factionCount,
			"categories": categoryCount,
		},
	})
}

// UpdateWorld handles world updates
func UpdateWorld(c *gin.Context) {
	utils.LogInfo("UpdateWorld called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	var req WorldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", gin.H{
			"name": "Name is required and must be between 2 and 100 characters",
		})
		return
	}
	utils.LogDebug("Received world update request - Name: %s", req.Name)

	if err := utils.ValidateYearRange(req.StartYear, req.CurrentYear); err != nil {
		utils.LogError("Invalid year range: %v", err)
		utils.BadRequest(c, "Invalid timeline", err.Error())
		return
	}

	if req.Era != "" {
		if err := utils.ValidateStringLength(req.Era, 2, 50); err != nil {
			utils.LogError("Invalid era: %v", err)
			utils.BadRequest(c, "Invalid era", err.Error())
			return
		}
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to process update", nil)
		return
	}
	utils.LogDebug("Started database transaction")

	updates := map[string]interface{}{
		"name":         strings.TrimSpace(req.Name),
		"description":  strings.TrimSpace(req.Description),
		"era":          strings.TrimSpace(req.Era),
		"start_year":   req.StartYear,
		"current_year": req.CurrentYear,
		"updated_at":   time.Now(),
	}

	if err := tx.Model(world).Updates(updates).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update world: %v", err)
		utils.InternalServerError(c, "Failed to update world", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to save changes", err.Error())
		return
	}
	utils.LogDebug("Successfully committed transaction")

	utils.LogInfo("World updated successfully: %s", world.Name)
	utils.Success(c, "World updated successfully", gin.H{
		"world": gin.H{
			"id":           world.ID,
			"name":         world.Name,
			"description":  world.Description,
			"era":          world.Era,
			"start_year":   world.StartYear,
			"current_year": world.CurrentYear,
		},
	})
}

// DeleteWorld removes a world and everything inside it
func DeleteWorld(c *gin.Context) {
	utils.LogInfo("DeleteWorld called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("world_id = ?", world.ID).Delete(&models.Location{}).Error; err != nil {
			return err
		}
		if err := tx.Where("world_id = ?", world.ID).Delete(&models.Character{}).Error; err != nil {
			return err
		}
		if err := tx.Where("world_id = ?", world.ID).Delete(&models.Faction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("world_id = ?", world.ID).Delete(&models.Category{}).Error; err != nil {
			return err
		}
		return tx.Delete(world).Error
	})
	if err != nil {
		utils.LogError("Failed to delete world %d: %v", world.ID, err)
		utils.InternalServerError(c, "Failed to delete world", err.Error())
		return
	}

	utils.LogInfo("World deleted successfully: %s", world.Name)
	utils.Success(c, "World deleted successfully", nil)
}
