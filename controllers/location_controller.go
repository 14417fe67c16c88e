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

// LocationRequest represents the location creation/update request
type LocationRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description string  `json:"description"`
	Kind        string  `json:"kind"`
	Population  int     `json:"population"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	CategoryID  string  `json:"category_id"`
}

var validLocationKinds = map[string]bool{
	models.LocationKindSettlement: true,
	models.LocationKindLandmark:   true,
	models.LocationKindRegion:     true,
	models.LocationKindRuin:       true,
}

// validateLocationRequest checks kind, population and the category reference
func validateLocationRequest(worldID uint, req *LocationRequest) (string, bool) {
	if req.Kind == "" {
		req.Kind = models.LocationKindSettlement
	}
	if !validLocationKinds[req.Kind] {
		return "Kind must be one of: settlement, landmark, region, ruin", false
	}
	if req.Population < 0 {
		return "Population cannot be negative", false
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

// CreateLocation handles location creation inside a world
func CreateLocation(c *gin.Context) {
	utils.LogInfo("CreateLocation called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Received location creation request - Name: %s", req.Name)

	if msg, ok := validateLocationRequest(world.ID, &req); !ok {
		utils.LogError("Invalid location request: %s", msg)
		utils.BadRequest(c, "Invalid location", msg)
		return
	}

	location := models.Location{
		WorldID:     world.ID,
		Name:        req.Name,
		Description: req.Description,
		Kind:        req.Kind,
		Population:  req.Population,
		X:           req.X,
		Y:           req.Y,
		CategoryID:  req.CategoryID,
	}

	if err := config.DB.Create(&location).Error; err != nil {
		utils.LogError("Failed to create location: %v", err)
		utils.InternalServerError(c, "Failed to create location", err.Error())
		return
	}

	utils.LogInfo("Location created successfully: %s", location.Name)
	utils.Created(c, "Location created successfully", gin.H{
		"location": gin.H{
			"id":          location.ID,
			"name":        location.Name,
			"description": location.Description,
			"kind":        location.Kind,
			"population":  location.Population,
			"x":           location.X,
			"y":           location.Y,
			"category_id": location.CategoryID,
		},
	})
}

// GetLocations handles location listing with search, filtering, and pagination
func GetLocations(c *gin.Context) {
	utils.LogInfo("GetLocations called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	pagination := utils.NewPagination(c)
	search := c.Query("search")
	kind := c.Query("kind")
	categoryID := c.Query("category_id")
	order := c.DefaultQuery("order", "asc")
	sortBy := c.DefaultQuery("sort_by", "name")

	utils.LogDebug("Query parameters - Page: %d, Limit: %d, Kind: %s, Search: %s",
		pagination.Page, pagination.Limit, kind, search)

	if order != "asc" && order != "desc" {
		utils.LogError("Invalid order parameter: %s", order)
		utils.BadRequest(c, "Invalid order parameter", "Order must be either 'asc' or 'desc'")
		return
	}

	validSortFields := map[string]bool{"name": true, "created_at": true, "population": true}
	if !validSortFields[sortBy] {
		utils.LogError("Invalid sort field: %s", sortBy)
		utils.BadRequest(c, "Invalid sort field", "Sort field must be 'name', 'created_at', or 'population'")
		return
	}

	query := config.DB.Model(&models.Location{}).Where("world_id = ?", world.ID)

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchTerm, searchTerm)
	}
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	query = query.Order(fmt.Sprintf("%s %s", sortBy, order))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to get total count: %v", err)
		utils.InternalServerError(c, "Failed to fetch locations", err.Error())
		return
	}
	pagination.SetTotal(total)

	var locations []models.Location
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&locations).Error; err != nil {
		utils.LogError("Failed to fetch locations: %v", err)
		utils.InternalServerError(c, "Failed to fetch locations", err.Error())
		return
	}

	utils.LogInfo("Successfully retrieved %d locations for world %d", len(locations), world.ID)
	utils.SuccessWithPagination(c, "Locations retrieved successfully", gin.H{
		"locations": locations,
	}, total, pagination.Page, pagination.Limit)
}

// GetLocationDetails returns one location
func GetLocationDetails(c *gin.Context) {
	utils.LogInfo("GetLocationDetails called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	locationID, err := strconv.ParseUint(c.Param("locationId"), 10, 32)
	if err != nil {
		utils.LogError("Invalid location ID: %s", c.Param("locationId"))
		utils.BadRequest(c, "Invalid location ID", nil)
		return
	}

	var location models.Location
	if err := config.DB.Where("world_id = ?", world.ID).First(&location, locationID).Error; err != nil {
		utils.LogError("Location not found: %v", err)
		utils.NotFound(c, "Location not found")
		return
	}

	utils.Success(c, "Location retrieved successfully", gin.H{
		"location": location,
	})
}

// UpdateLocation handles location updates
func UpdateLocation(c *gin.Context) {
	utils.LogInfo("UpdateLocation called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	locationID, err := strconv.ParseUint(c.Param("locationId"), 10, 32)
	if err != nil {
		utils.LogError("Invalid location ID: %s", c.Param("locationId"))
		utils.BadRequest(c, "Invalid location ID", nil)
		return
	}

	var location models.Location
	if err := config.DB.Where("world_id = ?", world.ID).First(&location, locationID).Error; err != nil {
		utils.LogError("Location not found: %v", err)
		utils.NotFound(c, "Location not found")
		return
	}
	utils.LogDebug("Found location: %s", location.Name)

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if msg, ok := validateLocationRequest(world.ID, &req); !ok {
		utils.LogError("Invalid location request: %s", msg)
		utils.BadRequest(c, "Invalid location", msg)
		return
	}

	updates := map[string]interface{}{
		"name":        strings.TrimSpace(req.Name),
		"description": strings.TrimSpace(req.Description),
		"kind":        req.Kind,
		"population":  req.Population,
		"x":           req.X,
		"y":           req.Y,
		"category_id": req.CategoryID,
		"updated_at":  time.Now(),
	}

	if err := config.DB.Model(&location).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update location: %v", err)
		utils.InternalServerError(c, "Failed to update location", err.Error())
		return
	}

	utils.LogInfo("Location updated successfully: %s", location.Name)
	utils.Success(c, "Location updated successfully", gin.H{
		"location": location,
	})
}

// DeleteLocation removes a location
func DeleteLocation(c *gin.Context) {
	utils.LogInfo("DeleteLocation called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	locationID, err := strconv.ParseUint(c.Param("locationId"), 10, 32)
	if err != nil {
		utils.LogError("Invalid location ID: %s", c.Param("locationId"))
		utils.BadRequest(c, "Invalid location ID", nil)
		return
	}

	var location models.Location
	if err := config.DB.Where("world_id = ?", world.ID).First(&location, locationID).Error; err != nil {
		utils.LogError("Location not found: %v", err)
		utils.NotFound(c, "Location not found")
		return
	}

	if err := config.DB.Delete(&location).Error; err != nil {
		utils.LogError("Failed to delete location: %v", err)
		utils.InternalServerError(c, "Failed to delete location", err.Error())
		return
	}

	utils.LogInfo("Location deleted successfully: %s", location.Name)
	utils.Success(c, "Location deleted successfully", nil)
}
