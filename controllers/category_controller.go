package controllers

import (
	"errors"
	"fmt"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/categorytree"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/config"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/models"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
	"github.com/gin-gonic/gin"
)

// GetCategories handles flat category listing with search, pagination, and sorting
func GetCategories(c *gin.Context) {
	utils.LogInfo("GetCategories called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	pagination := utils.NewPagination(c)
	order := c.DefaultQuery("order", "asc")
	search := c.Query("search")
	sortBy := c.DefaultQuery("sort_by", "created_at")

	utils.LogDebug("Query parameters - Page: %d, Limit: %d, Order: %s, SortBy: %s, Search: %s",
		pagination.Page, pagination.Limit, order, sortBy, search)

	if order != "asc" && order != "desc" {
		utils.LogError("Invalid order parameter: %s", order)
		utils.BadRequest(c, "Invalid order parameter", "Order must be either 'asc' or 'desc'")
		return
	}

	validSortFields := map[string]bool{"name": true, "created_at": true, "sort_order": true}
	if !validSortFields[sortBy] {
		utils.LogError("Invalid sort field: %s", sortBy)
		utils.BadRequest(c, "Invalid sort field", "Sort field must be 'name', 'created_at', or 'sort_order'")
		return
	}

	query := config.DB.Model(&models.Category{}).Where("world_id = ?", world.ID)

	if search != "" {
		searchTerm := "%" + search + "%"
		utils.LogDebug("Applying search with term: %s", search)
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchTerm, searchTerm)
	}

	query = query.Order(fmt.Sprintf("%s %s", sortBy, order))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to get total count: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}
	pagination.SetTotal(total)

	var categories []models.Category
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}
	utils.LogDebug("Found %d categories", len(categories))

	var simpleCategories []gin.H
	for _, cat := range categories {
		simpleCategories = append(simpleCategories, gin.H{
			"id":          cat.ID,
			"name":        cat.Name,
			"description": cat.Description,
			"color":       cat.Color,
			"parent_id":   cat.ParentID,
			"order":       cat.SortOrder,
			"created_at":  cat.CreatedAt,
			"updated_at":  cat.UpdatedAt,
		})
	}

	utils.LogInfo("Successfully retrieved %d categories for world %d", len(categories), world.ID)
	utils.Success(c, "Categories retrieved successfully", gin.H{
		"categories": simpleCategories,
		"pagination": gin.H{
			"total":        total,
			"current_page": pagination.Page,
			"per_page":     pagination.Limit,
			"total_pages":  pagination.LastPage,
			"has_more":     int64(pagination.Page)*int64(pagination.Limit) < total,
		},
		"filters": gin.H{
			"search": search,
			"sort":   sortBy,
			"order":  order,
		},
	})
}

// GetCategoryTree returns the nested category view. An optional root query
// parameter restricts the walk to one subtree.
func GetCategoryTree(c *gin.Context) {
	utils.LogInfo("GetCategoryTree called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	cats, err := fetchWorldCategories(world.ID)
	if err != nil {
		utils.LogError("Failed to load categories for world %d: %v", world.ID, err)
		utils.InternalServerError(c, "Failed to load categories", err.Error())
		return
	}

	root := c.Query("root")
	if root != "" {
		if _, found := categorytree.Find(cats, root); !found {
			utils.LogError("Subtree root not found: %s", root)
			utils.NotFound(c, "Category not found")
			return
		}
	}

	nodes, err := categorytree.Subtree(cats, root)
	if err != nil {
		var cycleErr *categorytree.CycleError
		if errors.As(err, &cycleErr) {
			utils.LogError("Category parent cycle detected at %s in world %d", cycleErr.ID, world.ID)
			utils.ValidationError(c, utils.ErrCategoryCycle, gin.H{
				"category_id": cycleErr.ID,
			})
			return
		}
		utils.LogError("Failed to build category tree: %v", err)
		utils.InternalServerError(c, "Failed to build category tree", err.Error())
		return
	}

	utils.LogInfo("Built category tree with %d top-level nodes for world %d", len(nodes), world.ID)
	utils.Success(c, "Category tree retrieved successfully", gin.H{
		"tree": nodes,
	})
}

// GetCategoryChildren lists the direct children of one category in display order
func GetCategoryChildren(c *gin.Context) {
	utils.LogInfo("GetCategoryChildren called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	cats, err := fetchWorldCategories(world.ID)
	if err != nil {
		utils.LogError("Failed to load categories for world %d: %v", world.ID, err)
		utils.InternalServerError(c, "Failed to load categories", err.Error())
		return
	}

	categoryID := c.Param("categoryId")
	if _, found := categorytree.Find(cats, categoryID); !found {
		utils.LogError("Category not found: %s", categoryID)
		utils.NotFound(c, "Category not found")
		return
	}

	children := categorytree.Children(cats, categoryID)
	utils.LogInfo("Found %d children for category %s", len(children), categoryID)
	utils.Success(c, "Category children retrieved successfully", gin.H{
		"children": children,
	})
}

// GetCategoryOrphans lists categories whose parent chain no longer reaches a root
func GetCategoryOrphans(c *gin.Context) {
	utils.LogInfo("GetCategoryOrphans called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	cats, err := fetchWorldCategories(world.ID)
	if err != nil {
		utils.LogError("Failed to load categories for world %d: %v", world.ID, err)
		utils.InternalServerError(c, "Failed to load categories", err.Error())
		return
	}

	orphans := categorytree.Orphaned(cats)
	utils.LogInfo("Found %d orphaned categories in world %d", len(orphans), world.ID)
	utils.Success(c, "Orphaned categories retrieved successfully", gin.H{
		"orphans": orphans,
	})
}

// GetCategoryDetails returns one category along with its direct children
func GetCategoryDetails(c *gin.Context) {
	utils.LogInfo("GetCategoryDetails called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	cats, err := fetchWorldCategories(world.ID)
	if err != nil {
		utils.LogError("Failed to load categories for world %d: %v", world.ID, err)
		utils.InternalServerError(c, "Failed to load categories", err.Error())
		return
	}

	categoryID := c.Param("categoryId")
	category, found := categorytree.Find(cats, categoryID)
	if !found {
		utils.LogError("Category not found: %s", categoryID)
		utils.NotFound(c, "Category not found")
		return
	}

	utils.Success(c, "Category retrieved successfully", gin.H{
		"category": category,
		"children": categorytree.Children(cats, categoryID),
	})
}

// DeleteCategory removes one category after explicit confirmation. Children
// are left in place and surface under the orphans view until re-parented.
func DeleteCategory(c *gin.Context) {
	utils.LogInfo("DeleteCategory called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	categoryID := c.Param("categoryId")
	if categoryID == "" {
		utils.LogError("Category ID not provided")
		utils.BadRequest(c, "Category ID is required", nil)
		return
	}
	utils.LogDebug("Processing category ID: %s", categoryID)

	cats, err := fetchWorldCategories(world.ID)
	if err != nil {
		utils.LogError("Failed to load categories for world %d: %v", world.ID, err)
		utils.InternalServerError(c, "Failed to load categories", err.Error())
		return
	}

	category, found := categorytree.Find(cats, categoryID)
	if !found {
		utils.LogError("Category not found: %s", categoryID)
		utils.NotFound(c, "Category not found")
		return
	}

	children := categorytree.Children(cats, categoryID)

	if c.Query("confirm") != "true" {
		utils.LogDebug("Delete of category %s requires confirmation", categoryID)
		utils.BadRequest(c, "Deletion requires confirmation", gin.H{
			"category":       category.Name,
			"child_count":    len(children),
			"confirm_with":   "confirm=true",
			"orphan_warning": "Children are not deleted; they become orphans until re-parented",
		})
		return
	}

	entry, err := editorFor(c, world.ID)
	if err != nil {
		utils.LogError("Failed to open category editor: %v", err)
		utils.InternalServerError(c, "Failed to open category editor", err.Error())
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.editor.Delete(categoryID)
	if err := entry.takeStoreError(); err != nil {
		utils.LogError("Failed to delete category %s: %v", categoryID, err)
		utils.InternalServerError(c, "Failed to delete category", err.Error())
		return
	}

	utils.LogInfo("Category deleted successfully: %s", category.Name)
	utils.Success(c, "Category deleted successfully", gin.H{
		"orphaned_children": len(children),
	})
}
