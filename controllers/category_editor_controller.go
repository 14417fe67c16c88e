package controllers

import (
	"errors"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/categorytree"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
	"github.com/gin-gonic/gin"
)

// CategoryDraftUpdateRequest carries partial draft edits. Pointer fields
// distinguish "not sent" from "set to empty".
type CategoryDraftUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	ParentID    *string `json:"parent_id"`
	Order       *int    `json:"order"`
}

// BeginCategoryCreate opens a draft for a brand new category. Any draft the
// session already had is discarded in favor of the new one.
func BeginCategoryCreate(c *gin.Context) {
	utils.LogInfo("BeginCategoryCreate called")

	world, ok := getOwnedWorld(c)
	if !ok {
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

	draft := entry.editor.BeginCreate()
	if err := entry.takeStoreError(); err != nil {
		utils.LogError("Failed to load categories for world %d: %v", world.ID, err)
		utils.InternalServerError(c, "Failed to load categories", err.Error())
		return
	}

	utils.LogInfo("Opened create draft %s for world %d", draft.ID, world.ID)
	utils.Success(c, "Category draft opened", gin.H{
		"draft": draft,
	})
}

// BeginCategoryEdit opens a draft seeded from an existing category
func BeginCategoryEdit(c *gin.Context) {
	utils.LogInfo("BeginCategoryEdit called")

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

	entry, err := editorFor(c, world.ID)
	if err != nil {
		utils.LogError("Failed to open category editor: %v", err)
		utils.InternalServerError(c, "Failed to open category editor", err.Error())
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	draft, err := entry.editor.BeginEdit(categoryID)
	if storeErr := entry.takeStoreError(); storeErr != nil {
		utils.LogError("Failed to load categories for world %d: %v", world.ID, storeErr)
		utils.InternalServerError(c, "Failed to load categories", storeErr.Error())
		return
	}
	if err != nil {
		if errors.Is(err, categorytree.ErrNotFound) {
			utils.LogError("Category not found for edit: %s", categoryID)
			utils.NotFound(c, "Category not found")
			return
		}
		utils.LogError("Failed to begin edit for category %s: %v", categoryID, err)
		utils.InternalServerError(c, "Failed to begin edit", err.Error())
		return
	}

	utils.LogInfo("Opened edit draft for category %s in world %d", categoryID, world.ID)
	utils.Success(c, "Category draft opened", gin.H{
		"draft": draft,
	})
}

// GetCategoryDraft returns the session's open draft, if any
func GetCategoryDraft(c *gin.Context) {
	utils.LogInfo("GetCategoryDraft called")

	world, ok := getOwnedWorld(c)
	if !ok {
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

	draft, editing := entry.editor.Draft()
	if !editing {
		utils.LogDebug("No open draft for world %d", world.ID)
		utils.Success(c, "No draft open", gin.H{
			"editing": false,
		})
		return
	}

	utils.Success(c, "Draft retrieved successfully", gin.H{
		"editing": true,
		"draft":   draft,
	})
}

// UpdateCategoryDraft applies partial edits to the open draft
func UpdateCategoryDraft(c *gin.Context) {
	utils.LogInfo("UpdateCategoryDraft called")

	world, ok := getOwnedWorld(c)
	if !ok {
		return
	}

	var req CategoryDraftUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
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

	update := categorytree.DraftUpdate{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		ParentID:    req.ParentID,
		Order:       req.Order,
	}

	if err := entry.editor.UpdateDraft(update); err != nil {
		if errors.Is(err, categorytree.ErrNoDraft) {
			utils.LogError("Draft update without an open draft in world %d", world.ID)
			utils.Conflict(c, utils.ErrNoOpenDraft, nil)
			return
		}
		var valErr *categorytree.ValidationError
		if errors.As(err, &valErr) {
			utils.LogError("Draft update rejected: %s %s", valErr.Field, valErr.Reason)
			utils.ValidationError(c, "Invalid draft update", gin.H{
				"field":  valErr.Field,
				"reason": valErr.Reason,
			})
			return
		}
		utils.LogError("Failed to update draft: %v", err)
		utils.InternalServerError(c, "Failed to update draft", err.Error())
		return
	}

	draft, _ := entry.editor.Draft()
	utils.LogDebug("Draft updated for world %d", world.ID)
	utils.Success(c, "Draft updated successfully", gin.H{
		"draft": draft,
	})
}

// GetCategoryParentOptions lists the categories the open draft may nest under.
// Only the draft itself is excluded; the client is free to build deep chains
// and the tree walk guards against any loop that results.
func GetCategoryParentOptions(c *gin.Context) {
	utils.LogInfo("GetCategoryParentOptions called")

	world, ok := getOwnedWorld(c)
	if !ok {
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

	options := entry.editor.ParentOptions()
	if storeErr := entry.takeStoreError(); storeErr != nil {
		utils.LogError("Failed to load categories for world %d: %v", world.ID, storeErr)
		utils.InternalServerError(c, "Failed to load categories", storeErr.Error())
		return
	}
	if options == nil {
		utils.LogError("Parent options requested without an open draft in world %d", world.ID)
		utils.Conflict(c, utils.ErrNoOpenDraft, nil)
		return
	}

	utils.Success(c, "Parent options retrieved successfully", gin.H{
		"options": options,
	})
}

// SaveCategoryDraft validates and commits the open draft
func SaveCategoryDraft(c *gin.Context) {
	utils.LogInfo("SaveCategoryDraft called")

	world, ok := getOwnedWorld(c)
	if !ok {
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

	draft, editing := entry.editor.Draft()
	if !editing {
		utils.LogError("Save without an open draft in world %d", world.ID)
		utils.Conflict(c, utils.ErrNoOpenDraft, nil)
		return
	}

	if err := entry.editor.Save(); err != nil {
		if errors.Is(err, categorytree.ErrNoDraft) {
			utils.Conflict(c, utils.ErrNoOpenDraft, nil)
			return
		}
		var valErr *categorytree.ValidationError
		if errors.As(err, &valErr) {
			utils.LogError("Draft save rejected: %s %s", valErr.Field, valErr.Reason)
			utils.ValidationError(c, "Draft failed validation", gin.H{
				"field":  valErr.Field,
				"reason": valErr.Reason,
			})
			return
		}
		utils.LogError("Failed to save draft: %v", err)
		utils.InternalServerError(c, "Failed to save draft", err.Error())
		return
	}

	if storeErr := entry.takeStoreError(); storeErr != nil {
		utils.LogError("Failed to persist categories for world %d: %v", world.ID, storeErr)
		utils.InternalServerError(c, "Failed to persist categories", storeErr.Error())
		return
	}

	utils.LogInfo("Saved category %s in world %d", draft.ID, world.ID)
	utils.Success(c, "Category saved successfully", gin.H{
		"category": draft,
	})
}

// CancelCategoryDraft discards the open draft. Calling with no draft open is
// a no-op.
func CancelCategoryDraft(c *gin.Context) {
	utils.LogInfo("CancelCategoryDraft called")

	world, ok := getOwnedWorld(c)
	if !ok {
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

	entry.editor.Cancel()
	utils.LogInfo("Draft cancelled for world %d", world.ID)
	utils.Success(c, "Draft discarded", nil)
}
