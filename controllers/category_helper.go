package controllers

import (
	"fmt"
	"sync"
	"time"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/categorytree"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/config"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/models"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// toTreeCategory converts a stored row into its in-memory form
func toTreeCategory(m models.Category) categorytree.Category {
	return categorytree.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Color:       m.Color,
		ParentID:    m.ParentID,
		Order:       m.SortOrder,
	}
}

// fetchWorldCategories loads a world's category collection in insertion order
func fetchWorldCategories(worldID uint) ([]categorytree.Category, error) {
	var rows []models.Category
	if err := config.DB.Where("world_id = ?", worldID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	cats := make([]categorytree.Category, 0, len(rows))
	for _, row := range rows {
		cats = append(cats, toTreeCategory(row))
	}
	return cats, nil
}

// persistWorldCategories writes the whole collection back: rows missing from
// cats are deleted, existing rows updated in place, new rows appended.
// Insertion order of new rows preserves the collection order the editor saw.
func persistWorldCategories(worldID uint, cats []categorytree.Category) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		keep := make([]string, 0, len(cats))
		for _, cat := range cats {
			keep = append(keep, cat.ID)
		}

		del := tx.Where("world_id = ?", worldID)
		if len(keep) > 0 {
			del = del.Where("id NOT IN ?", keep)
		}
		if err := del.Delete(&models.Category{}).Error; err != nil {
			return err
		}

		for _, cat := range cats {
			var existing models.Category
			err := tx.Where("world_id = ? AND id = ?", worldID, cat.ID).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				row := models.Category{
					ID:          cat.ID,
					WorldID:     worldID,
					Name:        cat.Name,
					Description: cat.Description,
					Color:       cat.Color,
					ParentID:    cat.ParentID,
					SortOrder:   cat.Order,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}

			updates := map[string]interface{}{
				"name":        cat.Name,
				"description": cat.Description,
				"color":       cat.Color,
				"parent_id":   cat.ParentID,
				"sort_order":  cat.Order,
				"updated_at":  time.Now(),
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// categoryEditor binds one author session to one world's draft workflow.
// Draft state lives here between requests; handlers hold mu for the whole
// request so editor calls never interleave.
type categoryEditor struct {
	mu        sync.Mutex
	editor    *categorytree.Editor
	worldID   uint
	lastUsed  time.Time
	loadErr   error
	commitErr error
}

var (
	editorRegistryMu sync.Mutex
	editorRegistry   = make(map[string]*categoryEditor)
)

const editorSessionTTL = 30 * time.Minute

// editorSessionID returns the caller's editor session identifier, minting
// one into the cookie session on first use. The cookie store keeps no
// server-side ID of its own.
func editorSessionID(c *gin.Context) (string, error) {
	session := sessions.Default(c)
	if v := session.Get("editor_session_id"); v != nil {
		if id, ok := v.(string); ok && id != "" {
			return id, nil
		}
	}

	id := uuid.New().String()
	session.Set("editor_session_id", id)
	if err := session.Save(); err != nil {
		return "", err
	}
	utils.LogDebug("Minted editor session ID: %s", id)
	return id, nil
}

// editorFor returns the category editor bound to this session and world,
// creating it on first use and dropping registry entries idle past the TTL.
func editorFor(c *gin.Context, worldID uint) (*categoryEditor, error) {
	sessionID, err := editorSessionID(c)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s:%d", sessionID, worldID)

	editorRegistryMu.Lock()
	defer editorRegistryMu.Unlock()

	now := time.Now()
	for k, e := range editorRegistry {
		if now.Sub(e.lastUsed) > editorSessionTTL {
			delete(editorRegistry, k)
		}
	}

	entry, ok := editorRegistry[key]
	if !ok {
		entry = &categoryEditor{worldID: worldID}
		entry.editor = categorytree.NewEditor(
			func() []categorytree.Category {
				cats, err := fetchWorldCategories(entry.worldID)
				entry.loadErr = err
				return cats
			},
			func(cats []categorytree.Category) {
				entry.commitErr = persistWorldCategories(entry.worldID, cats)
			},
		)
		editorRegistry[key] = entry
		utils.LogDebug("Created category editor for world %d", worldID)
	}
	entry.lastUsed = now

	return entry, nil
}

// takeStoreError reports and clears any persistence failure the editor's
// accessors hit during the last operation.
func (e *categoryEditor) takeStoreError() error {
	if e.loadErr != nil {
		err := e.loadErr
		e.loadErr = nil
		return err
	}
	if e.commitErr != nil {
		err := e.commitErr
		e.commitErr = nil
		return err
	}
	return nil
}

// EnsureDefaultCategory creates a starter category for a fresh world
func EnsureDefaultCategory(worldID uint) error {
	utils.LogInfo("EnsureDefaultCategory called for world %d", worldID)

	var count int64
	if err := config.DB.Model(&models.Category{}).Where("world_id = ?", worldID).Count(&count).Error; err != nil {
		utils.LogError("Failed to count categories for world %d: %v", worldID, err)
		return err
	}
	if count > 0 {
		return nil
	}

	category := models.Category{
		ID:          categorytree.NewCategoryID(),
		WorldID:     worldID,
		Name:        "General",
		Description: "Default category for uncategorized content",
		Color:       categorytree.RandomColor(),
		ParentID:    "",
		SortOrder:   0,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create default category: %v", err)
		return err
	}

	utils.LogInfo("Created default category for world %d", worldID)
	return nil
}
