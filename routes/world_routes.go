package routes

import (
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/controllers"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/middleware"
	"github.com/gin-gonic/gin"
)

// initWorldRoutes initializes world routes and everything nested inside a world
func initWorldRoutes(router *gin.RouterGroup) {
	worlds := router.Group("/worlds")
	worlds.Use(middleware.AuthMiddleware())
	{
		// World management
		worlds.POST("", controllers.CreateWorld)
		worlds.GET("", controllers.GetWorlds)
		worlds.GET("/:id", controllers.GetWorldDetails)
		worlds.PUT("/:id", controllers.UpdateWorld)
		worlds.DELETE("/:id", controllers.DeleteWorld)

		// Locations
		worlds.POST("/:id/locations", controllers.CreateLocation)
		worlds.GET("/:id/locations", controllers.GetLocations)
		worlds.GET("/:id/locations/:locationId", controllers.GetLocationDetails)
		worlds.PUT("/:id/locations/:locationId", controllers.UpdateLocation)
		worlds.DELETE("/:id/locations/:locationId", controllers.DeleteLocation)

		// Characters
		worlds.POST("/:id/characters", controllers.CreateCharacter)
		worlds.GET("/:id/characters", controllers.GetCharacters)
		worlds.GET("/:id/characters/:characterId", controllers.GetCharacterDetails)
		worlds.PUT("/:id/characters/:characterId", controllers.UpdateCharacter)
		worlds.DELETE("/:id/characters/:characterId", controllers.DeleteCharacter)

		// Factions
		worlds.POST("/:id/factions", controllers.CreateFaction)
		worlds.GET("/:id/factions", controllers.GetFactions)
		worlds.GET("/:id/factions/:factionId", controllers.GetFactionDetails)
		worlds.PUT("/:id/factions/:factionId", controllers.UpdateFaction)
		worlds.DELETE("/:id/factions/:factionId", controllers.DeleteFaction)

		// Categories. Tree, orphan and editor views live beside the
		// collection so the static segments never collide with :categoryId.
		worlds.GET("/:id/categories", controllers.GetCategories)
		worlds.GET("/:id/categories/:categoryId", controllers.GetCategoryDetails)
		worlds.GET("/:id/categories/:categoryId/children", controllers.GetCategoryChildren)
		worlds.DELETE("/:id/categories/:categoryId", controllers.DeleteCategory)
		worlds.GET("/:id/category-tree", controllers.GetCategoryTree)
		worlds.GET("/:id/category-orphans", controllers.GetCategoryOrphans)

		// Category editor (single draft per session and world)
		worlds.POST("/:id/category-editor/begin-create", controllers.BeginCategoryCreate)
		worlds.POST("/:id/category-editor/begin-edit/:categoryId", controllers.BeginCategoryEdit)
		worlds.GET("/:id/category-editor/draft", controllers.GetCategoryDraft)
		worlds.PATCH("/:id/category-editor/draft", controllers.UpdateCategoryDraft)
		worlds.GET("/:id/category-editor/parent-options", controllers.GetCategoryParentOptions)
		worlds.POST("/:id/category-editor/save", controllers.SaveCategoryDraft)
		worlds.POST("/:id/category-editor/cancel", controllers.CancelCategoryDraft)

		// Exports
		worlds.GET("/:id/export/excel", controllers.ExportWorldExcel)
		worlds.GET("/:id/export/pdf", controllers.ExportWorldPDF)
		worlds.POST("/:id/share", controllers.ShareWorldByEmail)
	}
}
