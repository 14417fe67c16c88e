package routes

import (
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/controllers"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/middleware"
	"github.com/gin-gonic/gin"
)

// initLibraryRoutes initializes the global collections shared across worlds
func initLibraryRoutes(router *gin.RouterGroup) {
	// Character types
	characterTypes := router.Group("/character-types")
	characterTypes.Use(middleware.AuthMiddleware())
	{
		characterTypes.POST("", controllers.CreateCharacterType)
		characterTypes.GET("", controllers.GetCharacterTypes)
		characterTypes.PUT("/:id", controllers.UpdateCharacterType)
		characterTypes.DELETE("/:id", controllers.DeleteCharacterType)
	}

	// Templates
	templates := router.Group("/templates")
	templates.Use(middleware.AuthMiddleware())
	{
		templates.GET("", controllers.GetTemplates)
		templates.GET("/:id", controllers.GetTemplateDetails)
		templates.POST("", controllers.CreateTemplate)
		templates.PUT("/:id", controllers.UpdateTemplate)
		templates.DELETE("/:id", controllers.DeleteTemplate)
	}
}
