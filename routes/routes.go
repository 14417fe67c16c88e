package routes

import (
	"os"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/controllers"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.Default()

	// Setup session middleware with a secure key
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "worldhistorysim-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   false, // Set to true in production with HTTPS
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("worldhistorysim", store))

	// Health check, also verifies the session store accepts writes
	router.GET("/health", func(c *gin.Context) {
		if err := utils.CheckSessionStore(c); err != nil {
			utils.InternalServerError(c, "Session store unavailable", err.Error())
			return
		}
		utils.Success(c, "Service healthy", gin.H{"app": utils.AppName})
	})

	// Auth routes (for OAuth)
	auth := router.Group("/auth")
	{
		auth.GET("/google/login", controllers.GoogleLogin)
		auth.GET("/google/callback", controllers.GoogleCallback)
	}

	// API version group
	api := router.Group("/v1")
	{
		// Initialize user routes (includes regular auth routes)
		initUserRoutes(api)

		// Initialize world routes with their nested content
		initWorldRoutes(api)

		// Initialize global library routes
		initLibraryRoutes(api)
	}

	return router
}
