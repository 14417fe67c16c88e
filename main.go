package main

import (
	"log"
	"os"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/config"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/controllers"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/routes"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	_, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Create sample author
	if err := controllers.CreateSampleAuthor(); err != nil {
		utils.LogError("Failed to create sample author: %v", err)
		log.Fatal("Failed to create sample author:", err)
	}

	// Seed the built-in templates
	if err := controllers.CreateDefaultTemplates(); err != nil {
		utils.LogError("Failed to seed default templates: %v", err)
		log.Fatal("Failed to seed default templates:", err)
	}

	// Initialize Google OAuth
	config.InitGoogleOAuth()

	// Set up router
	router := routes.SetupRouter()

	// Add middleware
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	port := os.Getenv("PORT")
	if port == "" {
		port = utils.DefaultPort
	}

	utils.LogInfo("Server starting on port %s", port)
	// Start server
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
