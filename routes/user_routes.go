package routes

import (
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/controllers"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all user-related routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)
	router.POST("/verify-otp", controllers.VerifyOTP)
	router.POST("/forgot-password", controllers.ForgotPassword)
	router.POST("/verify-reset-otp", controllers.VerifyResetOTP)
	router.POST("/reset-password", controllers.ResetPassword)

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", controllers.UserLogout)
	}
}
