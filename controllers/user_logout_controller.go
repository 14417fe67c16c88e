package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/config"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/models"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func UserLogout(c *gin.Context) {
	// Get user ID before clearing session
	userID, exists := c.Get("user_id")
	if exists {
		utils.LogInfo("User %d logging out", userID)
	}

	// Clear session
	session := sessions.Default(c)
	session.Clear()
	err := session.Save()
	if err != nil {
		utils.LogError("Failed to save cleared session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	// Get the token from the request
	token := c.GetHeader("Authorization")
	if token != "" {
		// Remove "Bearer " prefix if present
		token = strings.TrimPrefix(token, "Bearer ")

		// Add token to blacklist
		blacklistedToken := models.BlacklistedToken{
			Token:     token,
			ExpiresAt: time.Now().Add(24 * time.Hour), // Same as JWT expiration
		}

		if err := config.DB.Create(&blacklistedToken).Error; err != nil {
			utils.LogError("Failed to blacklist token: %v", err)
		} else {
			utils.LogInfo("Token blacklisted for user %d", userID)
		}
	}

	utils.LogInfo("User session cleared and token blacklisted successfully")
	utils.Success(c, "Logout successful", nil)
}
