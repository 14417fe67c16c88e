package controllers

import (
	"os"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/config"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/models"
	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
)

// CreateSampleAuthor creates a sample author account
func CreateSampleAuthor() error {
	utils.LogInfo("CreateSampleAuthor called")
	hashedPassword, err := utils.HashPassword(os.Getenv("AUTHOR_PASSWORD"))
	if err != nil {
		utils.LogError("Failed to hash author password: %v", err)
		return err
	}
	utils.LogDebug("Successfully hashed author password")

	author := models.User{
		Username:   os.Getenv("AUTHOR_USERNAME"),
		Email:      os.Getenv("AUTHOR_EMAIL"),
		Password:   hashedPassword,
		FirstName:  os.Getenv("AUTHOR_FIRST_NAME"),
		LastName:   os.Getenv("AUTHOR_LAST_NAME"),
		IsVerified: true,
	}
	utils.LogDebug("Created author model for email: %s", author.Email)

	err = config.DB.FirstOrCreate(&author, models.User{Email: author.Email}).Error
	if err != nil {
		utils.LogError("Failed to create sample author: %v", err)
		return err
	}
	utils.LogInfo("Successfully created/updated sample author: %s", author.Email)
	return nil
}
