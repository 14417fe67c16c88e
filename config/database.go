package config

import (
	"fmt"
	"log"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection and performs migrations
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	// Earlier deployments enforced unique category names. Authors may keep
	// same-named categories under different parents, so drop the stale
	// constraint before migrating.
	removeCategoryNameUniqueConstraint()

	err = DB.AutoMigrate(
		&models.User{},
		&models.UserOTP{},
		&models.BlacklistedToken{},
		&models.World{},
		&models.Location{},
		&models.CharacterType{},
		&models.Character{},
		&models.Faction{},
		&models.Template{},
		&models.Category{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}

	// Update GoogleID column to be nullable
	err = DB.Exec(`
		ALTER TABLE users
		ALTER COLUMN google_id DROP NOT NULL,
		ALTER COLUMN google_id SET DEFAULT NULL
	`).Error
	if err != nil {
		panic(fmt.Sprintf("Failed to update google_id column: %v", err))
	}
}

// removeCategoryNameUniqueConstraint drops the legacy unique constraint on
// category names if a previous schema version created it
func removeCategoryNameUniqueConstraint() {
	var constraintExists bool
	err := DB.Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM information_schema.table_constraints
			WHERE constraint_name = 'categories_name_key'
		)
	`).Scan(&constraintExists).Error
	if err != nil {
		log.Printf("Failed to check category name constraint: %v", err)
		return
	}

	if constraintExists {
		log.Printf("Removing unique constraint on category name field")
		err = DB.Exec(`ALTER TABLE categories DROP CONSTRAINT categories_name_key`).Error
		if err != nil {
			log.Printf("Failed to remove category name constraint: %v", err)
		}
	}
}
