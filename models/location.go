package models

import (
	"gorm.io/gorm"
)

// Location kinds understood by the simulation.
const (
	LocationKindSettlement = "settlement"
	LocationKindLandmark   = "landmark"
	LocationKindRegion     = "region"
	LocationKindRuin       = "ruin"
)

// Location represents a place inside a world
type Location struct {
	gorm.Model
	WorldID     uint    `json:"world_id" gorm:"index;not null"`
	World       World   `json:"-" gorm:"foreignKey:WorldID"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Kind        string  `json:"kind" gorm:"default:'settlement'"`
	Population  int     `json:"population" gorm:"default:0"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	// CategoryID points into the world's category forest by ID only;
	// a dangling value just means the location is uncategorized.
	CategoryID string `json:"category_id" gorm:"index"`
}
