package models

import (
	"gorm.io/gorm"
)

// CharacterType represents an archetype shared across worlds, e.g. ruler,
// scholar, wanderer
type CharacterType struct {
	gorm.Model
	Name        string      `json:"name" gorm:"uniqueIndex"`
	Description string      `json:"description"`
	Characters  []Character `json:"characters,omitempty"`
}

// Character represents a historical figure inside a world
type Character struct {
	gorm.Model
	WorldID         uint          `json:"world_id" gorm:"index;not null"`
	World           World         `json:"-" gorm:"foreignKey:WorldID"`
	Name            string        `json:"name" gorm:"not null"`
	Summary         string        `json:"summary"`
	BirthYear       int           `json:"birth_year"`
	DeathYear       int           `json:"death_year"`
	Alive           bool          `json:"alive" gorm:"default:true"`
	CharacterTypeID uint          `json:"character_type_id"`
	CharacterType   CharacterType `json:"character_type,omitempty" gorm:"foreignKey:CharacterTypeID"`
	FactionID       *uint         `json:"faction_id"`
	Faction         *Faction      `json:"faction,omitempty" gorm:"foreignKey:FactionID"`
	// CategoryID is a weak reference into the world's category forest.
	CategoryID string `json:"category_id" gorm:"index"`
}
