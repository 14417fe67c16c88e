package models

import (
	"gorm.io/gorm"
)

// Faction represents an organized group inside a world, from guilds to
// whole nations
type Faction struct {
	gorm.Model
	WorldID     uint        `json:"world_id" gorm:"index;not null"`
	World       World       `json:"-" gorm:"foreignKey:WorldID"`
	Name        string      `json:"name" gorm:"not null"`
	Description string      `json:"description"`
	Doctrine    string      `json:"doctrine"`
	Influence   int         `json:"influence" gorm:"default:0"`
	FoundedYear int         `json:"founded_year"`
	Dissolved   bool        `json:"dissolved" gorm:"default:false"`
	Members     []Character `json:"members,omitempty" gorm:"foreignKey:FactionID"`
}
