package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents an author account in the system
type User struct {
	gorm.Model
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsBlocked   bool      `json:"is_blocked"`
	IsVerified  bool      `json:"is_verified" gorm:"default:false"`
	LastLoginAt time.Time `json:"last_login_at"`
	GoogleID    string    `gorm:"unique;default:null" json:"google_id"`

	Worlds []World `json:"worlds,omitempty" gorm:"foreignKey:UserID"`
}

// UserOTP represents a one-time code e-mailed to a user for password reset
type UserOTP struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Code      string    `json:"code" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// World represents one authored world: the container for its locations,
// characters, factions and the category forest that organizes them
type World struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Era         string `json:"era"`
	StartYear   int    `json:"start_year"`
	CurrentYear int    `json:"current_year"`
	UserID      uint   `json:"user_id" gorm:"index"`

	Locations  []Location  `json:"locations,omitempty" gorm:"foreignKey:WorldID"`
	Characters []Character `json:"characters,omitempty" gorm:"foreignKey:WorldID"`
	Factions   []Faction   `json:"factions,omitempty" gorm:"foreignKey:WorldID"`
	Categories []Category  `json:"categories,omitempty" gorm:"foreignKey:WorldID"`
}

// BeforeSave hook to keep world names trimmed
func (w *World) BeforeSave(tx *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)
	return nil
}
