package models

import (
	"time"
)

// Category is the persisted form of one entry in a world's category
// forest. ParentID is a weak reference by ID: it carries no database
// constraint, so deleting a parent leaves children behind as orphans
// until the author re-parents them.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	WorldID     uint      `json:"world_id" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	ParentID    string    `json:"parent_id" gorm:"index"`
	SortOrder   int       `json:"order" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
