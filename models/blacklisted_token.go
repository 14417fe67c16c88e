package models

import (
	"time"

	"gorm.io/gorm"
)

// BlacklistedToken stores a revoked JWT until it would have expired anyway.
// Rows past ExpiresAt are safe to purge.
type BlacklistedToken struct {
	gorm.Model
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

// Expired reports whether the token no longer needs to stay on the blacklist.
func (b *BlacklistedToken) Expired(now time.Time) bool {
	return now.After(b.ExpiresAt)
}
